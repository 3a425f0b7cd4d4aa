package protolang

// PhonemeDistance computes the cost of aligning two phonemes: zero for
// identical phonemes, otherwise the minimum-cost assignment between the
// features unique to each, padded with EmptyFeature so both sides of the
// assignment have equal size. Mirrors calculate_phoneme_distance.
func PhonemeDistance(catalog *FeatureCatalog, a, b *Phoneme) (float64, error) {
	if a.Equal(b) {
		return 0, nil
	}

	onlyA := a.Difference(b)
	onlyB := b.Difference(a)

	list1 := append(append([]Feature{}, onlyA...), padding(len(onlyB))...)
	list2 := append(append([]Feature{}, onlyB...), padding(len(onlyA))...)

	n := len(list1)
	cost := make([][]float64, n)
	for i, f1 := range list1 {
		cost[i] = make([]float64, n)
		for j, f2 := range list2 {
			cost[i][j] = catalog.DistanceTo(f1, f2, Disallowed)
		}
	}

	assignment, err := solveAssignment(cost)
	if err != nil {
		return 0, err
	}

	var total float64
	for i, j := range assignment {
		total += cost[i][j]
	}
	return total, nil
}

func padding(n int) []Feature {
	out := make([]Feature, n)
	for i := range out {
		out[i] = EmptyFeature
	}
	return out
}
