package protolang

import "fmt"

// BuildTree runs Neighbor-Joining over a language distance matrix and
// returns the resulting rooted Tree. Mirrors construct_tree: at each step
// it computes the Q matrix, picks the minimal pair, creates a parent
// Language joining them with branch lengths from the NJ formulas, then
// folds the pair's row/column out of the working distance matrix.
func BuildTree(ldm *NamedMatrix[*Language, float64]) (*Tree, error) {
	languages := append([]*Language{}, ldm.Names()...)
	n := len(languages)
	if n < 2 {
		return nil, fmt.Errorf("neighbor joining: need at least 2 languages, got %d", n)
	}

	d := make([][]float64, n)
	for i, li := range languages {
		d[i] = make([]float64, n)
		for j, lj := range languages {
			d[i][j] = ldm.Get(li, lj)
		}
	}

	var root *Language
	for n > 1 {
		rowSum := make([]float64, n)
		colSum := make([]float64, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				rowSum[i] += d[i][j]
				colSum[j] += d[i][j]
			}
		}

		// Q[i][j] = (n-2)*d[i][j] - rowSum[i] - colSum[j], diagonal forced to 0.
		bestI, bestJ := -1, -1
		var bestQ float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				q := float64(n-2)*d[i][j] - rowSum[i] - colSum[j]
				if bestI == -1 || q < bestQ {
					bestQ = q
					bestI, bestJ = i, j
				}
			}
		}
		i, j := bestI, bestJ

		name := languages[i].Code + "." + languages[j].Code
		distIJ := d[i][j] / 2
		if n != 2 {
			distIJ += (rowSum[i] - rowSum[j]) / (2 * float64(n-2))
		}
		distJIJ := d[i][j] - distIJ

		parent := NewLanguage(name, name, nil)
		NewEdge(parent, languages[i], distIJ)
		NewEdge(parent, languages[j], distJIJ)
		root = parent

		distToNew := make([]float64, n)
		for k := 0; k < n; k++ {
			distToNew[k] = (d[i][k] + d[j][k] - d[i][j]) / 2
		}

		// Append a row/column for the new node, then delete i and j,
		// deleting the larger index first to keep the smaller index valid.
		next := make([][]float64, n+1)
		for k := 0; k < n; k++ {
			next[k] = append(append([]float64{}, d[k]...), distToNew[k])
		}
		lastRow := append(append([]float64{}, distToNew...), 0)
		next[n] = lastRow
		languages = append(languages, parent)

		hi, lo := i, j
		if lo > hi {
			hi, lo = lo, hi
		}
		next = append(next[:hi], next[hi+1:]...)
		for k := range next {
			next[k] = append(next[k][:hi], next[k][hi+1:]...)
		}
		next = append(next[:lo], next[lo+1:]...)
		for k := range next {
			next[k] = append(next[k][:lo], next[k][lo+1:]...)
		}
		languages = removeAt(languages, hi)
		languages = removeAt(languages, lo)

		d = next
		n = len(languages)
	}

	return NewTree(root), nil
}

func removeAt(languages []*Language, idx int) []*Language {
	return append(append([]*Language{}, languages[:idx]...), languages[idx+1:]...)
}
