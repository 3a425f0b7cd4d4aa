package protolang

// LanguageDistance computes the mean lexeme distance between two languages
// over every meaning they share. Mirrors calculate_language_distance.
//
// An Entry may wrap Synonyms when a language has more than one attested
// word for a meaning; since the distance here is between two single-word
// forms, the first lexeme of each Synonyms bag is used, matching how a
// leaf language is normally built from a catalogue with one word per cell.
func LanguageDistance(a, b *Language, pdm *NamedMatrix[*Phoneme, float64], emptyPhoneme *Phoneme) (float64, error) {
	shared := a.SharedMeanings(b)
	if len(shared) == 0 {
		return 0, &EmptyIntersectionError{LanguageA: a.Code, LanguageB: b.Code}
	}

	var total float64
	for meaning := range shared {
		entryA, _ := a.Entry(meaning)
		entryB, _ := b.Entry(meaning)
		total += LexemeDistance(entryA.Lexemes()[0], entryB.Lexemes()[0], pdm, emptyPhoneme)
	}
	return total / float64(len(shared)), nil
}
