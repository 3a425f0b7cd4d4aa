package protolang

// DefaultReconstructionThreshold is the multiplier applied to a parent
// node's combined child-branch length: a candidate proto-lexeme is only
// accepted when the cheapest synonym pair is no more than threshold times
// that length apart, otherwise the meaning is carried upward as the union
// of both children's synonyms. Mirrors reconstruct_language's default
// threshold=2.0.
const DefaultReconstructionThreshold = 2.0

// ReconstructProtolanguages reconstructs lexemes for every internal node of
// tree, starting at the root and filling each internal node only after its
// children (post-order). Mirrors reconstruct_protolanguages.
func ReconstructProtolanguages(tree *Tree, pdm *NamedMatrix[*Phoneme, float64], emptyPhoneme *Phoneme, threshold float64) {
	reconstructLanguage(tree.Root, pdm, emptyPhoneme, threshold)
}

// reconstructLanguage fills in root's vocabulary from its two children,
// recursing first into any child that has no vocabulary of its own yet
// (an un-reconstructed internal node). Mirrors reconstruct_language; as in
// the original, this assumes Neighbor-Joining's binary merges, i.e. every
// internal node has exactly two children.
func reconstructLanguage(root *Language, pdm *NamedMatrix[*Phoneme, float64], emptyPhoneme *Phoneme, threshold float64) {
	children := root.ChildLanguages()
	if len(children) != 2 {
		return
	}

	for _, child := range children {
		if child.Len() == 0 {
			reconstructLanguage(child, pdm, emptyPhoneme, threshold)
		}
	}

	var languageDistance float64
	for _, edge := range root.ChildEdges {
		languageDistance += edge.Distance
	}

	left, right := children[0], children[1]
	shared := left.SharedMeanings(right)

	for meaning := range shared {
		leftEntry, hasLeft := left.Entry(meaning)
		rightEntry, hasRight := right.Entry(meaning)
		if !hasLeft || !hasRight {
			continue
		}

		leftLexemes := leftEntry.Lexemes()
		rightLexemes := rightEntry.Lexemes()

		var minDistance float64
		var minLeft, minRight *Lexeme
		first := true
		for _, l := range leftLexemes {
			for _, r := range rightLexemes {
				d := LexemeDistance(l, r, pdm, emptyPhoneme)
				if first || d < minDistance {
					minDistance = d
					minLeft, minRight = l, r
					first = false
				}
			}
		}

		if minDistance > languageDistance*threshold {
			merged := NewSynonyms(append(append([]*Lexeme{}, leftLexemes...), rightLexemes...))
			root.Set(meaning, MultipleEntry{Synonyms: merged})
			continue
		}

		protoLexeme := reconstructLexeme(minLeft, minRight)
		root.Set(meaning, SingleEntry{Lexeme: protoLexeme})

		setLexemeToDescendants(meaning, protoLexeme, minLeft, left)
		setLexemeToDescendants(meaning, protoLexeme, minRight, right)
	}

	onlyLeft := onlyIn(left, right)
	for meaning := range onlyLeft {
		if e, ok := left.Entry(meaning); ok {
			root.Set(meaning, e)
		}
	}
	onlyRight := onlyIn(right, left)
	for meaning := range onlyRight {
		if e, ok := right.Entry(meaning); ok {
			root.Set(meaning, e)
		}
	}
}

func onlyIn(a, b *Language) map[string]struct{} {
	out := make(map[string]struct{})
	for meaning := range a.byMeaning {
		if !b.Has(meaning) {
			out[meaning] = struct{}{}
		}
	}
	return out
}

// reconstructLexeme builds a naive proto-lexeme by concatenating both
// candidate lexemes' phonemes, keeping the first's meaning and language
// code; the caller stores it as is. Mirrors reconstruct_lexeme, which is
// itself a placeholder in the original pending a real sound-correspondence
// reconstruction rule.
func reconstructLexeme(a, b *Lexeme) *Lexeme {
	phonemes := append(append([]*Phoneme{}, a.Phonemes...), b.Phonemes...)
	return NewLexeme(phonemes, a.Meaning, a.LanguageCode)
}

// setLexemeToDescendants propagates a freshly reconstructed lexeme down
// through any descendant that still carries candidate as a synonym for
// meaning, replacing the Synonyms entry with the single reconstructed
// lexeme and recursing into its children. Mirrors set_lexeme_to_descendants.
func setLexemeToDescendants(meaning string, lexeme, candidate *Lexeme, language *Language) {
	entry, ok := language.Entry(meaning)
	if !ok {
		return
	}
	multiple, ok := entry.(MultipleEntry)
	if !ok {
		return
	}
	for _, syn := range multiple.Synonyms.Lexemes {
		if syn == candidate {
			language.Set(meaning, SingleEntry{Lexeme: lexeme})
			for _, child := range language.ChildLanguages() {
				setLexemeToDescendants(meaning, lexeme, candidate, child)
			}
			return
		}
	}
}
