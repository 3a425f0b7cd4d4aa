package protolang

// LexemeDistance computes the Needleman–Wunsch alignment distance between
// two lexemes over a precomputed phoneme-pair distance matrix, normalized
// by the summed lengths of both lexemes. Mirrors calculate_lexeme_distance.
func LexemeDistance(source, target *Lexeme, pdm *NamedMatrix[*Phoneme, float64], emptyPhoneme *Phoneme) float64 {
	rows := len(source.Phonemes)
	cols := len(target.Phonemes)

	matrix := make([][]float64, rows+1)
	for i := range matrix {
		matrix[i] = make([]float64, cols+1)
	}

	for i, sp := range source.Phonemes {
		matrix[i+1][0] = matrix[i][0] + pdm.Get(sp, emptyPhoneme)
	}
	for j, tp := range target.Phonemes {
		matrix[0][j+1] = matrix[0][j] + pdm.Get(emptyPhoneme, tp)
	}
	for j, tp := range target.Phonemes {
		for i, sp := range source.Phonemes {
			matrix[i+1][j+1] = min3(
				matrix[i][j+1]+pdm.Get(sp, emptyPhoneme),
				matrix[i+1][j]+pdm.Get(emptyPhoneme, tp),
				matrix[i][j]+pdm.Get(sp, tp),
			)
		}
	}

	if rows+cols == 0 {
		return 0
	}
	return matrix[rows][cols] / float64(rows+cols)
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
