package protolang

import (
	"log/slog"
	"strconv"
	"time"
)

// Pipeline holds the loaded static tables and the logger threaded through
// every stage, the same way the teacher's Lemmatizer holds its loaded data
// maps for the process lifetime. It orchestrates catalogue ingestion,
// distance-matrix construction, tree building, and reconstruction.
type Pipeline struct {
	Tables *Tables
	Logger *slog.Logger

	EmptyPhoneme *Phoneme
}

// NewPipeline loads the static tables from dataDir and builds a ready-to-use
// Pipeline. Mirrors the teacher's New(dataDir) constructor.
func NewPipeline(dataDir string, logger *slog.Logger) (*Pipeline, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tables, err := LoadTables(dataDir)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Tables:       tables,
		Logger:       logger,
		EmptyPhoneme: NewPhoneme(tables, map[FeatureCode]Feature{}, ""),
	}, nil
}

// withTiming runs fn, logging its wall-clock duration at Info level.
// Mirrors the Python @timing decorator, minus the ANSI color codes.
func withTiming(logger *slog.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	logger.Info("stage complete", "stage", name, "elapsed", time.Since(start))
	return err
}

// BuildLanguagesFromCatalogue loads and parses the vocabulary catalogue
// into Languages. Mirrors construct_languages.
func (p *Pipeline) BuildLanguagesFromCatalogue(catalogPath string, minWords int) ([]*Language, error) {
	var languages []*Language
	err := withTiming(p.Logger, "construct_languages", func() error {
		rows, err := LoadCatalogue(catalogPath, minWords)
		if err != nil {
			return err
		}
		languages = BuildLanguages(p.Tables, rows, p.Logger)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		return nil, &CatalogueShapeError{Reason: "no languages remained after filtering"}
	}
	return languages, nil
}

// canonicalizePhonemes collapses every phoneme reachable from languages
// down to one shared pointer per distinct feature set, so that a
// *Phoneme-keyed NamedMatrix correctly implements feature-set equality
// rather than Go pointer identity. Returns the deduplicated phoneme list,
// with p.EmptyPhoneme appended last.
func (p *Pipeline) canonicalizePhonemes(languages []*Language) []*Phoneme {
	canon := make(map[string]*Phoneme)
	var ordered []*Phoneme

	canonicalize := func(ph *Phoneme) *Phoneme {
		sig := ph.Signature()
		if existing, ok := canon[sig]; ok {
			return existing
		}
		canon[sig] = ph
		ordered = append(ordered, ph)
		return ph
	}

	for _, lang := range languages {
		for i := 0; i < lang.Len(); i++ {
			for _, lexeme := range lang.At(i).Lexemes() {
				for j, ph := range lexeme.Phonemes {
					lexeme.Phonemes[j] = canonicalize(ph)
				}
				lexeme.redefine()
			}
		}
	}

	canon[p.EmptyPhoneme.Signature()] = p.EmptyPhoneme
	ordered = append(ordered, p.EmptyPhoneme)
	return ordered
}

// BuildPhonemeDistanceMatrix computes the pairwise distance matrix over
// every phoneme used in languages (plus the empty phoneme), optionally
// dumping it to csvPath. Mirrors construct_phoneme_distance_matrix.
func (p *Pipeline) BuildPhonemeDistanceMatrix(languages []*Language, csvPath string) (*NamedMatrix[*Phoneme, float64], error) {
	var matrix *NamedMatrix[*Phoneme, float64]
	var buildErr error
	err := withTiming(p.Logger, "construct_phoneme_distance_matrix", func() error {
		phonemes := p.canonicalizePhonemes(languages)
		matrix = NewNamedMatrix("pdm", phonemes, func(row, col *Phoneme) float64 {
			d, err := PhonemeDistance(p.Tables.Catalog, row, col)
			if err != nil {
				buildErr = err
				return Disallowed
			}
			return d
		})
		return buildErr
	})
	if err != nil {
		return nil, err
	}
	if csvPath != "" {
		if err := matrix.ToCSV(csvPath, func(ph *Phoneme) string { return ph.Glyph() }, formatFloat); err != nil {
			return nil, err
		}
	}
	return matrix, nil
}

// BuildLanguageDistanceMatrix computes the pairwise language-distance
// matrix, optionally dumping it to csvPath. Mirrors
// construct_language_distance_matrix.
func (p *Pipeline) BuildLanguageDistanceMatrix(languages []*Language, pdm *NamedMatrix[*Phoneme, float64], csvPath string) (*NamedMatrix[*Language, float64], error) {
	var matrix *NamedMatrix[*Language, float64]
	var buildErr error
	err := withTiming(p.Logger, "construct_language_distance_matrix", func() error {
		matrix = NewNamedMatrix("ldm", languages, func(row, col *Language) float64 {
			if row == col {
				return 0
			}
			d, err := LanguageDistance(row, col, pdm, p.EmptyPhoneme)
			if err != nil {
				buildErr = err
				return 0
			}
			return d
		})
		return buildErr
	})
	if err != nil {
		return nil, err
	}
	if csvPath != "" {
		if err := matrix.ToCSV(csvPath, func(l *Language) string { return l.Code }, formatFloat); err != nil {
			return nil, err
		}
	}
	return matrix, nil
}

// BuildTree runs Neighbor-Joining over ldm. Mirrors construct_tree.
func (p *Pipeline) BuildTree(ldm *NamedMatrix[*Language, float64]) (*Tree, error) {
	var tree *Tree
	err := withTiming(p.Logger, "construct_tree", func() error {
		t, err := BuildTree(ldm)
		tree = t
		return err
	})
	return tree, err
}

// Reconstruct fills in proto-lexica for every internal node of tree.
// Mirrors reconstruct_protolanguages.
func (p *Pipeline) Reconstruct(tree *Tree, pdm *NamedMatrix[*Phoneme, float64], threshold float64) {
	withTiming(p.Logger, "reconstruct_protolanguages", func() error {
		ReconstructProtolanguages(tree, pdm, p.EmptyPhoneme, threshold)
		return nil
	})
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
