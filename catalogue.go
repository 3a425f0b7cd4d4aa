package protolang

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strconv"
)

// CatalogueRow is one parsed row of the vocabulary catalogue: a language
// with a meaning-indexed set of IPA word forms, plus the bookkeeping
// columns a future consumer might group languages by.
type CatalogueRow struct {
	Code    string
	Code2   string
	Family  string
	Group   string
	Name    string
	Count   int
	Words   map[string]string // meaning -> IPA string
	// Meanings fixes the CSV header's column order for the word columns,
	// so a row's meanings are always walked in the same order regardless
	// of Go's randomized map iteration over Words. Required for
	// Language.entries to come out identically across runs on the same
	// catalogue, per the pipeline's determinism requirement.
	Meanings []string
}

// LoadCatalogue reads the vocabulary catalogue CSV at path, keeping only
// rows with a non-empty Code and a word count strictly greater than
// minWords. Mirrors construct_languages's pandas filtering
// (index.notnull(), df['#'] > min_words).
func LoadCatalogue(path string, minWords int) ([]CatalogueRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, &CatalogueShapeError{Reason: "empty catalogue file"}
	}

	colIdx := make(map[string]int, len(header))
	for i, h := range header {
		colIdx[h] = i
	}

	required := []string{"Code", "Language", "#"}
	for _, col := range required {
		if _, ok := colIdx[col]; !ok {
			return nil, &CatalogueShapeError{Reason: "missing required column " + col}
		}
	}

	skip := map[string]bool{"Code": true, "Code2": true, "Family": true, "Group": true, "Language": true, "#": true}
	wordColumns := make([]string, 0, len(header))
	for _, col := range header {
		if !skip[col] {
			wordColumns = append(wordColumns, col)
		}
	}

	var rows []CatalogueRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		code := record[colIdx["Code"]]
		if code == "" {
			continue
		}
		count, _ := strconv.Atoi(record[colIdx["#"]])
		if count <= minWords {
			continue
		}

		row := CatalogueRow{
			Code:  code,
			Name:  record[colIdx["Language"]],
			Count: count,
			Words: make(map[string]string),
		}
		if idx, ok := colIdx["Code2"]; ok {
			row.Code2 = record[idx]
		}
		if idx, ok := colIdx["Family"]; ok {
			row.Family = record[idx]
		}
		if idx, ok := colIdx["Group"]; ok {
			row.Group = record[idx]
		}

		for _, col := range wordColumns {
			idx := colIdx[col]
			if idx < len(record) && record[idx] != "" {
				row.Words[col] = record[idx]
				row.Meanings = append(row.Meanings, col)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// BuildLanguages turns catalogue rows into Languages, parsing every IPA
// word into a Lexeme. A row whose word fails to parse is logged and
// skipped rather than aborting the whole language. Mirrors the per-cell
// try/except in construct_languages.
func BuildLanguages(tables *Tables, rows []CatalogueRow, logger *slog.Logger) []*Language {
	languages := make([]*Language, 0, len(rows))
	for _, row := range rows {
		var lexemes []*Lexeme
		for _, meaning := range row.Meanings {
			word := row.Words[meaning]
			lexeme, err := IpaStringToLexeme(tables, word, meaning, row.Code)
			if err != nil {
				logger.Warn("skipping unparseable word", "language", row.Code, "meaning", meaning, "word", word, "error", err)
				continue
			}
			lexemes = append(lexemes, lexeme)
		}
		entries := make([]Entry, len(lexemes))
		for i, l := range lexemes {
			entries[i] = SingleEntry{Lexeme: l}
		}
		languages = append(languages, NewLanguage(row.Name, row.Code, entries))
	}
	return languages
}
