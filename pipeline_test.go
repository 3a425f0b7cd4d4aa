package protolang

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPipeline(tables *Tables) *Pipeline {
	return &Pipeline{
		Tables:       tables,
		Logger:       slog.New(slog.NewTextHandler(os.Stderr, nil)),
		EmptyPhoneme: NewPhoneme(tables, map[FeatureCode]Feature{}, ""),
	}
}

func TestCanonicalizePhonemesDedupsStructurallyEqualPhonemes(t *testing.T) {
	tables := testTables()
	p := testPipeline(tables)

	// Two structurally identical phonemes built from separate parses,
	// simulating distinct IPA parses of the same sound.
	a1 := testPhoneme(tables, "p-instance-1", "PL")
	a2 := testPhoneme(tables, "p-instance-2", "PL")

	lexA := NewLexeme([]*Phoneme{a1}, "water", "lang-a")
	lexB := NewLexeme([]*Phoneme{a2}, "water", "lang-b")
	langA := NewLanguage("a", "a", []Entry{SingleEntry{Lexeme: lexA}})
	langB := NewLanguage("b", "b", []Entry{SingleEntry{Lexeme: lexB}})

	canon := p.canonicalizePhonemes([]*Language{langA, langB})

	assert.Same(t, lexA.Phonemes[0], lexB.Phonemes[0], "structurally equal phonemes from distinct parses must canonicalize to one shared pointer")

	seen := make(map[*Phoneme]bool)
	for _, ph := range canon {
		seen[ph] = true
	}
	assert.True(t, seen[lexA.Phonemes[0]])
	assert.True(t, seen[p.EmptyPhoneme])
}

func TestCanonicalizePhonemesKeepsDistinctFeatureSetsSeparate(t *testing.T) {
	tables := testTables()
	p := testPipeline(tables)

	a := testPhoneme(tables, "p", "PL")
	b := testPhoneme(tables, "a", "CL")
	lex := NewLexeme([]*Phoneme{a, b}, "water", "lang-a")
	lang := NewLanguage("a", "a", []Entry{SingleEntry{Lexeme: lex}})

	canon := p.canonicalizePhonemes([]*Language{lang})
	assert.Len(t, canon, 3) // a, b, and the empty phoneme
}
