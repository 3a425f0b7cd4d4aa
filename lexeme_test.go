package protolang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhoneme(tables *Tables, glyph string, codes ...FeatureCode) *Phoneme {
	features := make(map[FeatureCode]Feature, len(codes))
	for _, c := range codes {
		features[c] = tables.Catalog.MustLookup(c)
	}
	return NewPhoneme(tables, features, glyph)
}

func TestLexemeRepresentationAndAppend(t *testing.T) {
	tables := testTables()
	p1 := testPhoneme(tables, "p", "PL")
	p2 := testPhoneme(tables, "a", "CL")
	lex := NewLexeme([]*Phoneme{p1}, "water", "xx")
	assert.Equal(t, "p", lex.Representation())

	lex.Append(p2)
	assert.Equal(t, "pa", lex.Representation())
	assert.Equal(t, 2, lex.Len())
}

func TestSynonymsRepresentationIsPipeJoined(t *testing.T) {
	tables := testTables()
	l1 := NewLexeme([]*Phoneme{testPhoneme(tables, "p")}, "water", "xx")
	l2 := NewLexeme([]*Phoneme{testPhoneme(tables, "a")}, "water", "xx")
	syn := NewSynonyms([]*Lexeme{l1, l2})
	assert.Equal(t, "p|a", syn.Representation())
	assert.Equal(t, "water", syn.Meaning)
}

func TestSynonymsConcat(t *testing.T) {
	tables := testTables()
	l1 := NewLexeme([]*Phoneme{testPhoneme(tables, "p")}, "water", "xx")
	l2 := NewLexeme([]*Phoneme{testPhoneme(tables, "a")}, "water", "xx")
	l3 := NewLexeme([]*Phoneme{testPhoneme(tables, "t")}, "water", "xx")

	syn := NewSynonyms([]*Lexeme{l1})
	merged := syn.Concat(NewSynonyms([]*Lexeme{l2, l3}))
	assert.Equal(t, 3, merged.Len())
	assert.Equal(t, "p|a|t", merged.Representation())
}

func TestNewEntryPicksVariantByCount(t *testing.T) {
	tables := testTables()
	single := NewLexeme([]*Phoneme{testPhoneme(tables, "p")}, "water", "xx")

	entry := NewEntry([]*Lexeme{single})
	_, isSingle := entry.(SingleEntry)
	assert.True(t, isSingle)

	l2 := NewLexeme([]*Phoneme{testPhoneme(tables, "a")}, "water", "xx")
	multi := NewEntry([]*Lexeme{single, l2})
	_, isMultiple := multi.(MultipleEntry)
	require.True(t, isMultiple)
	assert.Equal(t, "p|a", multi.Representation())
}

func TestEntrySetLanguageCodePropagates(t *testing.T) {
	tables := testTables()
	l1 := NewLexeme([]*Phoneme{testPhoneme(tables, "p")}, "water", "xx")
	l2 := NewLexeme([]*Phoneme{testPhoneme(tables, "a")}, "water", "xx")
	entry := NewEntry([]*Lexeme{l1, l2})
	entry.SetLanguageCode("yy")
	for _, l := range entry.Lexemes() {
		assert.Equal(t, "yy", l.LanguageCode)
	}
}
