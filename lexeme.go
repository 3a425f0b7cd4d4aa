package protolang

import "strings"

// Lexeme represents a single word as an ordered sequence of Phonemes,
// tagged with its meaning and the language it belongs to. Mirrors the
// Python Lexeme class: phonemes are to a Lexeme what characters are to a
// string.
type Lexeme struct {
	Phonemes     []*Phoneme
	Meaning      string
	LanguageCode string

	name           string
	representation string
}

// NewLexeme builds a Lexeme and computes its derived name/representation.
func NewLexeme(phonemes []*Phoneme, meaning, languageCode string) *Lexeme {
	l := &Lexeme{Phonemes: phonemes, Meaning: meaning, LanguageCode: languageCode}
	l.redefine()
	return l
}

func (l *Lexeme) redefine() {
	names := make([]string, len(l.Phonemes))
	var repr strings.Builder
	for i, p := range l.Phonemes {
		names[i] = p.Name()
		repr.WriteString(p.Glyph())
	}
	l.name = strings.Join(names, ", ")
	l.representation = repr.String()
}

// Name is the comma-separated phonetic description of this lexeme.
func (l *Lexeme) Name() string { return l.name }

// Representation is the IPA transcription of this lexeme.
func (l *Lexeme) Representation() string { return l.representation }

// Len returns the number of phonemes in this lexeme.
func (l *Lexeme) Len() int { return len(l.Phonemes) }

// SetLanguageCode reassigns the language code, used by NewLanguage to stamp
// its code onto every lexeme it is built with.
func (l *Lexeme) SetLanguageCode(code string) { l.LanguageCode = code }

// Append adds a phoneme to the end of this lexeme and recomputes derived
// attributes.
func (l *Lexeme) Append(p *Phoneme) {
	l.Phonemes = append(l.Phonemes, p)
	l.redefine()
}

// Synonyms is an ordered bag of Lexemes that all share a single meaning —
// the case where a node carries more than one surface form for the same
// concept, as when reconstruction keeps both children's forms. Languages
// built from the catalogue hold one lexeme per meaning.
type Synonyms struct {
	Meaning string
	Lexemes []*Lexeme

	representation string
}

// NewSynonyms builds a Synonyms from a non-empty slice of Lexemes sharing
// the same meaning; the meaning is taken from the first lexeme.
func NewSynonyms(lexemes []*Lexeme) *Synonyms {
	s := &Synonyms{Meaning: lexemes[0].Meaning, Lexemes: lexemes}
	s.redefine()
	return s
}

func (s *Synonyms) redefine() {
	reprs := make([]string, len(s.Lexemes))
	for i, l := range s.Lexemes {
		reprs[i] = l.Representation()
	}
	s.representation = strings.Join(reprs, "|")
}

// Representation is the pipe-joined IPA transcription of every synonym.
func (s *Synonyms) Representation() string { return s.representation }

// Len returns the number of lexemes in this bag.
func (s *Synonyms) Len() int { return len(s.Lexemes) }

// Append adds a lexeme to this bag and recomputes the representation.
func (s *Synonyms) Append(l *Lexeme) {
	s.Lexemes = append(s.Lexemes, l)
	s.redefine()
}

// Concat returns a new Synonyms holding the lexemes of both s and other, in
// that order. Mirrors Synonyms.__add__.
func (s *Synonyms) Concat(other *Synonyms) *Synonyms {
	merged := make([]*Lexeme, 0, len(s.Lexemes)+len(other.Lexemes))
	merged = append(merged, s.Lexemes...)
	merged = append(merged, other.Lexemes...)
	return NewSynonyms(merged)
}

// SetLanguageCode reassigns the language code on every lexeme in the bag.
func (s *Synonyms) SetLanguageCode(code string) {
	for _, l := range s.Lexemes {
		l.SetLanguageCode(code)
	}
}

// Entry is a single dictionary slot for one meaning in one Language: either
// a single Lexeme, or a Synonyms bag when the language has more than one
// form for that meaning. A dedicated tagged-variant type replaces the
// Python original's implicit "Lexeme or Synonyms, check len()" duck typing.
type Entry interface {
	// Representation returns the entry's IPA transcription (pipe-joined for
	// Synonyms).
	Representation() string
	// Meaning returns the shared meaning of every lexeme in the entry.
	Meaning() string
	// Lexemes flattens the entry to its constituent lexemes: one element
	// for Single, all synonyms for Multiple.
	Lexemes() []*Lexeme
	// SetLanguageCode reassigns the language code on every lexeme in the entry.
	SetLanguageCode(code string)
}

// SingleEntry wraps exactly one Lexeme.
type SingleEntry struct {
	Lexeme *Lexeme
}

func (e SingleEntry) Representation() string        { return e.Lexeme.Representation() }
func (e SingleEntry) Meaning() string                { return e.Lexeme.Meaning }
func (e SingleEntry) Lexemes() []*Lexeme             { return []*Lexeme{e.Lexeme} }
func (e SingleEntry) SetLanguageCode(code string)    { e.Lexeme.SetLanguageCode(code) }

// MultipleEntry wraps a Synonyms bag.
type MultipleEntry struct {
	Synonyms *Synonyms
}

func (e MultipleEntry) Representation() string     { return e.Synonyms.Representation() }
func (e MultipleEntry) Meaning() string             { return e.Synonyms.Meaning }
func (e MultipleEntry) Lexemes() []*Lexeme          { return e.Synonyms.Lexemes }
func (e MultipleEntry) SetLanguageCode(code string) { e.Synonyms.SetLanguageCode(code) }

// NewEntry wraps lexemes as a SingleEntry when there is exactly one, or a
// MultipleEntry otherwise.
func NewEntry(lexemes []*Lexeme) Entry {
	if len(lexemes) == 1 {
		return SingleEntry{Lexeme: lexemes[0]}
	}
	return MultipleEntry{Synonyms: NewSynonyms(lexemes)}
}
