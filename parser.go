package protolang

import (
	"fmt"
)

// ipaSymbol is a letter paired with the diacritic modifiers gathered onto
// it, the intermediate representation between tokenizing and building a
// Phoneme. Mirrors the {'letter': ..., 'modifiers': set()} dicts built by
// group_with_modifiers / group_single_phoneme_symbols.
type ipaSymbol struct {
	letter    string
	modifiers []string
}

// groupWithModifiers runs stage 2: walk the replaced characters, attaching
// each modifier character to the symbol it trails, starting a new symbol
// for each recognized letter, and skipping ignored characters.
func groupWithModifiers(tables *Tables, chars []string) ([]ipaSymbol, error) {
	var symbols []ipaSymbol
	for i, ch := range chars {
		switch {
		case len(symbols) > 0 && isModifier(tables, ch):
			last := &symbols[len(symbols)-1]
			last.modifiers = append(last.modifiers, ch)
		case isLetter(tables, ch):
			symbols = append(symbols, ipaSymbol{letter: ch})
		case isIgnored(tables, ch):
			continue
		default:
			return nil, &IpaUnrecognizedError{Char: ch, Context: chars[:i+1]}
		}
	}
	return symbols, nil
}

func isModifier(tables *Tables, ch string) bool {
	_, ok := tables.Modifiers[ch]
	return ok
}

func isLetter(tables *Tables, ch string) bool {
	_, ok := tables.Letters[ch]
	return ok
}

func isIgnored(tables *Tables, ch string) bool {
	_, ok := tables.Ignore[ch]
	return ok
}

// groupSinglePhonemeSymbols runs stage 3: merge adjacent symbols whose
// letters concatenate into a known digraph letter (e.g. "t" + "s" → "ts"),
// combining their modifier sets. Mirrors group_single_phoneme_symbols.
func groupSinglePhonemeSymbols(tables *Tables, symbols []ipaSymbol) []ipaSymbol {
	var out []ipaSymbol
	for i := 0; i < len(symbols); i++ {
		if i < len(symbols)-1 {
			digraph := symbols[i].letter + symbols[i+1].letter
			if isLetter(tables, digraph) {
				merged := ipaSymbol{
					letter:    digraph,
					modifiers: append(append([]string{}, symbols[i].modifiers...), symbols[i+1].modifiers...),
				}
				out = append(out, merged)
				i++
				continue
			}
		}
		out = append(out, symbols[i])
	}
	return out
}

// symbolToPhoneme runs stage 4: look up the symbol's base feature codes,
// build the Phoneme, then apply every modifier's actions in order. Mirrors
// symbol_to_phoneme.
func symbolToPhoneme(tables *Tables, symbol ipaSymbol) (*Phoneme, error) {
	codes, ok := tables.Letters[symbol.letter]
	if !ok {
		return nil, &IpaLookupMissingError{Letter: symbol.letter}
	}

	features := make(map[FeatureCode]Feature, len(codes))
	for _, code := range codes {
		features[code] = tables.Catalog.MustLookup(code)
	}

	glyph := symbol.letter
	for _, m := range symbol.modifiers {
		glyph += m
	}

	phoneme := NewPhoneme(tables, features, glyph)

	for _, m := range symbol.modifiers {
		modifier, ok := tables.Modifiers[m]
		if !ok {
			continue
		}
		for _, action := range modifier.Actions {
			if err := applyModifierAction(tables, phoneme, action); err != nil {
				return nil, err
			}
		}
	}
	return phoneme, nil
}

// applyModifierAction dispatches a single modifier action onto a phoneme.
// The action names are the Phoneme mutator methods; an argument feature
// code is resolved through the catalog when the action takes one.
func applyModifierAction(tables *Tables, p *Phoneme, action ModifierAction) error {
	switch action.Action {
	case "Add":
		p.Add(tables.Catalog.MustLookup(action.ArgFeatureCode), true)
	case "Remove":
		p.Remove(tables.Catalog.MustLookup(action.ArgFeatureCode), true)
	case "SetPlace":
		p.SetPlace(tables.Catalog.MustLookup(action.ArgFeatureCode), true)
	case "Advance":
		p.Advance()
	case "Lower":
		p.Lower()
	case "Upper":
		p.Upper()
	case "Dentalize":
		p.Dentalize()
	default:
		return fmt.Errorf("ipa: unknown modifier action %q", action.Action)
	}
	return nil
}

// IpaStringToLexeme runs the full four-stage IPA parser over ipaString and
// wraps the resulting phonemes in a Lexeme tagged with meaning and
// languageCode. Mirrors ipa_string_to_lexeme.
func IpaStringToLexeme(tables *Tables, ipaString, meaning, languageCode string) (*Lexeme, error) {
	chars := ReplaceNonIPA(tables, ipaString)
	symbols, err := groupWithModifiers(tables, chars)
	if err != nil {
		return nil, err
	}
	gathered := groupSinglePhonemeSymbols(tables, symbols)

	phonemes := make([]*Phoneme, 0, len(gathered))
	for _, symbol := range gathered {
		phoneme, err := symbolToPhoneme(tables, symbol)
		if err != nil {
			return nil, err
		}
		phonemes = append(phonemes, phoneme)
	}
	return NewLexeme(phonemes, meaning, languageCode), nil
}
