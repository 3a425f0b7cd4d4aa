package protolang

import "fmt"

// IpaUnrecognizedError reports a character that is neither a known letter,
// a known modifier, nor an ignored symbol during IPA tokenization.
type IpaUnrecognizedError struct {
	Char    string
	Context []string
}

func (e *IpaUnrecognizedError) Error() string {
	return fmt.Sprintf("ipa: unrecognized character %q in context %v", e.Char, e.Context)
}

// IpaLookupMissingError reports a gathered symbol whose letter has no entry
// in the feature-code table, surfaced instead of a raw map-lookup panic.
type IpaLookupMissingError struct {
	Letter string
}

func (e *IpaLookupMissingError) Error() string {
	return fmt.Sprintf("ipa: no feature codes registered for letter %q", e.Letter)
}

// CatalogueShapeError reports a catalogue CSV missing a required column or
// otherwise failing the minimal shape the ingestion stage requires.
type CatalogueShapeError struct {
	Reason string
}

func (e *CatalogueShapeError) Error() string {
	return fmt.Sprintf("catalogue: %s", e.Reason)
}

// AssignmentInfeasibleError reports a Hungarian-algorithm solve over a cost
// matrix with no feasible assignment (e.g. a degenerate zero-size matrix).
type AssignmentInfeasibleError struct {
	Rows, Cols int
}

func (e *AssignmentInfeasibleError) Error() string {
	return fmt.Sprintf("assignment: no feasible solution for a %dx%d cost matrix", e.Rows, e.Cols)
}

// EmptyIntersectionError reports two languages sharing no meanings, making
// a language-distance computation between them undefined.
type EmptyIntersectionError struct {
	LanguageA, LanguageB string
}

func (e *EmptyIntersectionError) Error() string {
	return fmt.Sprintf("language distance: %q and %q share no meanings", e.LanguageA, e.LanguageB)
}
