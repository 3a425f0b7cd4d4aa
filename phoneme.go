package protolang

import (
	"sort"
	"strings"
)

// Phoneme is a single speech sound modeled as a set of Features plus an
// optional IPA glyph. Derived data (per-category feature lists, primaries,
// and the human-readable name) is recomputed whenever the feature set
// changes; the basic mutators accept a redefine flag, and passing false
// defers the recompute so a sequence of mutations only pays for one.
//
// Phoneme keeps a back-pointer to the Tables it was built from, the same
// way the teacher's Desinence keeps a back-pointer to its owning Model: the
// rule-driven mutators (Advance, Lower, Upper, Dentalize) need the static
// rule tables to know what a feature substitutes to.
type Phoneme struct {
	tables   *Tables
	features map[FeatureCode]Feature
	glyph    string

	categories []Category
	byCategory map[Category][]Feature
	primary    map[Category]Feature
	name       string
}

// NewPhoneme builds a Phoneme from a feature set and optional glyph,
// computing derived attributes immediately.
func NewPhoneme(tables *Tables, features map[FeatureCode]Feature, glyph string) *Phoneme {
	p := &Phoneme{tables: tables, features: cloneFeatureSet(features), glyph: glyph}
	p.recompute()
	return p
}

func cloneFeatureSet(features map[FeatureCode]Feature) map[FeatureCode]Feature {
	out := make(map[FeatureCode]Feature, len(features))
	for k, v := range features {
		out[k] = v
	}
	return out
}

// Glyph returns the IPA representation used for logging and as a matrix key.
func (p *Phoneme) Glyph() string { return p.glyph }

// Name is the stable human name: category names joined by category order,
// each category's feature names space-joined.
func (p *Phoneme) Name() string { return p.name }

// Categories lists the categories actually present on this phoneme, sorted.
func (p *Phoneme) Categories() []Category { return p.categories }

// FeaturesInCategory returns the (index-sorted) features of this phoneme in
// the given category. May be empty.
func (p *Phoneme) FeaturesInCategory(cat Category) []Feature { return p.byCategory[cat] }

// Primary returns the lowest-index feature of this phoneme in the given
// category, or EmptyFeature if the category has no member.
func (p *Phoneme) Primary(cat Category) Feature {
	if f, ok := p.primary[cat]; ok {
		return f
	}
	return EmptyFeature
}

// Features returns a defensive copy of the underlying feature set.
func (p *Phoneme) Features() map[FeatureCode]Feature { return cloneFeatureSet(p.features) }

// Len returns the number of features this phoneme has.
func (p *Phoneme) Len() int { return len(p.features) }

// Signature is a canonical string for this phoneme's feature set, suitable
// as a dedup key: two phonemes built from the same features always
// produce the same signature regardless of construction order. Phoneme
// equality elsewhere in this module is by feature set (see Equal), not by
// Go pointer identity, so every distance matrix keyed by *Phoneme must be
// built over canonicalized pointers (see Pipeline.canonicalizePhonemes) for that
// equality to actually hold at lookup time.
func (p *Phoneme) Signature() string {
	codes := make([]FeatureCode, 0, len(p.features))
	for code := range p.features {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	var b strings.Builder
	for i, c := range codes {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(string(c))
	}
	return b.String()
}

// recompute rebuilds categories, byCategory, primary, and name from the
// current feature set.
func (p *Phoneme) recompute() {
	byCat := make(map[Category][]Feature)
	for _, f := range p.features {
		byCat[f.Category] = append(byCat[f.Category], f)
	}
	var cats []Category
	for cat, fs := range byCat {
		sort.Slice(fs, func(i, j int) bool { return fs[i].Less(fs[j]) })
		byCat[cat] = fs
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	primary := make(map[Category]Feature, len(categoryOrder))
	for _, cat := range categoryOrder {
		if fs := byCat[cat]; len(fs) > 0 {
			primary[cat] = fs[0]
		} else {
			primary[cat] = EmptyFeature
		}
	}

	var nameParts []string
	for _, cat := range categoryOrder {
		fs := byCat[cat]
		if len(fs) == 0 {
			continue
		}
		names := make([]string, len(fs))
		for i, f := range fs {
			names[i] = f.Name
		}
		nameParts = append(nameParts, strings.Join(names, " "))
	}

	p.categories = cats
	p.byCategory = byCat
	p.primary = primary
	p.name = strings.Join(nameParts, " ")
}

// Equal compares phonemes by feature set, per the spec's equality rule.
func (p *Phoneme) Equal(other *Phoneme) bool {
	if other == nil || len(p.features) != len(other.features) {
		return false
	}
	for code := range p.features {
		if _, ok := other.features[code]; !ok {
			return false
		}
	}
	return true
}

// Contains reports whether feature f is a member of this phoneme.
func (p *Phoneme) Contains(f Feature) bool {
	_, ok := p.features[f.Code]
	return ok
}

// ContainsAll reports whether every feature in fs is a member of this
// phoneme.
func (p *Phoneme) ContainsAll(fs []Feature) bool {
	for _, f := range fs {
		if !p.Contains(f) {
			return false
		}
	}
	return true
}

// Difference returns the features in p but not in other (p − other).
func (p *Phoneme) Difference(other *Phoneme) []Feature {
	var out []Feature
	for code, f := range p.features {
		if _, ok := other.features[code]; !ok {
			out = append(out, f)
		}
	}
	return out
}

// Intersect returns the features common to both phonemes (p ∩ other).
func (p *Phoneme) Intersect(other *Phoneme) []Feature {
	var out []Feature
	for code, f := range p.features {
		if _, ok := other.features[code]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Union returns the features present in either phoneme (p ∪ other).
func (p *Phoneme) Union(other *Phoneme) []Feature {
	seen := make(map[FeatureCode]bool, len(p.features)+len(other.features))
	var out []Feature
	for code, f := range p.features {
		seen[code] = true
		out = append(out, f)
	}
	for code, f := range other.features {
		if !seen[code] {
			out = append(out, f)
		}
	}
	return out
}

// SymmetricDifference returns features in exactly one of p, other (p △ other).
func (p *Phoneme) SymmetricDifference(other *Phoneme) []Feature {
	out := p.Difference(other)
	out = append(out, other.Difference(p)...)
	return out
}

// Add adds a feature to this phoneme's set. redefine controls whether
// derived attributes are recomputed immediately (bulk mutators pass false
// and recompute once at the end).
func (p *Phoneme) Add(f Feature, redefine bool) {
	p.features[f.Code] = f
	if redefine {
		p.recompute()
	}
}

// Remove removes a feature from this phoneme's set.
func (p *Phoneme) Remove(f Feature, redefine bool) {
	delete(p.features, f.Code)
	if redefine {
		p.recompute()
	}
}

// Replace swaps f1 for f2 if f1 is present.
func (p *Phoneme) Replace(f1, f2 Feature, redefine bool) {
	if p.Contains(f1) {
		p.Remove(f1, false)
		p.Add(f2, false)
	}
	if redefine {
		p.recompute()
	}
}

// SetPlace removes every existing place feature and adds f.
func (p *Phoneme) SetPlace(f Feature, redefine bool) {
	for _, place := range p.FeaturesInCategory(CategoryPlace) {
		p.Remove(place, false)
	}
	p.Add(f, false)
	if redefine {
		p.recompute()
	}
}

// IsVowel reports whether this phoneme's features intersect the tables'
// vowel-manner feature subset.
func (p *Phoneme) IsVowel() bool {
	if p.tables == nil {
		return false
	}
	for _, code := range p.tables.FeatureSubsets[VowelManners] {
		if _, ok := p.features[code]; ok {
			return true
		}
	}
	return false
}

// Advance applies the "advance" articulation rule to every place feature,
// with three vowel-specific special cases ahead of the generic rule table:
//
//   - PA (palatal) always gains AL (alveolar);
//   - NE gains PZ when the phoneme is a vowel;
//   - VE gains VZ and is replaced by NE when the phoneme is a vowel.
func (p *Phoneme) Advance() {
	for _, place := range p.FeaturesInCategory(CategoryPlace) {
		switch {
		case place.Code == "PA":
			p.Add(p.tables.Catalog.MustLookup("AL"), false)
		case place.Code == "NE" && p.IsVowel():
			p.Add(p.tables.Catalog.MustLookup("PZ"), false)
		case place.Code == "VE" && p.IsVowel():
			p.Add(p.tables.Catalog.MustLookup("VZ"), false)
			p.Replace(place, p.tables.Catalog.MustLookup("NE"), false)
		default:
			if to, ok := p.tables.Rules.Advance[place.Code]; ok {
				p.Replace(place, p.tables.Catalog.MustLookup(to), false)
			}
		}
	}
	p.recompute()
}

// Lower applies the "lower" manner rule to every manner feature.
func (p *Phoneme) Lower() { p.applyMannerRule(p.tables.Rules.Lower) }

// Upper applies the "upper" manner rule to every manner feature.
func (p *Phoneme) Upper() { p.applyMannerRule(p.tables.Rules.Upper) }

func (p *Phoneme) applyMannerRule(rule map[FeatureCode]FeatureCode) {
	for _, manner := range p.FeaturesInCategory(CategoryManner) {
		if to, ok := rule[manner.Code]; ok {
			p.Replace(manner, p.tables.Catalog.MustLookup(to), false)
		}
	}
	p.recompute()
}

// Dentalize applies the "dentalize" rule to every place feature (the
// Python original iterates `self.places` despite calling the rule table
// "dentalize", which is a place-of-articulation shift).
func (p *Phoneme) Dentalize() {
	for _, place := range p.FeaturesInCategory(CategoryPlace) {
		if to, ok := p.tables.Rules.Dentalize[place.Code]; ok {
			p.Replace(place, p.tables.Catalog.MustLookup(to), false)
		}
	}
	p.recompute()
}
