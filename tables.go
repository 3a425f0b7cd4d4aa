package protolang

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
)

// VowelManners is the feature-subset key used by Phoneme.IsVowel.
const VowelManners = "vowel_manners"

// ModifierAction is one step of a modifier's effect on a Phoneme: an action
// name (a Phoneme method, e.g. "Advance", "SetPlace") plus an optional
// argument feature code (empty when the action takes no feature argument).
// Mirrors the (action, arg_feature_code) tuples in ipa_modifiers_dict.pickle.
type ModifierAction struct {
	Action       string
	ArgFeatureCode FeatureCode
}

// Modifier describes an IPA diacritic: the sequence of actions it applies
// to the phoneme it modifies.
type Modifier struct {
	Actions []ModifierAction
}

// RuleSet bundles the four place/manner substitution tables used by
// Phoneme's rule-driven mutators.
type RuleSet struct {
	Advance   map[FeatureCode]FeatureCode
	Lower     map[FeatureCode]FeatureCode
	Upper     map[FeatureCode]FeatureCode
	Dentalize map[FeatureCode]FeatureCode
}

// Tables is the full set of static linguistic tables loaded from disk at
// startup: the feature catalog plus everything the IPA parser and the
// rule-driven phoneme mutators need. It is built once by LoadTables and
// treated as read-only afterward, the same way the teacher's Lemmatizer
// holds its loaded maps for the lifetime of the process.
type Tables struct {
	Catalog *FeatureCatalog

	// CharReplace substitutes non-IPA input characters before tokenizing.
	CharReplace map[string]string
	// Letters maps a letter (including digraphs) to the feature codes that
	// define its base phoneme.
	Letters map[string][]FeatureCode
	// Modifiers maps a diacritic character to the mutator actions it runs.
	Modifiers map[string]Modifier
	// Ignore is the set of characters dropped during tokenization.
	Ignore map[string]struct{}

	Rules          RuleSet
	FeatureSubsets map[string][]FeatureCode

	// AsymmetricFeatureDistance backs FeatureCatalog.DistanceTo; kept here
	// too since it is loaded from its own file independent of the feature
	// catalog's name/code/category/index table.
	AsymmetricFeatureDistance map[[2]FeatureCode]float64
}

// featureRecord is the on-disk shape of a single catalog entry, matching
// the (name, code, category, index) tuples in features_info.pickle.
type featureRecord struct {
	Name     string
	Code     FeatureCode
	Category Category
	Index    int
}

// LoadTables reads the eight static gob-encoded tables from dataDir and
// assembles a Tables. Mirrors the orchestration shape of the teacher's
// New(dataDir) constructor: one load func per file, aggregated in order.
func LoadTables(dataDir string) (*Tables, error) {
	features, err := loadFeatureRecords(dataDir)
	if err != nil {
		return nil, fmt.Errorf("load features_info: %w", err)
	}
	distances, err := loadAsymmetricFeatureDistance(dataDir)
	if err != nil {
		return nil, fmt.Errorf("load asymmetric_feature_distance_map: %w", err)
	}

	t := &Tables{
		Catalog:                   NewFeatureCatalog(toFeatureMap(features), distances),
		AsymmetricFeatureDistance: distances,
	}

	if t.CharReplace, err = loadCharReplace(dataDir); err != nil {
		return nil, fmt.Errorf("load ipa_char_replace_dict: %w", err)
	}
	if t.Letters, err = loadLetters(dataDir); err != nil {
		return nil, fmt.Errorf("load ipa_letters_dicts: %w", err)
	}
	if t.Modifiers, err = loadModifiers(dataDir); err != nil {
		return nil, fmt.Errorf("load ipa_modifiers_dict: %w", err)
	}
	if t.Ignore, err = loadIgnore(dataDir); err != nil {
		return nil, fmt.Errorf("load ipa_ignore_symbols_set: %w", err)
	}
	if t.Rules, err = loadRules(dataDir); err != nil {
		return nil, fmt.Errorf("load ipa_rules: %w", err)
	}
	if t.FeatureSubsets, err = loadFeatureSubsets(dataDir); err != nil {
		return nil, fmt.Errorf("load feature_subsets: %w", err)
	}

	return t, nil
}

func toFeatureMap(records []featureRecord) map[FeatureCode]Feature {
	out := make(map[FeatureCode]Feature, len(records))
	for _, r := range records {
		out[r.Code] = NewFeature(r.Name, r.Code, r.Category, r.Index)
	}
	return out
}

func decodeGob(dataDir, name string, into any) error {
	path := filepath.Join(dataDir, name)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewDecoder(f).Decode(into)
}

func loadFeatureRecords(dataDir string) ([]featureRecord, error) {
	var records []featureRecord
	if err := decodeGob(dataDir, "features_info.gob", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func loadAsymmetricFeatureDistance(dataDir string) (map[[2]FeatureCode]float64, error) {
	// gob cannot encode [2]FeatureCode map keys directly across versions
	// reliably, so the table is stored as a flat slice of entries and
	// folded into the lookup map here.
	type entry struct {
		From, To FeatureCode
		Distance float64
	}
	var entries []entry
	if err := decodeGob(dataDir, "asymmetric_feature_distance_map.gob", &entries); err != nil {
		return nil, err
	}
	out := make(map[[2]FeatureCode]float64, len(entries))
	for _, e := range entries {
		out[[2]FeatureCode{e.From, e.To}] = e.Distance
	}
	return out, nil
}

func loadCharReplace(dataDir string) (map[string]string, error) {
	var m map[string]string
	if err := decodeGob(dataDir, "ipa_char_replace_dict.gob", &m); err != nil {
		return nil, err
	}
	return m, nil
}

func loadLetters(dataDir string) (map[string][]FeatureCode, error) {
	var m map[string][]FeatureCode
	if err := decodeGob(dataDir, "ipa_letters_dicts.gob", &m); err != nil {
		return nil, err
	}
	return m, nil
}

func loadModifiers(dataDir string) (map[string]Modifier, error) {
	var m map[string]Modifier
	if err := decodeGob(dataDir, "ipa_modifiers_dict.gob", &m); err != nil {
		return nil, err
	}
	return m, nil
}

func loadIgnore(dataDir string) (map[string]struct{}, error) {
	var symbols []string
	if err := decodeGob(dataDir, "ipa_ignore_symbols_set.gob", &symbols); err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		out[s] = struct{}{}
	}
	return out, nil
}

func loadRules(dataDir string) (RuleSet, error) {
	var raw struct {
		Advance   map[FeatureCode]FeatureCode
		Lower     map[FeatureCode]FeatureCode
		Upper     map[FeatureCode]FeatureCode
		Dentalize map[FeatureCode]FeatureCode
	}
	if err := decodeGob(dataDir, "ipa_rules.gob", &raw); err != nil {
		return RuleSet{}, err
	}
	return RuleSet{
		Advance:   raw.Advance,
		Lower:     raw.Lower,
		Upper:     raw.Upper,
		Dentalize: raw.Dentalize,
	}, nil
}

func loadFeatureSubsets(dataDir string) (map[string][]FeatureCode, error) {
	var m map[string][]FeatureCode
	if err := decodeGob(dataDir, "feature_subsets.gob", &m); err != nil {
		return nil, err
	}
	return m, nil
}
