package protolang

// ReplaceNonIPA runs stage 1 of the IPA parser: every character in s is
// substituted via tables.CharReplace when a substitution exists, otherwise
// the character passes through unchanged. Mirrors replace_non_ipa.
func ReplaceNonIPA(tables *Tables, s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		ch := string(r)
		if rep, ok := tables.CharReplace[ch]; ok {
			out[i] = rep
		} else {
			out[i] = ch
		}
	}
	return out
}
