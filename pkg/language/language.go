// Package language maps between the language code forms that appear in
// Cellar metadata: the 3-letter authority codes used in resource URIs
// (ENG, FRA, ...) and the 2-letter tags used on literals (en, fr, ...).
package language

import "strings"

type entry struct {
	code2   string // ISO 639-1 (2-letter, used in xml:lang tags)
	code3   string // ISO 639-2/T primary (3-letter, used by the language authority)
	alt3    string // ISO 639-2/B alternate (e.g. "fre" vs "fra")
	display string // Human-readable name
}

// The 24 official EU languages.
var languages = []entry{
	{"bg", "bul", "", "Bulgarian"},
	{"cs", "ces", "cze", "Czech"},
	{"da", "dan", "", "Danish"},
	{"de", "deu", "ger", "German"},
	{"el", "ell", "gre", "Greek"},
	{"en", "eng", "", "English"},
	{"es", "spa", "", "Spanish"},
	{"et", "est", "", "Estonian"},
	{"fi", "fin", "", "Finnish"},
	{"fr", "fra", "fre", "French"},
	{"ga", "gle", "", "Irish"},
	{"hr", "hrv", "", "Croatian"},
	{"hu", "hun", "", "Hungarian"},
	{"it", "ita", "", "Italian"},
	{"lt", "lit", "", "Lithuanian"},
	{"lv", "lav", "", "Latvian"},
	{"mt", "mlt", "", "Maltese"},
	{"nl", "nld", "dut", "Dutch"},
	{"pl", "pol", "", "Polish"},
	{"pt", "por", "", "Portuguese"},
	{"ro", "ron", "rum", "Romanian"},
	{"sk", "slk", "slo", "Slovak"},
	{"sl", "slv", "", "Slovenian"},
	{"sv", "swe", "", "Swedish"},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	return nil
}

// ToAuthority converts a recognized language code to the uppercase 3-letter
// form used in Cellar language authority URIs. Unrecognized 3-letter input
// passes through uppercased; anything else yields the empty string.
func ToAuthority(code string) string {
	if e := lookup(code); e != nil {
		return strings.ToUpper(e.code3)
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) == 3 {
		return strings.ToUpper(code)
	}
	return ""
}

// ToISO2 converts a recognized language code to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input, unless the input is already
// a 2-letter code, which passes through.
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	code = strings.ToLower(strings.TrimSpace(code))
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized
// code, or the uppercased code itself when unrecognized.
func DisplayName(code string) string {
	if e := lookup(code); e != nil {
		return e.display
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "Unknown"
	}
	return code
}

// TagMatches reports whether a literal's language tag is compatible with
// the requested language code. An untagged literal matches any request;
// a tagged literal matches on either its 2- or 3-letter form, ignoring
// case and any regional subtag ("en-GB" matches "ENG").
func TagMatches(tag, requested string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return true
	}
	if idx := strings.Index(tag, "-"); idx > 0 {
		tag = tag[:idx]
	}

	iso3 := strings.ToLower(ToAuthority(requested))
	iso2 := ToISO2(requested)

	if tag == iso3 && iso3 != "" {
		return true
	}
	if tag == iso2 && iso2 != "" {
		return true
	}
	// A tag in the alternate 3-letter form (e.g. "fre") still matches.
	if e := lookup(tag); e != nil {
		return iso3 == e.code3 || iso2 == e.code2
	}
	return false
}
