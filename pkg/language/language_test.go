package language

import "testing"

func TestToAuthority(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ENG", "ENG"},
		{"eng", "ENG"},
		{"en", "ENG"},
		{"fr", "FRA"},
		{"fre", "FRA"}, // ISO 639-2/B alternate
		{"ger", "DEU"},
		{" deu ", "DEU"},
		{"xyz", "XYZ"}, // unrecognized 3-letter passes through
		{"x", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ToAuthority(tt.in); got != tt.want {
			t.Errorf("ToAuthority(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToISO2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ENG", "en"},
		{"fra", "fr"},
		{"fre", "fr"},
		{"pt", "pt"},
		{"zz", "zz"}, // unknown 2-letter passes through
		{"xyz", ""},
	}

	for _, tt := range tests {
		if got := ToISO2(tt.in); got != tt.want {
			t.Errorf("ToISO2(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName("ENG"); got != "English" {
		t.Errorf("DisplayName(ENG) = %q", got)
	}
	if got := DisplayName("mlt"); got != "Maltese" {
		t.Errorf("DisplayName(mlt) = %q", got)
	}
	if got := DisplayName(""); got != "Unknown" {
		t.Errorf("DisplayName of empty = %q", got)
	}
	if got := DisplayName("xyz"); got != "XYZ" {
		t.Errorf("DisplayName(xyz) = %q", got)
	}
}

func TestTagMatches(t *testing.T) {
	tests := []struct {
		tag       string
		requested string
		want      bool
	}{
		{"", "ENG", true}, // untagged matches anything
		{"en", "ENG", true},
		{"eng", "ENG", true},
		{"EN", "eng", true},
		{"en-GB", "ENG", true},
		{"fre", "FRA", true},
		{"fr", "ENG", false},
		{"fra", "ENG", false},
		{"de", "FRA", false},
	}

	for _, tt := range tests {
		if got := TagMatches(tt.tag, tt.requested); got != tt.want {
			t.Errorf("TagMatches(%q, %q) = %v, want %v", tt.tag, tt.requested, got, tt.want)
		}
	}
}
