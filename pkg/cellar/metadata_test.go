package cellar

import (
	"testing"

	"github.com/coolbeans/cellarize/pkg/rdf"
)

const testUUID = "0a1b2c3d-4e5f-6789-abcd-ef0123456789"

// noticeGraph builds a representative Cellar notice graph: a cellar root
// linked via owl:sameAs to a work carrying the CDM predicates, plus one
// English and one French expression.
func noticeGraph(t *testing.T) *rdf.Graph {
	t.Helper()
	g := rdf.NewGraph()
	root := RootURI(testUUID)
	work := "http://publications.europa.eu/resource/celex/32022R0922"

	add := func(s, p string, o rdf.Term) {
		t.Helper()
		if err := g.Add(s, p, o); err != nil {
			t.Fatalf("Add(%s, %s, %v) failed: %v", s, p, o, err)
		}
	}

	add(root, OWLSameAs, rdf.IRI(work))
	add(work, CDMDateCreationLegacy, rdf.Literal("2022-06-15T00:00:00"))
	add(work, CDMResourceLegalELI, rdf.Literal("http://data.europa.eu/eli/reg/2022/922/oj"))
	add(work, CDMResourceLegalIDCelex, rdf.Literal("32022R0922"))
	add(work, CDMWorkHasResourceType, rdf.IRI("http://publications.europa.eu/resource/authority/resource-type/REG"))

	exprEN := "http://publications.europa.eu/resource/cellar/" + testUUID + ".0006"
	add(exprEN, CDMExpressionBelongsToWork, rdf.IRI(work))
	add(exprEN, CDMExpressionUsesLanguage, rdf.IRI(LanguageURI("ENG")))
	add(exprEN, CDMExpressionTitle, rdf.LangLiteral("Commission Implementing Regulation (EU) 2022/922", "en"))
	add(exprEN, CDMExpressionSubtitle, rdf.LangLiteral("Council Regulation implementing rules", "en"))

	exprFR := "http://publications.europa.eu/resource/cellar/" + testUUID + ".0007"
	add(exprFR, CDMExpressionBelongsToWork, rdf.IRI(work))
	add(exprFR, CDMExpressionUsesLanguage, rdf.IRI(LanguageURI("FRA")))
	add(exprFR, CDMExpressionTitle, rdf.LangLiteral("Règlement d'exécution (UE) 2022/922", "fr"))

	return g
}

func TestExtract_FullNotice(t *testing.T) {
	attrs := Extract(noticeGraph(t), "ENG", testUUID)

	checks := []struct {
		name  string
		field Field
		want  string
	}{
		{"year", attrs.Year, "2022"},
		{"month", attrs.Month, "06"},
		{"day", attrs.Day, "15"},
		{"date", attrs.Date, "2022-06-15"},
		{"eli", attrs.ELI, "http://data.europa.eu/eli/reg/2022/922/oj"},
		{"celex_identifier", attrs.CelexIdentifier, "32022R0922"},
		{"type", attrs.Type, "REG"},
		{"title", attrs.Title, "Commission Implementing Regulation (EU) 2022/922"},
		{"subtitle", attrs.Subtitle, "Council Regulation implementing rules"},
	}
	for _, c := range checks {
		if !c.field.OK {
			t.Errorf("%s should be present", c.name)
			continue
		}
		if c.field.Value != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.field.Value, c.want)
		}
	}

	if attrs.DefaultIdentifier != testUUID {
		t.Errorf("default_identifier = %q, want %q", attrs.DefaultIdentifier, testUUID)
	}
}

func TestExtract_LanguageSelection(t *testing.T) {
	g := noticeGraph(t)

	fr := Extract(g, "FRA", testUUID)
	if !fr.Title.OK || fr.Title.Value != "Règlement d'exécution (UE) 2022/922" {
		t.Errorf("FRA title = %+v", fr.Title)
	}
	// The French expression has no subtitle; no fallback to English.
	if fr.Subtitle.OK {
		t.Errorf("FRA subtitle should be missing, got %q", fr.Subtitle.Value)
	}

	// 2-letter request form selects the same expression.
	en := Extract(g, "en", testUUID)
	if !en.Title.OK || en.Title.Value != "Commission Implementing Regulation (EU) 2022/922" {
		t.Errorf("en title = %+v", en.Title)
	}
}

func TestExtract_NoLiteralInRequestedLanguage(t *testing.T) {
	g := rdf.NewGraph()
	root := RootURI(testUUID)
	work := "http://example.org/work"
	_ = g.Add(root, OWLSameAs, rdf.IRI(work))
	_ = g.Add(work, CDMResourceLegalIDCelex, rdf.Literal("32022R0922"))

	expr := "http://example.org/exp.fr"
	_ = g.Add(expr, CDMExpressionBelongsToWork, rdf.IRI(work))
	_ = g.Add(expr, CDMExpressionUsesLanguage, rdf.IRI(LanguageURI("FRA")))
	_ = g.Add(expr, CDMExpressionTitle, rdf.LangLiteral("Règlement", "fr"))

	attrs := Extract(g, "ENG", testUUID)
	if attrs.Title.OK {
		t.Errorf("Requesting ENG with only a FRA expression must leave title missing, got %q", attrs.Title.Value)
	}
	if attrs.Subtitle.OK {
		t.Error("Subtitle should be missing")
	}
	// Work-level attributes are unaffected by language.
	if !attrs.CelexIdentifier.OK {
		t.Error("celex_identifier should still be extracted")
	}
}

func TestExtract_MismatchedLiteralTagWithinExpression(t *testing.T) {
	// An expression claiming ENG whose title literal is tagged fr must not
	// leak the French value into an ENG request.
	g := rdf.NewGraph()
	work := RootURI(testUUID)
	expr := "http://example.org/exp"
	_ = g.Add(expr, CDMExpressionBelongsToWork, rdf.IRI(work))
	_ = g.Add(expr, CDMExpressionUsesLanguage, rdf.IRI(LanguageURI("ENG")))
	_ = g.Add(expr, CDMExpressionTitle, rdf.LangLiteral("Règlement", "fr"))

	attrs := Extract(g, "ENG", testUUID)
	if attrs.Title.OK {
		t.Errorf("fr-tagged literal should not satisfy an ENG request, got %q", attrs.Title.Value)
	}
}

func TestExtract_EmptyGraph(t *testing.T) {
	attrs := Extract(rdf.NewGraph(), "ENG", testUUID)

	for _, name := range []string{"year", "month", "day", "date", "eli", "celex_identifier", "title", "subtitle", "type"} {
		if _, ok := attrs.Placeholder(name); ok {
			t.Errorf("%s should be missing on an empty graph", name)
		}
	}

	// default_identifier is never missing.
	value, ok := attrs.Placeholder("default_identifier")
	if !ok || value != testUUID {
		t.Errorf("default_identifier = %q, ok=%v", value, ok)
	}
}

func TestExtract_WorkWithoutSameAs(t *testing.T) {
	// Some notices attach the CDM predicates directly to the cellar root.
	g := rdf.NewGraph()
	root := RootURI(testUUID)
	_ = g.Add(root, CDMResourceLegalIDCelex, rdf.Literal("32022R0922"))

	attrs := Extract(g, "ENG", testUUID)
	if !attrs.CelexIdentifier.OK || attrs.CelexIdentifier.Value != "32022R0922" {
		t.Errorf("celex_identifier = %+v", attrs.CelexIdentifier)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		wantOK  bool
		year    string
		month   string
		day     string
		date    string
	}{
		{"datetime literal", "2022-06-15T00:00:00", true, "2022", "06", "15", "2022-06-15"},
		{"plain date", "2022-06-15", true, "2022", "06", "15", "2022-06-15"},
		{"unpadded parts", "2022-6-5", true, "2022", "06", "05", "2022-06-05"},
		{"garbage", "not a date", false, "", "", "", ""},
		{"empty", "", false, "", "", "", ""},
		{"two parts", "2022-06", false, "", "", "", ""},
		{"alpha month", "2022-xx-15", false, "", "", "", ""},
		{"short year", "22-06-15", false, "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month, day, date := parseDate(tt.literal)
			if year.OK != tt.wantOK {
				t.Fatalf("parseDate(%q) presence = %v, want %v", tt.literal, year.OK, tt.wantOK)
			}
			if month.OK != tt.wantOK || day.OK != tt.wantOK || date.OK != tt.wantOK {
				t.Fatalf("parseDate(%q): all four fields must share presence", tt.literal)
			}
			if !tt.wantOK {
				return
			}
			if year.Value != tt.year || month.Value != tt.month || day.Value != tt.day || date.Value != tt.date {
				t.Errorf("parseDate(%q) = %s %s %s %s", tt.literal, year.Value, month.Value, day.Value, date.Value)
			}
		})
	}
}

func TestPlaceholders_Fixed(t *testing.T) {
	names := Placeholders()
	want := []string{
		"year", "month", "day", "date", "eli", "celex_identifier",
		"title", "subtitle", "type", "default_identifier",
	}
	if len(names) != len(want) {
		t.Fatalf("Placeholders() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Placeholders()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	// Returned slice is a copy; mutating it must not affect the vocabulary.
	names[0] = "mutated"
	if Placeholders()[0] != "year" {
		t.Error("Placeholders() must return a defensive copy")
	}
}

func TestAttributes_Placeholder_Unknown(t *testing.T) {
	attrs := Extract(noticeGraph(t), "ENG", testUUID)
	if _, ok := attrs.Placeholder("momth"); ok {
		t.Error("Unknown placeholder name should resolve as absent")
	}
}
