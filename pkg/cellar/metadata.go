package cellar

import (
	"strings"

	"github.com/coolbeans/cellarize/pkg/language"
	"github.com/coolbeans/cellarize/pkg/rdf"
)

// DefaultLanguage is the language used for title/subtitle selection when
// none is configured.
const DefaultLanguage = "ENG"

// Field is an attribute value that may be absent. Absence is a first-class
// state distinct from an empty string, so the renderer can substitute its
// fallback token without mistaking legitimately empty metadata for it.
type Field struct {
	Value string
	OK    bool
}

// Some creates a present field.
func Some(value string) Field {
	return Field{Value: value, OK: true}
}

// None is the missing field.
func None() Field {
	return Field{}
}

// Attributes is the fixed set of document attributes available to path
// masks. Every field except DefaultIdentifier may be missing.
type Attributes struct {
	Year            Field
	Month           Field
	Day             Field
	Date            Field
	ELI             Field
	CelexIdentifier Field
	Title           Field
	Subtitle        Field
	Type            Field

	// DefaultIdentifier is the document UUID, supplied by the caller,
	// never read from the graph, and never missing.
	DefaultIdentifier string
}

// placeholderNames is the fixed placeholder vocabulary, in documentation order.
var placeholderNames = []string{
	"year", "month", "day", "date", "eli", "celex_identifier",
	"title", "subtitle", "type", "default_identifier",
}

// Placeholders returns the fixed set of mask placeholder names.
func Placeholders() []string {
	names := make([]string, len(placeholderNames))
	copy(names, placeholderNames)
	return names
}

// Placeholder resolves a placeholder name to its value. The second return
// reports presence; unknown names resolve as absent (mask validation
// rejects them before any rendering happens).
func (a Attributes) Placeholder(name string) (string, bool) {
	f, _ := a.field(name)
	return f.Value, f.OK
}

func (a Attributes) field(name string) (Field, bool) {
	switch name {
	case "year":
		return a.Year, true
	case "month":
		return a.Month, true
	case "day":
		return a.Day, true
	case "date":
		return a.Date, true
	case "eli":
		return a.ELI, true
	case "celex_identifier":
		return a.CelexIdentifier, true
	case "title":
		return a.Title, true
	case "subtitle":
		return a.Subtitle, true
	case "type":
		return a.Type, true
	case "default_identifier":
		return Some(a.DefaultIdentifier), true
	}
	return None(), false
}

// Extract pulls the document attributes for one Cellar notice out of its
// parsed graph. langCode selects title/subtitle literals (3-letter
// authority code, 2-letter forms accepted); uuid becomes
// DefaultIdentifier and is never taken from the graph.
//
// Extraction is lenient by design: any individual predicate the graph
// lacks simply leaves its field missing. Only graph parsing, which happens
// before this call, can fail a document.
func Extract(g *rdf.Graph, langCode, uuid string) Attributes {
	attrs := Attributes{DefaultIdentifier: uuid}

	authority := language.ToAuthority(langCode)
	if authority == "" {
		authority = DefaultLanguage
	}

	work := findWork(g, RootURI(uuid))

	if date, ok := g.FirstObject(work, CDMDateCreationLegacy); ok {
		attrs.Year, attrs.Month, attrs.Day, attrs.Date = parseDate(date.Value)
	}
	if eli, ok := g.FirstObject(work, CDMResourceLegalELI); ok {
		attrs.ELI = Some(eli.Value)
	}
	if celex, ok := g.FirstObject(work, CDMResourceLegalIDCelex); ok {
		attrs.CelexIdentifier = Some(celex.Value)
	}
	if typ, ok := g.FirstObject(work, CDMWorkHasResourceType); ok {
		// Short code from the authority URI ("…/resource-type/REG" -> "REG"),
		// never the stringified URI.
		attrs.Type = Some(typ.LocalName())
	}

	if expr, ok := findExpression(g, work, authority); ok {
		attrs.Title = literalInLanguage(g, expr, CDMExpressionTitle, authority)
		attrs.Subtitle = literalInLanguage(g, expr, CDMExpressionSubtitle, authority)
	}

	return attrs
}

// findWork locates the work-level subject carrying the CDM predicates.
// Cellar links the cellar resource to the work via owl:sameAs; when no
// alias carries work metadata the root resource itself is used.
func findWork(g *rdf.Graph, root string) string {
	candidates := []string{}
	for _, alias := range g.Objects(root, OWLSameAs) {
		if alias.IsIRI() {
			candidates = append(candidates, alias.Value)
		}
	}
	candidates = append(candidates, root)

	workPredicates := []string{
		CDMDateCreationLegacy,
		CDMResourceLegalELI,
		CDMResourceLegalIDCelex,
		CDMWorkHasResourceType,
	}
	for _, candidate := range candidates {
		for _, predicate := range workPredicates {
			if _, ok := g.FirstObject(candidate, predicate); ok {
				return candidate
			}
		}
	}
	return root
}

// findExpression locates the linguistic expression of the work in the
// requested language. Expressions are matched on their
// cdm:expression_uses_language resource; candidates are scanned in the
// graph's deterministic subject order.
func findExpression(g *rdf.Graph, work, authority string) (string, bool) {
	langURI := LanguageURI(authority)
	for _, expr := range g.SubjectsWhere(CDMExpressionBelongsToWork, work) {
		for _, used := range g.Objects(expr, CDMExpressionUsesLanguage) {
			if used.Value == langURI || strings.EqualFold(used.LocalName(), authority) {
				return expr, true
			}
		}
	}
	return "", false
}

// literalInLanguage returns the first literal under subject/predicate
// whose language tag is compatible with the requested language. There is
// deliberately no fallback to other languages: a notice without a literal
// in the requested language yields a missing field, not mixed-language
// output.
func literalInLanguage(g *rdf.Graph, subject, predicate, authority string) Field {
	for _, term := range g.Objects(subject, predicate) {
		if !term.IsLiteral() {
			continue
		}
		if language.TagMatches(term.Lang, authority) {
			return Some(term.Value)
		}
	}
	return None()
}

// parseDate splits a creation date literal such as "2022-06-15T00:00:00"
// into its zero-padded parts plus the composed YYYY-MM-DD form. An absent
// or unparsable literal leaves all four fields missing; a bad date never
// fails the document.
func parseDate(literal string) (year, month, day, date Field) {
	datePart := literal
	if idx := strings.IndexByte(datePart, 'T'); idx >= 0 {
		datePart = datePart[:idx]
	}
	datePart = strings.TrimSpace(datePart)

	parts := strings.SplitN(datePart, "-", 3)
	if len(parts) != 3 {
		return None(), None(), None(), None()
	}

	y, m, d := parts[0], parts[1], parts[2]
	if len(y) != 4 || !allDigits(y) || !allDigits(m) || !allDigits(d) ||
		len(m) == 0 || len(m) > 2 || len(d) == 0 || len(d) > 2 {
		return None(), None(), None(), None()
	}

	if len(m) == 1 {
		m = "0" + m
	}
	if len(d) == 1 {
		d = "0" + d
	}

	return Some(y), Some(m), Some(d), Some(y + "-" + m + "-" + d)
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
