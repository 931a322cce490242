// Package rdf provides an in-memory RDF graph and an RDF/XML parser for
// Cellar metadata notices.
package rdf

import (
	"fmt"
	"strings"
)

// TermKind distinguishes the two kinds of object terms a graph can hold.
type TermKind int

const (
	// KindIRI marks a term that names a resource.
	KindIRI TermKind = iota

	// KindLiteral marks a term carrying a literal value, optionally
	// tagged with a language code.
	KindLiteral
)

// Term is the object position of a triple: either an IRI reference or a
// literal value with an optional language tag.
type Term struct {
	Value string
	Kind  TermKind
	Lang  string
}

// IRI creates an IRI term.
func IRI(value string) Term {
	return Term{Value: value, Kind: KindIRI}
}

// Literal creates an untagged literal term.
func Literal(value string) Term {
	return Term{Value: value, Kind: KindLiteral}
}

// LangLiteral creates a literal term tagged with a language code.
func LangLiteral(value, lang string) Term {
	return Term{Value: value, Kind: KindLiteral, Lang: lang}
}

// IsIRI returns true for IRI terms.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}

// IsLiteral returns true for literal terms.
func (t Term) IsLiteral() bool {
	return t.Kind == KindLiteral
}

// LocalName returns the trailing path segment of an IRI term: the part
// after the last '#' or '/'. For literals it returns the literal value
// unchanged.
func (t Term) LocalName() string {
	if t.Kind != KindIRI {
		return t.Value
	}
	value := t.Value
	if idx := strings.LastIndex(value, "#"); idx >= 0 {
		value = value[idx+1:]
	}
	if idx := strings.LastIndex(value, "/"); idx >= 0 {
		value = value[idx+1:]
	}
	return value
}

// String returns an N-Triples-flavoured representation of the term.
func (t Term) String() string {
	if t.Kind == KindIRI {
		return fmt.Sprintf("<%s>", t.Value)
	}
	if t.Lang != "" {
		return fmt.Sprintf("%q@%s", t.Value, t.Lang)
	}
	return fmt.Sprintf("%q", t.Value)
}

// Triple represents an RDF subject-predicate-object statement.
// Subjects and predicates are IRIs (or blank node labels); the object may
// be an IRI or a literal.
type Triple struct {
	Subject   string
	Predicate string
	Object    Term
}

// String returns a human-readable representation of the triple.
func (t Triple) String() string {
	return fmt.Sprintf("<%s> <%s> %s", t.Subject, t.Predicate, t.Object)
}
