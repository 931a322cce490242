package rdf

import (
	"fmt"
	"sort"
)

// Graph is an in-memory RDF graph with two indexes:
//   - SPO: Subject -> Predicate -> Objects (find facts about a subject)
//   - POS: Predicate -> Object value -> Subjects (find subjects with property=value)
//
// A graph is built once from a metadata notice and then only read, all on a
// single goroutine, so it carries no locking.
type Graph struct {
	// SPO index: Subject -> Predicate -> object terms in insertion order
	spo map[string]map[string][]Term

	// POS index: Predicate -> Object value -> Subject -> exists
	pos map[string]map[string]map[string]bool

	count int
}

// NewGraph creates an empty graph with both indexes initialized.
func NewGraph() *Graph {
	return &Graph{
		spo: make(map[string]map[string][]Term),
		pos: make(map[string]map[string]map[string]bool),
	}
}

// Add inserts a triple into the graph. Adding an existing triple is a
// no-op (idempotent). Components must be non-empty.
func (g *Graph) Add(subject, predicate string, object Term) error {
	if subject == "" || predicate == "" || object.Value == "" {
		return fmt.Errorf("triple components cannot be empty")
	}

	if pMap, ok := g.spo[subject]; ok {
		for _, existing := range pMap[predicate] {
			if existing == object {
				return nil // Already present, idempotent
			}
		}
	}

	if g.spo[subject] == nil {
		g.spo[subject] = make(map[string][]Term)
	}
	g.spo[subject][predicate] = append(g.spo[subject][predicate], object)

	if g.pos[predicate] == nil {
		g.pos[predicate] = make(map[string]map[string]bool)
	}
	if g.pos[predicate][object.Value] == nil {
		g.pos[predicate][object.Value] = make(map[string]bool)
	}
	g.pos[predicate][object.Value][subject] = true

	g.count++
	return nil
}

// Objects returns every object term for a subject-predicate pair, in
// insertion order. Returns nil when the pair is absent.
func (g *Graph) Objects(subject, predicate string) []Term {
	pMap, ok := g.spo[subject]
	if !ok {
		return nil
	}
	terms := pMap[predicate]
	if len(terms) == 0 {
		return nil
	}
	out := make([]Term, len(terms))
	copy(out, terms)
	return out
}

// FirstObject returns the first object term for a subject-predicate pair.
func (g *Graph) FirstObject(subject, predicate string) (Term, bool) {
	if pMap, ok := g.spo[subject]; ok {
		if terms := pMap[predicate]; len(terms) > 0 {
			return terms[0], true
		}
	}
	return Term{}, false
}

// SubjectsWhere returns every subject holding the given object value under
// the given predicate, sorted for deterministic iteration.
func (g *Graph) SubjectsWhere(predicate, objectValue string) []string {
	oMap, ok := g.pos[predicate]
	if !ok {
		return nil
	}
	sMap, ok := oMap[objectValue]
	if !ok {
		return nil
	}
	subjects := make([]string, 0, len(sMap))
	for s := range sMap {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}

// Subjects returns all unique subjects in the graph, sorted.
func (g *Graph) Subjects() []string {
	subjects := make([]string, 0, len(g.spo))
	for s := range g.spo {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}

// Triples returns every triple in the graph. Order is deterministic:
// sorted by subject, then predicate, then object insertion order.
func (g *Graph) Triples() []Triple {
	var triples []Triple
	for _, subject := range g.Subjects() {
		pMap := g.spo[subject]
		predicates := make([]string, 0, len(pMap))
		for p := range pMap {
			predicates = append(predicates, p)
		}
		sort.Strings(predicates)
		for _, predicate := range predicates {
			for _, object := range pMap[predicate] {
				triples = append(triples, Triple{Subject: subject, Predicate: predicate, Object: object})
			}
		}
	}
	return triples
}

// Len returns the number of triples in the graph.
func (g *Graph) Len() int {
	return g.count
}

// String returns a summary of the graph size.
func (g *Graph) String() string {
	return fmt.Sprintf("Graph{triples: %d, subjects: %d}", g.count, len(g.spo))
}
