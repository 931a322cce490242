package rdf

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// RDF/XML vocabulary used by the parser.
const (
	namespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	rdfTypeIRI   = namespaceRDF + "type"
)

// ParseError reports that a metadata notice could not be parsed as RDF/XML.
// It is the only error class the parser returns: individual missing
// properties never fail a parse.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse rdf/xml: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// rdfxmlParser decodes an RDF/XML document into a Graph.
//
// The subset understood here covers what Cellar notices actually use:
// node elements carrying rdf:about (plain rdf:Description or typed nodes),
// property elements with an rdf:resource reference, literal property
// elements with an optional xml:lang tag, and nested node elements as
// property values. rdf:parseType collections and XML literals are not
// supported.
type rdfxmlParser struct {
	decoder  *xml.Decoder
	graph    *Graph
	blankSeq int
}

// ParseRDFXML reads an RDF/XML document and returns the resulting graph.
// Malformed XML or a missing rdf:RDF envelope yields a *ParseError.
func ParseRDFXML(r io.Reader) (*Graph, error) {
	parser := &rdfxmlParser{
		decoder: xml.NewDecoder(r),
		graph:   NewGraph(),
	}
	if err := parser.run(); err != nil {
		return nil, &ParseError{Err: err}
	}
	return parser.graph, nil
}

// run finds the document element and parses its node elements.
func (p *rdfxmlParser) run() error {
	for {
		token, err := p.decoder.Token()
		if err == io.EOF {
			return fmt.Errorf("document contains no RDF content")
		}
		if err != nil {
			return err
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}

		if start.Name.Space == namespaceRDF && start.Name.Local == "RDF" {
			return p.parseNodeElements(start)
		}
		// Document without an rdf:RDF envelope: the root is a single node element.
		return p.parseNode(start)
	}
}

// parseNodeElements parses every child node element until the enclosing
// element closes.
func (p *rdfxmlParser) parseNodeElements(parent xml.StartElement) error {
	for {
		token, err := p.decoder.Token()
		if err == io.EOF {
			return fmt.Errorf("unexpected end of document inside <%s>", parent.Name.Local)
		}
		if err != nil {
			return err
		}

		switch el := token.(type) {
		case xml.StartElement:
			if err := p.parseNode(el); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseNode parses one node element: its subject, an rdf:type triple when
// the element is a typed node, and all property children. Returns via
// parseProperties once the element closes.
func (p *rdfxmlParser) parseNode(start xml.StartElement) error {
	subject := p.subjectOf(start)

	// A typed node element such as <cdm:work rdf:about="..."> implies an
	// rdf:type triple; plain rdf:Description does not.
	if start.Name.Space != namespaceRDF || start.Name.Local != "Description" {
		if err := p.graph.Add(subject, rdfTypeIRI, IRI(start.Name.Space+start.Name.Local)); err != nil {
			return err
		}
	}

	return p.parseProperties(subject)
}

// parseProperties parses the property elements of a node until the node
// element closes.
func (p *rdfxmlParser) parseProperties(subject string) error {
	for {
		token, err := p.decoder.Token()
		if err == io.EOF {
			return fmt.Errorf("unexpected end of document inside description of %s", subject)
		}
		if err != nil {
			return err
		}

		switch el := token.(type) {
		case xml.StartElement:
			if err := p.parseProperty(subject, el); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// parseProperty parses a single property element of the given subject.
func (p *rdfxmlParser) parseProperty(subject string, start xml.StartElement) error {
	predicate := start.Name.Space + start.Name.Local

	if resource, ok := findAttr(start, namespaceRDF, "resource"); ok {
		if err := p.graph.Add(subject, predicate, IRI(resource)); err != nil {
			return err
		}
		return p.decoder.Skip()
	}

	if nodeID, ok := findAttr(start, namespaceRDF, "nodeID"); ok {
		if err := p.graph.Add(subject, predicate, IRI("_:"+nodeID)); err != nil {
			return err
		}
		return p.decoder.Skip()
	}

	lang, _ := findAttr(start, "xml", "lang")

	var text strings.Builder
	for {
		token, err := p.decoder.Token()
		if err == io.EOF {
			return fmt.Errorf("unexpected end of document inside property %s", predicate)
		}
		if err != nil {
			return err
		}

		switch el := token.(type) {
		case xml.CharData:
			text.Write(el)
		case xml.StartElement:
			// Nested node element: the inner subject is this property's object.
			object := p.subjectOf(el)
			if err := p.graph.Add(subject, predicate, IRI(object)); err != nil {
				return err
			}
			if err := p.parseNode(el); err != nil {
				return err
			}
		case xml.EndElement:
			value := strings.TrimSpace(text.String())
			if value == "" {
				return nil // Empty property, nothing to record
			}
			return p.graph.Add(subject, predicate, LangLiteral(value, lang))
		}
	}
}

// subjectOf determines the subject of a node element from its rdf:about or
// rdf:nodeID attribute, minting a fresh blank node label when neither is
// present.
func (p *rdfxmlParser) subjectOf(start xml.StartElement) string {
	if about, ok := findAttr(start, namespaceRDF, "about"); ok {
		return about
	}
	if nodeID, ok := findAttr(start, namespaceRDF, "nodeID"); ok {
		return "_:" + nodeID
	}
	p.blankSeq++
	return fmt.Sprintf("_:b%d", p.blankSeq)
}

// findAttr looks up an attribute by namespace and local name.
func findAttr(start xml.StartElement, space, local string) (string, bool) {
	for _, attr := range start.Attr {
		if attr.Name.Space == space && attr.Name.Local == local {
			return attr.Value, true
		}
	}
	return "", false
}
