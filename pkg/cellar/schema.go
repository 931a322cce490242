// Package cellar extracts document attributes from Cellar RDF metadata
// notices using the Publications Office CDM ontology.
package cellar

// Namespace URIs used in Cellar metadata.
const (
	// NamespaceCDM is the Common Data Model ontology namespace.
	NamespaceCDM = "http://publications.europa.eu/ontology/cdm#"

	// NamespaceOWL is the Web Ontology Language namespace.
	NamespaceOWL = "http://www.w3.org/2002/07/owl#"

	// NamespaceLanguage is the language authority namespace; language
	// resources are NamespaceLanguage + 3-letter code (".../language/ENG").
	NamespaceLanguage = "http://publications.europa.eu/resource/authority/language/"

	// ResourceBase is the base URI for Cellar document resources; a
	// document's root resource is ResourceBase + UUID.
	ResourceBase = "http://publications.europa.eu/resource/cellar/"
)

// OWL predicates.
const (
	// OWLSameAs links the cellar resource to its work-level aliases.
	OWLSameAs = NamespaceOWL + "sameAs"
)

// CDM work-level predicates.
const (
	// CDMDateCreationLegacy is the creation date literal of a work.
	CDMDateCreationLegacy = NamespaceCDM + "date_creation_legacy"

	// CDMResourceLegalELI is the European Legislation Identifier of a work.
	CDMResourceLegalELI = NamespaceCDM + "resource_legal_eli"

	// CDMResourceLegalIDCelex is the CELEX identifier of a work.
	CDMResourceLegalIDCelex = NamespaceCDM + "resource_legal_id_celex"

	// CDMWorkHasResourceType links a work to its resource-type authority URI.
	CDMWorkHasResourceType = NamespaceCDM + "work_has_resource-type"
)

// CDM expression-level predicates.
const (
	// CDMExpressionBelongsToWork links a linguistic expression to its work.
	CDMExpressionBelongsToWork = NamespaceCDM + "expression_belongs_to_work"

	// CDMExpressionUsesLanguage links an expression to its language resource.
	CDMExpressionUsesLanguage = NamespaceCDM + "expression_uses_language"

	// CDMExpressionTitle is the title literal of an expression.
	CDMExpressionTitle = NamespaceCDM + "expression_title"

	// CDMExpressionSubtitle is the subtitle literal of an expression.
	CDMExpressionSubtitle = NamespaceCDM + "expression_subtitle"
)

// RootURI returns the Cellar resource URI for a document UUID.
func RootURI(uuid string) string {
	return ResourceBase + uuid
}

// LanguageURI returns the language authority URI for an uppercase
// 3-letter language code.
func LanguageURI(code string) string {
	return NamespaceLanguage + code
}
