package models

// IdentifierKind tells which variant of a ProjectIdentifier is populated
type IdentifierKind int

const (
	// IdentifierID means the project is referenced by its numeric ID
	IdentifierID IdentifierKind = iota
	// IdentifierPath means the project is referenced by its namespaced path
	IdentifierPath
)

// ProjectIdentifier is a resolved reference to a GitLab project.
// Exactly one variant is populated, selected by Kind.
type ProjectIdentifier struct {
	Kind IdentifierKind
	ID   int
	Path string
}
