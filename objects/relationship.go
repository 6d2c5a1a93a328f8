package objects

import "time"

// Relationship type tags inferred by the generator. The inference rule set
// is closed: actors use attack patterns, campaigns are attributed to actors,
// campaigns use malware. Nothing else is derived automatically.
const (
	RelationshipUses         = "uses"
	RelationshipAttributedTo = "attributed-to"
)

// Relationship represents a STIX Relationship SRO: a directed, typed edge
// between two objects. Relationships are graph objects in their own right
// and travel inside the bundle alongside the entities they connect.
type Relationship struct {
	Type             string    `json:"type"`
	SpecVersion      string    `json:"spec_version"`
	ID               string    `json:"id"`
	Created          time.Time `json:"created"`
	Modified         time.Time `json:"modified"`
	RelationshipType string    `json:"relationship_type"`
	SourceRef        string    `json:"source_ref"`
	TargetRef        string    `json:"target_ref"`
	CreatedByRef     string    `json:"created_by_ref,omitempty"`
}

// NewRelationship creates a directed edge of the given type between two
// objects.
func NewRelationship(relationshipType string, source, target Object, createdBy string) *Relationship {
	now := Now()
	return &Relationship{
		Type:             TypeRelationship,
		SpecVersion:      SpecVersion,
		ID:               NewID(TypeRelationship),
		Created:          now,
		Modified:         now,
		RelationshipType: relationshipType,
		SourceRef:        source.ObjectID(),
		TargetRef:        target.ObjectID(),
		CreatedByRef:     createdBy,
	}
}

// Uses creates a "uses" edge: a threat actor using an attack pattern, or a
// campaign using malware.
func Uses(source, target Object, createdBy string) *Relationship {
	return NewRelationship(RelationshipUses, source, target, createdBy)
}

// AttributedTo creates an "attributed-to" edge from a campaign to the
// threat actor behind it.
func AttributedTo(source, target Object, createdBy string) *Relationship {
	return NewRelationship(RelationshipAttributedTo, source, target, createdBy)
}

// ObjectType implements Object.
func (r *Relationship) ObjectType() string { return r.Type }

// ObjectID implements Object.
func (r *Relationship) ObjectID() string { return r.ID }

// Validate checks that the relationship carries a type and both endpoints.
func (r *Relationship) Validate() error {
	if r.RelationshipType == "" {
		return &ValidationError{Field: "RelationshipType", Message: "relationship type is required"}
	}
	if r.SourceRef == "" {
		return &ValidationError{Field: "SourceRef", Message: "source_ref is required"}
	}
	if r.TargetRef == "" {
		return &ValidationError{Field: "TargetRef", Message: "target_ref is required"}
	}
	return nil
}
