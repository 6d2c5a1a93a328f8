package objects

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// MitreAttackSource is the external-reference source tag for MITRE ATT&CK.
const MitreAttackSource = "mitre-attack"

// techniqueIDPattern matches MITRE ATT&CK technique identifiers: exactly
// four digits, with an optional three-digit sub-technique suffix.
var techniqueIDPattern = regexp.MustCompile(`^T\d{4}(\.\d{3})?$`)

// ValidTechniqueID reports whether id is a well-formed MITRE ATT&CK
// technique identifier (T#### or T####.###).
func ValidTechniqueID(id string) bool {
	return techniqueIDPattern.MatchString(id)
}

// TechniqueURL returns the canonical MITRE ATT&CK page for a technique id.
// Sub-technique ids use a path segment: T1055.001 -> techniques/T1055/001/.
func TechniqueURL(id string) string {
	return fmt.Sprintf("https://attack.mitre.org/techniques/%s/", strings.ReplaceAll(id, ".", "/"))
}

// AttackPattern represents a STIX Attack Pattern SDO referencing a MITRE
// ATT&CK technique through an external reference.
type AttackPattern struct {
	Type               string              `json:"type"`
	SpecVersion        string              `json:"spec_version"`
	ID                 string              `json:"id"`
	Created            time.Time           `json:"created"`
	Modified           time.Time           `json:"modified"`
	Name               string              `json:"name"`
	Description        string              `json:"description,omitempty"`
	ExternalReferences []ExternalReference `json:"external_references,omitempty"`
	CreatedByRef       string              `json:"created_by_ref,omitempty"`
}

// NewAttackPattern creates an attack pattern for a technique id. The id is
// not format-checked here; the generator rejects malformed ids before
// construction.
func NewAttackPattern(techniqueID, name, description, createdBy string) *AttackPattern {
	now := Now()
	return &AttackPattern{
		Type:        TypeAttackPattern,
		SpecVersion: SpecVersion,
		ID:          NewID(TypeAttackPattern),
		Created:     now,
		Modified:    now,
		Name:        name,
		Description: description,
		ExternalReferences: []ExternalReference{
			{
				SourceName: MitreAttackSource,
				ExternalID: techniqueID,
				URL:        TechniqueURL(techniqueID),
			},
		},
		CreatedByRef: createdBy,
	}
}

// ObjectType implements Object.
func (a *AttackPattern) ObjectType() string { return a.Type }

// ObjectID implements Object.
func (a *AttackPattern) ObjectID() string { return a.ID }

// Validate checks that the attack pattern is named and that any MITRE
// ATT&CK reference carries a well-formed technique id.
func (a *AttackPattern) Validate() error {
	if a.Name == "" {
		return &ValidationError{Field: "Name", Message: "attack pattern name is required"}
	}
	for _, ref := range a.ExternalReferences {
		if ref.SourceName == MitreAttackSource && !ValidTechniqueID(ref.ExternalID) {
			return &ValidationError{Field: "ExternalReferences", Message: fmt.Sprintf("malformed technique id %q", ref.ExternalID)}
		}
	}
	return nil
}
