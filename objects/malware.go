package objects

import "time"

// DefaultMalwareType is applied when a malware record does not specify its
// type tags.
const DefaultMalwareType = "unknown"

// Malware represents a STIX Malware SDO.
type Malware struct {
	Type            string           `json:"type"`
	SpecVersion     string           `json:"spec_version"`
	ID              string           `json:"id"`
	Created         time.Time        `json:"created"`
	Modified        time.Time        `json:"modified"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	MalwareTypes    []string         `json:"malware_types"`
	IsFamily        bool             `json:"is_family"`
	Capabilities    []string         `json:"capabilities,omitempty"`
	KillChainPhases []KillChainPhase `json:"kill_chain_phases,omitempty"`
	Aliases         []string         `json:"aliases,omitempty"`
	CreatedByRef    string           `json:"created_by_ref,omitempty"`
}

// NewMalware creates a malware object. Type tags default to {"unknown"} and
// the family flag defaults to true.
func NewMalware(name string, createdBy string) *Malware {
	now := Now()
	return &Malware{
		Type:         TypeMalware,
		SpecVersion:  SpecVersion,
		ID:           NewID(TypeMalware),
		Created:      now,
		Modified:     now,
		Name:         name,
		MalwareTypes: []string{DefaultMalwareType},
		IsFamily:     true,
		CreatedByRef: createdBy,
	}
}

// ObjectType implements Object.
func (m *Malware) ObjectType() string { return m.Type }

// ObjectID implements Object.
func (m *Malware) ObjectID() string { return m.ID }

// Validate checks that the malware object carries its required fields.
func (m *Malware) Validate() error {
	if m.Name == "" {
		return &ValidationError{Field: "Name", Message: "malware name is required"}
	}
	if len(m.MalwareTypes) == 0 {
		return &ValidationError{Field: "MalwareTypes", Message: "at least one malware type is required"}
	}
	return nil
}
