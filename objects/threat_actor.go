package objects

import "time"

// DefaultThreatActorType is applied when an actor record does not specify
// its type tags.
const DefaultThreatActorType = "unknown"

// ThreatActor represents a STIX Threat Actor SDO. Actors may own derived
// attack patterns, one per observed technique, linked through "uses"
// relationships created by the generator.
type ThreatActor struct {
	Type                 string    `json:"type"`
	SpecVersion          string    `json:"spec_version"`
	ID                   string    `json:"id"`
	Created              time.Time `json:"created"`
	Modified             time.Time `json:"modified"`
	Name                 string    `json:"name"`
	Description          string    `json:"description,omitempty"`
	ThreatActorTypes     []string  `json:"threat_actor_types"`
	Aliases              []string  `json:"aliases,omitempty"`
	Roles                []string  `json:"roles,omitempty"`
	Goals                []string  `json:"goals,omitempty"`
	Sophistication       string    `json:"sophistication,omitempty"`
	ResourceLevel        string    `json:"resource_level,omitempty"`
	PrimaryMotivation    string    `json:"primary_motivation,omitempty"`
	SecondaryMotivations []string  `json:"secondary_motivations,omitempty"`
	PersonalMotivations  []string  `json:"personal_motivations,omitempty"`
	CreatedByRef         string    `json:"created_by_ref,omitempty"`
}

// NewThreatActor creates a threat actor. Type tags default to {"unknown"}.
func NewThreatActor(name string, createdBy string) *ThreatActor {
	now := Now()
	return &ThreatActor{
		Type:             TypeThreatActor,
		SpecVersion:      SpecVersion,
		ID:               NewID(TypeThreatActor),
		Created:          now,
		Modified:         now,
		Name:             name,
		ThreatActorTypes: []string{DefaultThreatActorType},
		CreatedByRef:     createdBy,
	}
}

// ObjectType implements Object.
func (t *ThreatActor) ObjectType() string { return t.Type }

// ObjectID implements Object.
func (t *ThreatActor) ObjectID() string { return t.ID }

// Validate checks that the threat actor carries its required fields.
func (t *ThreatActor) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "Name", Message: "threat actor name is required"}
	}
	if len(t.ThreatActorTypes) == 0 {
		return &ValidationError{Field: "ThreatActorTypes", Message: "at least one threat actor type is required"}
	}
	return nil
}
