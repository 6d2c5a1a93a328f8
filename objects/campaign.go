package objects

import "time"

// Campaign represents a STIX Campaign SDO. Campaigns may own a derived
// threat actor ("attributed-to" edge) and derived malware ("uses" edges)
// created by the generator.
type Campaign struct {
	Type         string     `json:"type"`
	SpecVersion  string     `json:"spec_version"`
	ID           string     `json:"id"`
	Created      time.Time  `json:"created"`
	Modified     time.Time  `json:"modified"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	Aliases      []string   `json:"aliases,omitempty"`
	FirstSeen    *time.Time `json:"first_seen,omitempty"`
	LastSeen     *time.Time `json:"last_seen,omitempty"`
	Objective    string     `json:"objective,omitempty"`
	CreatedByRef string     `json:"created_by_ref,omitempty"`
}

// NewCampaign creates a campaign object.
func NewCampaign(name string, createdBy string) *Campaign {
	now := Now()
	return &Campaign{
		Type:         TypeCampaign,
		SpecVersion:  SpecVersion,
		ID:           NewID(TypeCampaign),
		Created:      now,
		Modified:     now,
		Name:         name,
		CreatedByRef: createdBy,
	}
}

// ObjectType implements Object.
func (c *Campaign) ObjectType() string { return c.Type }

// ObjectID implements Object.
func (c *Campaign) ObjectID() string { return c.ID }

// Validate checks that the campaign carries its required fields and that
// its sighting window, when both ends are present, is ordered.
func (c *Campaign) Validate() error {
	if c.Name == "" {
		return &ValidationError{Field: "Name", Message: "campaign name is required"}
	}
	if c.FirstSeen != nil && c.LastSeen != nil && c.LastSeen.Before(*c.FirstSeen) {
		return &ValidationError{Field: "LastSeen", Message: "last_seen must not precede first_seen"}
	}
	return nil
}
