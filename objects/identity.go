package objects

import "time"

// Identity class tags.
const (
	IdentityClassSystem       = "system"
	IdentityClassOrganization = "organization"
	IdentityClassIndividual   = "individual"
)

// Identity represents a STIX Identity SDO: the entity other objects cite as
// their creator. An identity is created once per generation session and is
// immutable afterwards.
type Identity struct {
	Type          string    `json:"type"`
	SpecVersion   string    `json:"spec_version"`
	ID            string    `json:"id"`
	Created       time.Time `json:"created"`
	Modified      time.Time `json:"modified"`
	Name          string    `json:"name"`
	IdentityClass string    `json:"identity_class"`
	Description   string    `json:"description,omitempty"`
}

// NewIdentity creates an identity with the given name and class.
func NewIdentity(name, identityClass, description string) *Identity {
	now := Now()
	return &Identity{
		Type:          TypeIdentity,
		SpecVersion:   SpecVersion,
		ID:            NewID(TypeIdentity),
		Created:       now,
		Modified:      now,
		Name:          name,
		IdentityClass: identityClass,
		Description:   description,
	}
}

// ObjectType implements Object.
func (i *Identity) ObjectType() string { return i.Type }

// ObjectID implements Object.
func (i *Identity) ObjectID() string { return i.ID }

// Validate checks that the identity carries its required fields.
func (i *Identity) Validate() error {
	if i.Name == "" {
		return &ValidationError{Field: "Name", Message: "identity name is required"}
	}
	if i.IdentityClass == "" {
		return &ValidationError{Field: "IdentityClass", Message: "identity class is required"}
	}
	return nil
}
