package objects

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SpecVersion is the STIX specification version implemented by this package.
const SpecVersion = "2.1"

// STIX object type tags.
const (
	TypeBundle        = "bundle"
	TypeIdentity      = "identity"
	TypeIndicator     = "indicator"
	TypeAttackPattern = "attack-pattern"
	TypeMalware       = "malware"
	TypeThreatActor   = "threat-actor"
	TypeCampaign      = "campaign"
	TypeRelationship  = "relationship"
)

// Object is implemented by every STIX object this package produces.
type Object interface {
	// ObjectType returns the STIX type tag (e.g. "indicator").
	ObjectType() string

	// ObjectID returns the object identifier ("<type>--<uuid>").
	ObjectID() string
}

// NewID generates a fresh STIX identifier for the given object type.
func NewID(objectType string) string {
	return fmt.Sprintf("%s--%s", objectType, uuid.New())
}

// Now returns the current UTC time truncated to millisecond precision, the
// granularity STIX timestamps are serialized with.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ExternalReference points an object at a non-STIX source, such as a MITRE
// ATT&CK technique page.
type ExternalReference struct {
	SourceName string `json:"source_name"`
	ExternalID string `json:"external_id,omitempty"`
	URL        string `json:"url,omitempty"`
}

// KillChainPhase places an object within a phase of a named kill chain.
type KillChainPhase struct {
	KillChainName string `json:"kill_chain_name"`
	PhaseName     string `json:"phase_name"`
}

// ValidationError represents a single-field validation failure on an object.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
