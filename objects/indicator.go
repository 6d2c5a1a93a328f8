package objects

import (
	"fmt"
	"time"
)

// PatternType identifies the language an indicator pattern is written in.
type PatternType string

// Supported pattern languages.
const (
	PatternTypeSTIX  PatternType = "stix"
	PatternTypeSnort PatternType = "snort"
	PatternTypeYARA  PatternType = "yara"
)

// IsValid returns true if the pattern type is a supported language.
func (p PatternType) IsValid() bool {
	switch p {
	case PatternTypeSTIX, PatternTypeSnort, PatternTypeYARA:
		return true
	default:
		return false
	}
}

// DefaultIndicatorLabel is applied when an indicator is built without
// explicit labels.
const DefaultIndicatorLabel = "malicious-activity"

// Indicator represents a STIX Indicator SDO: a matching pattern for one
// observable IOC with a validity window and confidence.
type Indicator struct {
	Type         string      `json:"type"`
	SpecVersion  string      `json:"spec_version"`
	ID           string      `json:"id"`
	Created      time.Time   `json:"created"`
	Modified     time.Time   `json:"modified"`
	Name         string      `json:"name"`
	Description  string      `json:"description,omitempty"`
	Pattern      string      `json:"pattern"`
	PatternType  PatternType `json:"pattern_type"`
	ValidFrom    time.Time   `json:"valid_from"`
	ValidUntil   *time.Time  `json:"valid_until,omitempty"`
	Labels       []string    `json:"labels"`
	Confidence   int         `json:"confidence"`
	CreatedByRef string      `json:"created_by_ref,omitempty"`
}

// NewIndicator creates an indicator for the given pattern. Labels default to
// {"malicious-activity"} and the validity window opens now when no start is
// supplied.
func NewIndicator(name, pattern string, patternType PatternType, createdBy string) *Indicator {
	now := Now()
	return &Indicator{
		Type:         TypeIndicator,
		SpecVersion:  SpecVersion,
		ID:           NewID(TypeIndicator),
		Created:      now,
		Modified:     now,
		Name:         name,
		Pattern:      pattern,
		PatternType:  patternType,
		ValidFrom:    now,
		Labels:       []string{DefaultIndicatorLabel},
		Confidence:   75,
		CreatedByRef: createdBy,
	}
}

// ObjectType implements Object.
func (i *Indicator) ObjectType() string { return i.Type }

// ObjectID implements Object.
func (i *Indicator) ObjectID() string { return i.ID }

// Validate checks the indicator invariants: a non-empty pattern in a
// supported language, confidence within 0-100 and a validity window whose
// end, if present, falls after its start.
func (i *Indicator) Validate() error {
	if i.Pattern == "" {
		return &ValidationError{Field: "Pattern", Message: "indicator pattern is required"}
	}
	if !i.PatternType.IsValid() {
		return &ValidationError{Field: "PatternType", Message: fmt.Sprintf("unsupported pattern type %q", i.PatternType)}
	}
	if i.Confidence < 0 || i.Confidence > 100 {
		return &ValidationError{Field: "Confidence", Message: fmt.Sprintf("confidence %d outside 0-100", i.Confidence)}
	}
	if len(i.Labels) == 0 {
		return &ValidationError{Field: "Labels", Message: "at least one label is required"}
	}
	if i.ValidUntil != nil && !i.ValidUntil.After(i.ValidFrom) {
		return &ValidationError{Field: "ValidUntil", Message: "valid_until must be after valid_from"}
	}
	return nil
}
