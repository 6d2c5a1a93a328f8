package validator

import (
	"encoding/json"
	"fmt"

	"github.com/zero-day-ai/stix/objects"
)

// Options controls the validation depth.
type Options struct {
	// Strict promotes advisory findings (unknown object types, malformed
	// ids, missing spec_version) from warnings to errors.
	Strict bool

	// EnforceRefs requires every relationship source_ref and target_ref to
	// resolve to an object present in the same bundle.
	EnforceRefs bool
}

// ObjectError describes one defect found in a bundle, attributed to the
// offending object where possible.
type ObjectError struct {
	ID      string `json:"id,omitempty"`
	Type    string `json:"type,omitempty"`
	Message string `json:"message"`
}

func (e ObjectError) String() string {
	if e.ID != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.ID, e.Message)
	}
	return e.Message
}

// Result is a complete validation report for one bundle.
type Result struct {
	Valid    bool          `json:"valid"`
	Errors   []ObjectError `json:"errors"`
	Warnings []ObjectError `json:"warnings,omitempty"`
}

// knownTypes lists the object type tags this library generates. Unknown
// tags are advisory findings, not hard errors: bundles may legitimately
// carry SDOs from other producers.
var knownTypes = map[string]bool{
	objects.TypeIdentity:      true,
	objects.TypeIndicator:     true,
	objects.TypeAttackPattern: true,
	objects.TypeMalware:       true,
	objects.TypeThreatActor:   true,
	objects.TypeCampaign:      true,
	objects.TypeRelationship:  true,
}

// rawBundle is the generic serialized form validation operates on. Checking
// the serialized shape rather than the typed structs means hand-assembled
// and deserialized bundles are held to the same standard as generated ones.
type rawBundle struct {
	Type    string           `json:"type"`
	ID      string           `json:"id"`
	Objects []map[string]any `json:"objects"`
}

// ValidateBundle validates an in-memory bundle. The bundle is serialized to
// its generic JSON form first, so the checks see exactly what an exchange
// partner would receive.
func ValidateBundle(bundle *objects.Bundle, opts Options) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Valid:  false,
				Errors: []ObjectError{{Message: fmt.Sprintf("validation aborted: %v", r)}},
			}
		}
	}()

	if bundle == nil {
		return Result{
			Valid:  false,
			Errors: []ObjectError{{Message: "no bundle provided"}},
		}
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		return Result{
			Valid:  false,
			Errors: []ObjectError{{Message: fmt.Sprintf("bundle not serializable: %v", err)}},
		}
	}

	return ValidateJSON(data, opts)
}

// ValidateJSON validates a serialized bundle.
func ValidateJSON(data []byte, opts Options) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = Result{
				Valid:  false,
				Errors: []ObjectError{{Message: fmt.Sprintf("validation aborted: %v", r)}},
			}
		}
	}()

	var raw rawBundle
	if err := json.Unmarshal(data, &raw); err != nil {
		return Result{
			Valid:  false,
			Errors: []ObjectError{{Message: fmt.Sprintf("not a STIX bundle: %v", err)}},
		}
	}

	return validate(raw, opts)
}

func validate(raw rawBundle, opts Options) Result {
	var errs, warns []ObjectError

	if raw.Type != objects.TypeBundle {
		errs = append(errs, ObjectError{
			ID:      raw.ID,
			Type:    raw.Type,
			Message: fmt.Sprintf("invalid bundle type %q", raw.Type),
		})
	}
	if raw.ID == "" {
		warns = append(warns, ObjectError{Type: raw.Type, Message: "bundle has no id"})
	}

	if len(raw.Objects) == 0 {
		errs = append(errs, ObjectError{
			ID:      raw.ID,
			Type:    raw.Type,
			Message: "bundle has no objects",
		})
	}

	// Membership checks run over every object before reference checks so
	// the report groups defects the way the scan encounters them.
	ids := make(map[string]bool, len(raw.Objects))
	for _, obj := range raw.Objects {
		objType, _ := obj["type"].(string)
		objID, _ := obj["id"].(string)

		if objType == "" {
			errs = append(errs, ObjectError{
				ID:      orUnknown(objID),
				Message: "object missing type",
			})
		}
		if objID == "" {
			errs = append(errs, ObjectError{
				Type:    orUnknown(objType),
				Message: "object missing id",
			})
		} else {
			ids[objID] = true
		}

		warns = append(warns, advisories(objType, objID, obj)...)
	}

	if opts.EnforceRefs {
		for _, obj := range raw.Objects {
			objType, _ := obj["type"].(string)
			if objType != objects.TypeRelationship {
				continue
			}
			objID, _ := obj["id"].(string)
			for _, field := range []string{"source_ref", "target_ref"} {
				ref, _ := obj[field].(string)
				if ref == "" {
					errs = append(errs, ObjectError{
						ID:      objID,
						Type:    objType,
						Message: fmt.Sprintf("relationship missing %s", field),
					})
					continue
				}
				if !ids[ref] {
					errs = append(errs, ObjectError{
						ID:      objID,
						Type:    objType,
						Message: fmt.Sprintf("%s %q does not resolve within bundle", field, ref),
					})
				}
			}
		}
	}

	if opts.Strict {
		errs = append(errs, warns...)
		warns = nil
	}

	return Result{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

// advisories reports findings that do not make a bundle structurally
// invalid: unknown object types, ids not prefixed by their type and missing
// spec_version fields.
func advisories(objType, objID string, obj map[string]any) []ObjectError {
	var warns []ObjectError

	if objType != "" && !knownTypes[objType] {
		warns = append(warns, ObjectError{
			ID:      objID,
			Type:    objType,
			Message: fmt.Sprintf("unknown object type %q", objType),
		})
	}
	if objType != "" && objID != "" && !hasTypePrefix(objID, objType) {
		warns = append(warns, ObjectError{
			ID:      objID,
			Type:    objType,
			Message: fmt.Sprintf("id not prefixed by type %q", objType),
		})
	}
	if _, ok := obj["spec_version"]; !ok {
		warns = append(warns, ObjectError{
			ID:      objID,
			Type:    objType,
			Message: "object missing spec_version",
		})
	}

	return warns
}

func hasTypePrefix(id, objType string) bool {
	prefix := objType + "--"
	return len(id) > len(prefix) && id[:len(prefix)] == prefix
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
