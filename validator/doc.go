// Package validator checks STIX 2.1 bundles for structural well-formedness.
//
// Validation never mutates its input and always returns a report: every
// defect in a bundle is collected before reporting, and an unexpected
// internal failure is converted into a single-error invalid report instead
// of propagating. Reference enforcement is opt-in and requires every
// relationship endpoint to resolve to an object inside the same bundle.
//
//	report := validator.ValidateBundle(bundle, validator.Options{EnforceRefs: true})
//	if !report.Valid {
//	    for _, e := range report.Errors {
//	        log.Println(e)
//	    }
//	}
//
// Beyond in-memory bundles, the package validates serialized bundles from
// raw JSON, single files or whole directories.
package validator
