// Package stix generates STIX 2.1 object graphs from raw threat
// intelligence and packages them into exchange bundles.
//
// The central type is the Generator: one Generator owns one generation
// session. It converts raw IOC strings into indicators, MITRE ATT&CK
// technique ids into attack patterns, and structured configuration records
// into malware, threat-actor and campaign objects, inferring the
// relationships between them (actors use techniques, campaigns are
// attributed to actors and use malware). Every generated object is
// accumulated on the session in input order and packaged by Bundle.
//
// # Generation
//
//	gen := stix.NewGenerator(stix.WithIdentityName("ACME CTI"))
//
//	ind, err := gen.GenerateIndicator(ctx, "192.0.2.1", stix.WithConfidence(90))
//	if err != nil {
//	    // unrecognized IOC format; skip it
//	}
//
//	campaign := gen.GenerateCampaign(ctx, cfg)
//	bundle := gen.Bundle()
//
// Unrecognized IOCs and malformed technique ids are per-item failures:
// single-item calls return a sentinel error (ErrUnrecognizedIOC,
// ErrInvalidTechniqueID) and batch calls skip the item with a logged
// warning, never aborting the batch.
//
// # Validation
//
// The validator package checks finished bundles for structural
// well-formedness, optionally enforcing that every relationship endpoint
// resolves within the bundle:
//
//	report := validator.ValidateBundle(bundle, validator.Options{EnforceRefs: true})
//
// # Sub-packages
//
//   - ioc: IOC format classification and STIX pattern synthesis
//   - objects: the typed STIX 2.1 object model
//   - config: configuration records for malware/actor/campaign generation
//   - validator: structural bundle validation
package stix
