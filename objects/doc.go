// Package objects defines the STIX 2.1 domain objects produced by the
// generator: identities, indicators, attack patterns, malware, threat
// actors, campaigns and the relationships linking them, plus the bundle
// that packages a complete object graph for exchange.
//
// Every object kind is an explicit record type with a fixed field set and a
// constructor that assigns its id, creation timestamps and provenance.
// Identifiers follow the STIX convention "<type>--<uuid>" and are generated
// once at construction, never reassigned.
//
// The relationship vocabulary exposed here is deliberately closed: Uses and
// AttributedTo are the only edges the generator infers. Arbitrary
// relationship types can still be built with NewRelationship.
package objects
