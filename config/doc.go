// Package config provides the typed configuration records the generator
// consumes when building malware, threat-actor and campaign objects, and
// loading of those records from YAML or JSON files.
//
// Every optional field has a documented default applied by the generator;
// a record omitting everything still produces a valid object. Timestamps
// are RFC 3339 strings, with the common "Z" UTC suffix accepted.
package config
