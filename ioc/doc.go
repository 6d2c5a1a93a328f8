// Package ioc classifies raw indicator-of-compromise strings and builds
// STIX 2.1 matching patterns from them.
//
// Classification is a fixed, ordered sequence of format checks. The first
// matching check wins and the order is part of the package contract:
//
//	ipv4, ipv6, domain, url, email, md5, sha1, sha256
//
// Detect never fails; input that matches no known format is reported as
// TypeNone and callers are expected to skip it rather than abort.
//
// Pattern synthesis is a pure function from (value, type) to a STIX pattern
// expression. Hash values are lower-cased and keyed by the algorithm names
// MD5, SHA-1 and SHA-256.
//
//	p := ioc.Pattern("192.0.2.1", ioc.TypeIPv4)
//	// [network-traffic:dst_ref.type = 'ipv4-addr' AND network-traffic:dst_ref.value = '192.0.2.1']
package ioc
