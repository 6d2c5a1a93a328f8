package ioc

import (
	"regexp"
	"strings"
)

// Type identifies the observable format of an IOC string.
type Type string

// Recognized IOC types, in classification priority order.
const (
	TypeIPv4   Type = "ipv4"
	TypeIPv6   Type = "ipv6"
	TypeDomain Type = "domain"
	TypeURL    Type = "url"
	TypeEmail  Type = "email"
	TypeMD5    Type = "md5"
	TypeSHA1   Type = "sha1"
	TypeSHA256 Type = "sha256"

	// TypeNone is returned for input matching no recognized format.
	TypeNone Type = "none"
)

// String returns the string representation of the IOC type.
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the type is a recognized observable format.
// TypeNone is not a valid observable format.
func (t Type) IsValid() bool {
	switch t {
	case TypeIPv4, TypeIPv6, TypeDomain, TypeURL, TypeEmail,
		TypeMD5, TypeSHA1, TypeSHA256:
		return true
	default:
		return false
	}
}

// Observable returns the STIX cyber-observable object type for this IOC
// type. Hash types all observe files.
func (t Type) Observable() string {
	switch t {
	case TypeIPv4:
		return "ipv4-addr"
	case TypeIPv6:
		return "ipv6-addr"
	case TypeDomain:
		return "domain-name"
	case TypeURL:
		return "url"
	case TypeEmail:
		return "email-addr"
	case TypeMD5, TypeSHA1, TypeSHA256:
		return "file"
	default:
		return ""
	}
}

// Format patterns for each recognized IOC type. The IPv6 pattern permits
// omitted leading zero groups but not compressed "::" notation; that
// looseness is kept for compatibility with feeds already classified this way.
var (
	ipv4Pattern   = regexp.MustCompile(`^(?:[0-9]{1,3}\.){3}[0-9]{1,3}$`)
	ipv6Pattern   = regexp.MustCompile(`^(?:[0-9a-fA-F]{0,4}:){7}[0-9a-fA-F]{0,4}$`)
	domainPattern = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}$`)
	urlPattern    = regexp.MustCompile(`^https?://\S+$`)
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	md5Pattern    = regexp.MustCompile(`^[a-fA-F0-9]{32}$`)
	sha1Pattern   = regexp.MustCompile(`^[a-fA-F0-9]{40}$`)
	sha256Pattern = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)
)

// checks is the ordered classification table. Order matters: the first
// matching entry wins, so narrower formats that could also satisfy a later
// check (a dotted quad is also a syntactically plausible domain) must come
// first.
var checks = []struct {
	typ   Type
	match func(string) bool
}{
	{TypeIPv4, ipv4Pattern.MatchString},
	{TypeIPv6, ipv6Pattern.MatchString},
	{TypeDomain, domainPattern.MatchString},
	{TypeURL, urlPattern.MatchString},
	{TypeEmail, emailPattern.MatchString},
	{TypeMD5, md5Pattern.MatchString},
	{TypeSHA1, sha1Pattern.MatchString},
	{TypeSHA256, sha256Pattern.MatchString},
}

// Detect classifies a raw IOC string. The input is trimmed before matching.
// Detect is total: unrecognized input yields TypeNone, never an error.
func Detect(value string) Type {
	value = strings.TrimSpace(value)
	if value == "" {
		return TypeNone
	}
	for _, c := range checks {
		if c.match(value) {
			return c.typ
		}
	}
	return TypeNone
}
