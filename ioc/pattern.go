package ioc

import (
	"fmt"
	"strings"
)

// Pattern builds a STIX 2.1 pattern expression for an IOC value of the given
// type. The function is pure and deterministic: identical inputs always
// produce byte-identical output.
//
// Hash values are lower-cased. An unknown type degrades to a generic
// single-field comparison keyed by the type tag itself, so Pattern never
// fails.
func Pattern(value string, t Type) string {
	switch t {
	case TypeIPv4:
		return fmt.Sprintf("[network-traffic:dst_ref.type = 'ipv4-addr' AND network-traffic:dst_ref.value = '%s']", value)
	case TypeIPv6:
		return fmt.Sprintf("[network-traffic:dst_ref.type = 'ipv6-addr' AND network-traffic:dst_ref.value = '%s']", value)
	case TypeDomain:
		return fmt.Sprintf("[domain-name:value = '%s']", value)
	case TypeURL:
		return fmt.Sprintf("[url:value = '%s']", value)
	case TypeEmail:
		return fmt.Sprintf("[email-addr:value = '%s']", value)
	case TypeMD5:
		return fmt.Sprintf("[file:hashes.MD5 = '%s']", strings.ToLower(value))
	case TypeSHA1:
		return fmt.Sprintf("[file:hashes.SHA-1 = '%s']", strings.ToLower(value))
	case TypeSHA256:
		return fmt.Sprintf("[file:hashes.SHA-256 = '%s']", strings.ToLower(value))
	default:
		return fmt.Sprintf("[%s:value = '%s']", t, value)
	}
}
