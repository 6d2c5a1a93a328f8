package ioc

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Type
	}{
		{"ipv4", "192.0.2.1", TypeIPv4},
		{"ipv4 broadcast", "255.255.255.255", TypeIPv4},
		{"ipv6 full", "2001:0db8:85a3:0000:0000:8a2e:0370:7334", TypeIPv6},
		{"ipv6 short groups", "2001:db8:85a3:0:0:8a2e:370:7334", TypeIPv6},
		{"domain", "evil.example.com", TypeDomain},
		{"domain with hyphen", "bad-actor.example.org", TypeDomain},
		{"url http", "http://evil.example.com/payload", TypeURL},
		{"url https", "https://evil.example.com/", TypeURL},
		{"email", "phish@evil.example.com", TypeEmail},
		{"md5", "d41d8cd98f00b204e9800998ecf8427e", TypeMD5},
		{"sha1", "da39a3ee5e6b4b0d3255bfef95601890afd80709", TypeSHA1},
		{"sha256", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", TypeSHA256},
		{"md5 uppercase", "D41D8CD98F00B204E9800998ECF8427E", TypeMD5},
		{"unrecognized", "not-an-ioc", TypeNone},
		{"empty", "", TypeNone},
		{"whitespace only", "   ", TypeNone},
		{"bare word", "localhost", TypeNone},
		{"trimmed before match", "  192.0.2.1  ", TypeIPv4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.value); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestDetect_PriorityOrder(t *testing.T) {
	// The ipv4 check runs before the domain check, so a dotted quad never
	// reaches the domain rules.
	if got := Detect("10.0.0.1"); got != TypeIPv4 {
		t.Errorf("Detect(10.0.0.1) = %v, want %v", got, TypeIPv4)
	}
	// 32 hex chars that are all letters still classify as md5, not domain,
	// because they contain no dot.
	if got := Detect("abcdefabcdefabcdefabcdefabcdefab"); got != TypeMD5 {
		t.Errorf("Detect(32 hex chars) = %v, want %v", got, TypeMD5)
	}
}

func TestType_IsValid(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want bool
	}{
		{"ipv4", TypeIPv4, true},
		{"ipv6", TypeIPv6, true},
		{"domain", TypeDomain, true},
		{"url", TypeURL, true},
		{"email", TypeEmail, true},
		{"md5", TypeMD5, true},
		{"sha1", TypeSHA1, true},
		{"sha256", TypeSHA256, true},
		{"none", TypeNone, false},
		{"empty", Type(""), false},
		{"unknown", Type("registry-key"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestType_Observable(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{TypeIPv4, "ipv4-addr"},
		{TypeIPv6, "ipv6-addr"},
		{TypeDomain, "domain-name"},
		{TypeURL, "url"},
		{TypeEmail, "email-addr"},
		{TypeMD5, "file"},
		{TypeSHA1, "file"},
		{TypeSHA256, "file"},
		{TypeNone, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			if got := tt.typ.Observable(); got != tt.want {
				t.Errorf("Observable() = %q, want %q", got, tt.want)
			}
		})
	}
}
