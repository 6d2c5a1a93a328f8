package ioc

import "testing"

func TestPattern(t *testing.T) {
	tests := []struct {
		name  string
		value string
		typ   Type
		want  string
	}{
		{
			"ipv4",
			"192.0.2.1", TypeIPv4,
			"[network-traffic:dst_ref.type = 'ipv4-addr' AND network-traffic:dst_ref.value = '192.0.2.1']",
		},
		{
			"ipv6",
			"2001:db8:85a3:0:0:8a2e:370:7334", TypeIPv6,
			"[network-traffic:dst_ref.type = 'ipv6-addr' AND network-traffic:dst_ref.value = '2001:db8:85a3:0:0:8a2e:370:7334']",
		},
		{
			"domain",
			"evil.example.com", TypeDomain,
			"[domain-name:value = 'evil.example.com']",
		},
		{
			"url",
			"https://evil.example.com/x", TypeURL,
			"[url:value = 'https://evil.example.com/x']",
		},
		{
			"email",
			"phish@evil.example.com", TypeEmail,
			"[email-addr:value = 'phish@evil.example.com']",
		},
		{
			"md5 lower-cases value",
			"D41D8CD98F00B204E9800998ECF8427E", TypeMD5,
			"[file:hashes.MD5 = 'd41d8cd98f00b204e9800998ecf8427e']",
		},
		{
			"sha1",
			"DA39A3EE5E6B4B0D3255BFEF95601890AFD80709", TypeSHA1,
			"[file:hashes.SHA-1 = 'da39a3ee5e6b4b0d3255bfef95601890afd80709']",
		},
		{
			"sha256",
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", TypeSHA256,
			"[file:hashes.SHA-256 = 'e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855']",
		},
		{
			"unknown type degrades to generic template",
			"something", Type("registry-key"),
			"[registry-key:value = 'something']",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pattern(tt.value, tt.typ); got != tt.want {
				t.Errorf("Pattern(%q, %v) = %q, want %q", tt.value, tt.typ, got, tt.want)
			}
		})
	}
}

func TestPattern_Deterministic(t *testing.T) {
	first := Pattern("evil.example.com", TypeDomain)
	second := Pattern("evil.example.com", TypeDomain)
	if first != second {
		t.Errorf("Pattern not deterministic: %q != %q", first, second)
	}
}
