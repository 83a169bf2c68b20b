package tenant

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostnameFromHeaders(t *testing.T) {
	tests := []struct {
		name    string
		referer string
		origin  string
		want    string
	}{
		{
			name:    "referer wins",
			referer: "https://acme.playbook.example.co.uk/page",
			origin:  "https://other.playbook.example.co.uk",
			want:    "acme.playbook.example.co.uk",
		},
		{
			name:   "origin fallback",
			origin: "https://phew.playbook.example.co.uk",
			want:   "phew.playbook.example.co.uk",
		},
		{
			name:    "unparsable referer falls to origin",
			referer: "not a url",
			origin:  "http://localhost:5173",
			want:    "localhost",
		},
		{
			name:    "port is dropped",
			referer: "http://acme.playbook.example.co.uk:8080/x?y=1",
			want:    "acme.playbook.example.co.uk",
		},
		{name: "nothing", want: "localhost"},
		{name: "garbage only", referer: "%%%", origin: "::", want: "localhost"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HostnameFromHeaders(tt.referer, tt.origin))
		})
	}
}

func TestResolveWithOverrides(t *testing.T) {
	tests := []struct {
		name        string
		hostname    string
		query       url.Values
		envOverride string
		want        string
	}{
		{
			name:     "hostname tenant ignores overrides",
			hostname: "acme.playbook.example.co.uk",
			query:    url.Values{"client": {"phew"}},
			want:     "acme",
		},
		{
			name:     "query override on localhost",
			hostname: "localhost",
			query:    url.Values{"client": {"acme"}},
			want:     "acme",
		},
		{
			name:        "query beats env",
			hostname:    "localhost",
			query:       url.Values{"client": {"acme"}},
			envOverride: "phew",
			want:        "acme",
		},
		{
			name:        "env override",
			hostname:    "localhost",
			envOverride: "Phew",
			want:        "phew",
		},
		{
			name:     "unsafe query override",
			hostname: "localhost",
			query:    url.Values{"client": {"../../etc/passwd"}},
			want:     DefaultSlug,
		},
		{
			name:        "unsafe env override",
			hostname:    "localhost",
			envOverride: "a/b",
			want:        DefaultSlug,
		},
		{name: "no overrides", hostname: "localhost", want: DefaultSlug},
		{
			name:     "unsafe hostname label falls through to overrides",
			hostname: "a_b.playbook.example.co.uk",
			query:    url.Values{"client": {"acme"}},
			want:     "acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveWithOverrides(tt.hostname, tt.query, tt.envOverride))
		})
	}
}

func TestResolvePageURL(t *testing.T) {
	assert.Equal(t, "acme", ResolvePageURL("http://localhost/?client=acme", ""))
	assert.Equal(t, "phew", ResolvePageURL("https://phew.playbook.example.co.uk/guide", "acme"))
	assert.Equal(t, "acme", ResolvePageURL("::bad::", "acme"))
	assert.Equal(t, DefaultSlug, ResolvePageURL("", ""))
}
