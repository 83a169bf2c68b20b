package tenant

import (
	"net/url"
	"strings"
)

// fallbackHostname is used when neither header carries a usable URL.
const fallbackHostname = "localhost"

// HostnameFromHeaders returns the hostname of the page that issued a request,
// taken from the Referer header, then the Origin header. When neither parses
// as an absolute URL it returns "localhost", which resolves to the default
// tenant.
func HostnameFromHeaders(referer, origin string) string {
	for _, raw := range []string{referer, origin} {
		if host := hostnameOf(raw); host != "" {
			return host
		}
	}

	return fallbackHostname
}

// ResolveWithOverrides computes the slug for a page served at hostname.
//
// The hostname wins whenever it names a tenant. Only when it resolves to
// [DefaultSlug] are the development overrides consulted, in order: the
// "client" query parameter, then envOverride (the build-time default client).
// Both overrides are sanitised.
func ResolveWithOverrides(hostname string, query url.Values, envOverride string) string {
	slug := Resolve(hostname)
	if !IsDefault(slug) {
		return slug
	}

	if client := query.Get("client"); client != "" {
		return SanitiseSlug(client)
	}

	if envOverride = strings.TrimSpace(envOverride); envOverride != "" {
		return SanitiseSlug(envOverride)
	}

	return DefaultSlug
}

// ResolvePageURL is [ResolveWithOverrides] for a full page URL such as
// "http://localhost:5173/?client=acme". An unparsable URL resolves as
// "localhost" without query overrides.
func ResolvePageURL(pageURL, envOverride string) string {
	u, err := url.Parse(pageURL)
	if err != nil || u.Hostname() == "" {
		return ResolveWithOverrides(fallbackHostname, nil, envOverride)
	}

	return ResolveWithOverrides(u.Hostname(), u.Query(), envOverride)
}

func hostnameOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	return u.Hostname()
}
