// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tenant

import (
	"net"
	"regexp"
	"strings"
)

// DefaultSlug is the slug of the built-in, tenant-agnostic configuration.
const DefaultSlug = "default"

// baseDomainLabels is the number of labels in the shared base domain
// (e.g. "playbook.example.co.uk"). Anything in front of it is the tenant.
const baseDomainLabels = 4

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ExtractSlugFromHostname returns the tenant candidate encoded in hostname.
//
// "localhost" and "127.0.0.1" map to [DefaultSlug]. A hostname with more than
// four labels yields its first label; anything shorter yields [DefaultSlug].
// A trailing ":port" is ignored. The result is NOT sanitised.
func ExtractSlugFromHostname(hostname string) string {
	hostname = stripPort(hostname)

	if hostname == "localhost" || hostname == "127.0.0.1" {
		return DefaultSlug
	}

	labels := strings.Split(hostname, ".")
	if len(labels) > baseDomainLabels {
		return labels[0]
	}

	return DefaultSlug
}

// SanitiseSlug lower-cases candidate and returns it when it consists only of
// [a-z0-9-]. Any other input, including the empty string, yields
// [DefaultSlug].
//
// This is the only gate before a slug is interpolated into a file path or a
// fetch URL.
func SanitiseSlug(candidate string) string {
	slug := strings.ToLower(candidate)
	if !slugPattern.MatchString(slug) {
		return DefaultSlug
	}

	return slug
}

// Resolve extracts and sanitises the slug for hostname.
func Resolve(hostname string) string {
	return SanitiseSlug(ExtractSlugFromHostname(hostname))
}

// IsDefault reports whether slug selects the built-in configuration.
func IsDefault(slug string) bool {
	return slug == DefaultSlug
}

func stripPort(hostname string) string {
	if host, _, err := net.SplitHostPort(hostname); err == nil {
		return host
	}

	return hostname
}
