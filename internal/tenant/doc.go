// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tenant maps request hostnames to tenant slugs.
//
// A slug identifies one configured client of the playbook. It is derived
// from the leftmost label of a hostname that has more than four
// dot-separated labels (e.g. "acme" in "acme.playbook.example.co.uk"), and
// every value that may end up in a URL or a filesystem path is passed
// through [SanitiseSlug] first. All functions are total: when a tenant cannot
// be determined they return [DefaultSlug].
package tenant
