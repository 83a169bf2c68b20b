// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfoUnknown is shown for build metadata that was not injected.
const BuildInfoUnknown = "N/A"

const shortCommitLength = 7

// AppBuildInfo is the build metadata of the preview binary, injected with
// -ldflags and shown on the build info screen.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo trims the values and replaces empty ones with
// [BuildInfoUnknown].
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// ShortCommit is the abbreviated commit hash.
func (a AppBuildInfo) ShortCommit() string {
	if len(a.buildCommit) <= shortCommitLength || a.buildCommit == BuildInfoUnknown {
		return a.buildCommit
	}
	return a.buildCommit[:shortCommitLength]
}

func orUnknown(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return BuildInfoUnknown
	}
	return v
}
