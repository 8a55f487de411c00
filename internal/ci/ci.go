// SPDX-License-Identifier: MPL-2.0

// Package ci decides whether an action runs under continuous integration.
//
// The decision combines two signals: an upstream vendor detection (well-known
// markers set by CI platforms) and the generic CI variable. Only the exact
// string "true" in the CI variable counts.
package ci

import (
	"github.com/invowk/dotnet-cast/internal/env"
)

// IndicatorVar is the generic CI indicator variable.
const IndicatorVar = "CI"

type (
	// Vendor names a CI platform recognised by its environment markers.
	Vendor string

	// marker is a variable whose non-empty presence identifies a vendor.
	marker struct {
		vendor Vendor
		name   string
	}
)

// Known vendors.
const (
	VendorNone         Vendor = ""
	VendorGitHub       Vendor = "github-actions"
	VendorAzure        Vendor = "azure-pipelines"
	VendorGitLab       Vendor = "gitlab-ci"
	VendorJenkins      Vendor = "jenkins"
	VendorCircleCI     Vendor = "circleci"
	VendorTravis       Vendor = "travis-ci"
	VendorBitbucket    Vendor = "bitbucket-pipelines"
	VendorTeamCity     Vendor = "teamcity"
	VendorBuildkite    Vendor = "buildkite"
	VendorAppVeyor     Vendor = "appveyor"
	VendorDroneCI      Vendor = "drone"
	VendorAWSCodeBuild Vendor = "aws-codebuild"
)

// markers are checked in order; the first hit wins.
var markers = []marker{
	{VendorGitHub, "GITHUB_ACTIONS"},
	{VendorAzure, "TF_BUILD"},
	{VendorGitLab, "GITLAB_CI"},
	{VendorJenkins, "JENKINS_URL"},
	{VendorCircleCI, "CIRCLECI"},
	{VendorTravis, "TRAVIS"},
	{VendorBitbucket, "BITBUCKET_BUILD_NUMBER"},
	{VendorTeamCity, "TEAMCITY_VERSION"},
	{VendorBuildkite, "BUILDKITE"},
	{VendorAppVeyor, "APPVEYOR"},
	{VendorDroneCI, "DRONE"},
	{VendorAWSCodeBuild, "CODEBUILD_BUILD_ID"},
}

// String returns the vendor name.
func (v Vendor) String() string { return string(v) }

// DetectVendor reports the CI platform identified by its markers in snap.
func DetectVendor(snap env.Snapshot) (Vendor, bool) {
	for _, m := range markers {
		if _, ok := snap.Lookup(m.name); ok {
			return m.vendor, true
		}
	}
	return VendorNone, false
}

// Detect combines the upstream signal with the generic indicator variable.
// It is true when upstream is true or CI holds exactly "true".
func Detect(snap env.Snapshot, upstream bool) bool {
	return upstream || snap.IsTrue(IndicatorVar)
}
