// SPDX-License-Identifier: MPL-2.0

package newtype

import "fmt"

const (
	VersionMajor = 2
	VersionMinor = 0
	VersionPatch = 0
	VersionName  = "Brynn"
)

// VersionInfo identifies a release of the package.
type VersionInfo struct {
	Major int
	Minor int
	Patch int
	Name  string
}

// Version returns the version of the package.
func Version() VersionInfo {
	return VersionInfo{Major: VersionMajor, Minor: VersionMinor, Patch: VersionPatch, Name: VersionName}
}

// String renders the version as "2.0.0 (Brynn)".
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d (%s)", v.Major, v.Minor, v.Patch, v.Name)
}
