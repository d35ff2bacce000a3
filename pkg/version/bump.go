// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"fmt"
	"strings"
)

// BumpKind identifies which version component a bump increments.
type BumpKind string

const (
	// BumpMajor increments the major component and zeroes minor and patch.
	BumpMajor BumpKind = "major"
	// BumpMinor increments the minor component and zeroes patch.
	BumpMinor BumpKind = "minor"
	// BumpPatch increments the patch component.
	BumpPatch BumpKind = "patch"

	// DefaultBumpKind is used when no bump argument is provided.
	DefaultBumpKind = BumpPatch
)

// String returns the string representation of the bump kind.
func (k BumpKind) String() string {
	return string(k)
}

// IsValid returns true if the bump kind is one of major, minor, or patch.
func (k BumpKind) IsValid() bool {
	switch k {
	case BumpMajor, BumpMinor, BumpPatch:
		return true
	default:
		return false
	}
}

// SupportedBumpKinds returns the list of valid bump kind names.
func SupportedBumpKinds() string {
	return strings.Join([]string{
		string(BumpMajor),
		string(BumpMinor),
		string(BumpPatch),
	}, ", ")
}

// ParseBumpKind validates a user-supplied bump argument. An empty string
// resolves to the default (patch); anything outside major/minor/patch is
// an error.
func ParseBumpKind(s string) (BumpKind, error) {
	if s == "" {
		return DefaultBumpKind, nil
	}
	k := BumpKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("unknown bump kind %q (supported values: %s)", s, SupportedBumpKinds())
	}
	return k, nil
}

// Bump computes the next version from v per standard semantic-versioning
// rules: incrementing a more significant component resets all less
// significant components to zero.
func (v Version) Bump(kind BumpKind) (Version, error) {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	default:
		return Version{}, fmt.Errorf("unknown bump kind %q (supported values: %s)", kind, SupportedBumpKinds())
	}
}
