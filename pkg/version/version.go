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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Error types for version parsing failures
var (
	ErrEmptyVersion    = errors.New("version string is empty")
	ErrMissingPrefix   = errors.New("version tag must start with 'v'")
	ErrWrongComponents = errors.New("version must have exactly 3 components")
	// ErrNonNumeric covers any non-digit rune in a component, including signs.
	ErrNonNumeric = errors.New("version component is not numeric")
)

// Version represents a release version as an ordered triple of non-negative
// integers, rendered as "v<major>.<minor>.<patch>". Comparison is numeric
// per component (major, then minor, then patch), never lexicographic over
// the rendered string.
type Version struct {
	Major int `json:"major" yaml:"major"`
	Minor int `json:"minor" yaml:"minor"`
	Patch int `json:"patch" yaml:"patch"`
}

// Zero is the sentinel version used when a repository has no release tags.
// Bumping it yields the first release (e.g. a major bump produces v1.0.0).
var Zero = Version{}

// New creates a new Version with the specified major, minor, and patch values.
func New(major, minor, patch int) Version {
	return Version{
		Major: major,
		Minor: minor,
		Patch: patch,
	}
}

// String returns the canonical tag rendering, e.g. "v1.2.3".
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseTag parses a release tag into a Version.
//
// The accepted grammar is strict: exactly one leading "v" followed by three
// dot-separated non-negative base-10 integers and nothing else. Tags with a
// different component count ("v1.2"), no prefix ("1.2.3"), or any suffix
// ("v1.2.3-rc1", "v1.2.3+build") are rejected, not partially parsed.
func ParseTag(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}

	rest, ok := strings.CutPrefix(s, "v")
	if !ok {
		return Version{}, fmt.Errorf("%w: %q", ErrMissingPrefix, s)
	}

	parts := strings.Split(rest, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("%w: %q", ErrWrongComponents, s)
	}

	var v Version
	for i, part := range parts {
		if part == "" {
			return Version{}, fmt.Errorf("%w: empty component in %q", ErrNonNumeric, s)
		}
		for _, ch := range part {
			if ch < '0' || ch > '9' {
				return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
			}
		}
		num, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q", ErrNonNumeric, part)
		}

		switch i {
		case 0:
			v.Major = num
		case 1:
			v.Minor = num
		case 2:
			v.Patch = num
		}
	}

	return v, nil
}

// MustParseTag parses a release tag and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use ParseTag and handle errors explicitly.
func MustParseTag(s string) Version {
	v, err := ParseTag(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseTag: %v", err))
	}
	return v
}

// ParseExplicit parses a user-supplied explicit version argument.
// Unlike ParseTag it tolerates a missing "v" prefix ("1.2.3" and "v1.2.3"
// are both accepted), but the value must still be a three-component
// semantic version with no pre-release or build suffix.
func ParseExplicit(s string) (Version, error) {
	if s == "" {
		return Version{}, ErrEmptyVersion
	}
	if !strings.HasPrefix(s, "v") {
		s = "v" + s
	}
	if !semver.IsValid(s) {
		return Version{}, fmt.Errorf("%q is not a valid semantic version", s)
	}
	return ParseTag(s)
}

// Compare returns an integer comparing two versions:
// -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		if v.Major < other.Major {
			return -1
		}
		return 1
	}
	if v.Minor != other.Minor {
		if v.Minor < other.Minor {
			return -1
		}
		return 1
	}
	if v.Patch != other.Patch {
		if v.Patch < other.Patch {
			return -1
		}
		return 1
	}
	return 0
}

// IsNewer returns true if v is strictly newer than other.
func (v Version) IsNewer(other Version) bool {
	return v.Compare(other) > 0
}

// Equals returns true if v exactly equals other.
func (v Version) Equals(other Version) bool {
	return v == other
}

// IsValid returns true if all components are non-negative.
func (v Version) IsValid() bool {
	return v.Major >= 0 && v.Minor >= 0 && v.Patch >= 0
}

// Latest returns the highest Version among the given tag names, ignoring
// every tag that does not match the strict release tag grammar. The second
// return value reports whether any tag matched; when it is false the
// returned Version is the Zero sentinel (v0.0.0).
func Latest(tags []string) (Version, bool) {
	var (
		latest Version
		found  bool
	)
	for _, tag := range tags {
		v, err := ParseTag(tag)
		if err != nil {
			continue
		}
		if !found || v.IsNewer(latest) {
			latest = v
			found = true
		}
	}
	return latest, found
}
