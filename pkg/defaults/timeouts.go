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

package defaults

import "time"

// Git subprocess timeouts. Local operations are fast; push crosses the
// network and gets a larger budget.
const (
	// GitQueryTimeout bounds read-only git calls (tag listing, rev-parse).
	GitQueryTimeout = 10 * time.Second

	// GitTagTimeout bounds local tag creation.
	GitTagTimeout = 10 * time.Second

	// GitPushTimeout bounds the tag push to the remote.
	GitPushTimeout = 2 * time.Minute
)

// Packaging timeouts for distribution archive generation.
const (
	// PackageTimeout bounds the whole archive generation run.
	PackageTimeout = 5 * time.Minute
)

// DefaultRemote is the git remote release tags are pushed to.
const DefaultRemote = "origin"

// DefaultOutputDir is the directory release archives are written to.
const DefaultOutputDir = "build_output"
