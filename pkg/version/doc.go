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

// Package version implements the release version model: a strict
// v<major>.<minor>.<patch> triple with numeric ordering, tag-set
// resolution, and bump arithmetic.
//
// Tag parsing is stricter than general semantic versioning:
// pre-release and build-metadata suffixes are not release tags here, and
// tags carrying them are ignored rather than partially parsed. This keeps
// the "latest release" computation unambiguous for the tagging workflow.
package version
