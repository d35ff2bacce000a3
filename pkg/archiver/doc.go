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

// Package archiver generates platform distribution archives for a release.
//
// Each configured target produces one archive named
// <app>-<platform>-<version>.zip (Windows) or .tar.gz (everything else)
// in the output directory, plus a checksums.txt with SHA256 checksums of
// all archives. Targets are processed concurrently.
//
// # Usage
//
//	arc, err := archiver.New(cfg)
//	if err != nil {
//		return err
//	}
//	result, err := arc.Package(ctx, v)
package archiver
