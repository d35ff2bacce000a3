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

// Package config provides project configuration for release operations.
//
// Configuration comes from an optional .release.yaml file in the working
// directory, combined with functional options supplied by the CLI. The
// resulting Config is immutable; all access goes through getter methods.
//
// # File Layout
//
//	app: myapp
//	remote: origin
//	output_dir: build_output
//	targets:
//	  - platform: Linux
//	    artifacts:
//	      - dist/myapp
//	      - README.md
//	  - platform: Windows
//	    artifacts:
//	      - dist/myapp.exe
//
// A missing file is not an error: defaults apply and every setting can
// still be provided through CLI flags.
//
// # Usage
//
//	cfg, err := config.Load("", config.WithRemote(remoteFlag))
//	if err != nil {
//		return err
//	}
package config
