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

package archiver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/relctl/pkg/config"
	"github.com/NVIDIA/relctl/pkg/errors"
	"github.com/NVIDIA/relctl/pkg/version"
)

// Archive describes one generated platform archive.
type Archive struct {
	Platform string `json:"platform" yaml:"platform"`
	Path     string `json:"path" yaml:"path"`
	Files    int    `json:"files" yaml:"files"`
}

// Result summarizes a packaging run.
type Result struct {
	Version  version.Version `json:"version" yaml:"version"`
	Archives []Archive       `json:"archives" yaml:"archives"`
	Checksum string          `json:"checksum_file" yaml:"checksum_file"`
}

// Archiver generates platform distribution archives for a release.
type Archiver struct {
	app       string
	outputDir string
	targets   []config.Target
}

// New creates an Archiver from the given project configuration.
func New(cfg *config.Config) (*Archiver, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "config is required")
	}

	if len(cfg.Targets()) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "no packaging targets configured")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid packaging config", err)
	}

	return &Archiver{
		app:       cfg.App(),
		outputDir: cfg.OutputDir(),
		targets:   cfg.Targets(),
	}, nil
}

// ArchiveName returns the file name for a platform archive. Windows
// targets get a zip, everything else a tar.gz.
func (a *Archiver) ArchiveName(platform string, v version.Version) string {
	ext := "tar.gz"
	if strings.Contains(strings.ToLower(platform), "windows") {
		ext = "zip"
	}
	return fmt.Sprintf("%s-%s-%s.%s", a.app, platform, v.String(), ext)
}

// Package generates one archive per configured target for the given
// version, writing them and a checksums.txt into the output directory.
// Targets are processed concurrently; the first failure cancels the rest.
func (a *Archiver) Package(ctx context.Context, v version.Version) (*Result, error) {
	if !v.IsValid() {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "packaging requires a valid version")
	}

	if err := os.MkdirAll(a.outputDir, 0o750); err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to create output directory", err,
			map[string]any{"dir": a.outputDir})
	}

	archives := make([]Archive, len(a.targets))

	// The group context is canceled once Wait returns, so checksum
	// generation below runs on the caller's context instead.
	g, gctx := errgroup.WithContext(ctx)
	for i, target := range a.targets {
		g.Go(func() error {
			arc, err := a.packageTarget(gctx, target, v)
			if err != nil {
				return err
			}
			archives[i] = *arc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(archives))
	for _, arc := range archives {
		paths = append(paths, arc.Path)
	}
	sort.Strings(paths)

	if err := GenerateChecksums(ctx, a.outputDir, paths); err != nil {
		return nil, err
	}

	slog.Info("release packaged",
		"version", v.String(),
		"archives", len(archives),
		"output_dir", a.outputDir,
	)

	return &Result{
		Version:  v,
		Archives: archives,
		Checksum: filepath.Join(a.outputDir, ChecksumFileName),
	}, nil
}

// packageTarget builds a single platform archive.
func (a *Archiver) packageTarget(ctx context.Context, target config.Target, v version.Version) (*Archive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	files, err := resolveArtifacts(target.Artifacts)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"failed to resolve artifacts", err,
			map[string]any{"platform": target.Platform})
	}

	if len(files) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeNotFound,
			"artifact patterns matched no files",
			map[string]any{
				"platform": target.Platform,
				"patterns": strings.Join(target.Artifacts, ", "),
			})
	}

	path := filepath.Join(a.outputDir, a.ArchiveName(target.Platform, v))

	if strings.HasSuffix(path, ".zip") {
		err = writeZip(ctx, path, files)
	} else {
		err = writeTarGz(ctx, path, files)
	}
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal,
			"failed to write archive", err,
			map[string]any{"path": path})
	}

	slog.Debug("archive created",
		"platform", target.Platform,
		"path", path,
		"files", len(files),
	)

	return &Archive{
		Platform: target.Platform,
		Path:     path,
		Files:    len(files),
	}, nil
}

// resolveArtifacts expands glob patterns into a sorted, de-duplicated
// list of regular files.
func resolveArtifacts(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil {
				return nil, fmt.Errorf("failed to stat %s: %w", match, err)
			}
			if info.IsDir() || seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}
