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

package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/NVIDIA/relctl/pkg/defaults"
	"github.com/NVIDIA/relctl/pkg/errors"
)

// TagStore abstracts the version-control tag namespace behind the three
// operations the release workflow needs. Implementations must treat tags
// as immutable: CreateTag fails when the tag already exists.
type TagStore interface {
	// ListTags returns all tag names known to the repository.
	// The returned list may be empty and may contain arbitrary strings.
	ListTags(ctx context.Context) ([]string, error)

	// CreateTag creates a lightweight tag with the given name at the
	// current commit. It fails if a tag of that name already exists.
	CreateTag(ctx context.Context, name string) error

	// PushTag pushes the named tag, and only that tag, to the named remote.
	PushTag(ctx context.Context, remote, name string) error

	// Head returns the abbreviated SHA of the current commit.
	Head(ctx context.Context) (string, error)
}

// CLI is a TagStore backed by the git command-line tool.
// The zero value operates on the current working directory.
type CLI struct {
	// Dir is the repository directory. Empty means the process working
	// directory.
	Dir string
}

// NewCLI creates a git CLI tag store for the given repository directory.
func NewCLI(dir string) *CLI {
	return &CLI{Dir: dir}
}

// Available verifies that the git binary can be invoked.
func (g *CLI) Available() error {
	if _, err := exec.LookPath("git"); err != nil {
		return errors.Wrap(errors.ErrCodeExternal, "git is not available on this system", err)
	}
	return nil
}

// ListTags returns every tag name in the repository, one per line of
// `git tag --list` output.
func (g *CLI) ListTags(ctx context.Context) ([]string, error) {
	out, err := g.run(ctx, defaults.GitQueryTimeout, "tag", "--list")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExternal, "failed to list tags", err)
	}

	var tags []string
	for _, line := range strings.Split(out, "\n") {
		if tag := strings.TrimSpace(line); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}

// CreateTag creates a lightweight tag at HEAD. Git itself rejects the call
// when the tag already exists; that failure propagates unchanged.
func (g *CLI) CreateTag(ctx context.Context, name string) error {
	if _, err := g.run(ctx, defaults.GitTagTimeout, "tag", name); err != nil {
		return errors.WrapWithContext(errors.ErrCodeExternal, "failed to create tag", err,
			map[string]any{"tag": name})
	}
	return nil
}

// PushTag pushes a single named tag to the remote. Network failures,
// permission denials, and remote-side rejections propagate as errors.
func (g *CLI) PushTag(ctx context.Context, remote, name string) error {
	if _, err := g.run(ctx, defaults.GitPushTimeout, "push", remote, name); err != nil {
		return errors.WrapWithContext(errors.ErrCodeExternal, "failed to push tag", err,
			map[string]any{"tag": name, "remote": remote})
	}
	return nil
}

// Head returns the abbreviated SHA of the current commit.
func (g *CLI) Head(ctx context.Context) (string, error) {
	out, err := g.run(ctx, defaults.GitQueryTimeout, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeExternal, "failed to resolve HEAD", err)
	}
	return strings.TrimSpace(out), nil
}

// run executes a git subcommand with a timeout, returning stdout.
// Stderr is captured and folded into the returned error so the underlying
// tool's diagnostics reach the operator verbatim.
func (g *CLI) run(ctx context.Context, timeout time.Duration, sub string, args ...string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, "git", append([]string{sub}, args...)...)
	cmd.Dir = g.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %w: %s", sub, err, msg)
		}
		return "", fmt.Errorf("git %s: %w", sub, err)
	}
	return stdout.String(), nil
}
