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

package releaser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"

	"github.com/NVIDIA/relctl/pkg/defaults"
	"github.com/NVIDIA/relctl/pkg/errors"
	"github.com/NVIDIA/relctl/pkg/git"
	"github.com/NVIDIA/relctl/pkg/version"
)

// Result summarizes a release run.
type Result struct {
	// ReleaseID is the unique identifier of this run, for log correlation.
	ReleaseID string `json:"releaseId" yaml:"releaseId"`

	// Previous is the latest version resolved from existing tags
	// (the zero sentinel when no release tag existed).
	Previous version.Version `json:"previous" yaml:"previous"`

	// Next is the version this run proposed.
	Next version.Version `json:"next" yaml:"next"`

	// Tag is the rendered tag name of Next.
	Tag string `json:"tag" yaml:"tag"`

	// Aborted is true when the operator declined the confirmation prompt.
	Aborted bool `json:"aborted" yaml:"aborted"`

	// Pushed is true once the tag has been pushed to the remote.
	Pushed bool `json:"pushed" yaml:"pushed"`
}

// Releaser drives the release workflow: resolve the latest tag, bump it,
// confirm with the operator, then tag and push. The tag namespace is an
// injected collaborator so tests can substitute an in-memory store.
//
// The flow is strictly sequential and one-shot; a Releaser performs at
// most one mutation per Release call and holds no state between calls.
type Releaser struct {
	store       git.TagStore
	remote      string
	autoConfirm bool
	interactive bool
	in          io.Reader
	out         io.Writer
}

// Option defines a functional option for configuring a Releaser.
type Option func(*Releaser)

// WithRemote overrides the git remote tags are pushed to (default origin).
func WithRemote(remote string) Option {
	return func(r *Releaser) {
		if remote != "" {
			r.remote = remote
		}
	}
}

// WithAutoConfirm skips the interactive confirmation prompt.
func WithAutoConfirm(yes bool) Option {
	return func(r *Releaser) {
		r.autoConfirm = yes
	}
}

// WithConfirmInput sets the reader the confirmation answer is read from.
func WithConfirmInput(in io.Reader) Option {
	return func(r *Releaser) {
		if in != nil {
			r.in = in
			r.interactive = readerIsTerminal(in)
		}
	}
}

// WithOutput sets the writer progress lines are printed to.
func WithOutput(out io.Writer) Option {
	return func(r *Releaser) {
		if out != nil {
			r.out = out
		}
	}
}

// New creates a Releaser over the given tag store.
//
// Example:
//
//	r := releaser.New(git.NewCLI(""),
//	    releaser.WithRemote("origin"),
//	    releaser.WithAutoConfirm(yes),
//	)
func New(store git.TagStore, opts ...Option) *Releaser {
	r := &Releaser{
		store:       store,
		remote:      defaults.DefaultRemote,
		in:          os.Stdin,
		out:         os.Stdout,
		interactive: readerIsTerminal(os.Stdin),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// readerIsTerminal reports whether the reader is an interactive terminal.
// Non-file readers (test buffers, pipes wrapped in bufio) count as
// interactive so the prompt is still exercised.
func readerIsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Latest resolves the highest release tag currently in the repository.
// The second return value is false when no tag matches the release
// pattern, in which case the zero sentinel (v0.0.0) is returned.
func (r *Releaser) Latest(ctx context.Context) (version.Version, bool, error) {
	tags, err := r.store.ListTags(ctx)
	if err != nil {
		return version.Zero, false, err
	}
	latest, found := version.Latest(tags)
	return latest, found, nil
}

// Next computes the version a bump of the given kind would produce,
// without any side effects.
func (r *Releaser) Next(ctx context.Context, kind version.BumpKind) (*Result, error) {
	current, _, err := r.Latest(ctx)
	if err != nil {
		return nil, err
	}
	next, err := current.Bump(kind)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid bump kind", err)
	}
	return &Result{
		Previous: current,
		Next:     next,
		Tag:      next.String(),
	}, nil
}

// Release runs the full workflow for the given bump kind:
// resolve latest, bump, confirm, tag, push.
//
// A declined confirmation is not an error: the returned Result has
// Aborted set and no mutation has occurred. Tag and push failures
// propagate unchanged with no retry and no rollback of a tag that was
// already created locally.
func (r *Releaser) Release(ctx context.Context, kind version.BumpKind) (*Result, error) {
	res, err := r.Next(ctx, kind)
	if err != nil {
		return nil, err
	}
	return r.publish(ctx, res)
}

// ReleaseVersion runs the confirm-and-publish workflow for an explicit
// version instead of a bump of the latest tag. The version must be newer
// than the current latest release.
func (r *Releaser) ReleaseVersion(ctx context.Context, next version.Version) (*Result, error) {
	current, _, err := r.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if !next.IsNewer(current) {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("version %s is not newer than current release %s", next, current))
	}
	res := &Result{
		Previous: current,
		Next:     next,
		Tag:      next.String(),
	}
	return r.publish(ctx, res)
}

func (r *Releaser) publish(ctx context.Context, res *Result) (*Result, error) {
	res.ReleaseID = uuid.NewString()

	log := slog.With("releaseId", res.ReleaseID)
	log.Debug("resolved versions", "current", res.Previous.String(), "next", res.Tag)

	fmt.Fprintf(r.out, "Current version: %s\n", res.Previous)
	fmt.Fprintf(r.out, "Next version:    %s\n", res.Tag)

	ok, err := r.confirm(res.Tag)
	if err != nil {
		return nil, err
	}
	if !ok {
		fmt.Fprintln(r.out, "Release cancelled.")
		log.Info("release cancelled by operator", "tag", res.Tag)
		res.Aborted = true
		return res, nil
	}

	if head, herr := r.store.Head(ctx); herr == nil {
		log.Debug("tagging commit", "commit", head)
	}

	if err := r.store.CreateTag(ctx, res.Tag); err != nil {
		return nil, err
	}
	log.Info("tag created", "tag", res.Tag)

	if err := r.store.PushTag(ctx, r.remote, res.Tag); err != nil {
		// No rollback of the local tag; the operator resolves the
		// partial state manually.
		return nil, err
	}
	res.Pushed = true
	log.Info("tag pushed", "tag", res.Tag, "remote", r.remote)

	fmt.Fprintf(r.out, "Tagged and pushed %s to %s.\n", res.Tag, r.remote)
	return res, nil
}

// confirm blocks on the operator's yes/no answer. Only the exact
// case-insensitive string "y" proceeds; any other answer, empty input,
// and EOF all abort. With auto-confirm enabled no prompt is shown, and a
// non-interactive stdin without auto-confirm aborts instead of hanging.
func (r *Releaser) confirm(tag string) (bool, error) {
	if r.autoConfirm {
		return true, nil
	}
	if !r.interactive {
		fmt.Fprintln(r.out, "Standard input is not a terminal; use --yes to release non-interactively.")
		return false, nil
	}

	fmt.Fprintf(r.out, "Tag and push %s? [y/N]: ", tag)

	line, err := bufio.NewReader(r.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(errors.ErrCodeInternal, "failed to read confirmation", err)
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}
