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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/relctl/pkg/git"
	"github.com/NVIDIA/relctl/pkg/version"
)

func newTestReleaser(store *git.MemStore, answer string, opts ...Option) (*Releaser, *bytes.Buffer) {
	out := &bytes.Buffer{}
	base := []Option{
		WithConfirmInput(strings.NewReader(answer)),
		WithOutput(out),
	}
	return New(store, append(base, opts...)...), out
}

func TestReleasePatchDefaultFlow(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("v0.1.1")
	r, out := newTestReleaser(store, "y\n")

	res, err := r.Release(context.Background(), version.BumpPatch)
	require.NoError(t, err)

	assert.False(t, res.Aborted)
	assert.True(t, res.Pushed)
	assert.Equal(t, "v0.1.2", res.Tag)
	assert.Equal(t, version.New(0, 1, 1), res.Previous)
	assert.NotEmpty(t, res.ReleaseID)

	assert.Contains(t, store.Tags(), "v0.1.2")
	assert.Equal(t, []string{"v0.1.2"}, store.Pushed("origin"))

	assert.Contains(t, out.String(), "Current version: v0.1.1")
	assert.Contains(t, out.String(), "Next version:    v0.1.2")
	assert.Contains(t, out.String(), "Tagged and pushed v0.1.2 to origin.")
}

func TestReleaseMajorFromEmptyRepository(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore()
	r, _ := newTestReleaser(store, "Y\n")

	res, err := r.Release(context.Background(), version.BumpMajor)
	require.NoError(t, err)

	assert.Equal(t, "v1.0.0", res.Tag)
	assert.Equal(t, version.Zero, res.Previous)
	assert.Equal(t, []string{"v1.0.0"}, store.Pushed("origin"))
}

func TestReleaseIgnoresMalformedTags(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("v1.2.3", "v1.10.0", "v2.0.0-beta", "foo")
	r, _ := newTestReleaser(store, "y\n")

	res, err := r.Release(context.Background(), version.BumpMinor)
	require.NoError(t, err)

	// v1.10.0 wins over v1.2.3 numerically; beta and foo are ignored.
	assert.Equal(t, version.New(1, 10, 0), res.Previous)
	assert.Equal(t, "v1.11.0", res.Tag)
}

func TestConfirmationGate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answer  string
		proceed bool
	}{
		{name: "lowercase y", answer: "y\n", proceed: true},
		{name: "uppercase y", answer: "Y\n", proceed: true},
		{name: "y with surrounding spaces", answer: "  y  \n", proceed: true},
		{name: "n", answer: "n\n", proceed: false},
		{name: "yes is not y", answer: "yes\n", proceed: false},
		{name: "mixed case yes", answer: "Yes \n", proceed: false},
		{name: "empty line", answer: "\n", proceed: false},
		{name: "eof without input", answer: "", proceed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := git.NewMemStore("v0.1.1")
			r, out := newTestReleaser(store, tt.answer)

			res, err := r.Release(context.Background(), version.BumpPatch)
			require.NoError(t, err)

			if tt.proceed {
				assert.False(t, res.Aborted)
				assert.Equal(t, []string{"v0.1.2"}, store.Pushed("origin"))
				return
			}

			// Abort is clean: no error, no mutation, notice printed.
			assert.True(t, res.Aborted)
			assert.Equal(t, []string{"v0.1.1"}, store.Tags())
			assert.Empty(t, store.Pushed("origin"))
			assert.Contains(t, out.String(), "Release cancelled.")
		})
	}
}

func TestAutoConfirmSkipsPrompt(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("v2.3.4")
	r, out := newTestReleaser(store, "", WithAutoConfirm(true))

	res, err := r.Release(context.Background(), version.BumpPatch)
	require.NoError(t, err)

	assert.True(t, res.Pushed)
	assert.NotContains(t, out.String(), "[y/N]")
	assert.Equal(t, []string{"v2.3.5"}, store.Pushed("origin"))
}

func TestReleaseToCustomRemote(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("v1.0.0")
	r, _ := newTestReleaser(store, "y\n", WithRemote("upstream"))

	res, err := r.Release(context.Background(), version.BumpPatch)
	require.NoError(t, err)

	assert.True(t, res.Pushed)
	assert.Empty(t, store.Pushed("origin"))
	assert.Equal(t, []string{"v1.0.1"}, store.Pushed("upstream"))
}

func TestReleaseInvalidBumpKind(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("v1.0.0")
	r, _ := newTestReleaser(store, "y\n")

	_, err := r.Release(context.Background(), version.BumpKind("gigantic"))
	require.Error(t, err)

	// No mutation on invalid input.
	assert.Equal(t, []string{"v1.0.0"}, store.Tags())
	assert.Empty(t, store.Pushed("origin"))
}

func TestReleaseListFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("exit status 128")
	store := git.NewMemStore()
	store.ListErr = boom

	r, _ := newTestReleaser(store, "y\n")

	_, err := r.Release(context.Background(), version.BumpPatch)
	assert.ErrorIs(t, err, boom)
}

func TestReleasePushFailureLeavesLocalTag(t *testing.T) {
	t.Parallel()

	boom := errors.New("permission denied")
	store := git.NewMemStore("v0.2.0")
	store.PushErr = boom

	r, _ := newTestReleaser(store, "y\n")

	_, err := r.Release(context.Background(), version.BumpPatch)
	require.ErrorIs(t, err, boom)

	// No rollback: the local tag remains for the operator to resolve.
	assert.Contains(t, store.Tags(), "v0.2.1")
	assert.Empty(t, store.Pushed("origin"))
}

func TestReleaseVersionExplicit(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("v1.2.3")
	r, _ := newTestReleaser(store, "y\n")

	res, err := r.ReleaseVersion(context.Background(), version.New(2, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", res.Tag)
	assert.Equal(t, []string{"v2.0.0"}, store.Pushed("origin"))
}

func TestReleaseVersionMustBeNewer(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("v1.2.3")
	r, _ := newTestReleaser(store, "y\n")

	_, err := r.ReleaseVersion(context.Background(), version.New(1, 2, 3))
	require.Error(t, err)

	_, err = r.ReleaseVersion(context.Background(), version.New(1, 0, 0))
	require.Error(t, err)

	assert.Empty(t, store.Pushed("origin"))
}

func TestNextIsSideEffectFree(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("v1.2.3")
	r, _ := newTestReleaser(store, "")

	res, err := r.Next(context.Background(), version.BumpMinor)
	require.NoError(t, err)

	assert.Equal(t, "v1.3.0", res.Tag)
	assert.Equal(t, []string{"v1.2.3"}, store.Tags())
	assert.Empty(t, store.Pushed("origin"))
}

func TestLatestSentinel(t *testing.T) {
	t.Parallel()

	store := git.NewMemStore("nightly", "v1.2")
	r, _ := newTestReleaser(store, "")

	latest, found, err := r.Latest(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, version.Zero, latest)
}
