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
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relerrors "github.com/NVIDIA/relctl/pkg/errors"
)

func TestMemStoreListTags(t *testing.T) {
	t.Parallel()

	store := NewMemStore("v1.0.0", "v1.1.0", "not-a-version")

	tags, err := store.ListTags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"v1.0.0", "v1.1.0", "not-a-version"}, tags)
}

func TestMemStoreCreateTag(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemStore("v1.0.0")

	require.NoError(t, store.CreateTag(ctx, "v1.0.1"))
	assert.Contains(t, store.Tags(), "v1.0.1")

	// Tags are immutable: recreating must fail.
	err := store.CreateTag(ctx, "v1.0.0")
	require.Error(t, err)

	var serr *relerrors.StructuredError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, relerrors.ErrCodeConflict, serr.Code)
}

func TestMemStorePushTag(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemStore()

	require.NoError(t, store.CreateTag(ctx, "v0.1.0"))
	require.NoError(t, store.PushTag(ctx, "origin", "v0.1.0"))

	assert.Equal(t, []string{"v0.1.0"}, store.Pushed("origin"))
	assert.Empty(t, store.Pushed("upstream"))

	// Pushing a tag that was never created fails.
	assert.Error(t, store.PushTag(ctx, "origin", "v9.9.9"))
}

func TestMemStoreSimulatedFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("network down")

	store := NewMemStore("v1.0.0")
	store.PushErr = boom

	require.NoError(t, store.CreateTag(ctx, "v1.0.1"))
	err := store.PushTag(ctx, "origin", "v1.0.1")
	assert.ErrorIs(t, err, boom)

	store.ListErr = boom
	_, err = store.ListTags(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestMemStoreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemStore("v1.0.0")

	_, err := store.ListTags(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.CreateTag(ctx, "v1.0.1"), context.Canceled)
	assert.ErrorIs(t, store.PushTag(ctx, "origin", "v1.0.0"), context.Canceled)
}
