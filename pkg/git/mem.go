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
	"fmt"
	"slices"
	"sync"

	"github.com/NVIDIA/relctl/pkg/errors"
)

// MemStore is an in-memory TagStore used to substitute the real tag
// namespace in tests. It records pushes so assertions can verify that
// exactly one tag was pushed to the expected remote.
type MemStore struct {
	mu     sync.Mutex
	tags   []string
	pushed map[string][]string // remote -> tag names, in push order
	head   string

	// ListErr, CreateErr, and PushErr, when set, are returned by the
	// corresponding operation to simulate external tool failures.
	ListErr   error
	CreateErr error
	PushErr   error
}

// NewMemStore creates a MemStore pre-populated with the given tags.
func NewMemStore(tags ...string) *MemStore {
	return &MemStore{
		tags:   slices.Clone(tags),
		pushed: make(map[string][]string),
		head:   "abc1234",
	}
}

// ListTags returns the current tag set.
func (m *MemStore) ListTags(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.tags), nil
}

// CreateTag adds a tag, failing when it already exists (tags are immutable).
func (m *MemStore) CreateTag(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if slices.Contains(m.tags, name) {
		return errors.New(errors.ErrCodeConflict, fmt.Sprintf("tag %q already exists", name))
	}
	m.tags = append(m.tags, name)
	return nil
}

// PushTag records the push. The tag must exist locally first.
func (m *MemStore) PushTag(ctx context.Context, remote, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.PushErr != nil {
		return m.PushErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if !slices.Contains(m.tags, name) {
		return errors.New(errors.ErrCodeNotFound, fmt.Sprintf("tag %q does not exist", name))
	}
	m.pushed[remote] = append(m.pushed[remote], name)
	return nil
}

// Head returns a fixed short SHA.
func (m *MemStore) Head(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.head, nil
}

// Tags returns a copy of the current local tag set.
func (m *MemStore) Tags() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.tags)
}

// Pushed returns the tags pushed to the given remote, in order.
func (m *MemStore) Pushed(remote string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.pushed[remote])
}
