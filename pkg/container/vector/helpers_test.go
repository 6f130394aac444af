// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edrya/arrow/pkg/common/mpool"
)

// newTestAllocator returns a pool scoped to the calling test's name, so
// parallel/sibling tests never collide in mpool's global registry.
func newTestAllocator(t *testing.T) mpool.Allocator {
	t.Helper()
	m, err := mpool.NewMPool(t.Name(), 0, 0, 0)
	require.NoError(t, err)
	t.Cleanup(func() { mpool.DeleteMPool(m) })
	return m
}
