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

	"github.com/edrya/arrow/pkg/container/types"
)

func TestIntervalDayRoundTrip(t *testing.T) {
	a := newTestAllocator(t)
	v := NewIntervalDayVector("x", a)
	require.NoError(t, v.AllocateNew())

	want := types.IntervalDay{Days: 3, Millis: -42}
	require.NoError(t, v.SetSafe(0, want))

	got, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, want, got)

	_, err = v.Get(1)
	require.Error(t, err)
}

func TestIntervalDaySplitAndTransfer(t *testing.T) {
	a := newTestAllocator(t)
	src := NewIntervalDayVector("src", a)
	dst := NewIntervalDayVector("dst", a)
	require.NoError(t, src.AllocateNew())

	for i := 0; i < 10; i++ {
		require.NoError(t, src.Set(i, types.IntervalDay{Days: int32(i), Millis: int32(i * 1000)}))
	}
	require.NoError(t, src.SetValueCount(10))

	pair := src.MakeTransferPair(dst)
	require.NoError(t, pair.SplitAndTransfer(2, 3))
	for i := 0; i < 3; i++ {
		got, err := dst.Get(i)
		require.NoError(t, err)
		require.Equal(t, types.IntervalDay{Days: int32(i + 2), Millis: int32((i + 2) * 1000)}, got)
	}
}
