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
)

func TestBitRoundTrip(t *testing.T) {
	a := newTestAllocator(t)
	v := NewBitVector("x", a)
	require.NoError(t, v.AllocateNew())

	require.NoError(t, v.SetSafe(0, true))
	require.NoError(t, v.SetSafe(1, false))

	got, err := v.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, got)

	got, err = v.Get(1)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	_, err = v.Get(2)
	require.Error(t, err)
	require.Nil(t, v.GetObject(2))
}

func TestBitHolderRoundTrip(t *testing.T) {
	a := newTestAllocator(t)
	v := NewBitVector("x", a)
	require.NoError(t, v.AllocateNew())

	require.NoError(t, v.SetHolder(0, BitHolder{IsSet: 1, Value: true}))
	var h BitHolder
	v.GetHolder(0, &h)
	require.Equal(t, BitHolder{IsSet: 1, Value: true}, h)

	require.NoError(t, v.SetHolder(1, BitHolder{IsSet: 0}))
	v.GetHolder(1, &h)
	require.Equal(t, int32(0), h.IsSet)
}

// S4: splitting a Bit vector at an unaligned bit offset must still produce
// the exact same bit sequence as a byte-aligned split would, via the
// materialize-and-copy fallback path.
func TestBitSplitUnaligned(t *testing.T) {
	a := newTestAllocator(t)
	src := NewBitVector("src", a)
	dst := NewBitVector("dst", a)
	require.NoError(t, src.AllocateNew())

	pattern := []bool{true, false, true, true, false, false, true, false, true, true, false, true}
	for i, b := range pattern {
		require.NoError(t, src.Set(i, b))
	}
	require.NoError(t, src.SetValueCount(len(pattern)))

	pair := src.MakeTransferPair(dst)
	// start=3 is not byte-aligned: exercises the CopyUnaligned fallback.
	require.NoError(t, pair.SplitAndTransfer(3, 6))

	want := pattern[3:9]
	for i, b := range want {
		got, err := dst.Get(i)
		require.NoError(t, err)
		wantInt := 0
		if b {
			wantInt = 1
		}
		require.Equal(t, wantInt, got, "bit %d", i)
	}
}

func TestBitSplitAligned(t *testing.T) {
	a := newTestAllocator(t)
	src := NewBitVector("src", a)
	dst := NewBitVector("dst", a)
	require.NoError(t, src.AllocateNew())

	for i := 0; i < 16; i++ {
		require.NoError(t, src.Set(i, i%2 == 0))
	}
	require.NoError(t, src.SetValueCount(16))

	pair := src.MakeTransferPair(dst)
	require.NoError(t, pair.SplitAndTransfer(8, 8))
	for i := 0; i < 8; i++ {
		got, err := dst.Get(i)
		require.NoError(t, err)
		want := 0
		if (i+8)%2 == 0 {
			want = 1
		}
		require.Equal(t, want, got)
	}
}
