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

package bitmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSetBit(t *testing.T) {
	buf := make([]byte, 4)
	for i := 0; i < 32; i++ {
		require.EqualValues(t, 0, GetBit(buf, i))
	}
	SetBitToOne(buf, 3)
	SetBitToOne(buf, 17)
	require.EqualValues(t, 1, GetBit(buf, 3))
	require.EqualValues(t, 1, GetBit(buf, 17))
	require.EqualValues(t, 0, GetBit(buf, 4))

	SetBit(buf, 3, 0)
	require.EqualValues(t, 0, GetBit(buf, 3))
	SetBitToZero(buf, 17)
	require.EqualValues(t, 0, GetBit(buf, 17))
}

func TestSizeFromCount(t *testing.T) {
	require.Equal(t, 0, SizeFromCount(0))
	require.Equal(t, 1, SizeFromCount(1))
	require.Equal(t, 1, SizeFromCount(8))
	require.Equal(t, 2, SizeFromCount(9))
}

func TestPopCount(t *testing.T) {
	buf := []byte{0xFF, 0x0F, 0x00}
	require.Equal(t, 12, PopCount(buf, 3))
	require.Equal(t, 8, PopCount(buf, 1))
}

func TestPopCountBits(t *testing.T) {
	// 0xFF has all 8 bits set; restricting to 4 bits must ignore the other 4.
	buf := []byte{0xFF}
	require.Equal(t, 8, PopCountBits(buf, 8))
	require.Equal(t, 4, PopCountBits(buf, 4))
	require.Equal(t, 0, PopCountBits(buf, 0))

	buf2 := []byte{0xFF, 0xFF}
	require.Equal(t, 12, PopCountBits(buf2, 12))
}

func TestCopyAligned(t *testing.T) {
	src := []byte{0b10110110, 0b00001101}
	dst := make([]byte, 1)
	CopyAligned(dst, src, 8, 8)
	require.Equal(t, byte(0b00001101), dst[0])
}

func TestCopyUnaligned(t *testing.T) {
	// source bits (LSB-first per byte): byte0=0b10110110, byte1=0b00001101
	// bit stream starting at bit 0: 0,1,1,0,1,1,0,1, 1,0,1,1,0,0,0,0
	src := []byte{0b10110110, 0b00001101}
	dst := make([]byte, SizeFromCount(9))
	CopyUnaligned(dst, src, 3, 9)
	for k := 0; k < 9; k++ {
		want := GetBit(src, 3+k)
		got := GetBit(dst, k)
		require.Equal(t, want, got, "bit %d", k)
	}
}
