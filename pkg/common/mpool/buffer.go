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

package mpool

import (
	"encoding/binary"
	"math"
	"sync/atomic"

	"github.com/edrya/arrow/pkg/common/moerr"
)

// Allocator is the collaborator the vector core consumes for raw storage.
// mpool.MPool is the reference implementation.
type Allocator interface {
	// Buffer returns a freshly zeroed, exclusively owned buffer of nBytes.
	Buffer(nBytes int64) (ByteBuffer, error)
}

// ByteBuffer is a reference-counted, contiguous byte region. Multi-byte
// scalar accessors are little-endian, per the core's wire contract.
type ByteBuffer interface {
	Capacity() int64
	Slice(offset, length int64) ByteBuffer
	Retain()
	Release()
	SetZero(offset, length int64)

	GetByte(offset int64) byte
	SetByte(offset int64, v byte)
	GetInt32(offset int64) int32
	SetInt32(offset int64, v int32)
	GetInt64(offset int64) int64
	SetInt64(offset int64, v int64)
	GetFloat32(offset int64) float32
	SetFloat32(offset int64, v float32)
	GetFloat64(offset int64) float64
	SetFloat64(offset int64, v float64)

	GetBytes(offset, length int64) []byte
	SetBytes(offset int64, data []byte)
}

// refBuffer is a slice-backed ByteBuffer. A base allocation and every
// slice derived from it share one refcount; the last Release frees the
// pool accounting for the base allocation.
type refBuffer struct {
	pool   *MPool
	base   []byte // the full underlying allocation
	off    int64  // this view's offset into base
	length int64  // this view's length
	rc     *atomic.Int32
}

func (m *MPool) Buffer(nBytes int64) (ByteBuffer, error) {
	if nBytes < 0 {
		return nil, moerr.NewInvalidArgument("nBytes", nBytes)
	}
	buf, err := m.Alloc(int(nBytes))
	if err != nil {
		return nil, err
	}
	rc := &atomic.Int32{}
	rc.Store(1)
	return &refBuffer{pool: m, base: buf, off: 0, length: nBytes, rc: rc}, nil
}

func (b *refBuffer) Capacity() int64 { return b.length }

func (b *refBuffer) Slice(offset, length int64) ByteBuffer {
	b.rc.Add(1)
	return &refBuffer{pool: b.pool, base: b.base, off: b.off + offset, length: length, rc: b.rc}
}

func (b *refBuffer) Retain() {
	b.rc.Add(1)
}

func (b *refBuffer) Release() {
	if b.rc.Add(-1) == 0 {
		b.pool.Free(b.base)
	}
}

func (b *refBuffer) SetZero(offset, length int64) {
	region := b.base[b.off+offset : b.off+offset+length]
	for i := range region {
		region[i] = 0
	}
}

func (b *refBuffer) GetByte(offset int64) byte {
	return b.base[b.off+offset]
}

func (b *refBuffer) SetByte(offset int64, v byte) {
	b.base[b.off+offset] = v
}

func (b *refBuffer) GetInt32(offset int64) int32 {
	return int32(binary.LittleEndian.Uint32(b.base[b.off+offset:]))
}

func (b *refBuffer) SetInt32(offset int64, v int32) {
	binary.LittleEndian.PutUint32(b.base[b.off+offset:], uint32(v))
}

func (b *refBuffer) GetInt64(offset int64) int64 {
	return int64(binary.LittleEndian.Uint64(b.base[b.off+offset:]))
}

func (b *refBuffer) SetInt64(offset int64, v int64) {
	binary.LittleEndian.PutUint64(b.base[b.off+offset:], uint64(v))
}

func (b *refBuffer) GetFloat32(offset int64) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b.base[b.off+offset:]))
}

func (b *refBuffer) SetFloat32(offset int64, v float32) {
	binary.LittleEndian.PutUint32(b.base[b.off+offset:], math.Float32bits(v))
}

func (b *refBuffer) GetFloat64(offset int64) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b.base[b.off+offset:]))
}

func (b *refBuffer) SetFloat64(offset int64, v float64) {
	binary.LittleEndian.PutUint64(b.base[b.off+offset:], math.Float64bits(v))
}

func (b *refBuffer) GetBytes(offset, length int64) []byte {
	return b.base[b.off+offset : b.off+offset+length]
}

func (b *refBuffer) SetBytes(offset int64, data []byte) {
	copy(b.base[b.off+offset:], data)
}
