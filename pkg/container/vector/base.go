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

// Package vector implements the fixed-width nullable column containers:
// one generic base container plus thin typed façades per scalar width.
package vector

import (
	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/edrya/arrow/pkg/common/bitmap"
	"github.com/edrya/arrow/pkg/common/moerr"
	"github.com/edrya/arrow/pkg/common/mpool"
	"github.com/edrya/arrow/pkg/container/types"
	"github.com/edrya/arrow/pkg/logutil"
)

// DefaultInitialCapacity is used by AllocateNew() when no explicit initial
// capacity has been set.
const DefaultInitialCapacity = 4096

// MaxAllocationSizeInBytes is the hard cap SetInitialCapacity and reAlloc
// respect. It can be overridden per-base for tests that need to exercise
// OversizedAllocation without allocating 2^31 bytes.
const MaxAllocationSizeInBytes = int64(1)<<31 - 8

// fixedWidthBase owns the (validity, value) buffer pair and the allocation/
// growth/lifecycle machinery every typed façade in this package reuses;
// typed façades (NumericVector[T], BitVector, ...) add only element-shaped
// get/set on top.
type fixedWidthBase struct {
	allocator mpool.Allocator
	field     types.FieldType
	widthBits int // element width in bits; 1 for Bit, else a multiple of 8
	maxAlloc  int64

	validity mpool.ByteBuffer
	value    mpool.ByteBuffer

	valueCount                    int
	valueAllocationSizeInBytes    int64
	validityAllocationSizeInBytes int64

	logger *zap.Logger
}

func newFixedWidthBase(allocator mpool.Allocator, field types.FieldType, widthBits int) *fixedWidthBase {
	return &fixedWidthBase{
		allocator: allocator,
		field:     field,
		widthBits: widthBits,
		maxAlloc:  MaxAllocationSizeInBytes,
		logger:    logutil.Named(field.Minor.String()),
	}
}

// valueBytesForCount returns the value-buffer size in bytes for n elements.
func (b *fixedWidthBase) valueBytesForCount(n int) int64 {
	if b.widthBits >= 8 {
		return int64(n) * int64(b.widthBits/8)
	}
	return int64(bitmap.SizeFromCount(n))
}

// validityBytesForCount returns the validity-bitmap size in bytes for n elements.
func (b *fixedWidthBase) validityBytesForCount(n int) int64 {
	return int64(bitmap.SizeFromCount(n))
}

// SetInitialCapacity records the byte sizes AllocateNew() will use, without
// allocating. Fails with OversizedAllocation if either buffer would exceed
// the configured maximum.
func (b *fixedWidthBase) SetInitialCapacity(n int) error {
	if n < 0 {
		return moerr.NewInvalidArgument("initial capacity", n)
	}
	valBytes := b.valueBytesForCount(n)
	valiBytes := b.validityBytesForCount(n)
	if valBytes > b.maxAlloc || valiBytes > b.maxAlloc {
		return moerr.NewOversizedAllocation(maxInt64(valBytes, valiBytes), b.maxAlloc)
	}
	b.valueAllocationSizeInBytes = valBytes
	b.validityAllocationSizeInBytes = valiBytes
	return nil
}

// AllocateNew allocates both buffers at the currently configured initial
// capacity (DefaultInitialCapacity if none was set), zero-fills validity,
// and resets valueCount to 0.
func (b *fixedWidthBase) AllocateNew() error {
	if b.valueAllocationSizeInBytes == 0 && b.validityAllocationSizeInBytes == 0 {
		if err := b.SetInitialCapacity(DefaultInitialCapacity); err != nil {
			return err
		}
	}
	return b.allocateNewBytes(b.valueAllocationSizeInBytes, b.validityAllocationSizeInBytes)
}

// AllocateNewCapacity is SetInitialCapacity(n) + AllocateNew(), in one call.
func (b *fixedWidthBase) AllocateNewCapacity(n int) error {
	if err := b.SetInitialCapacity(n); err != nil {
		return err
	}
	return b.AllocateNew()
}

func (b *fixedWidthBase) allocateNewBytes(valBytes, valiBytes int64) error {
	val, err := b.allocator.Buffer(valBytes)
	if err != nil {
		b.logger.Debug("allocate value buffer failed", zap.Int64("bytes", valBytes), zap.Error(err))
		return moerr.NewOutOfMemory(valBytes).Wrap(err)
	}
	vali, err := b.allocator.Buffer(valiBytes)
	if err != nil {
		val.Release()
		b.logger.Debug("allocate validity buffer failed", zap.Int64("bytes", valiBytes), zap.Error(err))
		return moerr.NewOutOfMemory(valiBytes).Wrap(err)
	}
	b.releaseBuffers()
	b.value = val
	b.validity = vali
	b.valueAllocationSizeInBytes = valBytes
	b.validityAllocationSizeInBytes = valiBytes
	b.valueCount = 0
	return nil
}

// reAlloc doubles both buffers' byte capacity, preserving existing content
// and zeroing the newly exposed tail. Strong exception safety: on failure
// the vector is left exactly as it was.
func (b *fixedWidthBase) reAlloc() error {
	newValBytes := doubled(b.valueAllocationSizeInBytes)
	newValiBytes := doubled(b.validityAllocationSizeInBytes)
	if newValBytes > b.maxAlloc || newValiBytes > b.maxAlloc {
		return moerr.NewOversizedAllocation(maxInt64(newValBytes, newValiBytes), b.maxAlloc)
	}

	newVal, err := b.allocator.Buffer(newValBytes)
	if err != nil {
		return moerr.NewOutOfMemory(newValBytes).Wrap(err)
	}
	newVali, err := b.allocator.Buffer(newValiBytes)
	if err != nil {
		newVal.Release()
		return moerr.NewOutOfMemory(newValiBytes).Wrap(err)
	}

	if b.value != nil {
		copyBuffer(newVal, b.value, b.valueAllocationSizeInBytes)
	}
	if b.validity != nil {
		copyBuffer(newVali, b.validity, b.validityAllocationSizeInBytes)
	}

	b.releaseBuffers()
	b.value = newVal
	b.validity = newVali
	b.valueAllocationSizeInBytes = newValBytes
	b.validityAllocationSizeInBytes = newValiBytes
	b.logger.Debug("reallocated", zap.Int64("valueBytes", newValBytes), zap.Int64("validityBytes", newValiBytes))
	return nil
}

func copyBuffer(dst, src mpool.ByteBuffer, n int64) {
	if n == 0 {
		return
	}
	dst.SetBytes(0, src.GetBytes(0, n))
}

func doubled(n int64) int64 {
	if n == 0 {
		return int64(bitmap.SizeFromCount(DefaultInitialCapacity))
	}
	return n * 2
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// handleSafe grows capacity, by repeated doubling, until it exceeds i, and
// extends valueCount to i+1 if it was shorter, so the slot a *Safe setter
// writes next is within the vector's logical length and reads back.
func (b *fixedWidthBase) handleSafe(i int) error {
	if i < 0 {
		return moerr.NewInvalidArgument("index", i)
	}
	if b.value == nil {
		if err := b.AllocateNew(); err != nil {
			return err
		}
	}
	for i >= b.GetValueCapacity() {
		if err := b.reAlloc(); err != nil {
			return err
		}
	}
	if i >= b.valueCount {
		b.valueCount = i + 1
	}
	return nil
}

// GetValueCapacity returns the number of addressable elements the currently
// allocated buffers can hold.
func (b *fixedWidthBase) GetValueCapacity() int {
	if b.validity == nil {
		return 0
	}
	validityCap := int(b.validity.Capacity()) * 8
	if b.widthBits < 8 {
		return validityCap
	}
	if b.value == nil {
		return 0
	}
	valueCap := int(b.value.Capacity()) * 8 / b.widthBits
	if validityCap < valueCap {
		return validityCap
	}
	return valueCap
}

// SetValueCount fixes the logical length, growing if necessary, and zeroes
// the validity bits for slots in [n, nextByteBoundary(n)) so the tail is
// always normalized (required for GetNullCount's popcount law).
func (b *fixedWidthBase) SetValueCount(n int) error {
	if n < 0 {
		return moerr.NewInvalidArgument("value count", n)
	}
	if n > b.GetValueCapacity() {
		if err := b.handleSafe(n); err != nil {
			return err
		}
	}
	b.valueCount = n
	boundary := bitmap.SizeFromCount(n) * 8
	for i := n; i < boundary; i++ {
		bitmap.SetBitToZero(b.validityRaw(), i)
	}
	return nil
}

// validityRaw returns a mutable view over the whole validity buffer.
func (b *fixedWidthBase) validityRaw() []byte {
	return b.validity.GetBytes(0, b.validity.Capacity())
}

// valueRaw returns a mutable view over the whole value buffer. Only the
// 1-bit paths (the Bit façade and the bit-width branches of copyFrom and
// Checksum) use this directly; other façades index through
// GetBytes(offset, width).
func (b *fixedWidthBase) valueRaw() []byte {
	return b.value.GetBytes(0, b.value.Capacity())
}

// IsSet reports whether element i is non-null. Reading beyond valueCount is
// defined as null.
func (b *fixedWidthBase) IsSet(i int) int {
	if i < 0 || i >= b.valueCount {
		return 0
	}
	return int(bitmap.GetBit(b.validityRaw(), i))
}

// GetNullCount returns valueCount minus the number of set bits among the
// first valueCount validity bits. It counts only those bits, not whole
// bytes: a split-derived vector shares its validity buffer with the source
// (splitAndTransferTo deliberately skips SetValueCount's tail-zeroing on that
// shared buffer, since zeroing it would corrupt the source), so bits past
// valueCount in the final byte can be stale and must not be popcounted.
func (b *fixedWidthBase) GetNullCount() int {
	if b.validity == nil {
		return 0
	}
	size := bitmap.SizeFromCount(b.valueCount)
	return b.valueCount - bitmap.PopCountBits(b.validityRaw()[:size], b.valueCount)
}

func (b *fixedWidthBase) releaseBuffers() {
	if b.value != nil {
		b.value.Release()
		b.value = nil
	}
	if b.validity != nil {
		b.validity.Release()
		b.validity = nil
	}
}

// Clear releases both buffers and returns the vector to its empty state.
// Idempotent.
func (b *fixedWidthBase) Clear() {
	b.releaseBuffers()
	b.valueCount = 0
	b.valueAllocationSizeInBytes = 0
	b.validityAllocationSizeInBytes = 0
}

// Reset zeroes the logical length and validity bits but keeps the buffers
// allocated, so a writer can reuse the vector across batches without
// reallocating (supplemented from the Java vectors' reset/clear split).
func (b *fixedWidthBase) Reset() {
	b.valueCount = 0
	if b.validity != nil {
		b.validity.SetZero(0, b.validity.Capacity())
	}
}

// GetBufferSize returns the wire size, in bytes, of the validity+value
// buffers for the current valueCount.
func (b *fixedWidthBase) GetBufferSize() int64 {
	return b.GetBufferSizeFor(b.valueCount)
}

func (b *fixedWidthBase) GetBufferSizeFor(count int) int64 {
	if count == 0 {
		return 0
	}
	if b.widthBits < 8 {
		return 2 * int64(bitmap.SizeFromCount(count))
	}
	return int64(bitmap.SizeFromCount(count)) + int64(count)*int64(b.widthBits/8)
}

// GetFieldBuffers returns the (validity, value) pair for zero-copy IPC
// consumers.
func (b *fixedWidthBase) GetFieldBuffers() types.FieldBuffers[mpool.ByteBuffer] {
	return types.FieldBuffers[mpool.ByteBuffer]{Validity: b.validity, Value: b.value}
}

func (b *fixedWidthBase) GetMinorType() types.MinorType {
	return b.field.Minor
}

// Len returns the vector's logical length, satisfying nulls.Accessor.
func (b *fixedWidthBase) Len() int {
	return b.valueCount
}

// transferTo moves buffer ownership from b to target, leaving b empty.
// target must have b's minor type (TypeMismatch otherwise, with neither
// vector changed); any buffers target still holds are released first.
func (b *fixedWidthBase) transferTo(target *fixedWidthBase) error {
	if target.field.Minor != b.field.Minor {
		return moerr.NewTypeMismatch(b.field.Minor.String(), target.field.Minor.String())
	}
	target.Clear()
	target.allocator = b.allocator
	target.value = b.value
	target.validity = b.validity
	target.valueCount = b.valueCount
	target.valueAllocationSizeInBytes = b.valueAllocationSizeInBytes
	target.validityAllocationSizeInBytes = b.validityAllocationSizeInBytes

	b.value = nil
	b.validity = nil
	b.valueCount = 0
	b.valueAllocationSizeInBytes = 0
	b.validityAllocationSizeInBytes = 0
	return nil
}

// splitAndTransferTo derives target as the half-open range [start, start+length)
// of b, sharing storage with b when bit-aligned and copying otherwise.
func (b *fixedWidthBase) splitAndTransferTo(start, length int, target *fixedWidthBase) error {
	if target.field.Minor != b.field.Minor {
		return moerr.NewTypeMismatch(b.field.Minor.String(), target.field.Minor.String())
	}
	if start < 0 || length < 0 || start+length > b.valueCount {
		return moerr.NewInvalidArgument("split range", []int{start, length, b.valueCount})
	}
	target.Clear()
	target.allocator = b.allocator

	if b.widthBits >= 8 {
		elemBytes := int64(b.widthBits / 8)
		target.value = b.value.Slice(int64(start)*elemBytes, int64(length)*elemBytes)
		target.valueAllocationSizeInBytes = int64(length) * elemBytes
	} else {
		v, err := splitBitBuffer(b.allocator, b.value, start, length)
		if err != nil {
			return err
		}
		target.value = v
		target.valueAllocationSizeInBytes = int64(bitmap.SizeFromCount(length))
	}

	vali, err := splitBitBuffer(b.allocator, b.validity, start, length)
	if err != nil {
		target.value.Release()
		return err
	}
	target.validity = vali
	target.validityAllocationSizeInBytes = int64(bitmap.SizeFromCount(length))

	target.valueCount = length
	return nil
}

// splitBitBuffer derives the bit range [start, start+length) of src: a
// zero-copy byte slice when start is byte-aligned, otherwise a freshly
// allocated buffer assembled byte-by-byte from the two straddling source
// bytes.
func splitBitBuffer(allocator mpool.Allocator, src mpool.ByteBuffer, start, length int) (mpool.ByteBuffer, error) {
	n := bitmap.SizeFromCount(length)
	if start%8 == 0 {
		return src.Slice(int64(start/8), int64(n)), nil
	}
	dst, err := allocator.Buffer(int64(n))
	if err != nil {
		return nil, moerr.NewOutOfMemory(int64(n)).Wrap(err)
	}
	raw := src.GetBytes(0, src.Capacity())
	bitmap.CopyUnaligned(dst.GetBytes(0, int64(n)), raw, start, length)
	return dst, nil
}

// copyFrom copies element srcIdx of src into slot dstIdx of b when src's
// validity bit is set; otherwise b's slot (and validity bit) is left
// exactly as-is -- a deliberate, documented asymmetry: a null source
// element never clobbers whatever was already in the destination.
func (b *fixedWidthBase) copyFrom(src *fixedWidthBase, srcIdx, dstIdx int) error {
	if src.field.Minor != b.field.Minor {
		return moerr.NewTypeMismatch(src.field.Minor.String(), b.field.Minor.String())
	}
	if bitmap.GetBit(src.validityRaw(), srcIdx) == 0 {
		return nil
	}
	elemBytes := int64(b.widthBits) / 8
	if b.widthBits < 8 {
		v := bitmap.GetBit(src.valueRaw(), srcIdx)
		bitmap.SetBit(b.valueRaw(), dstIdx, v)
	} else {
		data := src.value.GetBytes(int64(srcIdx)*elemBytes, elemBytes)
		b.value.SetBytes(int64(dstIdx)*elemBytes, data)
	}
	bitmap.SetBitToOne(b.validityRaw(), dstIdx)
	return nil
}

func (b *fixedWidthBase) copyFromSafe(src *fixedWidthBase, srcIdx, dstIdx int) error {
	if err := b.handleSafe(dstIdx); err != nil {
		return err
	}
	return b.copyFrom(src, srcIdx, dstIdx)
}

// Checksum hashes the logical, validity-masked value bytes: null slots
// contribute as all-zero elements rather than whatever stale bytes are
// sitting in the buffer, so two vectors holding the same (value, null)
// pairs checksum equal regardless of what was previously written into
// their null slots. Grounded on matrixorigin/matrixone's use of
// cespare/xxhash/v2 for fast content hashing (pkg/vm/engine/tae/types/codec.go).
func (b *fixedWidthBase) Checksum() uint64 {
	if b.widthBits < 8 {
		n := bitmap.SizeFromCount(b.valueCount)
		masked := make([]byte, n)
		for i := 0; i < b.valueCount; i++ {
			if bitmap.GetBit(b.validityRaw(), i) != 0 {
				bitmap.SetBit(masked, i, bitmap.GetBit(b.valueRaw(), i))
			}
		}
		return xxhash.Sum64(masked)
	}

	elemBytes := b.widthBits / 8
	masked := make([]byte, b.valueCount*elemBytes)
	for i := 0; i < b.valueCount; i++ {
		if bitmap.GetBit(b.validityRaw(), i) != 0 {
			copy(masked[i*elemBytes:(i+1)*elemBytes], b.value.GetBytes(int64(i*elemBytes), int64(elemBytes)))
		}
	}
	return xxhash.Sum64(masked)
}

func (b *fixedWidthBase) setNull(i int) error {
	if err := b.handleSafe(i); err != nil {
		return err
	}
	bitmap.SetBitToZero(b.validityRaw(), i)
	return nil
}
