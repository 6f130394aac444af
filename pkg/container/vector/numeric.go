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
	"unsafe"

	"github.com/edrya/arrow/pkg/common/bitmap"
	"github.com/edrya/arrow/pkg/common/moerr"
	"github.com/edrya/arrow/pkg/common/mpool"
	"github.com/edrya/arrow/pkg/container/types"
)

// NumericVector is the one generic façade every fixed-size scalar type in
// the roster (all but Bit) monomorphizes through: T's in-memory layout is
// reinterpreted directly against the value buffer's bytes, the same
// unsafe-pointer-cast idiom matrixorigin/matrixone's
// pkg/container/types/encoding.go uses for Encode/DecodeDecimal128 and
// friends -- one generic base plus thin per-type shims, taken to its
// natural conclusion: the shims are generic instantiations, not separate
// hand-written types.
type NumericVector[T any] struct {
	*fixedWidthBase
}

func newNumericVector[T any](allocator mpool.Allocator, field types.FieldType) *NumericVector[T] {
	return &NumericVector[T]{fixedWidthBase: newFixedWidthBase(allocator, field, field.Minor.WidthBits())}
}

func (v *NumericVector[T]) base() *fixedWidthBase { return v.fixedWidthBase }

func (v *NumericVector[T]) elemBytes() int64 {
	return int64(v.widthBits / 8)
}

func (v *NumericVector[T]) rawAt(i int) *T {
	b := v.value.GetBytes(int64(i)*v.elemBytes(), v.elemBytes())
	return (*T)(unsafe.Pointer(&b[0]))
}

// Get returns element i, failing with NullValue if it is null.
func (v *NumericVector[T]) Get(i int) (T, error) {
	if v.IsSet(i) == 0 {
		var zero T
		return zero, moerr.NewNullValue(i)
	}
	return *v.rawAt(i), nil
}

// GetObject returns a boxed pointer, or nil if the element is null.
func (v *NumericVector[T]) GetObject(i int) *T {
	if v.IsSet(i) == 0 {
		return nil
	}
	val := *v.rawAt(i)
	return &val
}

// IsNull reports whether element i is null (convenience over IsSet).
func (v *NumericVector[T]) IsNull(i int) bool {
	return v.IsSet(i) == 0
}

// IsEmpty is IsNull's historical alias, kept for callers ported from the
// vectors that named this predicate isEmpty rather than isNull.
func (v *NumericVector[T]) IsEmpty(i int) bool {
	return v.IsNull(i)
}

// Set writes val at i and marks it non-null. Requires i < capacity.
func (v *NumericVector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.GetValueCapacity() {
		return moerr.NewIndexOutOfBounds(i, v.GetValueCapacity())
	}
	*v.rawAt(i) = val
	bitmap.SetBitToOne(v.validityRaw(), i)
	return nil
}

// SetSafe grows capacity as needed, then Set.
func (v *NumericVector[T]) SetSafe(i int, val T) error {
	if err := v.handleSafe(i); err != nil {
		return err
	}
	return v.Set(i, val)
}

// SetNull grows capacity as needed, then clears the validity bit.
func (v *NumericVector[T]) SetNull(i int) error {
	return v.setNull(i)
}

// Holder is the small by-value struct the reader/writer layer uses to move
// optional values without allocating a pointer per call.
type Holder[T any] struct {
	IsSet int32
	Value T
}

// GetHolder populates h from element i.
func (v *NumericVector[T]) GetHolder(i int, h *Holder[T]) {
	if v.IsSet(i) == 0 {
		h.IsSet = 0
		var zero T
		h.Value = zero
		return
	}
	h.IsSet = 1
	h.Value = *v.rawAt(i)
}

// SetHolder consumes h: a negative IsSet is InvalidArgument, IsSet > 0 sets
// both the bit and the value, and IsSet == 0 clears the bit.
func (v *NumericVector[T]) SetHolder(i int, h Holder[T]) error {
	if h.IsSet < 0 {
		return moerr.NewInvalidArgument("holder.IsSet", h.IsSet)
	}
	if h.IsSet > 0 {
		return v.SetSafe(i, h.Value)
	}
	return v.setNull(i)
}

// SetDisjoint mirrors SetHolder with the two fields passed separately.
func (v *NumericVector[T]) SetDisjoint(i int, isSet int32, value T) error {
	return v.SetHolder(i, Holder[T]{IsSet: isSet, Value: value})
}

// CopyFrom copies element srcIdx of src into slot dstIdx, without growing.
func (v *NumericVector[T]) CopyFrom(src *NumericVector[T], srcIdx, dstIdx int) error {
	return v.fixedWidthBase.copyFrom(src.fixedWidthBase, srcIdx, dstIdx)
}

// CopyFromSafe grows capacity as needed, then CopyFrom.
func (v *NumericVector[T]) CopyFromSafe(src *NumericVector[T], srcIdx, dstIdx int) error {
	return v.fixedWidthBase.copyFromSafe(src.fixedWidthBase, srcIdx, dstIdx)
}

// MakeTransferPair builds a transfer pair to a caller-supplied target of
// the same concrete type.
func (v *NumericVector[T]) MakeTransferPair(target *NumericVector[T]) *TransferPair[*NumericVector[T]] {
	return NewTransferPair[*NumericVector[T]](v, target)
}

// GetTransferPair builds a transfer pair to a freshly constructed sibling
// under the given allocator.
func (v *NumericVector[T]) GetTransferPair(name string, allocator mpool.Allocator) *TransferPair[*NumericVector[T]] {
	field := v.field
	field.Name = name
	target := newNumericVector[T](allocator, field)
	return v.MakeTransferPair(target)
}
