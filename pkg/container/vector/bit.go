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
	"github.com/edrya/arrow/pkg/common/bitmap"
	"github.com/edrya/arrow/pkg/common/moerr"
	"github.com/edrya/arrow/pkg/common/mpool"
	"github.com/edrya/arrow/pkg/container/types"
)

// BitVector is the one façade in the roster that can't monomorphize
// NumericVector, because its element width (1 bit) isn't byte-addressable:
// element i lives at bit i of the value buffer, the same packing the
// validity bitmap itself uses.
type BitVector struct {
	*fixedWidthBase
}

func NewBitVector(name string, a mpool.Allocator) *BitVector {
	return &BitVector{fixedWidthBase: newFixedWidthBase(a, field(name, types.Bit), 1)}
}

func (v *BitVector) base() *fixedWidthBase { return v.fixedWidthBase }

// Get returns element i as 0 or 1, failing with NullValue if it's null.
func (v *BitVector) Get(i int) (int, error) {
	if v.IsSet(i) == 0 {
		return 0, moerr.NewNullValue(i)
	}
	return int(bitmap.GetBit(v.valueRaw(), i)), nil
}

// GetObject returns a boxed bool, or nil if the element is null.
func (v *BitVector) GetObject(i int) *bool {
	if v.IsSet(i) == 0 {
		return nil
	}
	b := bitmap.GetBit(v.valueRaw(), i) != 0
	return &b
}

func (v *BitVector) IsNull(i int) bool {
	return v.IsSet(i) == 0
}

// IsEmpty is IsNull's historical alias, kept for callers ported from the
// vectors that named this predicate isEmpty rather than isNull.
func (v *BitVector) IsEmpty(i int) bool {
	return v.IsNull(i)
}

// Set writes val (true->1, false->0) at i and marks it non-null. Requires
// i < capacity.
func (v *BitVector) Set(i int, val bool) error {
	if i < 0 || i >= v.GetValueCapacity() {
		return moerr.NewIndexOutOfBounds(i, v.GetValueCapacity())
	}
	bit := byte(0)
	if val {
		bit = 1
	}
	bitmap.SetBit(v.valueRaw(), i, bit)
	bitmap.SetBitToOne(v.validityRaw(), i)
	return nil
}

func (v *BitVector) SetSafe(i int, val bool) error {
	if err := v.handleSafe(i); err != nil {
		return err
	}
	return v.Set(i, val)
}

func (v *BitVector) SetNull(i int) error {
	return v.setNull(i)
}

// BitHolder is the Bit façade's holder struct.
type BitHolder struct {
	IsSet int32
	Value bool
}

func (v *BitVector) GetHolder(i int, h *BitHolder) {
	if v.IsSet(i) == 0 {
		h.IsSet = 0
		h.Value = false
		return
	}
	h.IsSet = 1
	h.Value = bitmap.GetBit(v.valueRaw(), i) != 0
}

func (v *BitVector) SetHolder(i int, h BitHolder) error {
	if h.IsSet < 0 {
		return moerr.NewInvalidArgument("holder.IsSet", h.IsSet)
	}
	if h.IsSet > 0 {
		return v.SetSafe(i, h.Value)
	}
	return v.setNull(i)
}

func (v *BitVector) SetDisjoint(i int, isSet int32, value bool) error {
	return v.SetHolder(i, BitHolder{IsSet: isSet, Value: value})
}

func (v *BitVector) CopyFrom(src *BitVector, srcIdx, dstIdx int) error {
	return v.fixedWidthBase.copyFrom(src.fixedWidthBase, srcIdx, dstIdx)
}

func (v *BitVector) CopyFromSafe(src *BitVector, srcIdx, dstIdx int) error {
	return v.fixedWidthBase.copyFromSafe(src.fixedWidthBase, srcIdx, dstIdx)
}

func (v *BitVector) MakeTransferPair(target *BitVector) *TransferPair[*BitVector] {
	return NewTransferPair[*BitVector](v, target)
}

func (v *BitVector) GetTransferPair(name string, a mpool.Allocator) *TransferPair[*BitVector] {
	return v.MakeTransferPair(NewBitVector(name, a))
}
