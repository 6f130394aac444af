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

// withBase is implemented by every typed façade; it is the capability
// TransferPair needs to replace runtime-polymorphic transfer with a pair
// of same-typed containers plus the four transfer operations, with the
// type checked once at construction (here: by the Go type system, since
// Source and Target share the generic parameter V).
type withBase interface {
	base() *fixedWidthBase
}

// TransferPair binds a source vector to a target of the same concrete
// type and exposes the buffer-ownership transfer operations.
type TransferPair[V withBase] struct {
	Source V
	Target V
}

func NewTransferPair[V withBase](source, target V) *TransferPair[V] {
	return &TransferPair[V]{Source: source, Target: target}
}

// Transfer moves buffer ownership from Source to Target; Source ends empty.
func (p *TransferPair[V]) Transfer() error {
	return p.Source.base().transferTo(p.Target.base())
}

// SplitAndTransfer derives Target as Source's [start, start+length) range.
func (p *TransferPair[V]) SplitAndTransfer(start, length int) error {
	return p.Source.base().splitAndTransferTo(start, length, p.Target.base())
}

// CopyValueSafe delegates to the target's copyFromSafe.
func (p *TransferPair[V]) CopyValueSafe(fromIdx, toIdx int) error {
	return p.Target.base().copyFromSafe(p.Source.base(), fromIdx, toIdx)
}
