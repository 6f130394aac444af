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

// Package mpool is the reference Allocator implementation the vector core
// is built against. It hands out plain, zeroed byte slices and tracks
// high-water-mark accounting; it deliberately does not implement the
// teacher's size-classed slab pool, since the slab internals are out of
// scope for this repo (the allocator is an external collaborator per the
// core's contract).
package mpool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/edrya/arrow/pkg/common/moerr"
)

// Stats accumulates simple lifetime counters for one pool.
type Stats struct {
	HighWaterMark atomic.Int64
	NumAlloc      atomic.Int64
	NumFree       atomic.Int64
	CurrBytes     atomic.Int64
}

// MPool is a named, capped, stats-tracked source of zeroed byte slices.
type MPool struct {
	name          string
	maxBytes      int64
	stats         Stats
	detailEnabled atomic.Bool
}

var (
	registryMu sync.Mutex
	registry   = map[string]*MPool{}
)

// NewMPool creates and registers a pool. maxBytes == 0 means unlimited.
// The trailing two arguments are reserved flags kept for signature
// compatibility; this pool doesn't use them.
func NewMPool(name string, maxBytes int64, _ int, _ int) (*MPool, error) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[name]; ok {
		return nil, moerr.NewInvalidArgument("pool name", name).Wrap(fmt.Errorf("pool %q already exists", name))
	}
	m := &MPool{name: name, maxBytes: maxBytes}
	registry[name] = m
	return m, nil
}

// DeleteMPool unregisters a pool. It does not release outstanding buffers;
// callers must have freed everything first.
func DeleteMPool(m *MPool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, m.name)
}

func (m *MPool) EnableDetailRecording() {
	m.detailEnabled.Store(true)
}

func (m *MPool) CurrNB() int64 {
	return m.stats.CurrBytes.Load()
}

func (m *MPool) Stats() *Stats {
	return &m.stats
}

// Alloc returns a zeroed slice of exactly size bytes.
func (m *MPool) Alloc(size int) ([]byte, error) {
	if size < 0 {
		return nil, moerr.NewInvalidArgument("size", size)
	}
	if m.maxBytes > 0 && m.stats.CurrBytes.Load()+int64(size) > m.maxBytes {
		return nil, moerr.NewOutOfMemory(int64(size))
	}
	buf := make([]byte, size)
	m.stats.NumAlloc.Add(1)
	m.addBytes(int64(size))
	return buf, nil
}

// Realloc grows or shrinks buf to newSize, preserving the overlap and
// zeroing any newly exposed tail.
func (m *MPool) Realloc(buf []byte, newSize int) ([]byte, error) {
	old := len(buf)
	next, err := m.Alloc(newSize)
	if err != nil {
		return nil, err
	}
	n := old
	if newSize < n {
		n = newSize
	}
	copy(next[:n], buf[:n])
	m.Free(buf)
	return next, nil
}

// Free releases buf's accounting. The underlying slice is left to the
// garbage collector; this pool does not reuse freed slices.
func (m *MPool) Free(buf []byte) {
	m.stats.NumFree.Add(1)
	m.addBytes(-int64(len(buf)))
}

func (m *MPool) addBytes(delta int64) {
	nb := m.stats.CurrBytes.Add(delta)
	for {
		hw := m.stats.HighWaterMark.Load()
		if nb <= hw || m.stats.HighWaterMark.CompareAndSwap(hw, nb) {
			break
		}
	}
}

// ReportMemUsage renders a pool's (or, for "", all pools') current byte
// usage. name == "global" reports the sum across every registered pool.
func ReportMemUsage(name string) string {
	registryMu.Lock()
	defer registryMu.Unlock()
	if name == "" || name == "global" {
		var total int64
		for _, m := range registry {
			total += m.CurrNB()
		}
		return fmt.Sprintf("global: %d bytes across %d pools", total, len(registry))
	}
	m, ok := registry[name]
	if !ok {
		return fmt.Sprintf("%s: no such pool", name)
	}
	return fmt.Sprintf("%s: %d bytes (alloc=%d free=%d hwm=%d)",
		name, m.CurrNB(), m.stats.NumAlloc.Load(), m.stats.NumFree.Load(), m.stats.HighWaterMark.Load())
}
