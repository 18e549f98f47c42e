// SPDX-License-Identifier: MIT

package rawalloc

import (
	"fmt"
	"sync"
)

// Stats is a snapshot of a Meter's bookkeeping.
type Stats struct {
	Allocations uint64  // successful Allocate calls
	Releases    uint64  // successful Release calls
	Failures    uint64  // Allocate calls that returned an error
	Live        int     // buffers handed out and not yet released
	BytesLive   uintptr // bytes in live buffers
	Peak        uintptr // high-water mark of BytesLive
}

// Meter wraps an Allocator with an optional byte budget and live-buffer tracking.
//
// Release of a buffer the Meter does not consider live returns ErrDoubleRelease
// without reaching the inner allocator. Meter is safe for concurrent use.
type Meter struct {
	mu     sync.Mutex
	inner  Allocator
	budget uintptr // 0 means unlimited
	live   map[uintptr]uintptr
	stats  Stats
}

// NewMeter wraps inner. A zero budget disables the limit.
// Panics if inner is nil (programmer error).
func NewMeter(inner Allocator, budget uintptr) *Meter {
	if inner == nil {
		panic("rawalloc: NewMeter: nil inner allocator")
	}

	return &Meter{inner: inner, budget: budget, live: make(map[uintptr]uintptr)}
}

// Allocate forwards to the inner allocator when the budget allows it.
// MAIN DESCRIPTION:
//   - Budget check, inner Allocate, then record the buffer as live.
//
// Errors:
//   - ErrOutOfMemory when BytesLive+size exceeds the budget; inner errors unchanged.
//
// Complexity:
//   - Time O(1) amortized plus the inner allocator's cost.
func (m *Meter) Allocate(size, align uintptr) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.budget != 0 && (size > m.budget || m.stats.BytesLive > m.budget-size) {
		m.stats.Failures++
		return nil, fmt.Errorf("Meter.Allocate(%d): budget %d, live %d: %w",
			size, m.budget, m.stats.BytesLive, ErrOutOfMemory)
	}

	buf, err := m.inner.Allocate(size, align)
	if err != nil {
		m.stats.Failures++
		return nil, err
	}

	m.live[Addr(buf)] = size
	m.stats.Allocations++
	m.stats.Live++
	m.stats.BytesLive += size
	m.stats.Peak = max(m.stats.Peak, m.stats.BytesLive)

	return buf, nil
}

// Release forwards a live buffer to the inner allocator.
func (m *Meter) Release(buf []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	addr := Addr(buf)
	size, ok := m.live[addr]
	if !ok {
		return fmt.Errorf("Meter.Release(%#x): %w", addr, ErrDoubleRelease)
	}
	if err := m.inner.Release(buf); err != nil {
		return err
	}

	delete(m.live, addr)
	m.stats.Releases++
	m.stats.Live--
	m.stats.BytesLive -= size

	return nil
}

// Stats returns a snapshot of the counters.
func (m *Meter) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.stats
}
