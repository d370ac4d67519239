// Package latch provides a one-way boolean gate.
//
// A Latch starts open and can be fired exactly once. There is no reset:
// once fired it stays fired for the lifetime of the value.
package latch

import "sync/atomic"

type Latch struct {
	fired atomic.Bool
}

// TryFire fires the latch and reports whether this call was the one that fired it.
// Concurrent callers observe exactly one true.
func (l *Latch) TryFire() bool {
	return l.fired.CompareAndSwap(false, true)
}

func (l *Latch) Fired() bool {
	return l.fired.Load()
}
