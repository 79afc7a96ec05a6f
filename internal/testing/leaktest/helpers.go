// Package leaktest checks that background goroutines started by a test have exited.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// SettleTimeout bounds how long Settled waits for goroutines to exit
const SettleTimeout = 2 * time.Second

const pollInterval = 10 * time.Millisecond

// Baseline is the goroutine count observed before the code under test ran
type Baseline struct {
	t     testing.TB
	count int
}

// Snapshot records the current goroutine count once it stops shrinking
func Snapshot(t testing.TB) *Baseline {
	t.Helper()
	return &Baseline{t: t, count: stableCount()}
}

// Settled fails the test unless the goroutine count drops back to within
// tolerance of the baseline before SettleTimeout.
func (b *Baseline) Settled(tolerance int) {
	b.t.Helper()

	deadline := time.Now().Add(SettleTimeout)
	current := runtime.NumGoroutine()
	for current-b.count > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollInterval)
		current = runtime.NumGoroutine()
	}

	if leaked := current - b.count; leaked > tolerance {
		b.t.Errorf("goroutine leak: baseline=%d current=%d leaked=%d tolerance=%d",
			b.count, current, leaked, tolerance)
	}
}

// VerifyNone snapshots now and checks for leaks when the test finishes
func VerifyNone(t testing.TB) {
	t.Helper()
	b := Snapshot(t)
	t.Cleanup(func() { b.Settled(0) })
}

func stableCount() int {
	prev := runtime.NumGoroutine()
	for i := 0; i < 5; i++ {
		runtime.Gosched()
		time.Sleep(pollInterval)
		n := runtime.NumGoroutine()
		if n >= prev {
			return n
		}
		prev = n
	}
	return prev
}
