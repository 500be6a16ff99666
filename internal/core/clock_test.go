package core

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestManualClockFire(t *testing.T) {
	c := NewManualClock()

	calls := 0
	tk := c.Every(time.Second/60, func() { calls++ })

	if got := c.FireN(3); got != 3 {
		t.Errorf("FireN(3) = %d, expected 3", got)
	}
	if calls != 3 {
		t.Errorf("callback ran %d times, expected 3", calls)
	}

	tk.Stop()
	tk.Stop() // second stop is a no-op

	if got := c.Fire(); got != 0 {
		t.Errorf("Fire() after Stop = %d, expected 0", got)
	}
	if calls != 3 {
		t.Errorf("callback ran after Stop, calls = %d", calls)
	}
	if c.Active() != 0 {
		t.Errorf("Active() = %d, expected 0", c.Active())
	}
}

func TestManualClockStopFromCallback(t *testing.T) {
	c := NewManualClock()

	var tk Ticker
	calls := 0
	tk = c.Every(time.Millisecond, func() {
		calls++
		tk.Stop()
	})

	c.FireN(5)
	if calls != 1 {
		t.Errorf("callback that stops itself ran %d times, expected 1", calls)
	}
}

func TestManualClockStopOtherDuringFire(t *testing.T) {
	c := NewManualClock()

	var second Ticker
	secondCalls := 0
	c.Every(time.Millisecond, func() { second.Stop() })
	second = c.Every(time.Millisecond, func() { secondCalls++ })

	c.Fire()
	if secondCalls != 0 {
		t.Errorf("stopped callback ran %d times in the same round", secondCalls)
	}
}

func TestTickerClockStop(t *testing.T) {
	var calls atomic.Int32
	tk := TickerClock{}.Every(time.Millisecond, func() { calls.Add(1) })

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if calls.Load() < 3 {
		t.Fatalf("ticker fired %d times in 2s, expected at least 3", calls.Load())
	}

	tk.Stop()
	tk.Stop()

	// Allow an in-flight callback to finish, then verify no more fire.
	time.Sleep(10 * time.Millisecond)
	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if calls.Load() != after {
		t.Errorf("ticker kept firing after Stop: %d -> %d", after, calls.Load())
	}
}
