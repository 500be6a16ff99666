package core

import "testing"

func TestRuntimeConfigResolve(t *testing.T) {
	rc := RuntimeConfig{}.Resolve(45)

	if rc.Cols != FallbackCols || rc.Rows != FallbackRows {
		t.Errorf("size = %dx%d, expected fallback %dx%d", rc.Cols, rc.Rows, FallbackCols, FallbackRows)
	}
	if rc.TickRate != 45 {
		t.Errorf("TickRate = %d, expected game rate 45", rc.TickRate)
	}
	if rc.Seed == 0 {
		t.Error("Seed should be filled from the clock")
	}
}

func TestRuntimeConfigResolveKeepsOverrides(t *testing.T) {
	in := RuntimeConfig{Cols: 120, Rows: 40, TickRate: 30, Seed: 7}
	if got := in.Resolve(60); got != in {
		t.Errorf("Resolve() = %+v, expected %+v unchanged", got, in)
	}
}
