package core

import "time"

// Terminal size used when the real one cannot be read.
const (
	FallbackCols = 80
	FallbackRows = 24
)

// RuntimeConfig describes where and how fast a game runs: the terminal it
// draws into, the tick rate and the RNG seed.
type RuntimeConfig struct {
	Cols     int   // Terminal columns
	Rows     int   // Terminal rows, including the help line
	TickRate int   // Ticks per second; 0 keeps the game's configured rate
	Seed     int64 // 0 seeds from the wall clock
}

// DefaultConfig returns a fallback-sized terminal with no overrides.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{Cols: FallbackCols, Rows: FallbackRows}
}

// Resolve fills zero fields. The tick rate falls back to gameRate.
func (rc RuntimeConfig) Resolve(gameRate int) RuntimeConfig {
	if rc.Cols <= 0 || rc.Rows <= 0 {
		rc.Cols, rc.Rows = FallbackCols, FallbackRows
	}
	if rc.TickRate <= 0 {
		rc.TickRate = gameRate
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}
