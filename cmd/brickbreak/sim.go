package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreak/internal/breakout"
	"github.com/vovakirdan/brickbreak/internal/core"
)

var (
	flagRealtime bool
	flagMaxTicks int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game with the autopilot",
	Long: `Play one round without a terminal. The autopilot chases the ball and
the result is printed when the round ends or the tick limit is reached.

By default ticks run back to back; --realtime paces them at the
configured tick rate.

Examples:
  brickbreak sim
  brickbreak sim --seed 7 --max-ticks 20000
  brickbreak sim --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run ticks at the configured rate")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 36000, "Stop after this many ticks")
}

// simPresenter steers the autopilot from each frame and reports the end
// of the round.
type simPresenter struct {
	breakout.NopPresenter
	ctrl  *breakout.Controller
	pilot breakout.Autopilot
	done  chan breakout.Result
}

func (p *simPresenter) Frame(snap breakout.Snapshot) {
	if p.ctrl != nil {
		p.ctrl.SetIntent(p.pilot.Decide(snap))
	}
}

func (p *simPresenter) GameOver(res breakout.Result) {
	select {
	case p.done <- res:
	default:
	}
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	logger, err := newLogger(os.Stderr, "sim")
	if err != nil {
		fail("%v", err)
	}

	manual := core.NewManualClock()
	var clock core.Clock = manual
	if flagRealtime {
		clock = core.TickerClock{}
	}

	pres := &simPresenter{
		pilot: breakout.DefaultAutopilot(),
		done:  make(chan breakout.Result, 1),
	}
	ctrl, err := breakout.NewController(cfg, clock, pres,
		breakout.WithSeed(seed()),
		breakout.WithLogger(logger),
	)
	if err != nil {
		fail("%v", err)
	}
	pres.ctrl = ctrl

	ctrl.SetIntent(pres.pilot.Decide(ctrl.Snapshot()))
	ctrl.Start()

	var res breakout.Result
	ended := false
	if flagRealtime {
		limit := time.Duration(flagMaxTicks) * ctrl.Interval()
		select {
		case res = <-pres.done:
			ended = true
		case <-time.After(limit):
		}
	} else {
		for range flagMaxTicks {
			if ctrl.Phase() != breakout.PhaseRunning {
				break
			}
			manual.Fire()
		}
		select {
		case res = <-pres.done:
			ended = true
		default:
		}
	}

	snap := ctrl.Snapshot()
	if !ended {
		ctrl.Stop()
		fmt.Printf("outcome: none (stopped after %d ticks)\n", snap.Tick)
	} else {
		fmt.Printf("outcome: %s (%s)\n", res.Outcome, res.Message)
	}
	fmt.Printf("score:   %d\n", snap.Score)
	fmt.Printf("ticks:   %d\n", snap.Tick)
	fmt.Printf("bricks:  %d/%d left\n", snap.Alive, len(snap.Bricks))
}
