package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/levels"
	"github.com/vovakirdan/platformer/internal/logging"
	"github.com/vovakirdan/platformer/internal/platform/tui"
	"github.com/vovakirdan/platformer/internal/render"
	"github.com/vovakirdan/platformer/internal/runner"
)

var (
	flagLevel     string
	flagWatch     bool
	flagTrace     int
	flagAutopilot string
	flagRealtime  bool
	flagView      bool
	flagMaxTicks  int
	flagAttempts  int
)

var runCmd = &cobra.Command{
	Use:   "run [pack]",
	Short: "Play a level pack",
	Long: `Play every level of a pack in order. A won level advances to the next
one; a lost level is retried up to max_attempts times. Without a pack
argument the configured pack, or the built-in classic pack, is used.

Autopilots:
  idle  - The player never moves
  seek  - The player walks toward the nearest coin, stopping at walls

Examples:
  platformer run
  platformer run packs/bonus.yaml --level corridor
  platformer run --autopilot seek --trace 30
  platformer run packs/bonus.yaml --watch
  platformer run --autopilot seek --view`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagLevel, "level", "", "Play only the level with this id")
	runCmd.Flags().BoolVar(&flagWatch, "watch", false, "Replay the pack whenever its file changes")
	runCmd.Flags().IntVar(&flagTrace, "trace", 0, "Print the level every N frames (0 = off)")
	runCmd.Flags().StringVar(&flagAutopilot, "autopilot", "idle", "Player controller: idle, seek")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the tick rate")
	runCmd.Flags().BoolVar(&flagView, "view", false, "Watch the run in a terminal viewer")
	runCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Frames per attempt (0 = from config)")
	runCmd.Flags().IntVar(&flagAttempts, "attempts", 0, "Attempts per level (0 = from config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if !flagWatch {
		return playPack(ctx, cmd, path)
	}

	if path == "" {
		path = cfg.Pack
	}
	if path == "" {
		return errors.New("--watch needs a pack file")
	}

	watcher, err := levels.Watch(path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer watcher.Close()

	for {
		if err := playPack(ctx, cmd, path); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			// Broken packs are reported; the next save gets another try.
			logger.Error("run failed", "pack", path, "error", err)
		}
		logger.Info("waiting for changes", "pack", path)

		if !waitForChange(ctx, watcher, path) {
			return nil
		}
	}
}

// waitForChange blocks until path changes or ctx is done.
func waitForChange(ctx context.Context, watcher *levels.Watcher, path string) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case name, ok := <-watcher.Events:
			if !ok {
				return false
			}
			if sameFile(name, path) {
				return true
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return false
			}
			logger.Warn("watch error", "error", err)
		}
	}
}

func sameFile(a, b string) bool {
	sa, errA := os.Stat(a)
	sb, errB := os.Stat(b)
	return errA == nil && errB == nil && os.SameFile(sa, sb)
}

// playPack loads the pack and plays it once.
func playPack(ctx context.Context, cmd *cobra.Command, path string) error {
	pack, err := loadPack(path)
	if err != nil {
		return err
	}

	selected := pack.Levels
	if flagLevel != "" {
		lvl, ok := pack.LevelByID(flagLevel)
		if !ok {
			return fmt.Errorf("pack %q has no level %q", pack.Name, flagLevel)
		}
		selected = []levels.Level{lvl}
	}
	schemas := make([][]string, len(selected))
	for i, l := range selected {
		schemas[i] = l.Rows
	}

	rng, seed := newRand()
	parser, err := pack.Parser(rng)
	if err != nil {
		return err
	}

	controller, err := autopilot(flagAutopilot)
	if err != nil {
		return err
	}

	sim := cfg.Simulation
	if cmd.Flags().Changed("max-ticks") {
		sim.MaxTicks = flagMaxTicks
	}
	if cmd.Flags().Changed("attempts") {
		sim.MaxAttempts = flagAttempts
	}

	opts := []runner.Option{
		runner.WithFrameDelta(sim.FrameDelta()),
		runner.WithMaxTicks(sim.MaxTicks),
		runner.WithMaxAttempts(sim.MaxAttempts),
		runner.WithController(controller),
		runner.WithLogger(logger),
	}
	if flagRealtime {
		opts = append(opts, runner.WithPace(sim.FrameInterval()))
	}

	logger.Info("starting run", "pack", pack.Name, "levels", len(schemas), "seed", seed, "autopilot", flagAutopilot)

	var res runner.Result
	if flagView {
		session, err := runner.NewSession(schemas, parser, nil, opts...)
		if err != nil {
			return err
		}
		res, err = tui.Run(session, pack.Name, sim)
		if err != nil {
			return err
		}
	} else {
		var renderer runner.Renderer = runner.NewLogRenderer(logger)
		if flagTrace > 0 {
			var palette render.Palette
			if logging.IsTerminal(os.Stdout) {
				palette = render.DefaultPalette()
			}
			renderer = render.NewTracer(os.Stdout, flagTrace, palette)
		}
		res, err = runner.Run(ctx, schemas, parser, renderer, opts...)
		if err != nil {
			return err
		}
	}

	fmt.Println(resultsTable(selected, res))
	if !res.Completed {
		logger.Warn("run failed", "pack", pack.Name, "cleared", cleared(res))
	}
	return nil
}

func autopilot(name string) (runner.Controller, error) {
	switch name {
	case "", "idle":
		return runner.Idle, nil
	case "seek":
		return runner.Seeker{}, nil
	default:
		return nil, fmt.Errorf("unknown autopilot %q (expected idle or seek)", name)
	}
}

func cleared(res runner.Result) int {
	n := 0
	for _, lr := range res.Levels {
		if lr.Status == level.StatusWon {
			n++
		}
	}
	return n
}
