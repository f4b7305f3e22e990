// platformer runs tile-based platformer levels headlessly.
//
// Usage:
//
//	platformer run [pack]        - Play a level pack and print the results
//	platformer list [dir]        - List packs in a directory, or registered actors
//	platformer inspect [pack]    - Show level statistics or draw levels
//	platformer validate <pack>   - Check pack files for errors
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--config <path>      - Use a custom config file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import actors to register them
	_ "github.com/vovakirdan/platformer/internal/actors"
	"github.com/vovakirdan/platformer/internal/config"
	"github.com/vovakirdan/platformer/internal/levels"
	"github.com/vovakirdan/platformer/internal/logging"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigPath string
	flagLogLevel   string

	// Set up by the root command before any subcommand runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Platformer - deterministic tile-based level simulation",
	Long: `Platformer parses text level schemas into walls, lava and actors
(player, coins, fireballs) and steps them frame by frame until every
coin is collected or the player dies.

Available commands:
  run       - Play a level pack
  list      - Show packs or registered actors
  inspect   - Show level statistics
  validate  - Check pack files

Examples:
  platformer run
  platformer run packs/bonus.yaml --autopilot seek --trace 30
  platformer inspect --dump
  platformer validate packs/*.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, or random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		loaded.Simulation.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		loaded.Simulation.Seed = flagSeed
	}
	if flags.Changed("log-level") {
		loaded.Log.Level = flagLogLevel
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(os.Stderr, logging.Options{
		Level:     loaded.Log.Level,
		Format:    loaded.Log.Format,
		Prefix:    "platformer",
		Timestamp: true,
	})
	if err != nil {
		return err
	}

	cfg = loaded
	logger = l
	return nil
}

// newRand returns the RNG for actor construction. A zero seed is replaced
// by the current time.
func newRand() (*rand.Rand, int64) {
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed // #nosec G404 -- simulation randomness
}

// loadPack loads the pack at path, falling back to the configured pack and
// then to the embedded default.
func loadPack(path string) (levels.Pack, error) {
	if path == "" {
		path = cfg.Pack
	}
	if path == "" {
		return levels.DefaultPack(), nil
	}
	return levels.LoadPack(path)
}
