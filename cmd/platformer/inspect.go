package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/level"
	"github.com/vovakirdan/platformer/internal/logging"
	"github.com/vovakirdan/platformer/internal/render"
)

var (
	flagInspectLevel string
	flagDump         bool
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [pack]",
	Short: "Show level statistics",
	Long: `Parse every level of a pack and show its size, obstacles and actors.
With --dump the parsed level is drawn as text.

Examples:
  platformer inspect
  platformer inspect packs/bonus.yaml --level guarded --dump`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagInspectLevel, "level", "", "Inspect only the level with this id")
	inspectCmd.Flags().BoolVar(&flagDump, "dump", false, "Draw each parsed level")
}

// levelStats summarizes a parsed level.
type levelStats struct {
	Width, Height int
	Walls, Lava   int
	Actors        map[level.Kind]int
}

func statsOf(lvl *level.Level) levelStats {
	st := levelStats{
		Width:  lvl.Width(),
		Height: lvl.Height(),
		Actors: make(map[level.Kind]int),
	}
	grid := lvl.Grid()
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			switch grid.At(x, y) {
			case level.ObstacleWall:
				st.Walls++
			case level.ObstacleLava:
				st.Lava++
			}
		}
	}
	for _, a := range lvl.Actors() {
		st.Actors[a.Kind()]++
	}
	return st
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	pack, err := loadPack(path)
	if err != nil {
		return err
	}

	rng, _ := newRand()
	parser, err := pack.Parser(rng)
	if err != nil {
		return err
	}

	var palette render.Palette
	if logging.IsTerminal(os.Stdout) {
		palette = render.DefaultPalette()
	}

	found := false
	fmt.Printf("Pack %q\n\n", pack.Name)
	for _, l := range pack.Levels {
		if flagInspectLevel != "" && l.ID != flagInspectLevel {
			continue
		}
		found = true

		lvl := parser.Parse(l.Rows)
		st := statsOf(lvl)
		fmt.Printf("%s (%s)\n", l.ID, l.Name)
		fmt.Printf("  size:      %dx%d\n", st.Width, st.Height)
		fmt.Printf("  walls:     %d\n", st.Walls)
		fmt.Printf("  lava:      %d\n", st.Lava)
		fmt.Printf("  player:    %d\n", st.Actors[level.KindPlayer])
		fmt.Printf("  coins:     %d\n", st.Actors[level.KindCoin])
		fmt.Printf("  fireballs: %d\n", st.Actors[level.KindFireball])
		if flagDump {
			fmt.Println()
			fmt.Println(palette.Paint(render.Draw(lvl, render.DefaultSymbols)))
		}
		fmt.Println()
	}

	if !found {
		return fmt.Errorf("pack %q has no level %q", pack.Name, flagInspectLevel)
	}
	return nil
}

// checkLevel returns problems that keep a level from being playable.
// Ragged rows are legal; cells past a short row's end are empty.
func checkLevel(lvl *level.Level) []string {
	var problems []string
	st := statsOf(lvl)
	if st.Width == 0 || st.Height == 0 {
		problems = append(problems, "level is empty")
	}
	switch n := st.Actors[level.KindPlayer]; {
	case n == 0:
		problems = append(problems, "no player")
	case n > 1:
		problems = append(problems, fmt.Sprintf("%d players, only the first is controlled", n))
	}
	if st.Actors[level.KindCoin] == 0 {
		problems = append(problems, "no coins, the level cannot be won")
	}
	return problems
}
