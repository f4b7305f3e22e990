package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/levels"
)

var validateCmd = &cobra.Command{
	Use:   "validate <pack>...",
	Short: "Check level pack files",
	Long: `Load each pack file, resolve its legend and parse every level.
Levels without a player or without coins are reported as problems.

Examples:
  platformer validate packs/bonus.yaml
  platformer validate packs/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		problems := validatePack(path)
		if len(problems) == 0 {
			fmt.Printf("ok    %s\n", path)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", path)
		for _, p := range problems {
			fmt.Printf("      %s\n", p)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d pack(s) have problems", failed, len(args))
	}
	return nil
}

func validatePack(path string) []string {
	pack, err := levels.LoadPack(path)
	if err != nil {
		return []string{err.Error()}
	}
	parser, err := pack.Parser(nil)
	if err != nil {
		return []string{err.Error()}
	}

	var problems []string
	for _, l := range pack.Levels {
		for _, p := range checkLevel(parser.Parse(l.Rows)) {
			problems = append(problems, fmt.Sprintf("%s: %s", l.ID, p))
		}
	}
	return problems
}
