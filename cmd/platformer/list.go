package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platformer/internal/levels"
	"github.com/vovakirdan/platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List level packs or registered actors",
	Long: `With a directory, shows every level pack found under it. Without one,
shows the actors that legends can name and the levels of the built-in pack.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		return listPacks(args[0])
	}

	fmt.Println("Registered actors:")
	fmt.Println()
	symbols := make(map[string]rune)
	for sym, name := range levels.DefaultPack().Legend {
		symbols[name] = sym
	}
	for _, name := range registry.List() {
		if sym, ok := symbols[name]; ok {
			fmt.Printf("  %c  %s\n", sym, name)
			continue
		}
		fmt.Printf("     %s\n", name)
	}
	fmt.Println()

	pack := levels.DefaultPack()
	fmt.Printf("Built-in pack %q:\n", pack.Name)
	fmt.Println()
	printLevels(pack)
	fmt.Println()
	fmt.Println("Run 'platformer run' to play it.")
	return nil
}

func listPacks(dir string) error {
	packs, err := levels.NewLoader(dir).LoadAll()
	if err != nil {
		return err
	}
	if len(packs) == 0 {
		fmt.Printf("No level packs in %s.\n", dir)
		return nil
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range packs {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "Name", "Levels", "File")
	fmt.Printf("  %-*s  %-6s  %s\n", maxNameLen, "----", "------", "----")
	for _, p := range packs {
		fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, p.Name, len(p.Levels), p.FilePath)
	}

	fmt.Println()
	fmt.Println("Run 'platformer run <file>' to play a pack.")
	return nil
}

func printLevels(pack levels.Pack) {
	maxIDLen := 2 // "ID" header
	for _, l := range pack.Levels {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")
	for _, l := range pack.Levels {
		fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Name)
	}
}
