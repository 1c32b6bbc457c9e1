package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/island-of-structure/internal/games/island/world"
)

var worldsCmd = &cobra.Command{
	Use:   "worlds",
	Short: "Show the worlds in unlock order",
	Long: `List the six worlds of the island, their guides and what completing
each one unlocks. A world's checkpoint is reached after 10 solved problems.`,
	Run: runWorlds,
}

func runWorlds(_ *cobra.Command, _ []string) {
	for i, w := range world.All() {
		fmt.Printf("%d. %s %s  (%s)\n", i+1, w.Character.Icon, w.Title, w.Theme)
		fmt.Printf("   Guide: %s, %s\n", w.Character.Name, w.Character.Role)
		if w.HasNext() {
			next, _ := world.Lookup(w.Next)
			fmt.Printf("   Unlocks: %s\n", next.Title)
		} else {
			fmt.Println("   Final world")
		}
		fmt.Println()
	}
}
