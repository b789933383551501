package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show foods and leveling rules",
	Long:  `Shows every food kind with its effect and how levels progress.`,
	Run:   runRules,
}

func runRules(_ *cobra.Command, _ []string) {
	cat := snake.Catalog()

	total := 0
	for _, f := range cat {
		total += f.Weight
	}

	fmt.Println("Foods:")
	fmt.Println()
	fmt.Printf("  %-6s  %-10s  %-6s  %-6s  %-6s  %-6s  %s\n", "Glyph", "Kind", "Chance", "Length", "Score", "Speed", "Effect")
	fmt.Printf("  %-6s  %-10s  %-6s  %-6s  %-6s  %-6s  %s\n", "-----", "----", "------", "------", "-----", "-----", "------")
	for _, f := range cat {
		effect := "-"
		if f.Effect != snake.EffectNone {
			effect = fmt.Sprintf("%s for %d ticks", f.Effect, snake.FoodEffectTicks)
		}
		fmt.Printf("  %-6c  %-10s  %5d%%  %+6d  %+6d  %+6d  %s\n",
			f.Kind.Glyph(), f.Kind, f.Weight*100/total, f.Growth, f.Score, f.SpeedDelta, effect)
	}

	fmt.Println()
	fmt.Println("Leveling:")
	fmt.Println()
	fmt.Printf("  Level = score / %d + 1\n", snake.PointsPerLevel)
	fmt.Printf("  Base speed = %d + %d per level (clamped to %d..%d by food)\n",
		snake.BaseSpeed, snake.SpeedPerLevel, snake.MinSpeed, snake.MaxSpeed)
	fmt.Println("  Reaching level N adds 2*(N-1) obstacles; obstacles stay for the session.")
	fmt.Println("  Poisonous food on a one-segment snake has no effect.")
	fmt.Println()
	fmt.Println("Run 'snake play' to start.")
}
