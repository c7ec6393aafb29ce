package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vegirise/vegirise/internal/daemon"
	"github.com/vegirise/vegirise/internal/domain"
)

func init() {
	achievementsCmd.Flags().BoolVar(&achievementsAll, "all", false, "Include locked achievements")
	rootCmd.AddCommand(achievementsCmd)
}

var achievementsAll bool

var achievementsCmd = &cobra.Command{
	Use:     "achievements",
	Aliases: []string{"ach"},
	Short:   "List achievements, grouped by category",
	RunE:    runAchievements,
}

func runAchievements(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	views, err := d.Tracker.Achievements()
	if err != nil {
		return err
	}

	unlocked := 0
	byCategory := make(map[domain.AchievementCategory][]int)
	for i, v := range views {
		if v.Unlocked {
			unlocked++
		}
		byCategory[v.Category] = append(byCategory[v.Category], i)
	}
	fmt.Printf("Unlocked %d of %d\n", unlocked, len(views))

	for _, cat := range domain.Categories() {
		indices := byCategory[cat]
		if len(indices) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", cat)
		for _, i := range indices {
			v := views[i]
			switch {
			case v.Unlocked:
				fmt.Printf("  %s %s (%s)\n", v.Icon, v.Name, v.UnlockedAt[:10])
			case achievementsAll:
				fmt.Printf("  🔒 %s: %s\n", v.Name, v.Description)
			}
		}
	}
	return nil
}
