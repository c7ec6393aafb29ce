package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vegirise/vegirise/internal/daemon"
)

func init() {
	goalCmd.Flags().Int64Var(&goalMinimum, "minimum", 0, "Minimum tier in grams")
	goalCmd.Flags().Int64Var(&goalStandard, "standard", 0, "Standard tier in grams")
	goalCmd.Flags().Int64Var(&goalTarget, "target", 0, "Target tier in grams")
	goalCmd.Flags().StringVar(&goalWakeTime, "wake", "", "Wake-up goal time as HH:MM")
	rootCmd.AddCommand(goalCmd)
}

var (
	goalMinimum  int64
	goalStandard int64
	goalTarget   int64
	goalWakeTime string
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or update goal settings",
	Long: `Without flags, prints the current goal tiers and wake-up goal.
With flags, updates the given fields. Tiers must keep
minimum < standard < target. Changing goals never re-evaluates past
days; flags already flipped stay flipped.`,
	RunE: runGoal,
}

func runGoal(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	settings, err := d.Tracker.Settings()
	if err != nil {
		return err
	}

	changed := false
	if goalMinimum > 0 {
		settings.VegetableGoals.Minimum = goalMinimum
		changed = true
	}
	if goalStandard > 0 {
		settings.VegetableGoals.Standard = goalStandard
		changed = true
	}
	if goalTarget > 0 {
		settings.VegetableGoals.Target = goalTarget
		changed = true
	}
	if goalWakeTime != "" {
		settings.WakeupGoalTime = goalWakeTime
		changed = true
	}

	if changed {
		if err := d.Tracker.UpdateSettings(settings); err != nil {
			return err
		}
		fmt.Println("Settings updated.")
	}

	g := settings.VegetableGoals
	fmt.Printf("Vegetable goals: minimum %dg, standard %dg, target %dg\n", g.Minimum, g.Standard, g.Target)
	fmt.Printf("Wake-up goal: %s\n", settings.WakeupGoalTime)
	return nil
}
