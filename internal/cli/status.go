package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vegirise/vegirise/internal/daemon"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"st"},
	Short:   "Show level, XP, streaks and lifetime totals",
	RunE:    runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	view, err := d.Tracker.State()
	if err != nil {
		return err
	}
	gs := view.GameState
	info := view.LevelInfo

	fmt.Printf("Lv.%d  %d/%d XP  %s\n\n",
		info.Level, info.CurrentXP, info.NextLevelXP, progressBar(info.Progress, 20))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Current streak\t%d days\n", gs.CurrentStreak)
	fmt.Fprintf(w, "Longest streak\t%d days\n", gs.LongestStreak)
	fmt.Fprintf(w, "Record days\t%d\n", gs.TotalRecordDays)
	fmt.Fprintf(w, "Vegetables\t%d records, %dg total\n", gs.TotalVegetableRecords, gs.TotalVegetableGrams)
	fmt.Fprintf(w, "Wake-ups\t%d records, %d perfect\n", gs.TotalWakeupRecords, gs.PerfectWakeupCount)
	fmt.Fprintf(w, "Combos\t%d\n", gs.ComboCount)
	fmt.Fprintf(w, "Achievements\t%d/100\n", len(gs.UnlockedAchievements))
	return w.Flush()
}

// progressBar renders a fixed-width text progress bar.
func progressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
