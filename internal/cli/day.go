package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vegirise/vegirise/internal/daemon"
	"github.com/vegirise/vegirise/internal/domain"
)

func init() {
	rootCmd.AddCommand(dayCmd)
}

var dayCmd = &cobra.Command{
	Use:   "day [YYYY-MM-DD]",
	Short: "Show one day's records and score",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay,
}

func runDay(cmd *cobra.Command, args []string) error {
	date := domain.Today()
	if len(args) == 1 {
		date = args[0]
	}

	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	summary, err := d.Tracker.Day(date)
	if err != nil {
		return err
	}

	fmt.Printf("%s  day score: %d/100\n\n", summary.Date, summary.DayScore)

	if len(summary.Vegetables) == 0 {
		fmt.Println("No vegetables recorded.")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tGRAMS\tRECORDED")
		for _, v := range summary.Vegetables {
			fmt.Fprintf(w, "%s\t%dg\t%s\n", v.ID, v.Grams, v.CreatedAt.Format("15:04"))
		}
		w.Flush()
		fmt.Printf("Total: %dg\n", summary.VegTotal)
	}

	fmt.Println()
	if summary.Wakeup == nil {
		fmt.Println("No wake-up recorded.")
	} else {
		fmt.Printf("Wake-up: %s (goal %s), score %d\n",
			summary.Wakeup.WakeupTime, summary.Wakeup.GoalTime, summary.Wakeup.Score)
	}
	return nil
}
