package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vegirise/vegirise/internal/daemon"
	"github.com/vegirise/vegirise/internal/domain"
)

func init() {
	wakeCmd.Flags().StringVar(&wakeDate, "date", "", "Record date as YYYY-MM-DD (defaults to today)")
	wakeCmd.Flags().StringVar(&wakeGetUp, "get-up", "", "Time you actually got out of bed as HH:MM")
	rootCmd.AddCommand(wakeCmd)
}

var (
	wakeDate  string
	wakeGetUp string
)

var wakeCmd = &cobra.Command{
	Use:   "wake <HH:MM>",
	Short: "Record today's wake-up time",
	Long: `Record a wake-up time and score it against your goal time.
The score starts at 100 and loses 2 points per minute of deviation.
Recording again for the same date overwrites the stored time.`,
	Args: cobra.ExactArgs(1),
	RunE: runWake,
}

func runWake(cmd *cobra.Command, args []string) error {
	d, err := daemon.NewWithNotifier(terminalNotifier{})
	if err != nil {
		return err
	}
	defer d.Close()

	date := wakeDate
	if date == "" {
		date = domain.Today()
	}

	rec, result, err := d.Tracker.RecordWakeupAt(args[0], wakeGetUp, date)
	if err != nil {
		return err
	}

	fmt.Printf("Woke at %s (goal %s): score %d", rec.WakeupTime, rec.GoalTime, rec.Score)
	switch {
	case rec.DiffMinutes < 0:
		fmt.Printf(", %d min early\n", -rec.DiffMinutes)
	case rec.DiffMinutes > 0:
		fmt.Printf(", %d min late\n", rec.DiffMinutes)
	default:
		fmt.Println(", right on time")
	}
	fmt.Printf("Lv.%d, streak %d\n", result.GameState.Level, result.GameState.CurrentStreak)
	return nil
}
