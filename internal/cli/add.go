package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/vegirise/vegirise/internal/daemon"
	"github.com/vegirise/vegirise/internal/domain"
)

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Record date as YYYY-MM-DD (defaults to today)")
	rootCmd.AddCommand(addCmd)
}

var addDate string

var addCmd = &cobra.Command{
	Use:   "add <grams>",
	Short: "Record a vegetable serving in grams",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	grams, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("grams must be a number: %q", args[0])
	}

	d, err := daemon.NewWithNotifier(terminalNotifier{})
	if err != nil {
		return err
	}
	defer d.Close()

	date := addDate
	if date == "" {
		date = domain.Today()
	}

	rec, result, err := d.Tracker.AddVegetableAt(grams, date)
	if err != nil {
		return err
	}
	printDayTotal(d, rec.Date, result.GameState.Level)
	return nil
}

func printDayTotal(d *daemon.Daemon, date string, level int) {
	summary, err := d.Tracker.Day(date)
	if err != nil {
		return
	}
	fmt.Printf("Recorded. %s total: %dg (Lv.%d)\n", date, summary.VegTotal, level)
}
