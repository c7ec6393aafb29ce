package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vegirise/vegirise/internal/daemon"
)

func init() {
	rootCmd.AddCommand(rmCmd)
}

var rmCmd = &cobra.Command{
	Use:   "rm <record-id>",
	Short: "Delete a vegetable record",
	Long: `Delete one vegetable record by id (shown by 'vegirise day').
Lifetime gram and record counters are compensated; XP and goal flags
already awarded for the day are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	d, err := daemon.New()
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.Tracker.DeleteVegetable(args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}
