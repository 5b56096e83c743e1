package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"filescope/internal/clix"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved scans, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		limit := clix.ParseLimit(cmd.Flags())
		scans, err := appInstance.ScanService.History(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to list scans: %w", err)
		}
		if len(scans) == 0 {
			fmt.Println("No saved scans.")
			return nil
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"ID", "Root", "Files", "Created At"})
		table.SetBorder(false)
		for _, s := range scans {
			table.Append([]string{
				s.ID.String(),
				s.Root,
				strconv.Itoa(s.TotalFiles),
				s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			})
		}
		table.Render()
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <scan-id>",
	Short: "Show the full result of a saved scan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid scan id %q: %w", args[0], err)
		}

		scan, err := appInstance.ScanService.GetScan(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to load scan: %w", err)
		}

		fmt.Printf("Scan %s of %s (%s)\n\n", scan.ID, scan.Root, scan.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		printResults(scan.Result)
		printSummaryTable(scan)
		fmt.Println()
		fmt.Println(scan.Stats.Summary())
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of scans to list")
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}
