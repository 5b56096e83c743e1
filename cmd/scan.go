package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filescope/internal/clix"
	"filescope/pkg/classifier"
)

var (
	scanJSON        bool
	scanSave        bool
	scanSummaryOnly bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Classify every file under a directory tree",
	Long: `Scan walks the tree rooted at path (default ".") and classifies each
regular file into a category with a confidence level. Excluded directories
(dependency caches, build output, .gitignore matches) are pruned before
their contents are read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		root := "."
		if len(args) > 0 {
			root = args[0]
		}

		defaults := classifier.Options{
			AnalyzeContent: appInstance.Config.Scan.AnalyzeContent,
			ExcludeHidden:  appInstance.Config.Scan.ExcludeHidden,
		}
		opts := clix.ParseScanOptions(cmd.Flags(), defaults)

		scan, err := appInstance.ScanService.ScanTree(cmd.Context(), root, opts, scanSave)
		if err != nil {
			return err
		}

		if scanJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(scan)
		}

		if !scanSummaryOnly {
			printResults(scan.Result)
		}
		printSummaryTable(scan)
		fmt.Println()
		fmt.Println(scan.Stats.Summary())
		if scanSave {
			fmt.Printf("\nSaved as scan %s\n", scan.ID)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().BoolP("analyze-content", "a", false, "Read file contents to classify files path patterns miss")
	scanCmd.Flags().Bool("include-ignored", false, "Scan directories matched by the root .gitignore")
	scanCmd.Flags().Bool("include-all", false, "Scan dependency and build directories too")
	scanCmd.Flags().Bool("no-exclude-hidden", false, "Descend into hidden directories")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Emit the full scan as JSON")
	scanCmd.Flags().BoolVar(&scanSave, "save", false, "Persist the scan to history")
	scanCmd.Flags().BoolVar(&scanSummaryOnly, "summary-only", false, "Print only the per-category summary table")
	rootCmd.AddCommand(scanCmd)
}
