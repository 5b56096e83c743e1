package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"filescope/internal/models"
	"filescope/pkg/classifier"
)

// printResults lists every classified file grouped by category. High
// confidence entries are printed bare; lower confidence entries carry an
// annotation so shaky classifications stand out.
func printResults(result *classifier.Result) {
	header := color.New(color.FgCyan, color.Bold)
	for _, cat := range classifier.Categories {
		files := result.Files[cat]
		if len(files) == 0 {
			continue
		}
		header.Printf("%s (%d)\n", cat, len(files))
		for _, f := range files {
			switch f.Confidence {
			case classifier.ConfidenceHigh:
				fmt.Printf("  %s\n", f.Path)
			case classifier.ConfidenceMedium:
				fmt.Printf("  %s %s\n", f.Path, color.YellowString("(medium confidence)"))
			default:
				fmt.Printf("  %s %s\n", f.Path, color.RedString("(low confidence)"))
			}
		}
		fmt.Println()
	}
}

// printSummaryTable renders the per-category confidence rollup.
func printSummaryTable(scan *models.Scan) {
	summary := models.Summarize(scan.Result, scan.Stats)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Category", "Total", "High", "Medium", "Low"})
	table.SetBorder(false)
	for _, c := range summary.Categories {
		table.Append([]string{
			string(c.Category),
			strconv.Itoa(c.Total),
			strconv.Itoa(c.High),
			strconv.Itoa(c.Medium),
			strconv.Itoa(c.Low),
		})
	}
	table.SetFooter([]string{"Total", strconv.Itoa(summary.TotalFiles), "", "", ""})
	table.Render()
}
