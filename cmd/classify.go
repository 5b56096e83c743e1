package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"filescope/pkg/classifier"
)

var classifyAnalyzeContent bool

var classifyCmd = &cobra.Command{
	Use:   "classify <file>",
	Short: "Classify a single file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("cannot access %s: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory; use scan instead", path)
		}

		engine := classifier.New()
		category, confidence := engine.ClassifyFile(path, classifyAnalyzeContent)
		fmt.Printf("%s: %s (%s confidence)\n", path, category, confidence)
		return nil
	},
}

func init() {
	classifyCmd.Flags().BoolVarP(&classifyAnalyzeContent, "analyze-content", "a", false, "Read file content to classify files path patterns miss")
	rootCmd.AddCommand(classifyCmd)
}
