package clix

import (
	"github.com/spf13/pflag"

	"filescope/pkg/classifier"
)

// ParseScanOptions builds classifier options from the shared scan flags,
// layered over the configured defaults.
func ParseScanOptions(flags *pflag.FlagSet, defaults classifier.Options) classifier.Options {
	opts := defaults
	if flags.Changed("analyze-content") {
		opts.AnalyzeContent, _ = flags.GetBool("analyze-content")
	}
	if noHidden, _ := flags.GetBool("no-exclude-hidden"); noHidden {
		opts.ExcludeHidden = false
	}
	opts.IncludeIgnored, _ = flags.GetBool("include-ignored")
	opts.IncludeAll, _ = flags.GetBool("include-all")
	return opts
}

// ParseLimit reads a --limit flag, falling back to a sane default.
func ParseLimit(flags *pflag.FlagSet) int {
	limit, _ := flags.GetInt("limit")
	if limit <= 0 {
		limit = 20
	}
	return limit
}
