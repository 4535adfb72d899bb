package app

import "github.com/spf13/pflag"

// RegisterFlags registers all CLI flags on the given FlagSet
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("transport", "t", "", "Transport type: stdio or sse")
	flags.StringP("host", "H", "", "Host for SSE transport")
	flags.IntP("port", "p", 0, "Port for SSE transport")
	flags.StringP("data-file", "f", "", "Path to the person data file")
	flags.Duration("lock-timeout", 0, "How long to wait for the data file lock held by another process")
	flags.IntP("max-results", "m", 0, "Maximum number of search results")
}
