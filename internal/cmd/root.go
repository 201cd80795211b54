package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/grepl/internal/search"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root command for grepl.
//
// The first positional argument is the pattern; every following one is a
// path. Flags may appear before, after, or between positionals, and `--`
// ends flag parsing; both come from cobra's pflag engine, as do
// unknown-flag errors and -h/--help short-circuiting.
func NewRootCommand() *cobra.Command {
	var opts search.Options

	cmd := &cobra.Command{
		Use:   "grepl <pattern> <path>...",
		Short: "Search files for a literal pattern",
		Long: `grepl scans files for lines containing a literal pattern, similar in
spirit to the UNIX grep command but without regular expressions.

Flags may appear before, after, or between the pattern and paths.
Use -- to stop flag parsing, e.g. to search for a pattern that starts
with a dash:

  grepl -- -i notes.txt

Exit code: 0 if every path was scanned (even with zero matches),
1 on a usage error or when any path could not be searched.`,
		Version:       Version,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return &search.UsageError{Message: "missing search pattern"}
			}
			req := search.Request{
				Pattern: args[0],
				Paths:   args[1:],
				Options: opts,
			}
			if err := req.Validate(); err != nil {
				return err
			}

			// Arguments are valid past this point; later failures are
			// search failures and should not trigger the usage text.
			cmd.SilenceUsage = true

			runner := search.NewRunner(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return runner.Run(req)
		},
	}

	cmd.Flags().BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "Case-insensitive search")
	cmd.Flags().BoolVarP(&opts.LineNumbers, "line-number", "n", false, "Print line numbers")
	cmd.Flags().BoolVarP(&opts.InvertMatch, "invert-match", "v", false, "Print lines that do not match the pattern")
	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "Recurse into directories")
	cmd.Flags().BoolVarP(&opts.WithFilename, "with-filename", "f", false, "Print file names")
	cmd.Flags().BoolVarP(&opts.Color, "color", "c", false, "Highlight matches in red")

	return cmd
}
