// Package cli wires the sol command tree: a root command carrying metadata
// and global flags, and the placement subcommand that runs the advisor.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	appName     = "sol"
	version     = "1.0.0"
	author      = "Will Fehrnstrom <wfehrnstrom@gmail.com>"
	description = "Utility for determining optimal positioning of solar panels"
)

type options struct {
	configFile string
	verbose    bool

	fixed      string
	adjustable string
	output     string
}

// NewRootCommand builds a fresh sol command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         description,
		Long:          description + ".\n\nAuthor: " + author,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n" + author + "\n")

	rootCmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output on stderr")

	rootCmd.AddCommand(newPlacementCommand(opts))
	return rootCmd
}

// Execute runs the command tree with args and returns the process exit code
func Execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		return 1
	}
	return 0
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
