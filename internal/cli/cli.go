// Package cli implements the maxbw command-line interface.
//
// The CLI reads a network file, computes maximum cumulative bandwidth paths
// from a source node and prints them. It is built with cobra and logs with
// charmbracelet/log; --verbose switches logging to debug level.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// Execute runs the maxbw CLI with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Logs are written to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "maxbw",
		Short:         "maxbw computes maximum cumulative bandwidth paths",
		Long:          `maxbw reads a network edge list and computes, from a source node, the path of maximum cumulative bandwidth to every other node.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(charmlog.WithContext(cmd.Context(), newLogger(logOut, verbose)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("maxbw %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPathCmd())
	root.AddCommand(newTableCmd())

	return root
}
