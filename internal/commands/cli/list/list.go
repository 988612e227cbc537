// Package list provides the command listing CLI command.
package list

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/andrei-cloud/cryptoproc/internal/processor"
	"github.com/andrei-cloud/cryptoproc/pkg/cryptoutils"
	"github.com/spf13/cobra"
)

// NewListCommand creates the commands command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "commands",
		Aliases: []string{"list"},
		Short:   "List supported request commands",
		Long:    `List the request commands accepted on standard input with their descriptions.`,
		Args:    cobra.NoArgs,
		RunE:    runListCommands,
	}
}

func runListCommands(cmd *cobra.Command, _ []string) error {
	// Create tabwriter for aligned output.
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, "Command\tDescription")
	_, _ = fmt.Fprintln(w, "-------\t-----------")

	for _, c := range processor.Commands() {
		info, ok := processor.Describe(c)
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", info.Command, info.Description)
	}

	_, _ = fmt.Fprintf(w, "\nDigest algorithms: %s\n", strings.Join(cryptoutils.DigestAlgorithms(), ", "))

	return w.Flush()
}
