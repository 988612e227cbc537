package cli

import (
	"github.com/andrei-cloud/cryptoproc/internal/commands/cli/list"
	"github.com/andrei-cloud/cryptoproc/internal/commands/cli/server"
	"github.com/spf13/cobra"
)

// RegisterCommands registers all root commands.
func RegisterCommands(root *cobra.Command) error {
	root.AddCommand(server.NewServeCommand())
	root.AddCommand(list.NewListCommand())

	return nil
}
