package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the advocate directory.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "advocates",
		Short:         "Advocate directory",
		Long:          "Search and page through the advocate directory, over HTTP or in the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewBrowseCommand())

	return cmd
}
