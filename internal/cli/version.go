package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/ls-cosmos/internal/version"
)

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "ls-cosmos v%s\n", version.Version)
			return err
		},
	}
}
