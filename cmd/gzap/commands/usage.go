package commands

import (
	"github.com/spf13/cobra"
)

// newUsageCmd keeps `gzap usage` working alongside cobra's built-in
// `gzap help`, for muscle memory.
func (c *CLI) newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "usage",
		Short:  "Show help for gzap",
		Hidden: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().Help()
		},
	}
}
