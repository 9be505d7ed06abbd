package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/mcp"
	"github.com/conn-castle/swinst/internal/messages"
)

var runMCPServer = mcp.RunServer

func newMcpCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   messages.McpUse,
		Short: messages.McpShort,
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := st.load(cmd); err != nil {
				return err
			}
			base, err := st.newQuery()
			if err != nil {
				return err
			}
			return runMCPServer(cmd.Context(), Version, func() manifest.Query { return base })
		},
	}
}
