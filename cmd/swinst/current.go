package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

// currentOutput is the JSON form of the current command.
type currentOutput struct {
	Artifact string              `json:"artifact"`
	Entry    manifest.StackEntry `json:"entry"`
}

func newCurrentCmd(st *cliState) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   messages.CurrentUse,
		Short: messages.CurrentShort,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurrent(cmd, st, qf, args[0])
		},
	}
	qf.register(cmd, true)
	return cmd
}

func runCurrent(cmd *cobra.Command, st *cliState, qf queryFlags, file string) error {
	q, stackPath, err := prepare(cmd, st, qf, file)
	if err != nil {
		return err
	}
	entry, err := q.Current(stackPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if st.cfg.Output.JSON {
		return writeJSON(out, currentOutput{Artifact: entry.Path, Entry: entry})
	}
	_, err = fmt.Fprintln(out, entry.Path)
	return err
}
