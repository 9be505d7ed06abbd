package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/swinst/internal/messages"
	"github.com/conn-castle/swinst/internal/picker"
)

var newPickerUI = func() picker.UI { return picker.NewHuhUI() }

func newPickCmd(st *cliState) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   messages.PickUse,
		Short: messages.PickShort,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, stackPath, err := prepare(cmd, st, qf, args[0])
			if err != nil {
				return err
			}
			stack, err := q.Stack(stackPath)
			if err != nil {
				return err
			}
			entry, err := picker.Pick(newPickerUI(), stack)
			if errors.Is(err, picker.ErrCancelled) {
				return &SilentExitError{Code: exitGeneric}
			}
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.cfg.Output.JSON {
				return writeJSON(out, currentOutput{Artifact: entry.Path, Entry: entry})
			}
			_, err = fmt.Fprintln(out, entry.Path)
			return err
		},
	}
	qf.register(cmd, false)
	return cmd
}
