package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/swinst/internal/messages"
	"github.com/conn-castle/swinst/internal/watch"
)

var watchFunc = watch.Watch

// watchEvent is the JSON line emitted per update.
type watchEvent struct {
	Artifact string `json:"artifact,omitempty"`
	Sequence int64  `json:"sequence,omitempty"`
	Error    string `json:"error,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

func newWatchCmd(st *cliState) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   messages.WatchUse,
		Short: messages.WatchShort,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, stackPath, err := prepare(cmd, st, qf, args[0])
			if err != nil {
				return err
			}
			out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
			asJSON := st.cfg.Output.JSON
			return watchFunc(cmd.Context(), q, stackPath, st.logger, func(u watch.Update) {
				if asJSON {
					ev := watchEvent{Artifact: u.Entry.Path, Sequence: u.Entry.Sequence}
					if u.Err != nil {
						ev = watchEvent{Error: u.Err.Error(), Kind: manifestKind(u.Err)}
					}
					_ = writeJSONLine(out, ev)
					return
				}
				if u.Err != nil {
					_, _ = fmt.Fprintf(errOut, messages.WatchErrorFmt, u.Err)
					return
				}
				_, _ = fmt.Fprintln(out, u.Entry.Path)
			})
		},
	}
	qf.register(cmd, false)
	return cmd
}
