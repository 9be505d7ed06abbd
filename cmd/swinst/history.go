package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

// historyOutput is the JSON form of the history command.
type historyOutput struct {
	ManifestPath string                 `json:"manifest_path"`
	Schema       manifest.SchemaVersion `json:"schema"`
	Current      int64                  `json:"current,omitempty"`
	Entries      []manifest.StackEntry  `json:"entries"`
}

func newHistoryCmd(st *cliState) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   messages.HistoryUse,
		Short: messages.HistoryShort,
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
			var currentSeq int64
			current, err := manifest.Resolve(stack)
			switch {
			case err == nil:
				currentSeq = current.Sequence
			case !errors.Is(err, manifest.ErrNoCurrentEntry):
				return err
			}
			out := cmd.OutOrStdout()
			if st.cfg.Output.JSON {
				entries := stack.Entries
				if entries == nil {
					entries = []manifest.StackEntry{}
				}
				return writeJSON(out, historyOutput{
					ManifestPath: stack.ManifestPath,
					Schema:       stack.Schema,
					Current:      currentSeq,
					Entries:      entries,
				})
			}
			printHistory(out, stack, currentSeq)
			return nil
		},
	}
	qf.register(cmd, false)
	return cmd
}

// printHistory renders entries oldest first with the current one marked.
func printHistory(out io.Writer, stack *manifest.InstallStack, currentSeq int64) {
	_, _ = fmt.Fprintf(out, messages.HistoryHeaderFmt, stack.ManifestPath, stack.Schema, stack.Len())
	if stack.Len() == 0 {
		_, _ = fmt.Fprintln(out, messages.HistoryEmpty)
		return
	}
	for _, e := range stack.Entries {
		marker := " "
		if e.Sequence == currentSeq {
			marker = color.GreenString(messages.HistoryCurrent)
		}
		var extra []string
		if e.User != "" {
			extra = append(extra, e.User)
		}
		if e.Removed {
			extra = append(extra, color.RedString(messages.HistoryRemoved))
		}
		version := e.Version
		if e.Sequence == currentSeq {
			version = green(version)
		}
		line := fmt.Sprintf(messages.HistoryLineFmt,
			marker,
			e.Sequence,
			e.InstalledAt.Format(messages.PickDateTimeLayout),
			e.Action,
			version,
			strings.Join(extra, " "),
		)
		_, _ = fmt.Fprintln(out, strings.TrimRight(line, " "))
	}
	if currentSeq == 0 {
		_, _ = fmt.Fprintln(out, color.YellowString(messages.HistoryNoCurrent))
	}
}
