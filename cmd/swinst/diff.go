package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/swinst/internal/drift"
	"github.com/conn-castle/swinst/internal/messages"
)

func newDiffCmd(st *cliState) *cobra.Command {
	var qf queryFlags
	var maxLines int
	cmd := &cobra.Command{
		Use:   messages.DiffUse,
		Short: messages.DiffShort,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, stackPath, err := prepare(cmd, st, qf, args[0])
			if err != nil {
				return err
			}
			report, err := drift.Compare(q, stackPath, maxLines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if st.cfg.Output.JSON {
				return writeJSON(out, report)
			}
			if report.Identical {
				_, err = fmt.Fprintf(out, messages.DiffIdentical, report.WorkingPath, report.ArtifactPath)
				return err
			}
			printDiff(out, report.UnifiedDiff)
			return nil
		},
	}
	qf.register(cmd, true)
	cmd.Flags().IntVar(&maxLines, "lines", drift.DefaultMaxLines, messages.FlagDiffLines)
	return cmd
}

// printDiff colors a unified diff line by line.
func printDiff(out io.Writer, diff string) {
	for _, line := range strings.Split(strings.TrimRight(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			line = bold(line)
		case strings.HasPrefix(line, "@@"):
			line = cyan(line)
		case strings.HasPrefix(line, "+"):
			line = green(line)
		case strings.HasPrefix(line, "-"):
			line = red(line)
		}
		_, _ = fmt.Fprintln(out, line)
	}
}
