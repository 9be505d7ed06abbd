package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/swinst/internal/config"
	"github.com/conn-castle/swinst/internal/doctor"
	"github.com/conn-castle/swinst/internal/messages"
)

var (
	checkConfig   = doctor.CheckConfig
	checkManifest = doctor.CheckManifest
)

func newCheckCmd(st *cliState) *cobra.Command {
	var qf queryFlags
	cmd := &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// A broken config is reported as a check result; the manifest
			// checks still run on defaults.
			path, optional, err := st.configLocation()
			if err != nil {
				return err
			}
			allResults, cfg := checkConfig(path, optional)
			if cfg == nil {
				cfg = config.Defaults()
			}
			if err := st.setup(cmd, cfg); err != nil {
				return err
			}

			stackPath, err := qf.stackPath(args[0])
			if err != nil {
				return err
			}
			allResults = append(allResults, checkManifest(stackPath, st.cfg.DefaultSchema)...)
			failed := doctor.HasFailure(allResults)

			if st.cfg.Output.JSON {
				if err := writeJSON(out, allResults); err != nil {
					return err
				}
				if failed {
					return &SilentExitError{Code: exitGeneric}
				}
				return nil
			}

			_, _ = fmt.Fprintf(out, messages.CheckHeaderFmt, stackPath)
			for _, r := range allResults {
				printResult(out, r)
			}
			if failed {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return errors.New(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
	qf.register(cmd, false)
	return cmd
}

func printResult(out io.Writer, r doctor.Result) {
	var status string
	switch r.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	case doctor.StatusFail:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}

	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		printRecommendation(out, r.Recommendation)
	}
}

// printRecommendation renders a multi-line recommendation with consistent indentation.
func printRecommendation(out io.Writer, recommendation string) {
	for i, line := range strings.Split(recommendation, "\n") {
		switch {
		case i == 0:
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationPrefix, line)
		case line == "":
			_, _ = fmt.Fprintf(out, "%s\n", messages.DoctorRecommendationIndent)
		default:
			_, _ = fmt.Fprintf(out, "%s%s\n", messages.DoctorRecommendationIndent, line)
		}
	}
}
