package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/swinst/internal/config"
	"github.com/conn-castle/swinst/internal/logging"
	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
	"github.com/conn-castle/swinst/internal/terminal"
)

var nowFunc = time.Now

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath    string
	verbose       bool
	backend       string
	defaultSchema string
	json          bool
}

// cliState carries flags and the loaded configuration between commands.
type cliState struct {
	flags  globalFlags
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	st := &cliState{}
	var qf queryFlags
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          usageArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return runCurrent(cmd, st, qf, args[0])
		},
	}
	cmd.Flags().Bool("version", false, messages.RootVersionFlag)

	pf := cmd.PersistentFlags()
	pf.StringVar(&st.flags.configPath, "config", "", messages.FlagConfig)
	pf.BoolVarP(&st.flags.verbose, "verbose", "v", false, messages.FlagVerbose)
	pf.StringVar(&st.flags.backend, "backend", "", messages.FlagBackend)
	pf.StringVar(&st.flags.defaultSchema, "default-schema", "", messages.FlagDefaultSchema)
	pf.BoolVar(&st.flags.json, "json", false, messages.FlagJSON)
	qf.register(cmd, true)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &UsageError{Err: fmt.Errorf(messages.UsageArgsFmt, err, c.CommandPath())}
	})
	cmd.AddCommand(
		newCurrentCmd(st),
		newHistoryCmd(st),
		newCheckCmd(st),
		newDiffCmd(st),
		newPickCmd(st),
		newWatchCmd(st),
		newMcpCmd(st),
	)
	return cmd
}

// usageArgs tags positional argument failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: fmt.Errorf(messages.UsageArgsFmt, err, cmd.CommandPath())}
		}
		return nil
	}
}

// configLocation returns the config path and whether a missing file is acceptable.
// An explicit --config or SWINST_CONFIG must exist.
func (st *cliState) configLocation() (string, bool, error) {
	if st.flags.configPath != "" {
		path, err := config.ExpandPath(st.flags.configPath)
		return path, false, err
	}
	explicit := strings.TrimSpace(os.Getenv(config.EnvConfig)) != ""
	path, err := config.DefaultPath()
	return path, !explicit, err
}

// load reads the configuration, applies flag overrides, and installs the logger.
func (st *cliState) load(cmd *cobra.Command) error {
	if st.cfg != nil {
		return nil
	}
	path, optional, err := st.configLocation()
	if err != nil {
		return fmt.Errorf(messages.ConfigLoadFailed, err)
	}
	cfg, err := config.Load(path, optional)
	if err != nil {
		return fmt.Errorf(messages.ConfigLoadFailed, err)
	}
	return st.setup(cmd, cfg)
}

// setup applies flag overrides to cfg and wires logging and color.
func (st *cliState) setup(cmd *cobra.Command, cfg *config.Config) error {
	if st.flags.backend != "" {
		cfg.Backend = st.flags.backend
	}
	if st.flags.defaultSchema != "" {
		cfg.DefaultSchema = st.flags.defaultSchema
	}
	if st.flags.json {
		cfg.Output.JSON = true
	}
	if err := cfg.Validate(messages.ConfigSourceFlags); err != nil {
		return &UsageError{Err: err}
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, st.flags.verbose)
	if err != nil {
		return err
	}
	manifest.SetLogger(logger)
	color.NoColor = !terminal.ColorEnabled(cfg.Output.Color, cmd.OutOrStdout())
	st.cfg = cfg
	st.logger = logger
	return nil
}

// newQuery builds a Query from the loaded configuration.
func (st *cliState) newQuery() (manifest.Query, error) {
	d, err := manifest.NewDispatcher(st.cfg.Backend)
	if err != nil {
		return manifest.Query{}, err
	}
	return manifest.Query{Dispatcher: d, DefaultSchema: st.cfg.DefaultSchema}, nil
}

// queryFlags select the manifest and the as-of instant.
type queryFlags struct {
	isManifest bool
	date       string
	clock      string
}

func (qf *queryFlags) register(cmd *cobra.Command, withAsOf bool) {
	cmd.Flags().BoolVar(&qf.isManifest, "manifest", false, messages.FlagManifest)
	if withAsOf {
		cmd.Flags().StringVarP(&qf.date, "date", "d", "", messages.FlagDate)
		cmd.Flags().StringVarP(&qf.clock, "time", "t", "", messages.FlagTime)
	}
}

// stackPath maps the command argument to a swinstall_stack path.
func (qf queryFlags) stackPath(file string) (string, error) {
	path, err := config.ExpandPath(file)
	if err != nil {
		return "", err
	}
	if qf.isManifest {
		return path, nil
	}
	stack, err := manifest.StackPathFromVersionless(path)
	if err != nil {
		return "", fmt.Errorf(messages.ResolveInputFmt, file, err)
	}
	return stack, nil
}

// at returns the resolution cutoff, or zero for none.
func (qf queryFlags) at() (time.Time, error) {
	at, err := manifest.AsOf(qf.date, qf.clock, nowFunc())
	if err != nil {
		return time.Time{}, &UsageError{Err: err}
	}
	return at, nil
}

// prepare loads config and returns a query and stack path for file.
func prepare(cmd *cobra.Command, st *cliState, qf queryFlags, file string) (manifest.Query, string, error) {
	if err := st.load(cmd); err != nil {
		return manifest.Query{}, "", err
	}
	stackPath, err := qf.stackPath(file)
	if err != nil {
		return manifest.Query{}, "", err
	}
	at, err := qf.at()
	if err != nil {
		return manifest.Query{}, "", err
	}
	q, err := st.newQuery()
	if err != nil {
		return manifest.Query{}, "", err
	}
	q.At = at
	st.logger.Debug("query", "input", file, "manifest", stackPath, "backend", st.cfg.Backend)
	return q, stackPath, nil
}
