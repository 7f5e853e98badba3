package terminal

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/de-tools/wakestate/pkg/runtime/app"
	"github.com/de-tools/wakestate/pkg/runtime/terminal/commands"
	"github.com/de-tools/wakestate/pkg/runtime/terminal/export"
	"github.com/de-tools/wakestate/pkg/services/config"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	opts     Options
	env      *commands.Env
	reporter *export.Reporter
	rootCmd  *cobra.Command
	cfgPath  string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// Open builds the application from the loaded config. Defaults to app.Open.
	Open func(ctx context.Context, cfg *config.Config) (*app.App, error)
	Now  func() time.Time
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Open == nil {
		opts.Open = app.Open
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	cli := &CLI{
		opts:     opts,
		env:      &commands.Env{Now: opts.Now},
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

// ExecuteContext runs the command line and closes the storage it opened.
func (cli *CLI) ExecuteContext(ctx context.Context) error {
	err := cli.rootCmd.ExecuteContext(ctx)
	if cli.env.App != nil {
		err = errors.Join(err, cli.env.App.Close())
		cli.env.App = nil
	}
	return err
}

// SetArgs overrides os.Args, for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "wakestate",
		Short:             "Track narcolepsy symptoms, events and medication, and generate reports",
		SilenceUsage:      true,
		PersistentPreRunE: cli.open,
	}
	cmd.SetOut(cli.opts.Output)
	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to the wakestate YAML config file")

	cmd.AddCommand(commands.NewCheckInCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewEventCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewSettingsCmd(cli.env))
	cmd.AddCommand(commands.NewMedicationCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewExportCmd(cli.env))
	cmd.AddCommand(commands.NewImportCmd(cli.env))
	cmd.AddCommand(commands.NewReportCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewTrendsCmd(cli.env, cli.reporter))

	return cmd
}

func (cli *CLI) open(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(cli.cfgPath)
	if err != nil {
		return err
	}

	logger := cfg.NewLogger(cmd.ErrOrStderr())
	ctx := logger.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	a, err := cli.opts.Open(ctx, cfg)
	if err != nil {
		return err
	}
	cli.env.App = a
	return nil
}
