package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/linreg/internal/config"
	"github.com/arloliu/linreg/internal/logging"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	precision  int
	logLevel   string

	cfg *config.Config
	log *logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		cfg: config.Default(),
		log: logging.Nop(),
	}

	root := &cobra.Command{
		Use:           "linreg",
		Short:         "Ordinary least-squares linear regression",
		Long:          "linreg fits y = a·x + b to a series or to (x, y) pairs, reports goodness of fit and projects the line forward.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.IntVar(&a.precision, "precision", 0, "decimals in numeric output (overrides output.precision)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides log.level)")

	root.AddCommand(
		newAnalyzeCmd(a),
		newDescribeCmd(a),
		newFitCmd(a),
		newProjectCmd(a),
		newConvertCmd(a),
	)

	return root
}

// setup loads configuration, applies flag overrides and creates the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("precision") {
		cfg.Output.Precision = a.precision
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log.With("command", cmd.Name())

	return nil
}
