package main

import (
	"fmt"
	"io"
	"os"

	"github.com/iwvelando/status-plot/internal/apperr"
	"github.com/iwvelando/status-plot/internal/config"
	"github.com/iwvelando/status-plot/internal/logging"
	"github.com/iwvelando/status-plot/internal/pipeline"
	"github.com/iwvelando/status-plot/internal/source"
	"github.com/iwvelando/status-plot/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "dev"

type globalOptions struct {
	configPath string
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "status-plot [input] <output>",
		Short: "Plot a solver status log as a scatter chart",
		Long: `Plot a solver status log as a scatter chart.

Each input line is "<size>,<status>" where status is empty (infeasible, red),
0 (linear, blue), 1 (integer, green) or 2 (timeout, black). The input is read
from standard input when only the output file is given. The output format is
taken from the output file extension: png or svg.`,
		Version:       version,
		Args:          withUsage(cobra.RangeArgs(1, 2)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := "", args[0]
			if len(args) == 2 {
				input, output = args[0], args[1]
			}

			conf, logger, err := setup(cmd, opts, stderr)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			_, err = pipeline.Plot(logger, pipeline.Job{
				Input:  source.New(input),
				Output: output,
				Render: conf.Render.Scatter(),
				Stdin:  stdin,
			})
			return logFailure(logger, "main.plot", err)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(usageError)

	// -h is height; help stays available as --help.
	cmd.Flags().Bool("help", false, "help for status-plot")
	cmd.Flags().IntP("width", "w", constants.DefaultWidth, "output image width")
	cmd.Flags().IntP("height", "h", constants.DefaultHeight, "output image height")
	cmd.Flags().IntP("margin", "m", constants.DefaultMargin, "plot margin")
	cmd.Flags().IntP("radius", "r", constants.DefaultRadius, "scatter point radius")

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		fmt.Sprintf("path to configuration file (default %s if present)", constants.DefaultConfigFile))
	cmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "", "log format override (console, json)")
	cmd.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(newStatsCmd(opts, stdin, stdout, stderr))
	return cmd
}

func newStatsCmd(opts *globalOptions, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [input]",
		Short: "Summarize a solver status log per status",
		Args:  withUsage(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}

			conf, logger, err := setup(cmd, opts, stderr)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			_, err = pipeline.Stats(logger, pipeline.StatsJob{
				Input:  source.New(input),
				Format: conf.Output.Format,
				Stdin:  stdin,
				Out:    stdout,
			})
			return logFailure(logger, "main.stats", err)
		},
	}
	cmd.Flags().StringP("format", "f", constants.OutputFormatPretty, "output format: pretty, csv, yaml")
	return cmd
}

// setup loads the configuration and builds the logger. Failures before the
// logger exists are printed directly.
func setup(cmd *cobra.Command, opts *globalOptions, stderr io.Writer) (*config.Configuration, *zap.Logger, error) {
	configPath, err := config.ResolveConfigPath(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to locate configuration\", \"error\": \"%v\"}\n", err)
		return nil, nil, apperr.Wrap("config.ResolveConfigPath", apperr.KindConfig, "", err)
	}

	conf, err := config.LoadConfiguration(configPath, cmd.Flags())
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", configPath, err)
		return nil, nil, apperr.Wrap("config.LoadConfiguration", apperr.KindConfig, configPath, err)
	}

	logger, err := logging.New(conf.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return nil, nil, apperr.Wrap("logging.New", apperr.KindConfig, "", err)
	}

	warnings, err := conf.ValidateConfiguration()
	if err != nil {
		logger.Error("invalid configuration",
			zap.String("op", "main"),
			zap.String("config", configPath),
			zap.Error(err),
		)
		_ = logger.Sync()
		return nil, nil, apperr.Wrap("config.ValidateConfiguration", apperr.KindConfig, configPath, err)
	}
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	return conf, logger, nil
}

// usageError reports a bad command line. Errors returned from RunE are
// logged by logFailure instead.
func usageError(cmd *cobra.Command, err error) error {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n%s", err, cmd.UsageString())
	return err
}

func withUsage(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

func logFailure(logger *zap.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	logger.Error(err.Error(),
		zap.String("op", op),
		zap.String("kind", string(apperr.KindOf(err))),
	)
	return err
}
