package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/alexmaco/starship"
)

// Flag names
const (
	flagConfig  = "config"
	flagPreset  = "preset"
	flagDir     = "dir"
	flagDebug   = "debug"
	flagTimeout = "timeout"
)

// cliOptions holds the flag values shared across subcommands
type cliOptions struct {
	configPath string
	preset     string
	dir        string
	debug      bool
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "starship",
		Short:         "Render a shell prompt from independent modules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, flagConfig, "", "config file path (default: $HOME/.config/starship.yaml)")
	root.PersistentFlags().StringVar(&opts.preset, flagPreset, "", "apply a built-in preset")
	root.PersistentFlags().StringVar(&opts.dir, flagDir, ".", "working directory to render for")
	root.PersistentFlags().BoolVar(&opts.debug, flagDebug, false, "verbose logging to stderr")
	root.PersistentFlags().DurationVar(&opts.timeout, flagTimeout, starship.DefaultCommandTimeout, "per-command timeout")

	root.AddCommand(newPromptCmd(opts))
	root.AddCommand(newExplainCmd(opts))
	root.AddCommand(newPresetsCmd())

	return root
}

// newLogger builds a stderr logger; warnings only unless --debug
func newLogger(debug bool) *zap.Logger {
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{"stderr"}
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// setup loads configuration and builds the render context
func setup(opts *cliOptions) (*starship.Context, *starship.Config, *zap.Logger, error) {
	logger := newLogger(opts.debug)

	cfg, err := starship.LoadConfig(opts.configPath, opts.preset, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	sctx := starship.NewContext(opts.dir,
		starship.WithContextLogger(logger),
		starship.WithCommandTimeout(opts.timeout))
	return sctx, cfg, logger, nil
}

func newPromptCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Render the prompt line for the working directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			sctx, cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			line, err := starship.RenderPrompt(cmd.Context(), sctx, cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), line)
			return nil
		},
	}
}

func newExplainCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Show each module's output with its name, for debugging",
		RunE: func(cmd *cobra.Command, args []string) error {
			sctx, cfg, logger, err := setup(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			modules := starship.RenderModules(cmd.Context(), sctx, cfg)
			for _, module := range modules {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %q\n", module.Name, module.Plain())
			}
			return nil
		},
	}
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range starship.PresetNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
