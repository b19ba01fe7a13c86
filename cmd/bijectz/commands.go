package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/bijectz"
	"github.com/zoobzio/bijectz/codec"
	"github.com/zoobzio/bijectz/internal/config"
)

type options struct {
	configPath string
	logLevel   string
	chain      []string
	trim       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "bijectz",
		Short: "Encode and decode data through reversible codec chains",
		Long: `bijectz runs stdin through a chain of registered codecs.

encode applies the chain first to last. decode inverts it last to first and
fails with the name of the codec that rejected the input.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Disable default completion command
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	flags.StringSliceVar(&opts.chain, "chain", nil, "codec names, applied first to last")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	decode := newDecodeCmd(opts)
	decode.Flags().BoolVar(&opts.trim, "trim", false, "strip trailing newlines from the input before decoding text codecs")

	root.AddCommand(newEncodeCmd(opts), decode, newListCmd())
	return root
}

func newEncodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "encode",
		Short: "Apply the codec chain to stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(chain *bijectz.Observed[[]byte, []byte], input []byte) ([]byte, error) {
				return chain.Apply(input), nil
			})
		},
	}
}

func newDecodeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "decode",
		Short: "Invert the codec chain over stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(chain *bijectz.Observed[[]byte, []byte], input []byte) ([]byte, error) {
				if opts.trim {
					input = bytes.TrimRight(input, "\r\n")
				}
				return chain.Invert(input)
			})
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered codecs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			reg := codec.Default()
			out := cmd.OutOrStdout()
			for _, name := range reg.Names() {
				c, _ := reg.Lookup(name) //nolint:errcheck // name came from Names
				fmt.Fprintf(out, "  %-10s %s\n", name, c.Name())
			}
		},
	}
}

func run(cmd *cobra.Command, opts *options, step func(*bijectz.Observed[[]byte, []byte], []byte) ([]byte, error)) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	bijectz.SetLogger(logger)
	defer bijectz.SetLogger(nil)

	chain, err := codec.Default().Chain(cfg.Chain...)
	if err != nil {
		return fmt.Errorf("failed to build chain: %w", err)
	}
	observed := bijectz.NewObserved(cfg.Name, chain)
	defer observed.Close() //nolint:errcheck

	input, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	output, err := step(observed, input)
	if err != nil {
		var failure *bijectz.InversionFailure
		if errors.As(err, &failure) {
			logger.Error("decode failed",
				zap.String("chain", chain.Name()),
				zap.String("codec", failure.Transform),
				zap.Error(failure.Cause))
		}
		return err
	}

	if _, err := cmd.OutOrStdout().Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	metrics := observed.Metrics()
	logger.Debug("chain finished",
		zap.String("chain", chain.Name()),
		zap.Float64("applied", metrics.Counter(bijectz.ObservedApplyTotal).Value()),
		zap.Float64("inverted", metrics.Counter(bijectz.ObservedInvertTotal).Value()),
		zap.Int("input_bytes", len(input)),
		zap.Int("output_bytes", len(output)))
	return nil
}

// loadConfig reads the config file when one is given. Flags win over file
// values.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("chain") {
		cfg.Chain = opts.chain
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if len(cfg.Chain) == 0 {
		return nil, fmt.Errorf("no codecs given: use --chain or set chain in the config: %w", codec.ErrEmptyChain)
	}
	return cfg, nil
}
