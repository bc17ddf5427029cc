package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zedseven/lsbsteg"
	"github.com/zedseven/lsbsteg/internal/config"
	"github.com/zedseven/lsbsteg/internal/logtrace"
)

var (
	// Global flags
	cfgFile  string
	logLevel string

	// Resolved in PersistentPreRunE
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "steg",
	Short: "Hide text in the least-significant bits of an image",
	Long: `steg hides a text payload (or a whole file) in the least-significant bits of an
image's colour channels. The positions are picked by a pseudo-random walk seeded
with a key, so the payload can only be recovered with the same key, encoding
limit and channel set.

Only lossless output formats (PNG, TIFF) are written.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		return logtrace.Setup(cfg.LogLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logtrace.Sync()
	},
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "steg v%s\n", lsbsteg.Version())
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	ctx := logtrace.CtxWithCorrelationID(context.Background(), uuid.NewString())
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file with default settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(versionCmd)
}

// stegOptions resolves the key, limit and channel set from the flags of cmd, falling back to the config.
func stegOptions(cmd *cobra.Command, key, limit, channels string) (lsbsteg.Options, error) {
	if !cmd.Flags().Changed("key") {
		key = cfg.Key
	}
	if !cmd.Flags().Changed("limit") {
		limit = cfg.Limit
	}
	if !cmd.Flags().Changed("channels") {
		channels = cfg.Channels
	}

	l, err := lsbsteg.ParseLimit(limit)
	if err != nil {
		return lsbsteg.Options{}, err
	}
	c, err := lsbsteg.ParseChannelSet(channels)
	if err != nil {
		return lsbsteg.Options{}, err
	}
	return lsbsteg.Options{Key: key, Limit: l, Channels: c}, nil
}
