// Package main provides the ytsum CLI. It wires the subcommands, loads
// configuration and initializes logging before any of them runs.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"ytsum/internal/config"
	"ytsum/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by all subcommands.
type app struct {
	configPath   string
	settingsPath string

	cfg *config.Config
}

// skipConfig marks commands that run without configuration or logging.
const skipConfig = "ytsum/skip-config"

// load reads .env, the config file and the settings file, and sets up logging.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	if _, ok := cmd.Annotations[skipConfig]; ok {
		return nil
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not load .env: %w", err)
	}

	cfg, err := config.Load(a.configPath, a.settingsPath)
	if err != nil {
		return err //nolint: wrapcheck
	}
	a.cfg = cfg

	if err := logger.Setup(cfg.Environment, cfg.Log.Level); err != nil {
		return fmt.Errorf("could not set up logger: %w", err)
	}
	logger.Debug(cmd.Context(), "config loaded", zap.String("environment", cfg.Environment))

	return nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "ytsum",
		Short:             "Extracts, downloads and summarizes YouTube transcripts",
		PersistentPreRunE: a.load,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")
	rootCmd.PersistentFlags().StringVar(&a.settingsPath, "settings", "",
		"Settings file with an \"env\" object (default $SETTINGS_FILE or ~/.claude/settings.json)")

	rootCmd.AddCommand(
		videoIDCommand(),
		transcriptCommand(a),
		summarizeCommand(a),
		serveCommand(a),
		migrateCommand(a),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1) //nolint: gocritic
	}
}
