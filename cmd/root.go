// Package cmd implements the budget CLI command.
package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/theirongolddev/budget/internal/config"
	"github.com/theirongolddev/budget/internal/theme"
	"github.com/theirongolddev/budget/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "budget",
	Short: "Personal budget tracker",
	Long:  "Enter your monthly income and expenses to see your remaining balance.",
	// Arguments are accepted and ignored, flags included.
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runTracker,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Errorf("budget: %v", err)
		os.Exit(1)
	}
}

func runTracker(_ *cobra.Command, _ []string) error {
	cfg, cfgErr := config.Load()
	setupLogging(cfg.General.LogLevel)

	if cfgErr != nil {
		log.Warnf("using default configuration: %v", cfgErr)
	} else if config.Exists() {
		log.Debugf("loaded configuration from %s", config.Path())
	}

	if !theme.SetActive(cfg.Appearance.Theme) {
		log.Warnf("unknown theme %q, using %s", cfg.Appearance.Theme, theme.Active.Name)
	}

	opts, err := tracker.OptionsFromConfig(cfg)
	if err != nil {
		log.Warnf("appearance: %v", err)
	}

	_, err = tracker.New(os.Stdin, os.Stdout, opts).Run()
	return err
}

func setupLogging(level string) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.WarnLevel)
		log.Warnf("invalid log level %q, using warn", level)
		return
	}
	log.SetLevel(lvl)
}
