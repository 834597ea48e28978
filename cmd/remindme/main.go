package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/remindme/internal/cli"
	"github.com/Veraticus/remindme/internal/common"
	"github.com/Veraticus/remindme/internal/config"
)

var (
	cfgFile  string
	nowFlag  string
	version  = "dev"
	settings config.Settings
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "remindme",
		Short: "⏰ Context-aware reminders and goals",
		Long: `remindme: understands reminders written in plain language, finds the tasks and
goals relevant to what you are doing, and keeps priorities honest as deadlines approach.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}

	// Global flags
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/remindme/config.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "console", "log format (console, json)")
	root.PersistentFlags().String("snapshot", "", "YAML snapshot of tasks and goals")
	root.PersistentFlags().StringVar(&nowFlag, "now", "", "evaluate as of this RFC3339 time instead of the clock")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, root.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeySnapshotPath, root.PersistentFlags().Lookup("snapshot"))

	// Add commands
	root.AddCommand(parseCmd())
	root.AddCommand(intentCmd())
	root.AddCommand(askCmd())
	root.AddCommand(chatCmd())
	root.AddCommand(rankCmd())
	root.AddCommand(overdueCmd())
	root.AddCommand(dueSoonCmd())
	root.AddCommand(digestCmd())
	root.AddCommand(chainCmd())
	root.AddCommand(milestonesCmd())
	root.AddCommand(versionCmd())

	return root
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx, stop := interrupts.HandleInterrupts(context.Background())

	err := newRootCmd().ExecuteContext(ctx)
	stop() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/remindme", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	loaded, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	settings = loaded

	common.SetupLogger(settings.LogLevel, settings.LogFormat)
	slog.Debug("Configuration loaded",
		"config_file", viper.ConfigFileUsed(),
		"snapshot", settings.SnapshotPath,
		"timezone", settings.Location,
		"llm_enabled", settings.LLMEnabled)

	return nil
}

// now returns the --now override or the wall clock, in the configured zone.
func now() (time.Time, error) {
	loc := settings.Location
	if loc == nil {
		loc = time.UTC
	}
	if nowFlag == "" {
		return time.Now().In(loc), nil
	}
	t, err := time.Parse(time.RFC3339, nowFlag)
	if err != nil {
		return time.Time{}, common.NewUserError("--now must be an RFC3339 time such as 2026-03-10T14:30:00Z", err)
	}
	return t.In(loc), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "remindme %s\n", version)
		},
	}
}
