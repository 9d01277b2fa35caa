package main

import (
	"fmt"
	"os"

	"contactbook/internal/config"
	"contactbook/internal/logging"
	"contactbook/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	window     int

	cfg    *config.Config
	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "contacts",
	Short: "contacts - an in-memory address book with birthday reminders",
	Long: `contacts keeps names, phone numbers and birthdays for the lifetime of
the process and answers lookups from a simple command loop.

Run without arguments to start the interactive loop; type "help" there for
the list of commands. Nothing is saved when the process exits.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("window") {
			cfg.Session.BirthdayWindowDays = window
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		logger.Get(logging.CategoryBoot).Debug("Configuration loaded",
			zap.String("path", configPath),
			zap.Int("birthday_window_days", cfg.Session.BirthdayWindowDays))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

// execCmd runs command lines non-interactively
var execCmd = &cobra.Command{
	Use:   "exec [command line]...",
	Short: "Run one or more command lines and print each reply",
	Long: `Runs every argument as one command line against a single session, in
order, and prints one reply per line. Quote each command line.

Example:
  contacts exec "add Alice 1234567890" "add-birthday Alice 01.01.1990" all`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

// versionCmd prints the configured name and version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", cfg.Name, cfg.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().IntVar(&window, "window", 7, "Look-ahead in days for the birthdays command")

	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newSession(cmd *cobra.Command) *session.Session {
	return session.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		session.WithWindow(cfg.Session.BirthdayWindowDays),
		session.WithPrompt(cfg.Session.Prompt),
		session.WithLogger(logger.Get(logging.CategorySession)),
	)
}

// runInteractive reads commands from stdin until exit, close or EOF
func runInteractive(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	if err := s.Run(cmd.Context()); err != nil {
		return fmt.Errorf("command loop failed: %w", err)
	}
	return nil
}

// runExec executes each argument as a command line
func runExec(cmd *cobra.Command, args []string) error {
	s := newSession(cmd)
	for _, line := range args {
		reply, quit := s.Execute(line)
		if reply != "" {
			fmt.Fprintln(cmd.OutOrStdout(), reply)
		}
		if quit {
			break
		}
	}
	return nil
}
