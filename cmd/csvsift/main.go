package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"csvsift/internal/config"
	"csvsift/internal/logging"
	"csvsift/internal/present"
	"csvsift/internal/prompt"
	"csvsift/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	workDir    string
	viewFlag   string
	noColor    bool

	// Resolved at startup
	cfg    *config.Config
	logger *zap.Logger

	version = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "csvsift",
	Short: "Filter people records in CSV files",
	Long: `csvsift loads a comma-separated file of people records and lets you filter
them by age, city, last name, first name or ID. Matching records are shown on
screen and can be saved to a new CSV file.

Run without arguments to start the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the csvsift version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "csvsift %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (relative to --dir)")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "d", "", "Directory data files are read from and saved to (default: current)")
	rootCmd.PersistentFlags().StringVar(&viewFlag, "view", "", "Result view: block or table (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup resolves configuration and builds the logger.
func setup() error {
	path := configPath
	if !filepath.IsAbs(path) && workDir != "" {
		path = filepath.Join(workDir, path)
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	if viewFlag != "" {
		loaded.View = viewFlag
	}
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	logger, err = logging.New(cfg.Logging, verbose)
	if err != nil {
		return err
	}
	logging.For(logger, logging.CategoryBoot).Debug("configuration resolved",
		zap.String("config", path),
		zap.String("dir", workDir),
		zap.String("default_file", cfg.DefaultFile),
		zap.String("view", cfg.View))
	return nil
}

func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func styles() present.Styles {
	if noColor {
		return present.PlainStyles()
	}
	return present.DefaultStyles()
}

// runInteractive starts the menu-driven session on the command's stdin/stdout.
func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c := currentConfig()
	st := styles()
	out := cmd.OutOrStdout()

	s := session.New(
		prompt.New(cmd.InOrStdin(), out, st),
		present.New(out, c.View, st),
		session.Options{Dir: workDir, DefaultFile: c.DefaultFile, Extension: c.Extension},
		currentLogger(),
	)
	return s.Run(ctx)
}
