package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"punchlog/internal/config"
	"punchlog/internal/engine"
	"punchlog/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "punchlog",
	Short: "A CLI attendance punch clock",
	Long: `punchlog is a personal time-attendance tracker. Check in when you start
working and out when you stop, and punchlog keeps daily, weekly and monthly
totals against your daily hours target.`,
}

var (
	appEngine *engine.Engine
	appStore  *store.Store
)

// initEngine wires config, logging, storage and the engine together.
// Panics on bootstrap failure; once the engine is up nothing fails hard.
func initEngine() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	s, err := store.Open(cfg.Database.Path, newLogger(cfg.Log.Level))
	if err != nil {
		panic(err)
	}

	appStore = s
	appEngine = engine.New(s)
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.WarnLevel
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// withEngine wraps a command function to set up the engine first
func withEngine(fn func(*cobra.Command, []string)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		initEngine()
		defer appStore.Close()
		fn(cmd, args)
	}
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("punchlog %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.AddCommand(inCmd)
	rootCmd.AddCommand(outCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(absentsCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(limitCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}
