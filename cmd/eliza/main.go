// Package main provides the eliza CLI entry point.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"eliza/internal/engine"
	"eliza/internal/rulepack"
)

var (
	// Global flags
	verbose  bool
	packPath string
	seed     int64

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eliza",
	Short: "eliza - a Rogerian pattern-match-and-reflect responder",
	Long: `eliza is a minimal conversational responder in the Rogerian style.

Each line of input is matched against an ordered table of regular-expression
rules; the first match wins, its capture groups are pronoun-reflected, and a
response template is filled in. Unmatched input gets a generic prompt.

Run without arguments to start the interactive chat interface. Pipe-friendly
operation is available via the repl and ask subcommands.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "eliza" && cmd.CalledAs() == "eliza" {
			return nil
		}

		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch interactive chat
		return runInteractiveChat()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&packPath, "pack", "", "Rule pack file replacing the builtin tables (YAML)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "Seed for template selection (0 = time-based)")

	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(reflectCmd)
	rootCmd.AddCommand(rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildSelector assembles the response engine from the global flags:
// builtin tables by default, a rule pack when --pack is set, deterministic
// template choice when --seed is set.
func buildSelector() (*engine.Selector, error) {
	var opts []engine.Option
	if seed != 0 {
		opts = append(opts, engine.WithRandom(rand.New(rand.NewSource(seed))))
	}

	if packPath == "" {
		return engine.Default(opts...), nil
	}

	pack, err := rulepack.Load(packPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule pack: %w", err)
	}
	sel, err := pack.Selector(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build selector from pack: %w", err)
	}
	return sel, nil
}

func joinArgs(args []string) string {
	result := ""
	for i, arg := range args {
		if i > 0 {
			result += " "
		}
		result += arg
	}
	return result
}
