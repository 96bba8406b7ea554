package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eliza/internal/session"
)

// transcriptPath holds the --transcript flag value for repl.
var transcriptPath string

// replCmd runs the plain line-oriented conversation loop on stdin/stdout.
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Run the conversation loop on stdin/stdout",
	Long: `Runs the plain read-respond-print loop without the TUI.

One reply per input line, prefixed "Eliza: ". The lines bye, exit, and quit
(any letter case) end the session; so does end of input. Suited to piped
input and scripted use.`,
	RunE: runRepl,
}

func init() {
	replCmd.Flags().StringVar(&transcriptPath, "transcript", "", "Append a plain-text transcript of the session to this file")
}

func runRepl(cmd *cobra.Command, args []string) error {
	selector, err := buildSelector()
	if err != nil {
		return err
	}

	cfg := session.Config{
		Input:      os.Stdin,
		Output:     os.Stdout,
		Selector:   selector,
		Logger:     logger,
		ShowPrompt: true,
	}

	if transcriptPath != "" {
		f, err := os.OpenFile(transcriptPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open transcript file: %w", err)
		}
		defer f.Close()
		cfg.Transcript = f
	}

	sess := session.New(cfg)
	logger.Info("starting repl session", zap.String("session_id", sess.ID()))
	return sess.Run()
}
