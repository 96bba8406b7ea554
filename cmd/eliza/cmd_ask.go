package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eliza/internal/session"
)

// askCmd answers a single line and exits.
var askCmd = &cobra.Command{
	Use:   "ask [text]",
	Short: "Answer a single line of input and exit",
	Long: `Routes one line through the response engine and prints the reply.

Example:
  eliza ask i feel lonely
  eliza ask "why do you keep asking me that"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	line := joinArgs(args)

	// Sentinels behave as they do in the loop: a farewell, no engine call.
	if session.IsExitSentinel(line) {
		fmt.Println(session.Goodbye)
		return nil
	}

	selector, err := buildSelector()
	if err != nil {
		return err
	}

	reply := selector.Respond(line)
	if rule, _, ok := selector.Match(line); ok {
		logger.Debug("rule matched", zap.String("pattern", rule.Source))
	} else {
		logger.Debug("no rule matched, fallback used")
	}

	fmt.Println(session.SpeakerPrefix + reply)
	return nil
}
