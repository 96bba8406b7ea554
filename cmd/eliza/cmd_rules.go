package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"eliza/internal/engine"
	"eliza/internal/rulepack"
)

// rulesCmd groups rule-table inspection commands.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and validate rule tables",
}

// rulesListCmd prints the active rule table in priority order.
var rulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active rule table in priority order",
	RunE:  runRulesList,
}

// rulesCheckCmd validates a rule pack file without loading it for chat.
var rulesCheckCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a rule pack file",
	Long: `Parses and validates a YAML rule pack: every pattern must compile and
every template must be satisfiable by its pattern's capture groups.
A bad pack is reported here instead of failing at chat startup.`,
	Args: cobra.ExactArgs(1),
	RunE: runRulesCheck,
}

func init() {
	rulesCmd.AddCommand(rulesListCmd)
	rulesCmd.AddCommand(rulesCheckCmd)
}

func runRulesList(cmd *cobra.Command, args []string) error {
	selector, err := buildSelector()
	if err != nil {
		return err
	}
	fmt.Print(renderRuleTable(selector))
	return nil
}

func runRulesCheck(cmd *cobra.Command, args []string) error {
	pack, err := rulepack.Load(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s: ok (%d rules, %d fallbacks, %d reflections)\n",
		args[0], len(pack.Rules), len(pack.Fallbacks), len(pack.Reflections))
	return nil
}

// renderRuleTable renders the rule table and fallback set as fixed-width
// text. Output is deterministic; the golden test in this package pins it.
func renderRuleTable(s *engine.Selector) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8s  %-24s  %9s\n", "priority", "pattern", "templates")
	for i, r := range s.Rules() {
		fmt.Fprintf(&b, "%8d  %-24s  %9d\n", i+1, r.Source, len(r.Templates))
	}
	fmt.Fprintf(&b, "\nfallbacks (%d):\n", len(s.Fallbacks()))
	for _, f := range s.Fallbacks() {
		fmt.Fprintf(&b, "  - %s\n", f)
	}
	return b.String()
}
