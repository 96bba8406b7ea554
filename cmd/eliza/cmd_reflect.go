package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"eliza/internal/reflection"
)

// reflectCmd exposes the pronoun-reflection transform for inspection.
var reflectCmd = &cobra.Command{
	Use:   "reflect [phrase]",
	Short: "Show the pronoun reflection of a phrase",
	Long: `Applies the pronoun-reflection transform to a phrase and prints the
result. Useful for checking how capture groups will be echoed back.

Reflection is per token: "i" becomes "you", "my" becomes "your". Multi-word
phrases are never substituted as a unit, so "i am" reflects to "you am".

Example:
  eliza reflect i miss my dog`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReflect,
}

func runReflect(cmd *cobra.Command, args []string) error {
	fmt.Println(reflection.Reflect(joinArgs(args)))
	return nil
}
