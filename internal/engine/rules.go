// Package engine implements the pattern-match-and-reflect response engine:
// an ordered rule table scanned first-match-wins, capture-group reflection,
// and a generic fallback when nothing matches.
package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholder marks a capture-group slot inside a response template.
const placeholder = "{}"

// Rule pairs a prefix-anchored, case-insensitive pattern with the set of
// response templates it can answer with. Rules are immutable after Compile.
type Rule struct {
	// Source is the pattern as declared, before anchoring.
	Source string

	// Templates are the candidate responses; one is chosen uniformly at
	// random per match. Each {} is filled with the corresponding reflected
	// capture group, in order.
	Templates []string

	re *regexp.Regexp
}

// Compile builds a Rule from a pattern and its templates. The pattern is
// anchored at the start of input and made case-insensitive; trailing
// unmatched text is ignored at match time.
//
// Compile fails if the pattern does not parse or if any template demands
// more capture groups than the pattern provides. Both are configuration
// defects and must surface at startup, not per turn. A template may use
// fewer groups than captured ("because (.*)" answers with fixed prompts);
// the surplus groups are simply unused.
func Compile(pattern string, templates ...string) (Rule, error) {
	re, err := regexp.Compile("(?i)^" + pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", pattern, err)
	}
	if len(templates) == 0 {
		return Rule{}, fmt.Errorf("rule %q: no templates", pattern)
	}
	for _, t := range templates {
		if n := strings.Count(t, placeholder); n > re.NumSubexp() {
			return Rule{}, fmt.Errorf("rule %q: template %q needs %d capture(s), pattern provides %d",
				pattern, t, n, re.NumSubexp())
		}
	}
	return Rule{Source: pattern, Templates: templates, re: re}, nil
}

// MustCompile is Compile that panics on error. Reserved for the builtin
// table, where a failure is a programming bug.
func MustCompile(pattern string, templates ...string) Rule {
	r, err := Compile(pattern, templates...)
	if err != nil {
		panic("engine: " + err.Error())
	}
	return r
}

// match runs the rule against one input line. Matching only needs to
// succeed at position 0; the returned groups are the raw (unreflected)
// capture texts.
func (r Rule) match(line string) ([]string, bool) {
	m := r.re.FindStringSubmatch(line)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

// DefaultRules returns the builtin rule table in priority order. Order is
// load-bearing: the first matching rule wins, so "i feel (.*)" must be
// tried before the more general "i (.*) you".
//
// Bare literals like "yes" are still prefix matches, so "yesterday"
// matches the "yes" rule. That quirk is part of the contract; do not
// anchor the literals to the whole line.
func DefaultRules() []Rule {
	return []Rule{
		MustCompile("i feel (.*)",
			"Why do you feel {}?",
			"How long have you felt {}?",
			"Do you think feeling {} is normal?"),
		MustCompile("why do you (.*)",
			"Why does it concern you that I {}?",
			"What makes you ask that?"),
		MustCompile("i'm (.*)",
			"How does being {} make you feel?",
			"Do you enjoy being {}?"),
		MustCompile("i (.*) you",
			"Why do you {} me?",
			"What makes you think you {} me?"),
		MustCompile("because (.*)",
			"Is that the real reason?",
			"What other reasons might there be?",
			"Does that reason explain everything?"),
		MustCompile("yes",
			"You seem quite sure.",
			"I understand."),
		MustCompile("no",
			"Why not?",
			"Can you explain why?"),
		MustCompile("you are (.*)",
			"What makes you think I am {}?",
			"Does it please you to think that I am {}?"),
		MustCompile("i want (.*)",
			"Why do you want {}?",
			"What would it mean if you got {}?"),
		MustCompile("can you (.*)",
			"Why do you ask?",
			"Perhaps you believe I can {}?"),
	}
}

// DefaultFallbacks returns the generic prompts used when no rule matches.
func DefaultFallbacks() []string {
	return []string{
		"Tell me more.",
		"Why do you say that?",
		"How does that make you feel?",
		"Can you elaborate?",
		"That is very interesting.",
	}
}
