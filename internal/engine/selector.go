package engine

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"eliza/internal/reflection"
)

// Selector holds the ordered rule table plus the fallback prompts and
// produces one reply per input line. It is stateless across calls: each
// Respond is a pure function of its input and the random source.
type Selector struct {
	rules     []Rule
	fallbacks []string
	reflect   func(string) string
	rng       *rand.Rand
}

// Option configures a Selector.
type Option func(*Selector)

// WithRandom sets the random source used for template selection. Tests use
// this for determinism; so does the --seed flag.
func WithRandom(rng *rand.Rand) Option {
	return func(s *Selector) { s.rng = rng }
}

// WithReflector overrides the capture-group transform. Rule packs with
// their own reflection table hook in here.
func WithReflector(fn func(string) string) Option {
	return func(s *Selector) { s.reflect = fn }
}

// New builds a Selector over an already-compiled rule table. The slices
// are copied; the Selector never mutates them afterwards.
func New(rules []Rule, fallbacks []string, opts ...Option) (*Selector, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("engine: empty rule table")
	}
	if len(fallbacks) == 0 {
		return nil, fmt.Errorf("engine: empty fallback set")
	}
	s := &Selector{
		rules:     append([]Rule(nil), rules...),
		fallbacks: append([]string(nil), fallbacks...),
		reflect:   reflection.Reflect,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Default returns a Selector over the builtin tables.
func Default(opts ...Option) *Selector {
	s, err := New(DefaultRules(), DefaultFallbacks(), opts...)
	if err != nil {
		// The builtin tables are validated at compile time; reaching this
		// is a programming bug.
		panic("engine: " + err.Error())
	}
	return s
}

// Respond returns the reply for one line of user input.
//
// The rule table is scanned in declaration order and the first rule whose
// pattern matches at position 0 wins. Its capture groups are reflected
// independently, a template is chosen uniformly at random, and the groups
// are substituted positionally. If no rule matches, one fallback prompt is
// returned verbatim. Any input produces a reply; there is no error path.
func (s *Selector) Respond(line string) string {
	for _, rule := range s.rules {
		groups, ok := rule.match(line)
		if !ok {
			continue
		}
		for i, g := range groups {
			groups[i] = s.reflect(g)
		}
		tmpl := rule.Templates[s.rng.Intn(len(rule.Templates))]
		return fill(tmpl, groups)
	}
	return s.fallbacks[s.rng.Intn(len(s.fallbacks))]
}

// Match reports which rule, if any, answers the line, along with the raw
// capture groups. Exposed for diagnostics (eliza rules, verbose logging);
// Respond does not call it.
func (s *Selector) Match(line string) (Rule, []string, bool) {
	for _, rule := range s.rules {
		if groups, ok := rule.match(line); ok {
			return rule, groups, true
		}
	}
	return Rule{}, nil, false
}

// Rules returns the rule table in priority order.
func (s *Selector) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Fallbacks returns the fallback prompt set.
func (s *Selector) Fallbacks() []string {
	return append([]string(nil), s.fallbacks...)
}

// fill substitutes groups into the template's {} slots in order. The
// template is split once up front so braces inside captured user text are
// never re-scanned as placeholders. Compile guarantees the template never
// needs more groups than captured; if one slips through anyway it is an
// internal error worth crashing on rather than silently truncating.
func fill(tmpl string, groups []string) string {
	parts := strings.Split(tmpl, placeholder)
	if len(parts)-1 > len(groups) {
		panic(fmt.Sprintf("engine: template %q needs %d capture(s), matched %d", tmpl, len(parts)-1, len(groups)))
	}
	var b strings.Builder
	for i, p := range parts {
		b.WriteString(p)
		if i < len(parts)-1 {
			b.WriteString(groups[i])
		}
	}
	return b.String()
}
