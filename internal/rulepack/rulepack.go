// Package rulepack loads alternative rule tables from YAML. A pack fully
// or partially replaces the builtin tables at startup; once loaded it is
// immutable for the life of the process, like the builtins.
package rulepack

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"eliza/internal/engine"
	"eliza/internal/reflection"
)

// PackRule is one rule entry as written in YAML.
type PackRule struct {
	Pattern   string   `yaml:"pattern"`
	Templates []string `yaml:"templates"`
}

// Pack is the parsed YAML document. Empty fallbacks or reflections
// sections inherit the builtin sets; an empty rules section is an error,
// since a pack without rules answers nothing.
type Pack struct {
	Rules       []PackRule        `yaml:"rules"`
	Fallbacks   []string          `yaml:"fallbacks"`
	Reflections map[string]string `yaml:"reflections"`
}

// Load reads and validates a pack file. Every pattern must compile and
// every template must be satisfiable by its pattern's capture groups;
// a bad pack is rejected here, at startup, never per turn.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rulepack: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates raw YAML pack data.
func Parse(data []byte) (*Pack, error) {
	var p Pack
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("rulepack: parse: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Pack) validate() error {
	if len(p.Rules) == 0 {
		return fmt.Errorf("rulepack: no rules defined")
	}
	for i, r := range p.Rules {
		if r.Pattern == "" {
			return fmt.Errorf("rulepack: rule %d: empty pattern", i+1)
		}
		if _, err := engine.Compile(r.Pattern, r.Templates...); err != nil {
			return fmt.Errorf("rulepack: rule %d: %w", i+1, err)
		}
	}
	return nil
}

// Selector builds an engine.Selector from the pack, inheriting builtin
// fallbacks and reflections where the pack leaves them out.
func (p *Pack) Selector(opts ...engine.Option) (*engine.Selector, error) {
	rules := make([]engine.Rule, 0, len(p.Rules))
	for _, r := range p.Rules {
		rule, err := engine.Compile(r.Pattern, r.Templates...)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	fallbacks := p.Fallbacks
	if len(fallbacks) == 0 {
		fallbacks = engine.DefaultFallbacks()
	}

	if len(p.Reflections) > 0 {
		refl := reflection.New(p.Reflections)
		opts = append([]engine.Option{engine.WithReflector(refl.Reflect)}, opts...)
	}

	return engine.New(rules, fallbacks, opts...)
}
