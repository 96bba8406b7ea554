package main

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"eliza/internal/engine"
)

func TestRenderRuleTable_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "rules_list", []byte(renderRuleTable(engine.Default())))
}
