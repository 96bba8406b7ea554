package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_AnchorsAtStart(t *testing.T) {
	r, err := Compile("i feel (.*)", "Why do you feel {}?")
	require.NoError(t, err)

	groups, ok := r.match("i feel sad")
	require.True(t, ok)
	assert.Equal(t, []string{"sad"}, groups)

	// Not a prefix match, so no match at all.
	_, ok = r.match("today i feel sad")
	assert.False(t, ok)
}

func TestCompile_CaseInsensitive(t *testing.T) {
	r, err := Compile("i feel (.*)", "Why do you feel {}?")
	require.NoError(t, err)

	groups, ok := r.match("I FEEL GREAT")
	require.True(t, ok)
	assert.Equal(t, []string{"GREAT"}, groups)
}

func TestCompile_TrailingTextIgnored(t *testing.T) {
	// Bare literals are prefix matches: anything starting with the literal
	// matches, including longer words.
	r, err := Compile("yes", "You seem quite sure.")
	require.NoError(t, err)

	for _, line := range []string{"yes", "YES", "yesterday", "yes please"} {
		_, ok := r.match(line)
		assert.True(t, ok, "input %q should match the yes literal", line)
	}

	_, ok := r.match("no")
	assert.False(t, ok)
}

func TestCompile_RejectsBadPattern(t *testing.T) {
	_, err := Compile("i feel (", "Why do you feel {}?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "i feel (")
}

func TestCompile_RejectsGreedyTemplate(t *testing.T) {
	// A template demanding more captures than the pattern provides is a
	// configuration defect caught at compile time.
	_, err := Compile("because (.*)", "Is {} the reason for {}?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs 2 capture(s)")
}

func TestCompile_AllowsTemplateWithFewerPlaceholders(t *testing.T) {
	// The original table does this: "because (.*)" answers with fixed text.
	_, err := Compile("because (.*)", "Is that the real reason?")
	assert.NoError(t, err)
}

func TestCompile_RejectsEmptyTemplates(t *testing.T) {
	_, err := Compile("i feel (.*)")
	assert.Error(t, err)
}

func TestMustCompile_PanicsOnBadPattern(t *testing.T) {
	assert.Panics(t, func() {
		MustCompile("(", "nope")
	})
}

func TestDefaultRules_TableShape(t *testing.T) {
	rules := DefaultRules()
	require.Len(t, rules, 10)

	wantOrder := []string{
		"i feel (.*)",
		"why do you (.*)",
		"i'm (.*)",
		"i (.*) you",
		"because (.*)",
		"yes",
		"no",
		"you are (.*)",
		"i want (.*)",
		"can you (.*)",
	}
	for i, r := range rules {
		assert.Equal(t, wantOrder[i], r.Source, "rule %d out of order", i+1)
		assert.NotEmpty(t, r.Templates)
	}
}

func TestDefaultFallbacks(t *testing.T) {
	assert.Equal(t, []string{
		"Tell me more.",
		"Why do you say that?",
		"How does that make you feel?",
		"Can you elaborate?",
		"That is very interesting.",
	}, DefaultFallbacks())
}
