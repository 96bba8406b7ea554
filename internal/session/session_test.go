package session

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"eliza/internal/engine"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testSelector(t *testing.T) *engine.Selector {
	t.Helper()
	return engine.Default(engine.WithRandom(rand.New(rand.NewSource(1))))
}

func runSession(t *testing.T, input string) []string {
	t.Helper()
	var out bytes.Buffer
	sess := New(Config{
		Input:    strings.NewReader(input),
		Output:   &out,
		Selector: testSelector(t),
	})
	require.NoError(t, sess.Run())
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestRun_BannerFirst(t *testing.T) {
	lines := runSession(t, "")
	require.NotEmpty(t, lines)
	assert.Equal(t, Banner, lines[0])
}

func TestRun_SentinelPrintsGoodbye(t *testing.T) {
	lines := runSession(t, "bye\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Banner, lines[0])
	assert.Equal(t, Goodbye, lines[1])
}

func TestRun_SentinelsAreCaseInsensitive(t *testing.T) {
	for _, sentinel := range []string{"BYE", "Exit", "qUiT"} {
		lines := runSession(t, sentinel+"\n")
		assert.Equal(t, Goodbye, lines[len(lines)-1], "sentinel %q", sentinel)
	}
}

func TestRun_EOFEndsQuietly(t *testing.T) {
	// No sentinel, just a closed input stream: no goodbye line.
	lines := runSession(t, "i feel sad\n")
	require.Len(t, lines, 2)
	assert.Equal(t, Banner, lines[0])
	assert.NotEqual(t, Goodbye, lines[1])
}

func TestRun_RepliesArePrefixed(t *testing.T) {
	lines := runSession(t, "i feel sad\nqwerty zzz\nbye\n")
	require.Len(t, lines, 4)
	for _, line := range lines[1:3] {
		assert.True(t, strings.HasPrefix(line, SpeakerPrefix), "line %q missing speaker prefix", line)
	}

	want := map[string]bool{
		SpeakerPrefix + "Why do you feel sad?":                true,
		SpeakerPrefix + "How long have you felt sad?":         true,
		SpeakerPrefix + "Do you think feeling sad is normal?": true,
	}
	assert.True(t, want[lines[1]], "unexpected reply %q", lines[1])
}

func TestRun_SentinelSkipsEngine(t *testing.T) {
	// Exactly banner + goodbye; no reply line was produced for "quit".
	lines := runSession(t, "quit\n")
	assert.Len(t, lines, 2)
}

func TestRun_ShowPrompt(t *testing.T) {
	var out bytes.Buffer
	sess := New(Config{
		Input:      strings.NewReader("bye\n"),
		Output:     &out,
		Selector:   testSelector(t),
		ShowPrompt: true,
	})
	require.NoError(t, sess.Run())
	assert.Contains(t, out.String(), UserPrompt)
}

func TestRun_Transcript(t *testing.T) {
	var out, transcript bytes.Buffer
	sess := New(Config{
		Input:      strings.NewReader("i feel sad\nbye\n"),
		Output:     &out,
		Selector:   testSelector(t),
		Transcript: &transcript,
	})
	require.NoError(t, sess.Run())

	lines := strings.Split(strings.TrimRight(transcript.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, Banner, lines[0])
	assert.Equal(t, UserPrompt+"i feel sad", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], SpeakerPrefix))
	assert.Equal(t, UserPrompt+"bye", lines[3])
	assert.Equal(t, Goodbye, lines[4])
}

func TestNew_AssignsUniqueIDs(t *testing.T) {
	cfg := Config{Selector: testSelector(t)}
	a, b := New(cfg), New(cfg)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestIsExitSentinel(t *testing.T) {
	for _, line := range []string{"bye", "exit", "quit", "BYE", " quit ", "\tExit"} {
		assert.True(t, IsExitSentinel(line), "line %q", line)
	}
	for _, line := range []string{"goodbye", "exit now", "quitting", ""} {
		assert.False(t, IsExitSentinel(line), "line %q", line)
	}
}
