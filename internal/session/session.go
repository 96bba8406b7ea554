// Package session runs the line-oriented conversation loop: read one line,
// hand it to the response engine, print the reply, repeat until an exit
// sentinel or end of input. The loop itself holds no conversation state.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"eliza/internal/engine"
)

// Fixed surface text, byte-identical to the original program.
const (
	Banner        = "Eliza: Hello, I'm Eliza. What's on your mind?"
	Goodbye       = "Eliza: Goodbye! It was nice talking to you."
	SpeakerPrefix = "Eliza: "
	UserPrompt    = "You: "
)

// exitSentinels end the session instead of being routed to the engine.
var exitSentinels = map[string]struct{}{
	"bye":  {},
	"exit": {},
	"quit": {},
}

// IsExitSentinel reports whether a trimmed, lowercased line terminates
// the session.
func IsExitSentinel(line string) bool {
	_, ok := exitSentinels[strings.ToLower(strings.TrimSpace(line))]
	return ok
}

// Config wires a Session to its collaborators. Input and Output are the
// only required boundaries besides the Selector.
type Config struct {
	Input    io.Reader
	Output   io.Writer
	Selector *engine.Selector

	// Transcript, when set, receives a plain-text record of the exchange.
	// It is written once per turn and never read back; the responder has
	// no conversation memory.
	Transcript io.Writer

	// Logger defaults to zap.NewNop.
	Logger *zap.Logger

	// ShowPrompt controls whether "You: " is written before each read.
	// Interactive sessions want it; piped input does not.
	ShowPrompt bool
}

// Session is a single conversation. Sessions are single-threaded: one
// read, one respond, one write per turn, strictly in order.
type Session struct {
	id  string
	cfg Config
	log *zap.Logger
}

// New creates a Session with a fresh correlation ID.
func New(cfg Config) *Session {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		id:  uuid.NewString(),
		cfg: cfg,
		log: log,
	}
}

// ID returns the session correlation ID.
func (s *Session) ID() string { return s.id }

// Run executes the conversation loop. It returns when an exit sentinel is
// read, when the input stream ends, or on a write error. The goodbye line
// is only printed for a sentinel; a closed pipe ends the session quietly.
func (s *Session) Run() error {
	start := time.Now()
	s.log.Info("session started", zap.String("session_id", s.id))

	if err := s.sayRaw(Banner); err != nil {
		return err
	}
	s.transcript(Banner)

	scanner := bufio.NewScanner(s.cfg.Input)
	turn := 0
	for {
		if s.cfg.ShowPrompt {
			if _, err := io.WriteString(s.cfg.Output, UserPrompt); err != nil {
				return fmt.Errorf("session: write prompt: %w", err)
			}
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		turn++
		s.transcript(UserPrompt + line)

		if IsExitSentinel(line) {
			s.log.Info("session ended by sentinel",
				zap.String("session_id", s.id),
				zap.Int("turns", turn),
				zap.Duration("elapsed", time.Since(start)))
			s.transcript(Goodbye)
			return s.sayRaw(Goodbye)
		}

		reply := s.cfg.Selector.Respond(line)
		s.log.Debug("turn",
			zap.String("session_id", s.id),
			zap.Int("turn", turn),
			zap.Int("input_len", len(line)))
		s.transcript(SpeakerPrefix + reply)
		if err := s.sayRaw(SpeakerPrefix + reply); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("session: read: %w", err)
	}
	s.log.Info("session ended at end of input",
		zap.String("session_id", s.id),
		zap.Int("turns", turn),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// sayRaw writes one whole line to the output boundary.
func (s *Session) sayRaw(line string) error {
	if _, err := fmt.Fprintln(s.cfg.Output, line); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	return nil
}

// transcript appends a line to the transcript sink, if configured.
// Transcript failures never interrupt the conversation.
func (s *Session) transcript(line string) {
	if s.cfg.Transcript == nil {
		return
	}
	if _, err := fmt.Fprintln(s.cfg.Transcript, line); err != nil {
		s.log.Warn("transcript write failed", zap.String("session_id", s.id), zap.Error(err))
	}
}
