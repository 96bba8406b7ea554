// This file implements the interactive chat interface using bubbletea.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"eliza/cmd/eliza/ui"
	"eliza/internal/engine"
	"eliza/internal/session"
)

// chatModel is the main model for the interactive chat interface.
type chatModel struct {
	// UI components
	textinput textinput.Model
	viewport  viewport.Model
	styles    ui.Styles

	// State
	history   []chatMessage
	width     int
	height    int
	ready     bool
	turnCount int

	// Backend
	selector  *engine.Selector
	sessionID string
}

type chatMessage struct {
	role    string // "user" or "eliza"
	content string
	time    time.Time
}

// initChat initializes the interactive chat model.
func initChat(selector *engine.Selector, sessionID string) chatModel {
	styles := ui.DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Say something... (Enter to send, Esc to quit)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 1024
	ti.Width = 80
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput

	vp := viewport.New(80, 20)
	vp.SetContent("")

	m := chatModel{
		textinput: ti,
		viewport:  vp,
		styles:    styles,
		selector:  selector,
		sessionID: sessionID,
		history: []chatMessage{
			{role: "eliza", content: strings.TrimPrefix(session.Banner, session.SpeakerPrefix), time: time.Now()},
		},
	}
	m.viewport.SetContent(m.renderHistory())
	return m
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			return m.handleSubmit()
		}
		m.textinput, tiCmd = m.textinput.Update(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		inputHeight := 3

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight - inputHeight
		}
		m.textinput.Width = msg.Width - 4

		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// handleSubmit routes one line of input through the response engine.
// Each turn is strictly read, respond, render; there is no conversation
// state beyond the visible history.
func (m chatModel) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}

	m.history = append(m.history, chatMessage{role: "user", content: input, time: time.Now()})
	m.textinput.Reset()

	if session.IsExitSentinel(input) {
		return m, tea.Quit
	}

	m.turnCount++
	reply := m.selector.Respond(input)
	m.history = append(m.history, chatMessage{role: "eliza", content: reply, time: time.Now()})

	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()

	return m, nil
}

func (m chatModel) renderHistory() string {
	var sb strings.Builder

	for _, msg := range m.history {
		switch msg.role {
		case "user":
			userStyle := m.styles.Bold.
				Foreground(m.styles.Theme.Primary).
				MarginTop(1)
			sb.WriteString(userStyle.Render("You") + "\n")
			sb.WriteString(m.styles.UserInput.Render(msg.content))
			sb.WriteString("\n")

		default: // "eliza"
			elizaStyle := m.styles.Bold.
				Foreground(m.styles.Theme.Accent).
				MarginTop(1)
			sb.WriteString(elizaStyle.Render("Eliza") + "\n")
			sb.WriteString(msg.content)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func (m chatModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	chatView := m.styles.Content.Render(m.viewport.View())

	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.styles.Theme.Accent).
		Padding(0, 1)
	inputArea := inputStyle.Render(m.textinput.View())

	footer := m.renderFooter()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		chatView,
		inputArea,
		footer,
	)
}

func (m chatModel) renderHeader() string {
	title := m.styles.Header.Render(" eliza ")
	status := m.styles.Success.Render("Listening")
	sid := m.styles.Muted.Render("session " + shortID(m.sessionID))

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Center,
		title,
		"  ",
		status,
		"  ",
		sid,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.styles.RenderDivider(m.width),
	)
}

func (m chatModel) renderFooter() string {
	timestamp := time.Now().Format("15:04")
	help := m.styles.Muted.Render(fmt.Sprintf(
		"Turn %d | %s | Enter: send | Esc: quit | bye/exit/quit also end the session",
		m.turnCount, timestamp))
	return lipgloss.NewStyle().
		MarginTop(1).
		Render(help)
}

// shortID truncates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// runInteractiveChat launches the bubbletea chat program. The goodbye line
// is printed once the program returns, whatever ended it.
func runInteractiveChat() error {
	selector, err := buildSelector()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		initChat(selector, uuid.NewString()),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return err
	}

	fmt.Println(session.Goodbye)
	return nil
}
