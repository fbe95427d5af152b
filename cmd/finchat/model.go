package main

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"finchat/catalog"
	"finchat/chat"
)

// Mode represents the current UI mode
type Mode int

const (
	ModeChat Mode = iota
	ModeCatalog
	ModeActionInput
	ModeHelp
)

const thinkingPause = 480 * time.Millisecond

// Model is the root Bubble Tea model
type Model struct {
	orch     *chat.Orchestrator
	selector SelectorModel

	input       textinput.Model
	actionInput textinput.Model
	viewport    viewport.Model
	spinner     spinner.Model
	hints       chat.HintRotator

	mode          Mode
	width, height int
	ready         bool

	// Pending action waiting for its unidad input
	pendingSel catalog.Selection

	// Simulated reveal of a generated reply
	stream       *chat.Stream
	streamTurnID string
}

// NewModel creates the root model around an orchestrator
func NewModel(orch *chat.Orchestrator) Model {
	input := textinput.New()
	input.Placeholder = "Escribe un mensaje o pulsa ctrl+a para las Action Cards"
	input.Prompt = promptStyle.Render("> ")
	input.CharLimit = 500
	input.Focus()

	actionInput := textinput.New()
	actionInput.Placeholder = "unidad (p. ej. Madrid Centro)"
	actionInput.Prompt = promptStyle.Render("unidad> ")
	actionInput.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = thinkingStyle

	return Model{
		orch:     orch,
		selector: NewSelectorModel(catalog.Default()),
		input:    input,

		actionInput: actionInput,
		spinner:     sp,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recalcLayout()
		m.refreshTranscript(true)
		return m, nil

	case actionDoneMsg:
		if m.orch.Finish(msg.Gen, msg.Turn) {
			m.refreshTranscript(true)
		}
		return m, nil

	case startStreamMsg:
		return m.handleStartStream(msg)

	case streamTickMsg:
		return m.handleStreamTick()

	case hintTickMsg:
		if !m.orch.Thinking() {
			return m, nil
		}
		m.hints.Advance()
		return m, hintTick()

	case spinner.TickMsg:
		if !m.orch.Thinking() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) recalcLayout() {
	w := m.width
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	if !m.ready {
		m.viewport = viewport.New(w, h)
		m.ready = true
		return
	}
	m.viewport.Width = w
	m.viewport.Height = h
}

// refreshTranscript re-renders the transcript into the viewport,
// optionally pinning the view to the newest turn.
func (m *Model) refreshTranscript(toBottom bool) {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderTranscript(m.orch.Turns(), m.viewport.Width))
	if toBottom {
		m.viewport.GotoBottom()
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, chatKeys.Quit) {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeChat:
		return m.handleChatKey(msg)
	case ModeCatalog:
		return m.handleCatalogKey(msg)
	case ModeActionInput:
		return m.handleActionInputKey(msg)
	case ModeHelp:
		m.mode = ModeChat
		return m, nil
	}
	return m, nil
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, chatKeys.Catalog):
		m.mode = ModeCatalog
		m.selector.Reset()
		return m, nil

	case key.Matches(msg, chatKeys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, chatKeys.Send):
		return m.sendTyped()
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// sendTyped echoes the typed prompt and schedules the canned reply
// after a short thinking pause.
func (m Model) sendTyped() (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.input.Value())
	if prompt == "" || m.orch.Thinking() || m.stream != nil {
		return m, nil
	}
	m.input.Reset()

	m.orch.Append(chat.Turn{Role: chat.RoleUser, Content: prompt})
	m.refreshTranscript(true)

	return m, func() tea.Msg {
		time.Sleep(thinkingPause)
		return startStreamMsg{Reply: chat.GenerateReply(prompt)}
	}
}

func (m Model) handleStartStream(msg startStreamMsg) (tea.Model, tea.Cmd) {
	m.stream = chat.NewStream(msg.Reply)
	m.streamTurnID = m.orch.Append(chat.Turn{Role: chat.RoleAssistant, Streaming: true})
	m.refreshTranscript(true)
	return m, streamTick()
}

func (m Model) handleStreamTick() (tea.Model, tea.Cmd) {
	if m.stream == nil {
		return m, nil
	}
	partial, more := m.stream.Next()
	m.orch.UpdateTurn(m.streamTurnID, partial, more)
	m.refreshTranscript(true)
	if !more {
		m.stream = nil
		m.streamTurnID = ""
		return m, nil
	}
	return m, streamTick()
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, catalogKeys.Cancel):
		m.mode = ModeChat
		return m, nil

	case key.Matches(msg, catalogKeys.Up):
		m.selector.MoveUp()
		return m, nil

	case key.Matches(msg, catalogKeys.Down):
		m.selector.MoveDown()
		return m, nil

	case key.Matches(msg, catalogKeys.Back):
		if !m.selector.Ascend() {
			m.mode = ModeChat
		}
		return m, nil

	case key.Matches(msg, catalogKeys.Select):
		current := m.selector.Current()
		if current == nil {
			return m, nil
		}
		if m.selector.Descend() {
			return m, nil
		}
		sel := m.selector.SelectionFor(current)
		if current.NeedsInput {
			m.pendingSel = sel
			m.mode = ModeActionInput
			m.actionInput.Reset()
			return m, m.actionInput.Focus()
		}
		m.mode = ModeChat
		return m.dispatchAction(sel, "")
	}
	return m, nil
}

func (m Model) handleActionInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = ModeCatalog
		m.actionInput.Blur()
		return m, nil

	case tea.KeyEnter:
		input := strings.TrimSpace(m.actionInput.Value())
		if input == "" {
			return m, nil
		}
		sel := m.pendingSel
		m.pendingSel = catalog.Selection{}
		m.mode = ModeChat
		m.actionInput.Blur()
		return m.dispatchAction(sel, input)
	}

	var cmd tea.Cmd
	m.actionInput, cmd = m.actionInput.Update(msg)
	return m, cmd
}

// dispatchAction begins the cycle on the event loop and runs the
// request off it; actionDoneMsg carries the paired generation back.
func (m Model) dispatchAction(sel catalog.Selection, input string) (tea.Model, tea.Cmd) {
	gen := m.orch.Begin(sel, input)
	m.hints.Reset()
	m.refreshTranscript(true)

	orch := m.orch
	run := func() tea.Msg {
		return actionDoneMsg{Gen: gen, Turn: orch.Execute(sel, input)}
	}
	return m, tea.Batch(m.spinner.Tick, hintTick(), run)
}

// streamTick schedules the next reveal step with a little jitter so
// the output reads less mechanical.
func streamTick() tea.Cmd {
	delay := time.Duration(50+rand.Intn(70)) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return streamTickMsg{}
	})
}

// hintTick rotates the thinking hint every couple of seconds.
func hintTick() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return hintTickMsg{}
	})
}
