package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/trigger-overlay/internal/render"
	"github.com/KirkDiggler/trigger-overlay/internal/services/editor"
	"github.com/KirkDiggler/trigger-overlay/internal/services/overlay"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))
)

// editTarget is a condition page the edit key can open
type editTarget struct {
	elementID   string
	conditionID string
}

type tickMsg time.Time

// Model is the bubbletea model hosting the overlay frame loop
type Model struct {
	overlay  overlay.Service
	editor   editor.Service
	renderer *render.Renderer
	interval time.Duration

	keys      keyMap
	inputKeys inputKeys
	help      help.Model

	// input is the threshold field of the open condition page
	input     textinput.Model
	inputting bool

	results []overlay.RenderResult
	editing *editTarget
	preview bool
	status  string
	err     error
}

// Config holds the model's dependencies
type Config struct {
	Overlay       overlay.Service  // Required, already loaded
	Editor        editor.Service   // Required
	Renderer      *render.Renderer // Optional
	FrameInterval time.Duration    // Optional, 100ms when zero
}

// NewModel creates the overlay model
func NewModel(cfg *Config) Model {
	if cfg.Overlay == nil {
		panic("overlay service is required")
	}
	if cfg.Editor == nil {
		panic("editor service is required")
	}

	ti := textinput.New()
	ti.Prompt = "threshold> "
	ti.Placeholder = "number"
	ti.CharLimit = 32
	ti.Width = 20

	m := Model{
		overlay:   cfg.Overlay,
		editor:    cfg.Editor,
		renderer:  cfg.Renderer,
		interval:  cfg.FrameInterval,
		keys:      defaultKeyMap(),
		inputKeys: defaultInputKeys(),
		help:      help.New(),
		input:     ti,
	}
	if m.renderer == nil {
		m.renderer = render.New(nil)
	}
	if m.interval <= 0 {
		m.interval = 100 * time.Millisecond
	}
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.results = m.overlay.Tick()
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		if m.inputting {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Preview):
			m.preview = m.overlay.TogglePreview()
			m.status = fmt.Sprintf("preview %s", onOff(m.preview))

		case key.Matches(msg, m.keys.Edit):
			m.editNext()

		case key.Matches(msg, m.keys.Add):
			m.addCondition()

		case key.Matches(msg, m.keys.Remove):
			m.removeCondition()

		case key.Matches(msg, m.keys.Threshold):
			return m, m.startThreshold()

		case key.Matches(msg, m.keys.Save):
			m.save()

		case key.Matches(msg, m.keys.Reload):
			m.err = m.overlay.Load(context.Background())
			if m.err == nil {
				m.status = "reloaded"
			}
		}
	}

	return m, nil
}

// editNext opens the condition after the one being edited, closing the
// editor after the last one
func (m *Model) editNext() {
	var targets []editTarget
	for _, el := range m.overlay.Elements() {
		for _, cond := range el.Chain().Conditions {
			targets = append(targets, editTarget{elementID: el.ID, conditionID: cond.ID})
		}
	}

	next := 0
	if m.editing != nil {
		m.editor.CloseCondition(m.editing.conditionID)
		next = len(targets)
		for i, t := range targets {
			if t == *m.editing {
				next = i + 1
				break
			}
		}
	}

	if next >= len(targets) {
		m.editing = nil
		m.status = "editor closed"
		return
	}

	m.open(targets[next])
}

func (m *Model) open(target editTarget) {
	if err := m.editor.OpenCondition(context.Background(), target.elementID, target.conditionID); err != nil {
		m.editing = nil
		m.err = err
		return
	}
	m.editing = &target
	m.err = nil
	m.status = fmt.Sprintf("editing %s / %s", target.elementID, target.conditionID)
}

// addCondition appends a condition to the element being edited, or to the
// first element, and opens it
func (m *Model) addCondition() {
	var elementID string
	if m.editing != nil {
		elementID = m.editing.elementID
	} else if els := m.overlay.Elements(); len(els) > 0 {
		elementID = els[0].ID
	} else {
		m.status = "no elements loaded"
		return
	}

	cond, err := m.editor.AddCondition(context.Background(), elementID)
	if err != nil {
		m.err = err
		return
	}

	if m.editing != nil {
		m.editor.CloseCondition(m.editing.conditionID)
		m.editing = nil
	}
	m.open(editTarget{elementID: elementID, conditionID: cond.ID})
}

func (m *Model) removeCondition() {
	if m.editing == nil {
		m.status = "open a condition first"
		return
	}

	target := *m.editing
	if err := m.editor.RemoveCondition(context.Background(), target.elementID, target.conditionID); err != nil {
		m.err = err
		return
	}
	m.editing = nil
	m.err = nil
	m.status = fmt.Sprintf("removed %s / %s", target.elementID, target.conditionID)
}

func (m *Model) startThreshold() tea.Cmd {
	if m.editing == nil {
		m.status = "open a condition first"
		return nil
	}
	m.inputting = true
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) stopInput() {
	m.inputting = false
	m.input.Blur()
	m.input.Reset()
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.inputKeys.Cancel):
		m.stopInput()
		m.err = nil
		m.status = "threshold unchanged"
		return m, nil

	case key.Matches(msg, m.inputKeys.Commit):
		m.commitThreshold()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitThreshold keeps the field open on malformed input so the user can
// correct it; the condition keeps its previous threshold
func (m *Model) commitThreshold() {
	target := *m.editing
	cond, err := m.editor.CommitThreshold(context.Background(), target.elementID, target.conditionID, m.input.Value())
	if err != nil {
		m.err = err
		return
	}

	m.stopInput()
	m.err = nil
	m.status = fmt.Sprintf("threshold %s", strconv.FormatFloat(cond.Threshold, 'g', -1, 64))
}

func (m *Model) save() {
	ctx := context.Background()
	for _, el := range m.overlay.Elements() {
		if err := m.overlay.Save(ctx, el.ID); err != nil {
			m.err = err
			return
		}
	}
	m.err = nil
	m.status = "saved"
}

func (m Model) View() string {
	frame := m.renderer.Frame(m.results)
	if frame == "" {
		frame = statusStyle.Render("(nothing triggered)")
	}

	status := m.status
	if m.err != nil {
		status = errorStyle.Render(m.err.Error())
	} else if status != "" {
		status = statusStyle.Render(status)
	}

	lines := []string{
		titleStyle.Render("OVERLAY"),
		"",
		frame,
		"",
	}
	if m.inputting {
		lines = append(lines, m.input.View())
	}
	lines = append(lines, status)
	if m.inputting {
		lines = append(lines, m.help.View(m.inputKeys))
	} else {
		lines = append(lines, m.help.View(m.keys))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

// Run starts the frame loop and blocks until the user quits
func Run(cfg *Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
