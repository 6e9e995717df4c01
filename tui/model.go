// Package tui is the interactive ring explorer: add nodes, delete them by id and look up
// which node a key routes to, with the ring drawn next to the controls.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Quarmire/chord/chord"
	"github.com/Quarmire/chord/errs"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
)

type Mode int

const (
	Normal Mode = iota
	Searching
	Deleting
)

const (
	panelWidth  = 64
	callTimeout = 3 * time.Second
)

var (
	boldStyle   = lipgloss.NewStyle().Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	searchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	ringStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

type Model struct {
	ctx    context.Context
	core   chord.Core
	logger logr.Logger

	mode   Mode
	input  textinput.Model
	result string
	ring   []uint64

	hit    uint64
	hasHit bool

	width, height int
}

func New(ctx context.Context, core chord.Core, logger logr.Logger) Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 24

	m := Model{
		ctx:    ctx,
		core:   core,
		logger: logger.WithName("tui"),
		input:  in,
		width:  120,
		height: 30,
	}
	m.refresh()
	return m
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, core chord.Core, logger logr.Logger) error {
	p := tea.NewProgram(New(ctx, core, logger), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Mode() Mode { return m.mode }
func (m Model) Result() string { return m.result }
func (m Model) Ring() []uint64 { return m.ring }
func (m Model) Input() string { return m.input.Value() }
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if m.mode == Normal {
			return m.updateNormal(msg)
		}
		return m.updateEditing(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		return m.enter(Searching)
	case "d":
		return m.enter(Deleting)
	case "a":
		m.addNode()
	}
	return m, nil
}

func (m Model) enter(mode Mode) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	return m, m.input.Focus()
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = Normal
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		if m.mode == Searching {
			m.submitQuery()
		} else {
			m.submitDeletion()
		}
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addNode() {
	ctx, cancel := context.WithTimeout(m.ctx, callTimeout)
	defer cancel()

	id, err := m.core.AddNode(ctx)
	if err != nil {
		m.result = fmt.Sprintf("Node add error: %v", err)
		m.logger.V(1).Info("add rejected", "reason", err.Error())
	} else {
		m.result = fmt.Sprintf("Node %d added", id)
		m.hasHit = false
	}
	m.refresh()
}

func (m *Model) submitQuery() {
	text, key, err := m.parseInput()
	switch {
	case errors.Is(err, strconv.ErrRange):
		m.result = fmt.Sprintf("Key %s is out of range of the chord ring.", text)
		return
	case err != nil:
		m.result = fmt.Sprintf("%q is not a valid key", text)
		return
	}

	ctx, cancel := context.WithTimeout(m.ctx, callTimeout)
	defer cancel()

	n, err := m.core.Search(ctx, key)
	switch {
	case err == nil:
		m.result = fmt.Sprintf("Key %d is located at node: %d", key, n.ID)
		m.hit, m.hasHit = n.ID, true
	case errors.Is(err, errs.OutOfRangeError):
		m.result = fmt.Sprintf("Key %d is out of range of the chord ring.", key)
	case errors.Is(err, errs.NoNodesExistError):
		m.result = "No nodes exist in the chord ring."
	default:
		m.result = fmt.Sprintf("Lookup of key %d failed: %v", key, err)
	}
}

func (m *Model) submitDeletion() {
	text, id, err := m.parseInput()
	switch {
	case errors.Is(err, strconv.ErrRange):
		m.result = fmt.Sprintf("Node %s does not exist.", text)
		return
	case err != nil:
		m.result = fmt.Sprintf("%q is not a valid node id", text)
		return
	}

	ctx, cancel := context.WithTimeout(m.ctx, callTimeout)
	defer cancel()

	err = m.core.DeleteNode(ctx, id)
	switch {
	case err == nil:
		m.result = fmt.Sprintf("Node %d deleted", id)
		if m.hasHit && m.hit == id {
			m.hasHit = false
		}
	case errors.Is(err, errs.NodeDoesNotExistError):
		m.result = fmt.Sprintf("Node %d does not exist.", id)
	default:
		m.result = fmt.Sprintf("Delete of node %d failed: %v", id, err)
	}
	m.refresh()
}

// parseInput reads the input as an unsigned integer. Numbers too large for uint64
// fail with strconv.ErrRange since they can never be on the ring.
func (m *Model) parseInput() (string, uint64, error) {
	text := strings.TrimSpace(m.input.Value())
	v, err := strconv.ParseUint(text, 10, 64)
	return text, v, err
}

func (m *Model) refresh() {
	ctx, cancel := context.WithTimeout(m.ctx, callTimeout)
	defer cancel()

	ring, err := m.core.GetRing(ctx)
	if err != nil {
		m.logger.Error(err, "ring refresh failed")
		m.result = fmt.Sprintf("Ring refresh failed: %v", err)
		return
	}
	m.ring = ring
}

func (m Model) View() string {
	last := m.core.MaxID() - 1

	var help string
	switch m.mode {
	case Normal:
		help = "Press " + boldStyle.Render("q") + " to exit, " + boldStyle.Render("s") + " to lookup node, " +
			boldStyle.Render("a") + " to add node, " + boldStyle.Render("d") + " to delete node"
	case Searching:
		help = "Press " + boldStyle.Render("Esc") + " to return, " + boldStyle.Render("Enter") +
			fmt.Sprintf(" to lookup key (0-%d)", last)
	case Deleting:
		help = "Press " + boldStyle.Render("Esc") + " to return, " + boldStyle.Render("Enter") +
			fmt.Sprintf(" to delete node (0-%d)", last)
	}

	input := m.input.View()
	switch m.mode {
	case Searching:
		input = searchStyle.Render(input)
	case Deleting:
		input = deleteStyle.Render(input)
	}

	members := make([]string, len(m.ring))
	for i, id := range m.ring {
		members[i] = strconv.FormatUint(id, 10)
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		help,
		boxStyle.Width(panelWidth-2).Render(titleStyle.Render("Input")+"\n"+input),
		boxStyle.Width(panelWidth-2).Render(titleStyle.Render("Result")+"\n"+m.result),
		boxStyle.Width(panelWidth-2).Render(titleStyle.Render(fmt.Sprintf("Members (%d)", len(m.ring)))+"\n"+
			ringStyle.Render(strings.Join(members, " "))),
	)

	canvas := Canvas{
		Width:        max(m.width-panelWidth-6, 24),
		Height:       max(m.height-4, 9),
		MaxID:        m.core.MaxID(),
		Nodes:        m.ring,
		Highlight:    m.hit,
		HasHighlight: m.hasHit,
	}
	right := boxStyle.Render(titleStyle.Render("Chord Ring") + "\n" + ringStyle.Render(canvas.Render()))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
