package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/velmaran/strukt/avltree"
)

// explorerStyles holds the lipgloss styling for the explorer panes.
type explorerStyles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	Status        lipgloss.Style
	ErrorMessage  lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
}

func newExplorerStyles() *explorerStyles {
	return &explorerStyles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// explorerModel is the Bubble Tea state for the AVL explorer.
type explorerModel struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model

	tree *avltree.Tree[int]
	rng  *rand.Rand

	status  string
	statErr bool

	styles *explorerStyles

	width  int
	height int
}

func newExplorerModel() explorerModel {
	ti := textinput.New()
	ti.Placeholder = "insert 42 17 99 | remove 17 | find 42 | fill 20 | clear"
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 50

	tv := viewport.New(0, 0)

	m := explorerModel{
		input:    ti,
		treeView: tv,
		tree:     avltree.New[int](),
		rng:      rand.New(rand.NewSource(1)),
		status:   "Empty tree. Try: insert 50 30 70",
		styles:   newExplorerStyles(),
	}
	m.refreshTreeView()

	return m
}

func (m explorerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m explorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.runCommand(strings.TrimSpace(m.input.Value()))
			m.input.SetValue("")
			m.refreshTreeView()
			return m, nil
		case "pgup":
			m.treeView.LineUp(m.treeView.Height)
			return m, nil
		case "pgdown":
			m.treeView.LineDown(m.treeView.Height)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// runCommand parses a single explorer command and applies it to the tree.
func (m *explorerModel) runCommand(line string) {
	m.statErr = false
	if line == "" {
		return
	}

	fields := strings.Fields(line)
	verb, args := strings.ToLower(fields[0]), fields[1:]

	switch verb {
	case "insert", "i", "add":
		values, err := parseInts(args)
		if err != nil {
			m.fail(err.Error())
			return
		}
		for _, v := range values {
			m.tree.Insert(v)
		}
		m.status = fmt.Sprintf("Inserted %d value(s). %s", len(values), m.tree)

	case "remove", "r", "delete":
		values, err := parseInts(args)
		if err != nil {
			m.fail(err.Error())
			return
		}
		for _, v := range values {
			m.tree.Remove(v)
		}
		m.status = fmt.Sprintf("Removed %d value(s). %s", len(values), m.tree)

	case "find", "f":
		values, err := parseInts(args)
		if err != nil || len(values) != 1 {
			m.fail("usage: find <value>")
			return
		}
		if depth, ok := m.tree.Depth(values[0]); ok {
			m.status = fmt.Sprintf("%d is present at depth %d", values[0], depth)
		} else {
			m.status = fmt.Sprintf("%d is not in the tree", values[0])
		}

	case "min":
		v, err := m.tree.Min()
		if err != nil {
			m.fail(err.Error())
			return
		}
		m.status = fmt.Sprintf("min = %d", v)

	case "max":
		v, err := m.tree.Max()
		if err != nil {
			m.fail(err.Error())
			return
		}
		m.status = fmt.Sprintf("max = %d", v)

	case "fill":
		n := 15
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil || parsed <= 0 {
				m.fail("usage: fill [count]")
				return
			}
			n = parsed
		}
		for i := 0; i < n; i++ {
			m.tree.Insert(m.rng.Intn(1000))
		}
		m.status = fmt.Sprintf("Filled with %d random value(s). %s", n, m.tree)

	case "clear":
		m.tree.Clear()
		m.status = "Cleared. " + m.tree.String()

	default:
		m.fail(fmt.Sprintf("unknown command %q", verb))
	}
}

func (m *explorerModel) fail(msg string) {
	m.status = msg
	m.statErr = true
}

func parseInts(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("expected at least one integer argument")
	}

	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		values = append(values, v)
	}

	return values, nil
}

// refreshTreeView re-renders the tree pane content.
func (m *explorerModel) refreshTreeView() {
	var b strings.Builder
	b.WriteString(m.tree.Render())
	b.WriteString("\n")
	if order := m.tree.InOrder(); len(order) > 0 {
		b.WriteString(fmt.Sprintf("in-order: %v\n", order))
	}
	m.treeView.SetContent(b.String())
}

func (m *explorerModel) updateLayout() {
	inputHeight := 3
	treeHeight := m.height - inputHeight - 6

	m.input.Width = m.width - 8
	m.treeView.Width = m.width - 4
	m.treeView.Height = treeHeight - 2
}

func (m explorerModel) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	treeHeight := m.height - inputHeight - 6
	paneWidth := m.width - 2

	inputBox := m.styles.BorderFocused.
		Width(paneWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(paneWidth-4).Render(" 🌳 AVL Explorer "),
			m.input.View(),
		))

	statusStyle := m.styles.Status
	if m.statErr {
		statusStyle = m.styles.ErrorMessage
	}

	treeBox := m.styles.BorderBlurred.
		Width(paneWidth).
		Height(treeHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			statusStyle.Padding(0, 1).Render(m.status),
			m.treeView.View(),
		))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		inputBox,
		treeBox,
		m.renderHelp(),
	)
}

func (m explorerModel) renderHelp() string {
	keys := []string{"enter", "pgup/pgdn", "esc"}
	descs := []string{"run command", "scroll tree", "quit"}

	var entries []string
	for i, key := range keys {
		entries = append(entries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(entries, " • "))
}

// runTreeExplorer starts the Bubble Tea program.
func runTreeExplorer() error {
	program := tea.NewProgram(
		newExplorerModel(),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}
