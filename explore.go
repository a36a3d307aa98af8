// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/baltree/commands"
	"github.com/guiguan/caster"
)

const maxEventLog = 200

// rotationMsg carries the rotation events of one command from the broadcaster
// into the update loop.
type rotationMsg []commands.RotationEvent

// Model is the state of the explore UI.
type Model struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model
	logView  viewport.Model
	helpView viewport.Model

	manager *commands.Manager
	events  chan interface{}
	config  *Config

	showHelp bool
	status   string
	failed   bool
	log      []string
	treeText string

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
	Rotation       lipgloss.Style
}

// NewStyles creates styles from the detected colour scheme.
func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Success).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
		Rotation: lipgloss.NewStyle().
			Foreground(scheme.Accent),
	}
}

// InitialModel creates the explore model around a fresh session whose rotation
// events are published on events.
func InitialModel(config *Config, events *caster.Caster) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 9 5 10, delete 5, range 1 9, depth 6 ..."
	ti.Prompt = config.Shell.Prompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	session := commands.NewSession(commands.SessionOptions{
		DepthCacheTTL: config.Shell.DepthCacheTTL,
		Events:        events,
	})
	sub, _ := events.Sub(nil, 64)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	m := Model{
		input:           ti,
		treeView:        viewport.New(0, 0),
		logView:         viewport.New(0, 0),
		helpView:        viewport.New(0, 0),
		manager:         commands.NewManager(session, config.Shell.MaxOutput),
		events:          sub,
		config:          config,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
	}
	m.refreshTree()
	m.helpView.SetContent(m.renderHelpPage())
	return m
}

// waitForRotation blocks until the broadcaster delivers the next batch of
// events. The session publishes without blocking, so a slow UI only drops
// batches and never stalls a command.
func waitForRotation(ch chan interface{}) tea.Cmd {
	return func() tea.Msg {
		for msg := range ch {
			if batch, ok := msg.([]commands.RotationEvent); ok {
				return rotationMsg(batch)
			}
		}
		return nil
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForRotation(m.events))
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			return m, nil
		case "ctrl+y":
			m.copyDot()
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			if m.showHelp {
				m.helpView, cmd = m.helpView.Update(msg)
			} else {
				m.treeView, cmd = m.treeView.Update(msg)
			}
			return m, cmd
		case "enter":
			m.execute(m.input.Value())
			m.input.SetValue("")
			return m, nil
		}

	case rotationMsg:
		for _, ev := range msg {
			m.appendLog(m.styles.Rotation.Render("↻ " + ev.String()))
		}
		return m, waitForRotation(m.events)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.appendLog("› " + line)
	out, err := m.manager.Execute(line)
	if err != nil {
		m.status = err.Error()
		m.failed = true
		m.appendLog(m.styles.ErrorMessage.Render(err.Error()))
		return
	}
	m.status = firstLine(out)
	m.failed = false
	if out != "" {
		m.appendLog(out)
	}
	m.refreshTree()
}

func (m *Model) appendLog(entry string) {
	m.log = append(m.log, entry)
	if len(m.log) > maxEventLog {
		m.log = m.log[len(m.log)-maxEventLog:]
	}
	m.logView.SetContent(strings.Join(m.log, "\n"))
	m.logView.GotoBottom()
}

func (m *Model) refreshTree() {
	tree := m.manager.Session().Tree
	var b strings.Builder
	tree.Render(&b, m.config.UI.ShowHeights)
	fmt.Fprintf(&b, "\nkeys: %d  height: %d  rotations: %d\n", tree.Len(), tree.Height(), tree.Stats().Total())
	m.treeText = b.String()
	m.treeView.SetContent(m.treeText)
}

func (m *Model) copyDot() {
	var b strings.Builder
	if err := m.manager.Session().Tree.WriteDot(&b); err != nil {
		m.status, m.failed = err.Error(), true
		return
	}
	if err := clipboard.WriteAll(b.String()); err != nil {
		m.status, m.failed = fmt.Sprintf("clipboard: %v", err), true
		return
	}
	m.status, m.failed = "📋 Copied Graphviz DOT to clipboard", false
}

func (m Model) renderHelpPage() string {
	var b strings.Builder
	b.WriteString("# baltree explorer\n\nType interpreter commands and press **enter**.\n\n")
	b.WriteString("## Commands\n\n")
	for _, usage := range m.manager.Usage() {
		fmt.Fprintf(&b, "* `%s`\n", usage)
	}
	b.WriteString("\n## Rotations\n\n")
	b.WriteString("* **left-left**: single right rotation at the unbalanced node\n")
	b.WriteString("* **right-right**: single left rotation\n")
	b.WriteString("* **left-right**: left rotation of the left child, then right rotation\n")
	b.WriteString("* **right-left**: right rotation of the right child, then left rotation\n")
	page := b.String()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(page); err == nil {
			return rendered
		}
	}
	return page
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	bodyHeight := m.height - inputHeight - 6
	treeWidth := (m.width * 6 / 10) - 1
	logWidth := m.width - treeWidth - 3

	m.input.Width = m.width - 6
	m.treeView.Width = treeWidth - 2
	m.treeView.Height = bodyHeight
	m.logView.Width = logWidth - 2
	m.logView.Height = bodyHeight
	m.helpView.Width = m.width - 4
	m.helpView.Height = bodyHeight
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	input := m.styles.BorderFocused.Width(m.width - 2).Render(m.input.View())

	var body string
	if m.showHelp {
		body = m.styles.BorderBlurred.Width(m.width - 2).Render(
			m.styles.Title.Render("Help") + "\n" + m.helpView.View())
	} else {
		treePane := m.styles.BorderBlurred.Width(m.treeView.Width).Render(
			m.styles.Title.Render("🌳 Tree") + "\n" + m.treeView.View())
		logPane := m.styles.BorderBlurred.Width(m.logView.Width).Render(
			m.styles.Title.Render("Events") + "\n" + m.logView.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, treePane, " ", logPane)
	}

	status := m.styles.SuccessMessage.Render(m.status)
	if m.failed {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, input, body, status, m.renderFooter())
}

func (m Model) renderFooter() string {
	keys := []string{"enter", "f1", "pgup/pgdown", "ctrl+y", "esc"}
	descs := []string{"run", "toggle help", "scroll", "copy dot", "quit"}
	parts := make([]string, len(keys))
	for i := range keys {
		parts[i] = m.styles.HelpKey.Render(keys[i]) + " " + m.styles.HelpDesc.Render(descs[i])
	}
	return strings.Join(parts, " • ")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

// runExplore starts the explore UI.
func runExplore(config *Config) error {
	InitializeColors()

	events := caster.New(nil)
	defer events.Close()

	program := tea.NewProgram(
		InitialModel(config, events),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
