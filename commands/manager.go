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

package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Manager dispatches interpreter lines to registered handlers
type Manager struct {
	handlers  []Handler
	session   *Session
	maxOutput int64
}

// NewManager creates a manager with all built-in handlers working on session.
// maxOutput <= 0 selects DefaultMaxOutput.
func NewManager(session *Session, maxOutput int64) *Manager {
	if maxOutput <= 0 {
		maxOutput = DefaultMaxOutput
	}
	manager := &Manager{
		session:   session,
		maxOutput: maxOutput,
	}

	manager.RegisterHandler(&insertHandler{named{names: []string{"insert", "add", "i"}, usage: "insert <key>...", priority: 10}})
	manager.RegisterHandler(&deleteHandler{named{names: []string{"delete", "del", "rm", "d"}, usage: "delete <key>...", priority: 10}})
	manager.RegisterHandler(&clearHandler{named{names: []string{"clear", "reset"}, usage: "clear", priority: 10}})
	manager.RegisterHandler(&rangeHandler{named{names: []string{"range", "r"}, usage: "range <low> <high>", priority: 20}})
	manager.RegisterHandler(&depthHandler{named{names: []string{"depth"}, usage: "depth <key>", priority: 20}})
	manager.RegisterHandler(&containsHandler{named{names: []string{"contains", "has", "find"}, usage: "contains <key>", priority: 20}})
	manager.RegisterHandler(&inorderHandler{named{names: []string{"inorder", "list", "ls"}, usage: "inorder", priority: 20}})
	manager.RegisterHandler(&showHandler{named{names: []string{"show", "tree", "print"}, usage: "show", priority: 30}})
	manager.RegisterHandler(&dotHandler{named{names: []string{"dot"}, usage: "dot", priority: 30}})
	manager.RegisterHandler(&statsHandler{named{names: []string{"stats"}, usage: "stats", priority: 30}})
	manager.RegisterHandler(&checkHandler{named{names: []string{"check", "verify"}, usage: "check", priority: 30}})
	manager.RegisterHandler(&helpHandler{named: named{names: []string{"help", "?"}, usage: "help", priority: 40}, manager: manager})

	return manager
}

// RegisterHandler registers a new command handler
func (m *Manager) RegisterHandler(h Handler) {
	m.handlers = append(m.handlers, h)
}

// Session returns the session the manager works on.
func (m *Manager) Session() *Session {
	return m.session
}

// Execute parses and runs one interpreter line. Blank lines produce no output.
func (m *Manager) Execute(line string) (string, error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	if cmd.Name == "" {
		return "", nil
	}
	return m.Run(cmd)
}

// Run executes cmd with the best handler supporting its name.
func (m *Manager) Run(cmd *Command) (string, error) {
	var supported []Handler
	for _, h := range m.handlers {
		if h.SupportsCommand(cmd.Name) {
			supported = append(supported, h)
		}
	}
	if len(supported) == 0 {
		return "", fmt.Errorf("%w %q, try 'help'", ErrUnknownCommand, cmd.Name)
	}
	sort.SliceStable(supported, func(i, j int) bool {
		return supported[i].Priority() < supported[j].Priority()
	})

	out, err := supported[0].Run(m.session, cmd)
	m.session.PublishRotations()
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	lw := NewLimitedWriter(&buf, m.maxOutput)
	if _, err := io.WriteString(lw, out); err != nil {
		return "", err
	}
	if lw.Truncated() {
		buf.WriteString(truncatedNotice)
	}
	return buf.String(), nil
}

// Usage lists the usage lines of all handlers in priority order.
func (m *Manager) Usage() []string {
	handlers := append([]Handler(nil), m.handlers...)
	sort.SliceStable(handlers, func(i, j int) bool {
		return handlers[i].Priority() < handlers[j].Priority()
	})
	usage := make([]string, 0, len(handlers))
	for _, h := range handlers {
		usage = append(usage, h.Usage())
	}
	return usage
}
