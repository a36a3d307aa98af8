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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

var (
	// ErrUnknownCommand is returned when no handler supports a command name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage signals missing or malformed command arguments.
	ErrUsage = errors.New("usage")
)

// Handler executes one family of interpreter commands against a session.
type Handler interface {
	Run(s *Session, cmd *Command) (string, error)
	SupportsCommand(name string) bool
	Usage() string
	Priority() int // Lower number = higher priority
}

// Command represents a parsed interpreter line
type Command struct {
	Parts    []string
	Name     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from command parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Name:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// Parse splits an input line with shell quoting rules and builds a Command.
func Parse(line string) (*Command, error) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	return NewCommand(parts), nil
}

// HasArgs checks if command has at least n arguments
func (c *Command) HasArgs(n int) bool {
	return len(c.Args) >= n
}

// GetArg returns the nth argument (0-indexed)
func (c *Command) GetArg(n int) string {
	if n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// IntArg parses the nth argument as a key.
func (c *Command) IntArg(n int) (int, error) {
	if n >= len(c.Args) {
		return 0, fmt.Errorf("%w: %s needs at least %d argument(s)", ErrUsage, c.Name, n+1)
	}
	k, err := strconv.Atoi(c.Args[n])
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer key", ErrUsage, c.Args[n])
	}
	return k, nil
}

// IntArgs parses all arguments as keys.
func (c *Command) IntArgs() ([]int, error) {
	if len(c.Args) == 0 {
		return nil, fmt.Errorf("%w: %s needs at least one key", ErrUsage, c.Name)
	}
	keys := make([]int, 0, len(c.Args))
	for i := range c.Args {
		k, err := c.IntArg(i)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// named implements the name matching and priority part of Handler.
type named struct {
	names    []string
	usage    string
	priority int
}

func (n named) SupportsCommand(name string) bool {
	for _, candidate := range n.names {
		if candidate == name {
			return true
		}
	}
	return false
}

func (n named) Usage() string {
	return n.usage
}

func (n named) Priority() int {
	return n.priority
}
