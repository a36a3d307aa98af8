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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cybrota/baltree/commands"
)

// runShell reads interpreter lines from in until EOF or "exit" and writes the
// results to out. Command errors are reported and do not end the session.
func runShell(in io.Reader, out io.Writer, cfg ShellConfig, interactive bool) error {
	session := commands.NewSession(commands.SessionOptions{DepthCacheTTL: cfg.DepthCacheTTL})
	manager := commands.NewManager(session, cfg.MaxOutput)

	if interactive {
		fmt.Fprintf(out, "%sbaltree %s%s, type 'help' for commands, 'exit' to quit\n", Green, version, Reset)
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, cfg.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}

		result, err := manager.Execute(line)
		if err != nil {
			printError(out, err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}
