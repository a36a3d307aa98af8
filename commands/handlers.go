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
	"strings"

	"github.com/cybrota/baltree/avl"
)

type insertHandler struct{ named }

func (h *insertHandler) Run(s *Session, cmd *Command) (string, error) {
	keys, err := cmd.IntArgs()
	if err != nil {
		return "", err
	}
	var out []string
	for _, k := range keys {
		if err := s.Insert(k); err != nil {
			if errors.Is(err, avl.ErrDuplicateKey) {
				out = append(out, fmt.Sprintf("rejected %d: %v", k, err))
				continue
			}
			return "", err
		}
		out = append(out, "inserted "+withRotations(k, s.TakeRotations()))
	}
	return strings.Join(out, "\n"), nil
}

type deleteHandler struct{ named }

func (h *deleteHandler) Run(s *Session, cmd *Command) (string, error) {
	keys, err := cmd.IntArgs()
	if err != nil {
		return "", err
	}
	var out []string
	for _, k := range keys {
		if !s.Delete(k) {
			out = append(out, fmt.Sprintf("not found %d", k))
			continue
		}
		out = append(out, "deleted "+withRotations(k, s.TakeRotations()))
	}
	return strings.Join(out, "\n"), nil
}

func withRotations(key int, rotations []RotationEvent) string {
	if len(rotations) == 0 {
		return fmt.Sprint(key)
	}
	steps := make([]string, len(rotations))
	for i, r := range rotations {
		steps[i] = r.String()
	}
	return fmt.Sprintf("%d (%s)", key, strings.Join(steps, ", "))
}

type clearHandler struct{ named }

func (h *clearHandler) Run(s *Session, _ *Command) (string, error) {
	s.Clear()
	return "tree cleared", nil
}

type rangeHandler struct{ named }

func (h *rangeHandler) Run(s *Session, cmd *Command) (string, error) {
	low, err := cmd.IntArg(0)
	if err != nil {
		return "", err
	}
	high, err := cmd.IntArg(1)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(s.Tree.KeysInRange(low, high)), nil
}

type depthHandler struct{ named }

func (h *depthHandler) Run(s *Session, cmd *Command) (string, error) {
	k, err := cmd.IntArg(0)
	if err != nil {
		return "", err
	}
	level, found := s.Depth(k)
	if !found {
		return fmt.Sprintf("%d not found (%d)", k, level), nil
	}
	return fmt.Sprintf("depth of %d: %d", k, level), nil
}

type containsHandler struct{ named }

func (h *containsHandler) Run(s *Session, cmd *Command) (string, error) {
	k, err := cmd.IntArg(0)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(s.Tree.Contains(k)), nil
}

type inorderHandler struct{ named }

func (h *inorderHandler) Run(s *Session, _ *Command) (string, error) {
	return fmt.Sprint(s.Tree.InOrder()), nil
}

type showHandler struct{ named }

func (h *showHandler) Run(s *Session, _ *Command) (string, error) {
	var b strings.Builder
	if err := s.Tree.Render(&b, true); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

type dotHandler struct{ named }

func (h *dotHandler) Run(s *Session, _ *Command) (string, error) {
	var b strings.Builder
	if err := s.Tree.WriteDot(&b); err != nil {
		return "", err
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

type statsHandler struct{ named }

func (h *statsHandler) Run(s *Session, _ *Command) (string, error) {
	st := s.Tree.Stats()
	hits, misses, entries := s.CacheStats()
	lines := []string{
		fmt.Sprintf("keys: %d, height: %d", s.Tree.Len(), s.Tree.Height()),
		fmt.Sprintf("rotations: LL=%d RR=%d LR=%d RL=%d (total %d)",
			st.LeftLeft, st.RightRight, st.LeftRight, st.RightLeft, st.Total()),
		fmt.Sprintf("depth cache: hits=%d misses=%d entries=%d", hits, misses, entries),
	}
	return strings.Join(lines, "\n"), nil
}

type checkHandler struct{ named }

func (h *checkHandler) Run(s *Session, _ *Command) (string, error) {
	if err := s.Tree.Check(); err != nil {
		return "", err
	}
	return "ok", nil
}

type helpHandler struct {
	named
	manager *Manager
}

func (h *helpHandler) Run(_ *Session, _ *Command) (string, error) {
	return "commands:\n  " + strings.Join(h.manager.Usage(), "\n  "), nil
}
