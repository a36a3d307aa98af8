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
	"errors"
	"fmt"
	"io"

	"github.com/cybrota/baltree/avl"
)

// runDemo drives a fresh tree through the insert, delete, range and depth
// steps of cfg, printing each result to w.
func runDemo(w io.Writer, cfg DemoConfig, showTree bool) error {
	tree := avl.New(avl.WithRotationHook(func(r avl.Rotation, pivot int) {
		fmt.Fprintf(w, "    %s\n", rotationLabel(fmt.Sprintf("%s rotation at %d", r, pivot)))
	}))

	fmt.Fprintf(w, "%s--- 1. Inserting keys %v ---%s\n", Info, cfg.Insert, Reset)
	for _, key := range cfg.Insert {
		if err := tree.Insert(key); err != nil {
			if errors.Is(err, avl.ErrDuplicateKey) {
				printError(w, err)
				continue
			}
			return err
		}
	}
	fmt.Fprintf(w, "in-order: %v\n", tree.InOrder())
	if showTree {
		tree.Render(w, true)
	}

	fmt.Fprintf(w, "%s--- 2. Deleting keys %v ---%s\n", Info, cfg.Delete, Reset)
	for _, key := range cfg.Delete {
		if !tree.Delete(key) {
			fmt.Fprintf(w, "key %d not present\n", key)
		}
	}
	fmt.Fprintf(w, "in-order: %v\n", tree.InOrder())
	if showTree {
		tree.Render(w, true)
	}

	fmt.Fprintf(w, "%s--- 3. Keys in range [%d, %d] ---%s\n", Info, cfg.Range.Low, cfg.Range.High, Reset)
	fmt.Fprintf(w, "found: %v\n", tree.KeysInRange(cfg.Range.Low, cfg.Range.High))

	fmt.Fprintf(w, "%s--- 4. Depth of key %d ---%s\n", Info, cfg.Depth, Reset)
	if depth, found := tree.Depth(cfg.Depth); found {
		fmt.Fprintf(w, "key %d is at depth %d\n", cfg.Depth, depth)
	} else {
		fmt.Fprintf(w, "key %d not found\n", cfg.Depth)
	}

	if err := tree.Check(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", okLabel("invariants hold"))
	return nil
}
