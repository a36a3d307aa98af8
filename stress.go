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
	"math/rand"
	"slices"
	"strconv"

	"github.com/cybrota/baltree/avl"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// StressReport summarizes a stress run.
type StressReport struct {
	Operations int
	Inserted   int
	Duplicates int
	Deleted    int
	Missing    int
	// CertainNew counts inserts the bloom filter proved to be new keys.
	CertainNew int
	Checks     int
	Rotations  avl.Stats
	FinalSize  int
	Height     int
}

// runStress applies a seeded random mix of inserts and deletes to a tree,
// comparing every outcome with a shadow set and validating the tree's
// invariants every cfg.CheckEvery operations and at the end.
func runStress(w io.Writer, cfg StressConfig, quiet bool) (*StressReport, error) {
	if cfg.Operations <= 0 || cfg.KeySpace <= 0 {
		return nil, fmt.Errorf("stress: operations and key space must be positive")
	}
	capacity := cfg.BloomCapacity
	if capacity == 0 {
		capacity = uint(cfg.Operations)
	}
	fpRate := cfg.BloomFPRate
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = defaultConfig.Stress.BloomFPRate
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	tree := avl.New[int]()
	seen := bloom.NewWithEstimates(capacity, fpRate)
	shadow := make(map[int]struct{})
	report := &StressReport{Operations: cfg.Operations}

	var bar *progressbar.ProgressBar
	if !quiet {
		bar = progressbar.NewOptions(cfg.Operations,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("🌳 Rebalancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		)
	}

	for i := 1; i <= cfg.Operations; i++ {
		key := rng.Intn(cfg.KeySpace)
		_, present := shadow[key]

		if rng.Intn(2) == 0 {
			member := strconv.Itoa(key)
			maybeSeen := seen.TestString(member)
			err := tree.Insert(key)
			switch {
			case err == nil:
				if present {
					return report, fmt.Errorf("op %d: insert %d accepted a duplicate", i, key)
				}
				if !maybeSeen {
					report.CertainNew++
				}
				shadow[key] = struct{}{}
				seen.AddString(member)
				report.Inserted++
			case errors.Is(err, avl.ErrDuplicateKey):
				if !present {
					return report, fmt.Errorf("op %d: insert %d rejected a new key: %w", i, key, err)
				}
				if !maybeSeen {
					return report, fmt.Errorf("op %d: key %d in tree but never recorded as inserted", i, key)
				}
				report.Duplicates++
			default:
				return report, fmt.Errorf("op %d: insert %d: %w", i, key, err)
			}
		} else {
			removed := tree.Delete(key)
			if removed != present {
				return report, fmt.Errorf("op %d: delete %d reported %v, expected %v", i, key, removed, present)
			}
			if removed {
				delete(shadow, key)
				report.Deleted++
			} else {
				report.Missing++
			}
		}

		if cfg.CheckEvery > 0 && i%cfg.CheckEvery == 0 {
			if err := verifyAgainst(tree, shadow); err != nil {
				return report, fmt.Errorf("op %d: %w", i, err)
			}
			report.Checks++
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(w)
	}

	if err := verifyAgainst(tree, shadow); err != nil {
		return report, err
	}
	report.Checks++
	report.Rotations = tree.Stats()
	report.FinalSize = tree.Len()
	report.Height = tree.Height()
	return report, nil
}

func verifyAgainst(tree *avl.Tree[int], shadow map[int]struct{}) error {
	if err := tree.Check(); err != nil {
		return err
	}
	if tree.Len() != len(shadow) {
		return fmt.Errorf("tree holds %d keys, expected %d", tree.Len(), len(shadow))
	}
	want := make([]int, 0, len(shadow))
	for k := range shadow {
		want = append(want, k)
	}
	slices.Sort(want)
	if got := tree.InOrder(); !slices.Equal(got, want) {
		return fmt.Errorf("in-order traversal diverged from the inserted keys")
	}
	return nil
}

func printStressReport(w io.Writer, r *StressReport) {
	fmt.Fprintf(w, "%soperations:%s %d\n", Info, Reset, r.Operations)
	fmt.Fprintf(w, "  inserted %d, duplicates %d (bloom-certain new: %d)\n", r.Inserted, r.Duplicates, r.CertainNew)
	fmt.Fprintf(w, "  deleted %d, missing %d\n", r.Deleted, r.Missing)
	fmt.Fprintf(w, "%srotations:%s LL=%d RR=%d LR=%d RL=%d (%d)\n", Info, Reset,
		r.Rotations.LeftLeft, r.Rotations.RightRight, r.Rotations.LeftRight, r.Rotations.RightLeft, r.Rotations.Total())
	fmt.Fprintf(w, "%sfinal tree:%s %d keys, height %d\n", Info, Reset, r.FinalSize, r.Height)
	fmt.Fprintf(w, "%s\n", okLabel(fmt.Sprintf("invariants verified %d times", r.Checks)))
}
