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

package avl

import (
	"slices"
	"strings"
	"testing"
)

func scenarioTree(t *testing.T) *Tree[int] {
	t.Helper()
	tree := New[int]()
	for _, key := range []int{9, 5, 10, 0, 6, 11, -1, 1, 2} {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%d) failed: %v", key, err)
		}
	}
	return tree
}

func TestScenario(t *testing.T) {
	tree := scenarioTree(t)
	if got, want := tree.InOrder(), []int{-1, 0, 1, 2, 5, 6, 9, 10, 11}; !slices.Equal(got, want) {
		t.Fatalf("InOrder() = %v; want %v", got, want)
	}
	if got := tree.Stats(); got != (Stats{LeftRight: 1}) {
		t.Errorf("Stats() after inserts = %+v", got)
	}
	tree.Delete(10)
	tree.Delete(11)
	if got, want := tree.InOrder(), []int{-1, 0, 1, 2, 5, 6, 9}; !slices.Equal(got, want) {
		t.Fatalf("InOrder() = %v; want %v", got, want)
	}
	if got, want := tree.KeysInRange(1, 9), []int{1, 2, 5, 6, 9}; !slices.Equal(got, want) {
		t.Errorf("KeysInRange(1, 9) = %v; want %v", got, want)
	}
	// both deletions rebalance with a single right rotation, leaving 6 below 1 -> 5 -> 9
	if got := tree.DepthOf(6); got != 3 {
		t.Errorf("DepthOf(6) = %d; want 3", got)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDepth(t *testing.T) {
	tree := scenarioTree(t)
	tree.Delete(10)
	tree.Delete(11)

	testCases := []struct {
		key   int
		depth int
	}{
		{1, 0}, {0, 1}, {5, 1}, {-1, 2}, {2, 2}, {9, 2}, {6, 3},
		{7, -1}, {100, -1}, {-5, -1},
	}
	for _, tc := range testCases {
		if got := tree.DepthOf(tc.key); got != tc.depth {
			t.Errorf("DepthOf(%d) = %d; want %d", tc.key, got, tc.depth)
		}
		level, found := tree.Depth(tc.key)
		if found != (tc.depth >= 0) || level != tc.depth {
			t.Errorf("Depth(%d) = %d, %v", tc.key, level, found)
		}
		if tree.Contains(tc.key) != (tc.depth >= 0) {
			t.Errorf("Contains(%d) = %v", tc.key, !(tc.depth >= 0))
		}
	}
	if got := New[int]().DepthOf(1); got != -1 {
		t.Errorf("DepthOf on empty tree = %d; want -1", got)
	}
}

func TestKeysInRange(t *testing.T) {
	tree := New[int]()
	for key := 0; key < 100; key += 5 {
		_ = tree.Insert(key)
	}

	testCases := []struct {
		Name      string
		Low, High int
		Expected  []int
	}{
		{"inner range", 12, 31, []int{15, 20, 25, 30}},
		{"inclusive bounds", 15, 30, []int{15, 20, 25, 30}},
		{"single key", 40, 40, []int{40}},
		{"below minimum", -20, -1, nil},
		{"above maximum", 100, 200, nil},
		{"gap between keys", 41, 44, nil},
		{"whole tree", -1000, 1000, tree.InOrder()},
		{"inverted bounds", 50, 10, nil},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := tree.KeysInRange(tc.Low, tc.High)
			if !slices.Equal(got, tc.Expected) {
				t.Errorf("KeysInRange(%d, %d) = %v; want %v", tc.Low, tc.High, got, tc.Expected)
			}
		})
	}
}

func TestKeysInRangeSkipsOutsideSubtrees(t *testing.T) {
	visited := 0
	tree := NewFunc(func(a, b int) int {
		visited++
		return a - b
	})
	for key := 0; key < 1024; key++ {
		_ = tree.Insert(key)
	}
	visited = 0
	if got := tree.KeysInRange(500, 503); len(got) != 4 {
		t.Fatalf("KeysInRange(500, 503) = %v", got)
	}
	// a full walk would compare every one of the 1024 keys
	if visited > 200 {
		t.Errorf("range query made %d comparisons", visited)
	}
}

func TestMinMaxWalk(t *testing.T) {
	tree := New[int]()
	if _, ok := tree.Min(); ok {
		t.Errorf("Min() on empty tree reported a key")
	}
	if _, ok := tree.Max(); ok {
		t.Errorf("Max() on empty tree reported a key")
	}
	for _, key := range []int{8, 3, 12, -4, 7} {
		_ = tree.Insert(key)
	}
	if k, _ := tree.Min(); k != -4 {
		t.Errorf("Min() = %d; want -4", k)
	}
	if k, _ := tree.Max(); k != 12 {
		t.Errorf("Max() = %d; want 12", k)
	}
	var firstTwo []int
	tree.Walk(func(key int) bool {
		firstTwo = append(firstTwo, key)
		return len(firstTwo) < 2
	})
	if !slices.Equal(firstTwo, []int{-4, 3}) {
		t.Errorf("Walk with early stop = %v", firstTwo)
	}
	tree.Walk(nil)
}

func TestRender(t *testing.T) {
	tree := scenarioTree(t)
	tree.Delete(10)
	tree.Delete(11)

	var b strings.Builder
	if err := tree.Render(&b, true); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"    ┌── 9 (h2)",
		"    │   └── 6 (h1)",
		"┌── 5 (h3)",
		"│   └── 2 (h1)",
		"1 (h4)",
		"└── 0 (h2)",
		"    └── -1 (h1)",
	}, "\n") + "\n"
	if b.String() != want {
		t.Errorf("Render() =\n%s\nwant\n%s", b.String(), want)
	}

	b.Reset()
	_ = New[int]().Render(&b, false)
	if b.String() != "(empty)\n" {
		t.Errorf("Render() of empty tree = %q", b.String())
	}
}

func TestWriteDot(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{2, 1, 3, 4} {
		_ = tree.Insert(key)
	}
	var b strings.Builder
	if err := tree.WriteDot(&b); err != nil {
		t.Fatal(err)
	}
	dot := b.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("output is not a DOT digraph")
	}
	for _, label := range []string{`label="2\nh=3"`, `label="3\nh=2"`, `label="4\nh=1"`} {
		if !strings.Contains(dot, label) {
			t.Errorf("missing node %s", label)
		}
	}
	// 3 edges between keys plus one to the empty left child of 3
	if n := strings.Count(dot, "->"); n != 4 {
		t.Errorf("found %d edges; want 4", n)
	}
}
