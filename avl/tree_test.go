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
	"errors"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type avlTestCase struct {
	Name          string
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int // in-order traversal after all operations
	ExpectedRoot  int
}

func TestTreeOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()

	testCases := []avlTestCase{
		{
			Name:          "Single key",
			KeysToInsert:  []int{42},
			ExpectedOrder: []int{42},
			ExpectedRoot:  42,
		},
		{
			Name:          "Ascending insertion",
			KeysToInsert:  []int{1, 2, 3, 4, 5, 6, 7},
			ExpectedOrder: []int{1, 2, 3, 4, 5, 6, 7},
			ExpectedRoot:  4,
		},
		{
			Name:          "Descending insertion",
			KeysToInsert:  []int{7, 6, 5, 4, 3, 2, 1},
			ExpectedOrder: []int{1, 2, 3, 4, 5, 6, 7},
			ExpectedRoot:  4,
		},
		{
			Name:          "Delete leaf",
			KeysToInsert:  []int{2, 1, 3},
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Delete root with two children",
			KeysToInsert:  []int{2, 1, 3},
			KeysToDelete:  []int{2},
			ExpectedOrder: []int{1, 3},
			ExpectedRoot:  3,
		},
		{
			Name:          "Deletion with rebalancing (left heavy)",
			KeysToInsert:  []int{3, 2, 4, 1},
			KeysToDelete:  []int{4},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Deletion with rebalancing (right-left)",
			KeysToInsert:  []int{2, 1, 4, 3},
			KeysToDelete:  []int{1},
			ExpectedOrder: []int{2, 3, 4},
			ExpectedRoot:  3,
		},
		{
			Name:          "Mixed operations",
			KeysToInsert:  []int{9, 5, 10, 0, 6, 11, -1, 1, 2},
			KeysToDelete:  []int{10, 11},
			ExpectedOrder: []int{-1, 0, 1, 2, 5, 6, 9},
			ExpectedRoot:  1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tc.KeysToInsert {
				if err := tree.Insert(key); err != nil {
					t.Fatalf("Insert(%d) failed: %v", key, err)
				}
				if err := tree.Check(); err != nil {
					t.Fatalf("after Insert(%d): %v", key, err)
				}
			}
			for _, key := range tc.KeysToDelete {
				if !tree.Delete(key) {
					t.Fatalf("Delete(%d) reported key as missing", key)
				}
				if err := tree.Check(); err != nil {
					t.Fatalf("after Delete(%d): %v", key, err)
				}
			}
			if got := tree.InOrder(); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("InOrder() = %v; want %v", got, tc.ExpectedOrder)
			}
			if root, ok := tree.Root(); !ok || root != tc.ExpectedRoot {
				t.Errorf("Root() = %d, %v; want %d", root, ok, tc.ExpectedRoot)
			}
			if tree.Len() != len(tc.ExpectedOrder) {
				t.Errorf("Len() = %d; want %d", tree.Len(), len(tc.ExpectedOrder))
			}
		})
	}
}

func TestRotationTriggers(t *testing.T) {
	testCases := []struct {
		Name     string
		Keys     []int
		Expected Stats
	}{
		{"right-right", []int{1, 2, 3}, Stats{RightRight: 1}},
		{"left-left", []int{3, 2, 1}, Stats{LeftLeft: 1}},
		{"left-right", []int{3, 1, 2}, Stats{LeftRight: 1}},
		{"right-left", []int{1, 3, 2}, Stats{RightLeft: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var seen []Rotation
			tree := New(WithRotationHook(func(r Rotation, pivot int) {
				seen = append(seen, r)
				if pivot != tc.Keys[0] {
					t.Errorf("rotation pivot = %d; want %d", pivot, tc.Keys[0])
				}
			}))
			for _, key := range tc.Keys {
				if err := tree.Insert(key); err != nil {
					t.Fatalf("Insert(%d) failed: %v", key, err)
				}
			}
			if got := tree.Stats(); got != tc.Expected {
				t.Errorf("Stats() = %+v; want %+v", got, tc.Expected)
			}
			if len(seen) != 1 {
				t.Errorf("hook called %d times; want 1", len(seen))
			}
			if root, _ := tree.Root(); root != 2 {
				t.Errorf("root = %d; want 2", root)
			}
			if tree.Height() != 2 {
				t.Errorf("Height() = %d; want 2", tree.Height())
			}
		})
	}
}

func TestDuplicateKeyRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "avl")
	defer teardown()

	tree := New[int]()
	for _, key := range []int{5, 3, 8, 1, 4} {
		if err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%d) failed: %v", key, err)
		}
	}
	before := tree.InOrder()
	stats := tree.Stats()

	for _, key := range []int{5, 1, 4} {
		err := tree.Insert(key)
		if !errors.Is(err, ErrDuplicateKey) {
			t.Fatalf("Insert(%d) = %v; want ErrDuplicateKey", key, err)
		}
		var dup *DuplicateKeyError[int]
		if !errors.As(err, &dup) || dup.Key != key {
			t.Errorf("expected *DuplicateKeyError carrying %d, got %v", key, err)
		}
	}
	if got := tree.InOrder(); !slices.Equal(got, before) {
		t.Errorf("tree changed after duplicate insert: %v; want %v", got, before)
	}
	if tree.Len() != len(before) {
		t.Errorf("Len() = %d; want %d", tree.Len(), len(before))
	}
	if tree.Stats() != stats {
		t.Errorf("duplicate insert applied rotations: %+v", tree.Stats())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDeleteMissingKeyIsNoOp(t *testing.T) {
	tree := New[int]()
	if tree.Delete(1) {
		t.Errorf("Delete on empty tree reported a removal")
	}
	for _, key := range []int{10, 20, 30, 40} {
		_ = tree.Insert(key)
	}
	var before, after strings.Builder
	_ = tree.Render(&before, true)
	if tree.Delete(25) {
		t.Errorf("Delete(25) reported a removal")
	}
	_ = tree.Render(&after, true)
	if before.String() != after.String() {
		t.Errorf("structure changed:\n%s\nvs\n%s", before.String(), after.String())
	}
	if tree.Len() != 4 {
		t.Errorf("Len() = %d; want 4", tree.Len())
	}
}

func TestRandomOperationsKeepInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	tree := New[int]()
	present := make(map[int]bool)

	for i := 0; i < 5000; i++ {
		key := rnd.Intn(500)
		if rnd.Intn(3) == 0 {
			removed := tree.Delete(key)
			if removed != present[key] {
				t.Fatalf("step %d: Delete(%d) = %v; want %v", i, key, removed, present[key])
			}
			delete(present, key)
		} else {
			err := tree.Insert(key)
			if present[key] != (err != nil) {
				t.Fatalf("step %d: Insert(%d) = %v with present=%v", i, key, err, present[key])
			}
			present[key] = true
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	want := make([]int, 0, len(present))
	for key := range present {
		want = append(want, key)
	}
	slices.Sort(want)
	if got := tree.InOrder(); !slices.Equal(got, want) {
		t.Errorf("InOrder() does not match the reference set")
	}
	// an AVL tree of n keys is at most ~1.44 log2(n+2) high
	if n := tree.Len(); n > 0 && tree.Height() > 2*bitLen(n) {
		t.Errorf("height %d too large for %d keys", tree.Height(), n)
	}
}

func TestDeleteAllKeys(t *testing.T) {
	tree := New[int]()
	keys := rand.New(rand.NewSource(3)).Perm(200)
	for _, key := range keys {
		_ = tree.Insert(key)
	}
	for i, key := range keys {
		if !tree.Delete(key) {
			t.Fatalf("Delete(%d) missing", key)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after %d deletions: %v", i+1, err)
		}
	}
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("expected empty tree, got len=%d height=%d", tree.Len(), tree.Height())
	}
}

func TestNewFuncCustomOrder(t *testing.T) {
	// descending order of strings
	tree := NewFunc(func(a, b string) int {
		switch {
		case a > b:
			return -1
		case a < b:
			return 1
		}
		return 0
	})
	for _, key := range []string{"banana", "apple", "cherry", "date"} {
		if err := tree.Insert(key); err != nil {
			t.Fatal(err)
		}
	}
	want := []string{"date", "cherry", "banana", "apple"}
	if got := tree.InOrder(); !slices.Equal(got, want) {
		t.Errorf("InOrder() = %v; want %v", got, want)
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestClearAndResetStats(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{1, 2, 3, 4, 5} {
		_ = tree.Insert(key)
	}
	if tree.Stats().Total() == 0 {
		t.Fatalf("expected rotations for ascending keys")
	}
	tree.ResetStats()
	tree.Clear()
	if tree.Stats().Total() != 0 || !tree.IsEmpty() || tree.Len() != 0 {
		t.Errorf("expected empty tree with zeroed stats")
	}
	if _, ok := tree.Root(); ok {
		t.Errorf("Root() reported a key for an empty tree")
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{2, 1, 3} {
		_ = tree.Insert(key)
	}
	tree.root.left.key = 5
	if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected order violation, got %v", err)
	}
	tree.root.left.key = 1
	tree.root.height = 7
	if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected height violation, got %v", err)
	}
	tree.root.height = 2
	tree.size = 4
	if err := tree.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected count violation, got %v", err)
	}
}

func bitLen(n int) int {
	l := 0
	for ; n > 0; n >>= 1 {
		l++
	}
	return l
}
