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

// Contains reports whether key is stored in the tree.
func (t *Tree[K]) Contains(key K) bool {
	_, found := t.Depth(key)
	return found
}

// Depth returns the level of key, counted from 0 at the root, and whether key
// was found.
func (t *Tree[K]) Depth(key K) (int, bool) {
	level := 0
	for n := t.root; n != nil; level++ {
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return level, true
		}
	}
	return -1, false
}

// DepthOf returns the level of key, counted from 0 at the root, or -1 if key
// is not in the tree.
func (t *Tree[K]) DepthOf(key K) int {
	level, _ := t.Depth(key)
	return level
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return minValueNode(t.root).key, true
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return maxValueNode(t.root).key, true
}

// KeysInRange returns all keys k with low <= k <= high in ascending order.
// Subtrees lying entirely outside the range are not visited. If low > high the
// result is empty.
func (t *Tree[K]) KeysInRange(low, high K) []K {
	var keys []K
	t.collectRange(t.root, low, high, &keys)
	return keys
}

func (t *Tree[K]) collectRange(n *node[K], low, high K, keys *[]K) {
	if n == nil {
		return
	}
	if t.compare(low, n.key) < 0 {
		t.collectRange(n.left, low, high, keys)
	}
	if t.compare(low, n.key) <= 0 && t.compare(n.key, high) <= 0 {
		*keys = append(*keys, n.key)
	}
	if t.compare(high, n.key) > 0 {
		t.collectRange(n.right, low, high, keys)
	}
}

// InOrder returns all keys in ascending order.
func (t *Tree[K]) InOrder() []K {
	keys := make([]K, 0, t.size)
	t.Walk(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Walk calls fn for every key in ascending order.
// Iteration stops early if fn returns false.
func (t *Tree[K]) Walk(fn func(key K) bool) {
	if fn == nil {
		return
	}
	walk(t.root, fn)
}

func walk[K any](n *node[K], fn func(K) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, fn) && fn(n.key) && walk(n.right, fn)
}
