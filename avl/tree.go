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

import "cmp"

// Tree is an AVL tree holding unique keys of type K.
//
// The zero value is not usable; create trees with New or NewFunc.
type Tree[K any] struct {
	root    *node[K]
	compare func(a, b K) int
	size    int
	stats   Stats
	hook    func(Rotation, K)
}

// New creates an empty tree for naturally ordered keys.
func New[K cmp.Ordered](opts ...Option[K]) *Tree[K] {
	return NewFunc(cmp.Compare[K], opts...)
}

// NewFunc creates an empty tree ordered by compare, which must return a negative
// number, zero or a positive number when a < b, a == b or a > b respectively, and
// must define a total order.
func NewFunc[K any](compare func(a, b K) int, opts ...Option[K]) *Tree[K] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	t := &Tree[K]{compare: compare}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *Tree[K]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the height of the tree: 0 when empty, 1 for a single key.
func (t *Tree[K]) Height() int {
	return height(t.root)
}

// Root returns the key at the root of the tree.
func (t *Tree[K]) Root() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}
	return t.root.key, true
}

// Stats returns the rebalancing steps applied since creation or the last ResetStats.
func (t *Tree[K]) Stats() Stats {
	return t.stats
}

// ResetStats zeroes the rebalancing counters.
func (t *Tree[K]) ResetStats() {
	t.stats = Stats{}
}

// Clear drops all keys.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds key to the tree. If key is already present the tree is left
// unchanged and a *DuplicateKeyError (matching ErrDuplicateKey) is returned.
func (t *Tree[K]) Insert(key K) error {
	root, err := t.insert(t.root, key)
	if err != nil {
		tracer().Debugf("avl: insert rejected, %v", err)
		return err
	}
	t.root = root
	t.size++
	return nil
}

func (t *Tree[K]) insert(n *node[K], key K) (*node[K], error) {
	if n == nil {
		return &node[K]{key: key, height: 1}, nil
	}

	c := t.compare(key, n.key)
	switch {
	case c < 0:
		child, err := t.insert(n.left, key)
		if err != nil {
			return n, err
		}
		n.left = child
	case c > 0:
		child, err := t.insert(n.right, key)
		if err != nil {
			return n, err
		}
		n.right = child
	default:
		return n, &DuplicateKeyError[K]{Key: key}
	}

	updateHeight(n)

	// the new key's position relative to the heavy child selects the case
	balance := balanceFactor(n)
	switch {
	case balance > 1 && t.compare(key, n.left.key) < 0:
		return t.rebalance(n, LeftLeft), nil
	case balance < -1 && t.compare(key, n.right.key) > 0:
		return t.rebalance(n, RightRight), nil
	case balance > 1 && t.compare(key, n.left.key) > 0:
		return t.rebalance(n, LeftRight), nil
	case balance < -1 && t.compare(key, n.right.key) < 0:
		return t.rebalance(n, RightLeft), nil
	}
	return n, nil
}

// Delete removes key from the tree and reports whether it was present.
// Deleting a missing key is a no-op.
func (t *Tree[K]) Delete(key K) bool {
	var removed bool
	t.root = t.delete(t.root, key, &removed)
	if removed {
		t.size--
	}
	return removed
}

func (t *Tree[K]) delete(n *node[K], key K, removed *bool) *node[K] {
	if n == nil {
		return nil
	}

	c := t.compare(key, n.key)
	switch {
	case c < 0:
		n.left = t.delete(n.left, key, removed)
	case c > 0:
		n.right = t.delete(n.right, key, removed)
	default:
		*removed = true
		if n.left == nil {
			return n.right
		}
		if n.right == nil {
			return n.left
		}
		// two children: take over the in-order successor's key and remove
		// the successor from the right subtree
		successor := minValueNode(n.right)
		n.key = successor.key
		n.right = t.delete(n.right, successor.key, removed)
	}

	updateHeight(n)

	// the deleted key is gone, so the heavy child's own balance selects the case
	balance := balanceFactor(n)
	switch {
	case balance > 1 && balanceFactor(n.left) >= 0:
		return t.rebalance(n, LeftLeft)
	case balance > 1 && balanceFactor(n.left) < 0:
		return t.rebalance(n, LeftRight)
	case balance < -1 && balanceFactor(n.right) <= 0:
		return t.rebalance(n, RightRight)
	case balance < -1 && balanceFactor(n.right) > 0:
		return t.rebalance(n, RightLeft)
	}
	return n
}

// rebalance applies case r at the unbalanced node n and returns the new subtree head.
func (t *Tree[K]) rebalance(n *node[K], r Rotation) *node[K] {
	tracer().Debugf("avl: %s rotation at %v", r, n.key)
	t.stats.record(r)
	if t.hook != nil {
		t.hook(r, n.key)
	}

	switch r {
	case LeftLeft:
		return rotateRight(n)
	case RightRight:
		return rotateLeft(n)
	case LeftRight:
		n.left = rotateLeft(n.left)
		return rotateRight(n)
	case RightLeft:
		n.right = rotateRight(n.right)
		return rotateLeft(n)
	}
	return n
}
