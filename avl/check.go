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

import "fmt"

// Check validates the structural invariants of the tree: stored heights,
// balance factors, strict key order and the key count. It walks every node and
// is meant for tests and diagnostics.
func (t *Tree[K]) Check() error {
	count, err := t.checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: tree counts %d keys, found %d nodes", ErrCorrupt, t.size, count)
	}
	return nil
}

// checkNode validates the subtree at n, whose keys must lie strictly between
// lower and upper (nil meaning unbounded), and returns its node count.
func (t *Tree[K]) checkNode(n *node[K], lower, upper *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lower != nil && t.compare(*lower, n.key) >= 0 {
		return 0, fmt.Errorf("%w: key %v not greater than %v", ErrCorrupt, n.key, *lower)
	}
	if upper != nil && t.compare(n.key, *upper) >= 0 {
		return 0, fmt.Errorf("%w: key %v not less than %v", ErrCorrupt, n.key, *upper)
	}
	left, err := t.checkNode(n.left, lower, &n.key)
	if err != nil {
		return 0, err
	}
	right, err := t.checkNode(n.right, &n.key, upper)
	if err != nil {
		return 0, err
	}
	if want := max(height(n.left), height(n.right)) + 1; n.height != want {
		return 0, fmt.Errorf("%w: node %v has height %d, expected %d", ErrCorrupt, n.key, n.height, want)
	}
	if bf := balanceFactor(n); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: node %v has balance factor %d", ErrCorrupt, n.key, bf)
	}
	return left + right + 1, nil
}
