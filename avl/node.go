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

// node is a single stored key. Each node exclusively owns its children.
type node[K any] struct {
	key    K
	left   *node[K]
	right  *node[K]
	height int // 1 for a leaf
}

func height[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor[K any](n *node[K]) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}

// updateHeight must run on every node of a mutation path before its balance
// factor is looked at.
func updateHeight[K any](n *node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

// minValueNode returns the leftmost node of a non-nil subtree.
func minValueNode[K any](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxValueNode[K any](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rotateRight lifts the left child of pivot and returns it as the new subtree head.
func rotateRight[K any](pivot *node[K]) *node[K] {
	head := pivot.left
	pivot.left = head.right
	head.right = pivot

	updateHeight(pivot)
	updateHeight(head)
	return head
}

// rotateLeft lifts the right child of pivot and returns it as the new subtree head.
func rotateLeft[K any](pivot *node[K]) *node[K] {
	head := pivot.right
	pivot.right = head.left
	head.left = pivot

	updateHeight(pivot)
	updateHeight(head)
	return head
}
