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

// Rotation names one of the four AVL rebalancing cases.
type Rotation uint8

const (
	// LeftLeft is a single right rotation at the unbalanced node.
	LeftLeft Rotation = iota
	// RightRight is a single left rotation at the unbalanced node.
	RightRight
	// LeftRight rotates the left child left, then the node right.
	LeftRight
	// RightLeft rotates the right child right, then the node left.
	RightLeft
)

func (r Rotation) String() string {
	switch r {
	case LeftLeft:
		return "left-left"
	case RightRight:
		return "right-right"
	case LeftRight:
		return "left-right"
	case RightLeft:
		return "right-left"
	}
	return fmt.Sprintf("rotation(%d)", uint8(r))
}

// Stats counts the rebalancing cases a tree has applied. A double rotation
// (LeftRight, RightLeft) counts once.
type Stats struct {
	LeftLeft   int
	RightRight int
	LeftRight  int
	RightLeft  int
}

// Total returns the number of rebalancing steps of all kinds.
func (s Stats) Total() int {
	return s.LeftLeft + s.RightRight + s.LeftRight + s.RightLeft
}

func (s *Stats) record(r Rotation) {
	switch r {
	case LeftLeft:
		s.LeftLeft++
	case RightRight:
		s.RightRight++
	case LeftRight:
		s.LeftRight++
	case RightLeft:
		s.RightLeft++
	}
}

// Option configures a Tree at construction time.
type Option[K any] func(*Tree[K])

// WithRotationHook registers fn to be called for every rebalancing step, with
// the key of the node that was found out of balance. fn runs synchronously
// inside Insert or Delete and must not touch the tree.
func WithRotationHook[K any](fn func(r Rotation, pivot K)) Option[K] {
	return func(t *Tree[K]) {
		t.hook = fn
	}
}
