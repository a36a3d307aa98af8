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

/*
Package avl provides an ordered set of unique keys backed by an AVL tree.

Every node stores the height of its subtree and after each Insert or Delete the
heights of a node's two subtrees differ by at most one, for every node. This keeps
lookups, insertions and deletions at O(log n):

	Space  O(n)
	Search O(log n)
	Insert O(log n)
	Delete O(log n)
	Range  O(log n + k)

Mutations are recursive: each call rebuilds its subtree and returns the (possibly
rotated) subtree head, which the caller re-links. Nodes carry no parent pointers
and are never handed out to clients.

A Tree is not safe for concurrent use. Callers sharing a tree between goroutines
must guard it with a single lock.

Rebalancing steps are traced at debug level to the tracer selected by key "avl"
(see github.com/npillmayer/schuko/tracing).
*/
package avl

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("avl")
}
