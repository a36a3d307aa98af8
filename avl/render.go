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
	"fmt"
	"io"
	"strings"
)

// Render writes the tree sideways to w, right subtrees above their parent and
// left subtrees below. With heights set, every key is followed by its stored
// subtree height.
func (t *Tree[K]) Render(w io.Writer, heights bool) error {
	if t.root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	var b strings.Builder
	renderNode(&b, t.root, "", "", heights)
	_, err := io.WriteString(w, b.String())
	return err
}

func renderNode[K any](b *strings.Builder, n *node[K], prefix, branch string, heights bool) {
	above, below := prefix+"│   ", prefix+"    "
	switch branch {
	case "":
		above, below = prefix, prefix
	case "┌── ":
		above = prefix + "    "
		below = prefix + "│   "
	}
	if n.right != nil {
		renderNode(b, n.right, above, "┌── ", heights)
	}
	b.WriteString(prefix)
	b.WriteString(branch)
	if heights {
		fmt.Fprintf(b, "%v (h%d)\n", n.key, n.height)
	} else {
		fmt.Fprintf(b, "%v\n", n.key)
	}
	if n.left != nil {
		renderNode(b, n.left, below, "└── ", heights)
	}
}

// WriteDot writes the tree structure in Graphviz DOT format to w. Missing
// children of inner nodes are drawn as small empty circles to keep the left/right
// layout readable.
func (t *Tree[K]) WriteDot(w io.Writer) error {
	var nodes, edges strings.Builder
	ids := make(map[*node[K]]int)
	nextID := 1
	id := func(n *node[K]) int {
		if i, ok := ids[n]; ok {
			return i
		}
		ids[n] = nextID
		nextID++
		return ids[n]
	}
	var visit func(n *node[K])
	visit = func(n *node[K]) {
		nid := id(n)
		fmt.Fprintf(&nodes, "\t\"%d\" [label=\"%v\\nh=%d\"%s];\n", nid, n.key, n.height, dotStyle(n))
		if n.left == nil && n.right == nil {
			return
		}
		for _, child := range []*node[K]{n.left, n.right} {
			if child == nil {
				nilID := nid + 100000
				fmt.Fprintf(&nodes, "\t\"%d\" %s;\n", nilID, dotEmptyNode)
				fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\";\n", nid, nilID)
				continue
			}
			fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\";\n", nid, id(child))
			visit(child)
		}
	}
	if t.root != nil {
		visit(t.root)
	}

	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	b.WriteString(nodes.String())
	b.WriteString(edges.String())
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}

const dotEmptyNode = "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"

func dotStyle[K any](n *node[K]) string {
	s := ",style=filled,shape=circle,color=black"
	switch balanceFactor(n) {
	case 0:
		s += ",fillcolor=\"#a3d7e4\""
	default:
		s += ",fillcolor=\"#ffccaa\""
	}
	return s
}
