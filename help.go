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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **baltree %s**

A height-balanced (AVL) binary search tree with an interactive playground.
Every insert and delete keeps the balance factor of each node within [-1, 1]
by applying left-left, right-right, left-right and right-left rotations.

Built with Go %s

# 1. Commands
* **demo**: runs the reference scenario (inserts, deletes, range and depth query)
* **shell**: line based interpreter reading commands from standard input
* **explore**: full screen terminal UI with a live view of the tree
* **stress**: random insert/delete workload validating every invariant
* **dot**: prints a Graphviz description of a tree built from the given keys
* **settings**: shows the effective configuration from ~/.baltree.yaml

# 2. Interpreter commands
* insert <key>... / delete <key>...
* range <low> <high> / depth <key> / contains <key>
* inorder / show / dot / stats / check / clear / help

# 3. Tracing
Pass --trace to any command to log every rebalancing step to standard error.

# Please be aware
* dot --copy on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
