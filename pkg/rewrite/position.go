// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package rewrite

import (
	"slices"

	"github.com/consensys/go-symbolic/pkg/expr"
)

// position identifies a node within an expression tree by the path of argument
// indices leading to it from the root.
type position struct {
	path []int
	node expr.Expr
}

// Determine every position within a given tree in pre-order, starting with the
// root itself.
func positionsOf(root expr.Expr) []position {
	var positions []position
	//
	collectPositions(root, nil, &positions)
	//
	return positions
}

func collectPositions(node expr.Expr, path []int, positions *[]position) {
	*positions = append(*positions, position{path, node})
	//
	for i, arg := range node.Args() {
		// Clone to avoid aliasing between sibling paths
		collectPositions(arg, append(slices.Clone(path), i), positions)
	}
}

// Replace the node at a given path within a tree, rebuilding every node along
// the path through the simplifying constructors.
func replaceAt(root expr.Expr, path []int, node expr.Expr) expr.Expr {
	if len(path) == 0 {
		return node
	}
	//
	args := slices.Clone(root.Args())
	args[path[0]] = replaceAt(args[path[0]], path[1:], node)
	//
	return expr.Rebuild(root, args)
}
