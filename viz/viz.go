// Copyright 2025 The GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package viz renders expression graphs to Graphviz DOT.
//
// The renderer reads finished graph state only (data, gradients,
// operation tags, edges); it never mutates the graph. Render after a
// backward pass to include populated gradients.
package viz

import (
	"io"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/gograd-ml/gograd/internal/engine"
	"github.com/gograd-ml/gograd/internal/viz"
)

// Graph builds a directed gonum graph mirroring the expression DAG
// rooted at root.
func Graph(root *engine.Value) *simple.DirectedGraph {
	return viz.Graph(root)
}

// Marshal renders the expression graph rooted at root as Graphviz DOT.
func Marshal(root *engine.Value) ([]byte, error) {
	return viz.Marshal(root)
}

// WriteDOT writes the DOT rendering of root to w.
func WriteDOT(w io.Writer, root *engine.Value) error {
	return viz.WriteDOT(w, root)
}
