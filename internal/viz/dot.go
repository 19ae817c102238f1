// Package viz renders finished expression graphs to Graphviz DOT.
//
// The renderer is a read-only consumer of the engine's public accessors:
// it draws one record node per value (label, data, gradient), one
// operation box per derived value, and edges from each operand to the
// operation box preceding its consumer. It never mutates the graph and is
// typically called after a backward pass so gradients are populated.
package viz

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/gograd-ml/gograd/internal/engine"
)

// node is a DOT-renderable graph node carrying fixed attributes.
type node struct {
	id    int64
	attrs []encoding.Attribute
}

// ID implements graph.Node.
func (n *node) ID() int64 { return n.id }

// Attributes implements encoding.Attributer.
func (n *node) Attributes() []encoding.Attribute { return n.attrs }

// builder accumulates graph state while walking the DAG.
type builder struct {
	g      *simple.DirectedGraph
	nodes  map[*engine.Value]*node
	nextID int64
}

// Graph builds a directed gonum graph mirroring the expression DAG
// rooted at root. Value nodes render as records; derived values get an
// extra operation box between their operands and themselves.
func Graph(root *engine.Value) *simple.DirectedGraph {
	b := &builder{
		g:     simple.NewDirectedGraph(),
		nodes: make(map[*engine.Value]*node),
	}

	visited := make(map[*engine.Value]bool)
	stack := []*engine.Value{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true

		vn := b.valueNode(v)
		if v.Operation() == engine.OpNone {
			continue
		}

		ob := b.opBox(v)
		b.g.SetEdge(b.g.NewEdge(ob, vn))
		for _, operand := range v.Operands() {
			b.g.SetEdge(b.g.NewEdge(b.valueNode(operand), ob))
			stack = append(stack, operand)
		}
	}
	return b.g
}

// valueNode returns the record node for v, creating it on first use.
func (b *builder) valueNode(v *engine.Value) *node {
	if n, ok := b.nodes[v]; ok {
		return n
	}
	n := b.newNode(
		encoding.Attribute{Key: "shape", Value: "record"},
		encoding.Attribute{
			Key:   "label",
			Value: fmt.Sprintf("{ %s | data %.4f | grad %.4f }", v.Label(), v.Data(), v.Grad()),
		},
	)
	b.nodes[v] = n
	return n
}

// opBox returns a fresh operation box for a derived value.
func (b *builder) opBox(v *engine.Value) *node {
	return b.newNode(encoding.Attribute{Key: "label", Value: opLabel(v)})
}

func (b *builder) newNode(attrs ...encoding.Attribute) *node {
	n := &node{id: b.nextID, attrs: attrs}
	b.nextID++
	b.g.AddNode(n)
	return n
}

// opLabel formats the operation tag; Pow includes its exponent, matching
// the way the tag carries the constant.
func opLabel(v *engine.Value) string {
	if v.Operation() == engine.OpPow {
		return fmt.Sprintf("**%g", v.Exponent())
	}
	return v.Operation().String()
}

// Marshal renders the expression graph rooted at root as Graphviz DOT.
func Marshal(root *engine.Value) ([]byte, error) {
	return dot.Marshal(Graph(root), "gograd", "", "  ")
}

// WriteDOT writes the DOT rendering of root to w.
func WriteDOT(w io.Writer, root *engine.Value) error {
	b, err := Marshal(root)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
