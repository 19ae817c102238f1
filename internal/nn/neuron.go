package nn

import (
	"fmt"
	"math/rand"

	"github.com/gograd-ml/gograd/internal/engine"
)

// Neuron computes a weighted sum of its inputs plus a bias, optionally
// followed by ReLU.
//
// Weights are initialized uniformly in [-1, 1]; the bias starts at 0.
//
// Example:
//
//	n := nn.NewNeuron(2, true)
//	out := n.Forward([]*engine.Value{engine.New(0.5), engine.New(-1.2)})
type Neuron struct {
	w      []*engine.Value
	b      *engine.Value
	nonlin bool
}

// NewNeuron creates a neuron with nin inputs. When nonlin is true the
// activation is ReLU; otherwise the raw affine sum is returned.
func NewNeuron(nin int, nonlin bool) *Neuron {
	w := make([]*engine.Value, nin)
	for i := range w {
		//nolint:gosec // math/rand for weight initialization (not security-critical)
		w[i] = engine.New(rand.Float64()*2 - 1)
	}
	return &Neuron{
		w:      w,
		b:      engine.New(0),
		nonlin: nonlin,
	}
}

// Forward computes relu(w·x + b), or the raw sum for linear neurons.
//
// Panics if the input length does not match the neuron's fan-in.
func (n *Neuron) Forward(x []*engine.Value) *engine.Value {
	if len(x) != len(n.w) {
		panic(fmt.Sprintf("nn: Neuron.Forward: expected %d inputs, got %d", len(n.w), len(x)))
	}

	act := n.b
	for i, wi := range n.w {
		act = act.Add(wi.Mul(x[i]))
	}

	if n.nonlin {
		return act.ReLU()
	}
	return act
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*engine.Value {
	params := make([]*engine.Value, 0, len(n.w)+1)
	params = append(params, n.w...)
	return append(params, n.b)
}

// Weights returns the weight values.
func (n *Neuron) Weights() []*engine.Value {
	return n.w
}

// Bias returns the bias value.
func (n *Neuron) Bias() *engine.Value {
	return n.b
}

// String describes the neuron, e.g. "ReLUNeuron(3)".
func (n *Neuron) String() string {
	if n.nonlin {
		return fmt.Sprintf("ReLUNeuron(%d)", len(n.w))
	}
	return fmt.Sprintf("LinearNeuron(%d)", len(n.w))
}
