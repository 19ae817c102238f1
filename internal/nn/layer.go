package nn

import (
	"fmt"
	"strings"

	"github.com/gograd-ml/gograd/internal/engine"
)

// Layer is a fully connected layer of neurons sharing an input.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer mapping nin inputs to nout outputs. All
// neurons share the nonlin setting.
func NewLayer(nin, nout int, nonlin bool) *Layer {
	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, nonlin)
	}
	return &Layer{neurons: neurons}
}

// Forward applies every neuron to the shared input.
func (l *Layer) Forward(x []*engine.Value) []*engine.Value {
	out := make([]*engine.Value, len(l.neurons))
	for i, n := range l.neurons {
		out[i] = n.Forward(x)
	}
	return out
}

// Parameters returns the parameters of all neurons, in neuron order.
func (l *Layer) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return l.neurons
}

// String describes the layer, e.g. "Layer of [ReLUNeuron(2), ReLUNeuron(2)]".
func (l *Layer) String() string {
	descs := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		descs[i] = n.String()
	}
	return fmt.Sprintf("Layer of [%s]", strings.Join(descs, ", "))
}
