package nn

import (
	"fmt"
	"strings"

	"github.com/gograd-ml/gograd/internal/engine"
)

// MLP is a multi-layer perceptron: stacked fully connected layers where
// every hidden layer applies ReLU and the output layer is linear.
//
// Example:
//
//	model := nn.NewMLP(2, []int{16, 16, 1}) // 2 inputs, two hidden layers, 1 output
//	out := model.Forward(inputs)
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
// The last layer is linear; all earlier layers are ReLU.
func NewMLP(nin int, nouts []int) *MLP {
	sizes := append([]int{nin}, nouts...)
	layers := make([]*Layer, len(nouts))
	for i := range layers {
		nonlin := i != len(nouts)-1
		layers[i] = NewLayer(sizes[i], sizes[i+1], nonlin)
	}
	return &MLP{layers: layers}
}

// Forward runs the input through every layer in order.
func (m *MLP) Forward(x []*engine.Value) []*engine.Value {
	for _, layer := range m.layers {
		x = layer.Forward(x)
	}
	return x
}

// Parameters returns the parameters of all layers, in layer order.
func (m *MLP) Parameters() []*engine.Value {
	var params []*engine.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Layers returns the stacked layers.
func (m *MLP) Layers() []*Layer {
	return m.layers
}

// String describes the network, e.g. "MLP of [Layer of [...], ...]".
func (m *MLP) String() string {
	descs := make([]string, len(m.layers))
	for i, l := range m.layers {
		descs[i] = l.String()
	}
	return fmt.Sprintf("MLP of [%s]", strings.Join(descs, ", "))
}
