// Package nn builds neural networks out of scalar autodiff values.
//
// This package provides the glue between the engine and training loops:
//   - Module interface: anything that exposes trainable parameters
//   - Neuron: weighted sum with optional ReLU
//   - Layer: a slice of neurons sharing an input
//   - MLP: stacked layers, hidden layers nonlinear, output layer linear
//
// Every component builds its forward pass purely from the engine's public
// arithmetic and activation operations; parameters are plain leaf values
// exposed as a flat list for optimizers.
package nn

import "github.com/gograd-ml/gograd/internal/engine"

// Module is the base interface for all neural network components.
//
// Parameters returns every trainable leaf value owned by the module,
// including nested modules' parameters, in a stable order so optimizers
// can keep per-parameter state.
type Module interface {
	Parameters() []*engine.Value
}

// ZeroGrad resets the gradient of every parameter to zero.
//
// Gradients accumulate across backward passes; call this before each new
// pass. The engine never resets gradients itself.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.SetGrad(0)
	}
}
