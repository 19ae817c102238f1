// Copyright 2025 The GoGrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks over scalar autodiff
// values.
//
// # Basic Usage
//
//	import (
//	    "github.com/gograd-ml/gograd/engine"
//	    "github.com/gograd-ml/gograd/nn"
//	)
//
//	model := nn.NewMLP(2, []int{16, 16, 1})
//	out := model.Forward([]*engine.Value{engine.New(0.5), engine.New(-1.2)})
//	out[0].Backward()
//	nn.ZeroGrad(model)
package nn

import "github.com/gograd-ml/gograd/internal/nn"

// Module is the base interface for all neural network components.
type Module = nn.Module

// Neuron computes a weighted sum of its inputs plus a bias, optionally
// followed by ReLU.
type Neuron = nn.Neuron

// Layer is a fully connected layer of neurons sharing an input.
type Layer = nn.Layer

// MLP is a multi-layer perceptron with ReLU hidden layers and a linear
// output layer.
type MLP = nn.MLP

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, nonlin bool) *Neuron {
	return nn.NewNeuron(nin, nonlin)
}

// NewLayer creates a layer mapping nin inputs to nout outputs.
func NewLayer(nin, nout int, nonlin bool) *Layer {
	return nn.NewLayer(nin, nout, nonlin)
}

// NewMLP creates an MLP with nin inputs and one layer per entry of nouts.
func NewMLP(nin int, nouts []int) *MLP {
	return nn.NewMLP(nin, nouts)
}

// ZeroGrad resets the gradient of every parameter of m to zero.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}
