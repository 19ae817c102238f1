package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gograd-ml/gograd/internal/engine"
)

// TestSGD_DefaultLR tests the zero-value config default.
func TestSGD_DefaultLR(t *testing.T) {
	sgd := NewSGD(nil, SGDConfig{})
	assert.Equal(t, 0.01, sgd.GetLR())
}

// TestSGD_Step tests a single plain update: param -= lr * grad.
func TestSGD_Step(t *testing.T) {
	p := engine.New(1.0)
	p.SetGrad(0.5)

	sgd := NewSGD([]*engine.Value{p}, SGDConfig{LR: 0.1})
	sgd.Step()

	assert.InDelta(t, 0.95, p.Data(), 1e-12)
}

// TestSGD_ZeroGrad tests gradient clearing.
func TestSGD_ZeroGrad(t *testing.T) {
	p := engine.New(1.0)
	p.SetGrad(2.0)

	sgd := NewSGD([]*engine.Value{p}, SGDConfig{LR: 0.1})
	sgd.ZeroGrad()

	assert.Equal(t, 0.0, p.Grad())
}

// TestSGD_Momentum tests the velocity accumulation across two steps with
// a constant gradient.
func TestSGD_Momentum(t *testing.T) {
	p := engine.New(0.0)

	sgd := NewSGD([]*engine.Value{p}, SGDConfig{LR: 1.0, Momentum: 0.5})

	// Step 1: velocity = 1.0, param = -1.0.
	p.SetGrad(1.0)
	sgd.Step()
	assert.InDelta(t, -1.0, p.Data(), 1e-12)

	// Step 2: velocity = 0.5*1.0 + 1.0 = 1.5, param = -2.5.
	p.SetGrad(1.0)
	sgd.Step()
	assert.InDelta(t, -2.5, p.Data(), 1e-12)
}

// TestSGD_SetLR tests learning rate scheduling.
func TestSGD_SetLR(t *testing.T) {
	sgd := NewSGD(nil, SGDConfig{LR: 0.1})
	sgd.SetLR(0.05)
	assert.Equal(t, 0.05, sgd.GetLR())
}

// TestSGD_MinimizesQuadratic tests convergence on f(x) = (x - 3)².
func TestSGD_MinimizesQuadratic(t *testing.T) {
	x := engine.New(10.0)
	sgd := NewSGD([]*engine.Value{x}, SGDConfig{LR: 0.1})

	for i := 0; i < 100; i++ {
		sgd.ZeroGrad()
		loss := x.Sub(engine.New(3)).Pow(2)
		loss.Backward()
		sgd.Step()
	}

	require.InDelta(t, 3.0, x.Data(), 1e-6)
}

// TestSGD_ImplementsOptimizer tests interface satisfaction.
func TestSGD_ImplementsOptimizer(t *testing.T) {
	var _ Optimizer = NewSGD(nil, SGDConfig{})
}
