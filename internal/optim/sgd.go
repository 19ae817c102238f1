package optim

import "github.com/gograd-ml/gograd/internal/engine"

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*engine.Value
	lr         float64
	momentum   float64
	velocities map[*engine.Value]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // learning rate (default: 0.01)
	Momentum float64 // momentum factor (default: 0.0, range [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameter leaves.
func NewSGD(params []*engine.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*engine.Value]float64),
	}
}

// Step performs a single optimization step, reading each parameter's
// accumulated gradient and writing the updated data back to the leaf.
func (s *SGD) Step() {
	for _, p := range s.params {
		g := p.Grad()
		if s.momentum != 0 {
			v := s.momentum*s.velocities[p] + g
			s.velocities[p] = v
			g = v
		}
		p.SetData(p.Data() - s.lr*g)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.SetGrad(0)
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
