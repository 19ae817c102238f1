// Package optim implements optimization algorithms over scalar
// parameters.
//
// Optimizers hold the flat parameter list produced by nn modules and
// update each leaf's data from the gradient accumulated on the node by
// the most recent backward pass.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for epoch := range epochs {
//	    loss := computeLoss(model, data)
//	    optimizer.ZeroGrad()
//	    loss.Backward()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies the gradient update to all parameters, reading each
	// parameter's accumulated gradient in place.
	Step()

	// ZeroGrad clears all parameter gradients. Call before each backward
	// pass: gradients accumulate and the engine never resets them.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64

	// SetLR updates the learning rate, for scheduling during training.
	SetLR(lr float64)
}
