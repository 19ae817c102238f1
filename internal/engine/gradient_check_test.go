package engine_test

import (
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/gograd-ml/gograd/internal/engine"
)

// central is the finite-difference configuration shared by the checks.
// Central differences give O(h²) error, good for ~1e-6 agreement.
var central = &fd.Settings{Formula: fd.Central}

// checkGradient compares the engine's gradient of build(x) at testPoint
// against a finite-difference estimate of f.
func checkGradient(t *testing.T, build func(x *engine.Value) *engine.Value, f func(float64) float64, testPoint float64) {
	t.Helper()

	x := engine.New(testPoint)
	y := build(x)
	y.Backward()

	engineGrad := x.Grad()
	numericalGrad := fd.Derivative(f, testPoint, central)

	if !scalar.EqualWithinAbs(y.Data(), f(testPoint), 1e-9) {
		t.Errorf("forward value = %v, want %v", y.Data(), f(testPoint))
	}
	if !scalar.EqualWithinAbs(engineGrad, numericalGrad, 1e-6) {
		t.Errorf("engine gradient (%v) differs from numerical gradient (%v) by %e",
			engineGrad, numericalGrad, engineGrad-numericalGrad)
	}
}

// TestGradientCheck_Square tests f(x) = x².
func TestGradientCheck_Square(t *testing.T) {
	checkGradient(t,
		func(x *engine.Value) *engine.Value { return x.Mul(x) },
		func(x float64) float64 { return x * x },
		3.0)
}

// TestGradientCheck_Composite tests f(x) = (x + 2) * 3.
func TestGradientCheck_Composite(t *testing.T) {
	checkGradient(t,
		func(x *engine.Value) *engine.Value {
			return x.Add(engine.New(2)).Mul(engine.New(3))
		},
		func(x float64) float64 { return (x + 2) * 3 },
		5.0)
}

// TestGradientCheck_Polynomial tests f(x) = x³ - 2x² + x.
func TestGradientCheck_Polynomial(t *testing.T) {
	checkGradient(t,
		func(x *engine.Value) *engine.Value {
			return x.Pow(3).Sub(x.Pow(2).Mul(engine.New(2))).Add(x)
		},
		func(x float64) float64 { return x*x*x - 2*x*x + x },
		2.0)
}

// TestGradientCheck_Reciprocal tests f(x) = 1/x.
func TestGradientCheck_Reciprocal(t *testing.T) {
	checkGradient(t,
		func(x *engine.Value) *engine.Value { return engine.New(1).Div(x) },
		func(x float64) float64 { return 1 / x },
		2.0)
}

// TestGradientCheck_ReLU tests relu away from the non-differentiable
// point; at x = 0 the finite-difference estimate is meaningless.
func TestGradientCheck_ReLU(t *testing.T) {
	relu := func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	}

	tests := []struct {
		name      string
		testPoint float64
	}{
		{"positive input", 2.0},
		{"negative input", -2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkGradient(t,
				func(x *engine.Value) *engine.Value { return x.ReLU() },
				relu,
				tt.testPoint)
		})
	}
}

// TestGradientCheck_SharedSubexpression tests f(x) = x*x + x, where x
// feeds the graph through three paths.
func TestGradientCheck_SharedSubexpression(t *testing.T) {
	checkGradient(t,
		func(x *engine.Value) *engine.Value { return x.Mul(x).Add(x) },
		func(x float64) float64 { return x*x + x },
		-1.5)
}

// TestGradientCheck_MixedExpression tests a deeper expression exercising
// every primitive: f(x) = relu(x² - 4/x) * (x + 1).
func TestGradientCheck_MixedExpression(t *testing.T) {
	checkGradient(t,
		func(x *engine.Value) *engine.Value {
			inner := x.Pow(2).Sub(engine.New(4).Div(x))
			return inner.ReLU().Mul(x.Add(engine.New(1)))
		},
		func(x float64) float64 {
			inner := x*x - 4/x
			if inner < 0 {
				inner = 0
			}
			return inner * (x + 1)
		},
		3.0)
}
