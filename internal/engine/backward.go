package engine

import "math"

// Backward computes ∂v/∂x for every value x reachable from v.
//
// Algorithm:
//  1. Build a topological order of the DAG rooted at v: every value
//     appears strictly after all of its operands, each exactly once even
//     when reachable through multiple paths.
//  2. Seed v.grad = 1 (∂v/∂v). Other gradients keep whatever they held at
//     call time; callers zero parameter gradients between independent
//     passes.
//  3. Walk the order in reverse (v first, leaves last) and apply each
//     value's local derivative rule once, adding scaled contributions
//     into operand gradients.
//
// The reverse-topological walk guarantees that by the time a value's rule
// runs, its own gradient is final: no downstream value will write to it
// again. That guarantee is the correctness core of the engine.
//
// The returned slice is the pre-reverse topological order, useful for
// diagnostics and rendering; v is its last element.
//
// Backward is not safe for concurrent use over overlapping graphs:
// gradient writes are cumulative, so one pass must complete before
// another begins on a graph sharing any node.
func (v *Value) Backward() []*Value {
	order := topoSort(v)
	v.grad = 1
	for i := len(order) - 1; i >= 0; i-- {
		order[i].stepBackward()
	}
	return order
}

// topoFrame tracks an in-progress DFS visit: the value and the index of
// the next operand to descend into.
type topoFrame struct {
	value *Value
	next  int
}

// topoSort builds the topological order iteratively. An explicit stack is
// used instead of recursion: graphs built from long chains of additions
// (an MLP forward pass sums one term at a time) produce dependency chains
// proportional to the parameter count, deep enough to threaten the
// goroutine stack.
func topoSort(root *Value) []*Value {
	visited := map[*Value]bool{root: true}
	order := make([]*Value, 0, 64)
	stack := []topoFrame{{value: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.value.prev) {
			child := top.value.prev[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, topoFrame{value: child})
			}
			continue
		}
		// All operands emitted; emit the value itself.
		order = append(order, top.value)
		stack = stack[:len(stack)-1]
	}
	return order
}

// stepBackward pushes this value's accumulated gradient onto its
// operands, applying the local derivative rule selected by the op tag.
//
// Contributions are added, never assigned: an operand shared by several
// downstream values collects one term from each.
func (v *Value) stepBackward() {
	switch v.op {
	case OpAdd:
		a, b := v.prev[0], v.prev[1]
		a.grad += v.grad
		b.grad += v.grad

	case OpMul:
		a, b := v.prev[0], v.prev[1]
		a.grad += b.data * v.grad
		b.grad += a.data * v.grad

	case OpPow:
		a := v.prev[0]
		a.grad += v.pow * math.Pow(a.data, v.pow-1) * v.grad

	case OpReLU:
		// Strict > 0: the gradient at exactly zero is 0.
		a := v.prev[0]
		if a.data > 0 {
			a.grad += v.grad
		}
	}
}
