package autodiff

import (
	"weak"

	"github.com/born-ml/trace/internal/autodiff/ops"
	"github.com/born-ml/trace/internal/tensor"
)

// Node records one evaluated operation: the operation kind, the input Values
// it consumed and the Values it produced.
//
// Ownership runs one way. A Value strongly references its creator Node, and
// a Node strongly references its inputs, so holding the final output keeps
// the whole history alive. A Node refers to its outputs only through weak
// pointers; once every output is unreachable the Node and, transitively, any
// history nothing else uses become collectable.
type Node struct {
	op         ops.Operation
	inputs     []*Value
	outputs    []weak.Pointer[Value]
	outputMeta []outputMeta
	generation int
}

// outputMeta remembers enough about an output to synthesize a zero gradient
// for it after the output itself has been collected.
type outputMeta struct {
	shape tensor.Shape
	dtype tensor.DataType
}

// newNode links outputs to a fresh node. The generation is computed before
// any output is linked.
func newNode(op ops.Operation, inputs, outputs []*Value) *Node {
	n := &Node{
		op:         op,
		inputs:     inputs,
		outputs:    make([]weak.Pointer[Value], len(outputs)),
		outputMeta: make([]outputMeta, len(outputs)),
	}
	for _, in := range inputs {
		n.generation = max(n.generation, in.generation)
	}
	for i, out := range outputs {
		out.SetCreator(n)
		n.outputs[i] = weak.Make(out)
		n.outputMeta[i] = outputMeta{shape: out.data.Shape(), dtype: out.data.DType()}
	}
	return n
}

// Op returns the operation kind.
func (n *Node) Op() ops.Operation {
	return n.op
}

// Inputs returns the input Values in call order.
func (n *Node) Inputs() []*Value {
	return append([]*Value(nil), n.inputs...)
}

// NumOutputs returns how many Values the operation produced.
func (n *Node) NumOutputs() int {
	return len(n.outputs)
}

// Output returns output i, or nil if it has been collected.
func (n *Node) Output(i int) *Value {
	return n.outputs[i].Value()
}

// Generation returns the node's depth: the maximum generation of its inputs.
func (n *Node) Generation() int {
	return n.generation
}

// liveOutputs upgrades every weak output. Entries are nil for outputs that
// have been collected.
func (n *Node) liveOutputs() []*Value {
	outs := make([]*Value, len(n.outputs))
	for i, w := range n.outputs {
		outs[i] = w.Value()
	}
	return outs
}

// outputGrads gathers one gradient per output, substituting zeros for
// outputs that are gone or that no gradient reached.
func (n *Node) outputGrads(outs []*Value) []*tensor.RawTensor {
	gys := make([]*tensor.RawTensor, len(outs))
	for i, out := range outs {
		if out != nil && out.grad != nil {
			gys[i] = out.grad
			continue
		}
		meta := n.outputMeta[i]
		gys[i] = tensor.ZerosLike(meta.shape, meta.dtype)
	}
	return gys
}

// inputPayloads returns the forward-time payloads of the inputs.
func (n *Node) inputPayloads() []*tensor.RawTensor {
	xs := make([]*tensor.RawTensor, len(n.inputs))
	for i, in := range n.inputs {
		xs[i] = in.data
	}
	return xs
}
