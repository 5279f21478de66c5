package cpu

import "github.com/born-ml/trace/internal/tensor"

// broadcastIndex maps a flat index of a broadcast result to the flat index
// of the operand element it reads from.
//
// Example:
//
//	operand [3, 1], result [3, 4]
//	result index 5 = (1, 1) -> operand index 1 = (1, 0)
type broadcastIndex struct {
	outStrides []int
	inStrides  []int // zero on padded and size-1 dimensions
}

func newBroadcastIndex(in, out tensor.Shape) broadcastIndex {
	offset := len(out) - len(in)
	own := in.ComputeStrides()

	inStrides := make([]int, len(out))
	for d := offset; d < len(out); d++ {
		if in[d-offset] != 1 {
			inStrides[d] = own[d-offset]
		}
	}
	return broadcastIndex{outStrides: out.ComputeStrides(), inStrides: inStrides}
}

// at returns the operand index for result index i.
func (b broadcastIndex) at(i int) int {
	idx := 0
	for d, s := range b.outStrides {
		idx += (i / s) * b.inStrides[d]
		i %= s
	}
	return idx
}
