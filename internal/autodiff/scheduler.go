package autodiff

import "container/heap"

// pending is a node waiting for its backward rule to run. It holds strong
// references to the node's live outputs so their gradients stay readable
// for the rest of the pass.
type pending struct {
	node    *Node
	outputs []*Value
	seq     int // insertion order, breaks generation ties
}

// nodeQueue is a max-heap ordered by generation; among equal generations
// the most recently enqueued node comes first.
type nodeQueue []*pending

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].node.generation != q[j].node.generation {
		return q[i].node.generation > q[j].node.generation
	}
	return q[i].seq > q[j].seq
}

func (q nodeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *nodeQueue) Push(x any) { *q = append(*q, x.(*pending)) }

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// scheduler orders nodes for the backward sweep. A node is dequeued only
// after every node of higher generation, so all downstream contributions to
// its outputs have been accumulated before its own rule runs. Each node is
// enqueued at most once per pass.
type scheduler struct {
	queue nodeQueue
	seen  map[*Node]struct{}
	seq   int
}

func newScheduler() *scheduler {
	return &scheduler{seen: make(map[*Node]struct{})}
}

// push enqueues n unless it has already been enqueued during this pass.
func (s *scheduler) push(n *Node) {
	if _, ok := s.seen[n]; ok {
		return
	}
	s.seen[n] = struct{}{}
	s.seq++
	heap.Push(&s.queue, &pending{node: n, outputs: n.liveOutputs(), seq: s.seq})
}

// pop removes the node with the highest generation.
func (s *scheduler) pop() *pending {
	return heap.Pop(&s.queue).(*pending)
}

// empty reports whether no nodes remain.
func (s *scheduler) empty() bool {
	return s.queue.Len() == 0
}
