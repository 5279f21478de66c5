package autodiff

import (
	"fmt"

	"github.com/born-ml/trace/internal/serialization"
)

// Snapshot captures the name, payload and gradient of each value.
// Graph links are not part of a snapshot.
func Snapshot(values ...*Value) []serialization.Entry {
	entries := make([]serialization.Entry, len(values))
	for i, v := range values {
		entries[i] = serialization.Entry{Name: v.name, Data: v.data, Grad: v.grad}
	}
	return entries
}

// Restore rebuilds leaf Values from snapshot entries, in order.
func (t *Tracer) Restore(entries []serialization.Entry) ([]*Value, error) {
	values := make([]*Value, len(entries))
	for i, e := range entries {
		v, err := t.NewValue(e.Data, e.Name)
		if err != nil {
			return nil, fmt.Errorf("restore %q: %w", e.Name, err)
		}
		v.grad = e.Grad
		values[i] = v
	}
	return values, nil
}
