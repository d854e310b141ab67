package sink

import (
	"context"
	"sync"
)

// Output is one icon captured by a MemorySink.
type Output struct {
	Name string // OutputName of the source
	Data []byte
}

// MemorySink keeps every written icon in memory.
type MemorySink struct {
	mu      sync.Mutex
	outputs []Output
}

// NewMemorySink creates an empty memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Write records data under OutputName(rel).
func (s *MemorySink) Write(ctx context.Context, rel string, data []byte) (string, error) {
	name := OutputName(rel)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.outputs = append(s.outputs, Output{Name: name, Data: data})
	return name, nil
}

// Outputs returns a copy of the recorded outputs in arrival order.
func (s *MemorySink) Outputs() []Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Output, len(s.outputs))
	copy(out, s.outputs)
	return out
}

// Discard accepts every icon without storing it.
var Discard Sink = discard{}

type discard struct{}

func (discard) Write(_ context.Context, rel string, _ []byte) (string, error) {
	return OutputName(rel), nil
}

var (
	_ Sink = (*MemorySink)(nil)
	_ Sink = discard{}
)
