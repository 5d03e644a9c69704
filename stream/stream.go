package stream

import (
	"sync"
)

// Stream is an unbounded queue between one producer goroutine and a blocking consumer.
type Stream[T any] struct {
	name     string
	elements []T
	closed   bool
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Name() string {
	return s.name
}

// Push drops elements once the stream is closed.
func (s *Stream[T]) Push(msg T) {
	s.Cond.L.Lock()
	if !s.closed {
		s.elements = append(s.elements, msg)
		s.Cond.Signal()
	}
	s.Cond.L.Unlock()
}

// Pull blocks until an element arrives. It reports false once the stream is closed and drained.
func (s *Stream[T]) Pull() (T, bool) {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	for len(s.elements) == 0 {
		if s.closed {
			var zero T
			return zero, false
		}
		s.Cond.Wait()
	}
	msg := s.elements[0]
	s.elements = s.elements[1:]
	return msg, true
}

func (s *Stream[T]) Close() {
	s.Cond.L.Lock()
	s.closed = true
	s.Cond.Broadcast()
	s.Cond.L.Unlock()
}
