package stream

import (
	"testing"
)

func TestPullOrder(t *testing.T) {
	s := NewStream[int]("keys")
	go func() {
		for i := 0; i < 100; i++ {
			s.Push(i)
		}
		s.Close()
	}()
	for i := 0; i < 100; i++ {
		msg, ok := s.Pull()
		if !ok || msg != i {
			t.Error("Expected", i, "got", msg, ok)
		}
	}
	if _, ok := s.Pull(); ok {
		t.Error("Expected closed stream")
	}
}

func TestPushAfterClose(t *testing.T) {
	s := NewStream[int]("keys")
	s.Close()
	s.Push(1)
	if _, ok := s.Pull(); ok {
		t.Error("Expected element pushed after close to be dropped")
	}
}
