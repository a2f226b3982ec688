package services

import (
	"context"
	"sync"
)

// Submission is the idle -> submitting -> idle machine every form goes
// through. A key (session plus action) already in flight rejects a
// second submit with ErrBusy; different keys never wait on each other.
type Submission struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewSubmission() *Submission {
	return &Submission{inFlight: map[string]struct{}{}}
}

func (s *Submission) Run(ctx context.Context, key string, op func(context.Context) error) error {
	if !s.begin(key) {
		return ErrBusy
	}
	defer s.end(key)
	return op(ctx)
}

func (s *Submission) Busy(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.inFlight[key]
	return ok
}

func (s *Submission) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[key]; ok {
		return false
	}
	s.inFlight[key] = struct{}{}
	return true
}

func (s *Submission) end(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}
