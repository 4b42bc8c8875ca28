package geo

import "sync"

// SearchSession discards stale geocoding responses. Each new request takes
// a generation; a response is applied only if no newer request has been
// issued since. Without it a slow response can overwrite fresher input.
type SearchSession struct {
	mu  sync.Mutex
	gen uint64
}

// Begin registers a new request and returns its generation.
func (s *SearchSession) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

// Accept reports whether a response issued under gen is still current.
func (s *SearchSession) Accept(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}
