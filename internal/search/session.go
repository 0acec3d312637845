package search

import "sync"

// Session owns the query text and the current display for one UI run.
// Lookup results are tagged with a sequence number so a slow, older lookup
// cannot overwrite the result of a newer one.
type Session struct {
	mu      sync.Mutex
	query   string
	display Display
	seq     uint64
	applied uint64
}

// NewSession returns a session in the Idle state
func NewSession() *Session {
	return &Session{display: Idle()}
}

// SetQuery records the latest typed text
func (s *Session) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

// Query returns the latest typed text
func (s *Session) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Display returns what the results area should show
func (s *Session) Display() Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.display
}

// Begin allocates the sequence number for a new lookup
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// Apply installs d if seq belongs to the newest lookup started. It reports
// whether the display changed hands.
func (s *Session) Apply(seq uint64, d Display) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		return false
	}
	s.display = d
	s.applied = seq
	return true
}

// InFlight reports whether the newest lookup has not been applied yet
func (s *Session) InFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq != s.applied
}

// Reset clears the display and invalidates any lookup still running
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.applied = s.seq
	s.display = Idle()
}
