package yabreaker

// Session tracks the fail counter and the stopped/running state.
// The interstitial is visible exactly while the session is stopped.
type Session struct {
	fails     int
	stopped   bool
	gateEvery int
}

// NewSession creates a running session that stops every gateEvery fails.
func NewSession(gateEvery int) *Session {
	if gateEvery < 1 {
		gateEvery = 1
	}
	return &Session{gateEvery: gateEvery}
}

// Fails returns the number of ball drops so far.
func (s *Session) Fails() int {
	return s.fails
}

// Stopped reports whether simulation and rendering are gated.
func (s *Session) Stopped() bool {
	return s.stopped
}

// RecordFail increments the fail counter once and reports whether the
// new count crossed the gate, in which case the session is now stopped.
func (s *Session) RecordFail() bool {
	s.fails++
	if s.fails%s.gateEvery == 0 {
		s.stopped = true
		return true
	}
	return false
}

// Resume clears the stopped flag. The fail counter is kept.
func (s *Session) Resume() {
	s.stopped = false
}
