package yabreaker

import "testing"

func TestSessionGatesEveryTenFails(t *testing.T) {
	s := NewSession(10)

	for i := 1; i <= 25; i++ {
		gated := s.RecordFail()
		if s.Fails() != i {
			t.Fatalf("fails = %d, want %d", s.Fails(), i)
		}
		wantGate := i%10 == 0
		if gated != wantGate || s.Stopped() != wantGate {
			t.Fatalf("fail %d: gated = %v stopped = %v, want %v", i, gated, s.Stopped(), wantGate)
		}
		if gated {
			s.Resume()
		}
	}
}

func TestSessionResumeKeepsFails(t *testing.T) {
	s := NewSession(2)
	s.RecordFail()
	s.RecordFail()
	if !s.Stopped() {
		t.Fatal("expected stop after 2 fails")
	}

	s.Resume()
	if s.Stopped() || s.Fails() != 2 {
		t.Errorf("after resume: stopped = %v fails = %d", s.Stopped(), s.Fails())
	}

	// Resume on a running session is harmless
	s.Resume()
	if s.Stopped() {
		t.Error("resume stopped the session")
	}
}

func TestSessionMinimumGate(t *testing.T) {
	s := NewSession(0)
	if !s.RecordFail() {
		t.Error("gate below 1 should stop on every fail")
	}
}
