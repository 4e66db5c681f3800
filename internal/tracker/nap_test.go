package tracker

import (
	"testing"
	"time"
)

func TestNapSession_StartThenEnd(t *testing.T) {
	loc := testLocation(t)
	s := &NapSession{}

	start := time.Date(2025, 6, 1, 13, 0, 0, 0, loc)
	res := s.Start(start)
	if !res.Started {
		t.Fatal("expected nap to start from idle")
	}
	if active := s.ActiveStart(); active == nil || !active.Equal(start) {
		t.Fatalf("expected active start %v, got %v", start, active)
	}

	stop := time.Date(2025, 6, 1, 14, 30, 0, 0, loc)
	end := s.End(stop)
	if end.Status != NapEndClosed {
		t.Fatalf("expected nap to close, got status %d", end.Status)
	}
	if end.DurationSeconds != 5400 {
		t.Fatalf("expected 5400 seconds, got %d", end.DurationSeconds)
	}
	if s.ActiveStart() != nil {
		t.Fatal("expected no active nap after close")
	}
	if last := s.LastStart(); last == nil || !last.Equal(start) {
		t.Fatalf("expected last start %v to survive the close, got %v", start, last)
	}
}

func TestNapSession_DurationTruncatesToWholeSeconds(t *testing.T) {
	loc := testLocation(t)
	s := &NapSession{}

	s.Start(time.Date(2025, 6, 1, 10, 0, 0, 0, loc))
	end := s.End(time.Date(2025, 6, 1, 10, 45, 30, 900_000_000, loc))
	if end.DurationSeconds != 2730 {
		t.Fatalf("expected truncation to 2730 seconds, got %d", end.DurationSeconds)
	}
}

func TestNapSession_DuplicateStartRejectedWithoutMutation(t *testing.T) {
	loc := testLocation(t)
	s := &NapSession{}

	first := time.Date(2025, 6, 1, 13, 0, 0, 0, loc)
	s.Start(first)
	res := s.Start(time.Date(2025, 6, 1, 13, 10, 0, 0, loc))
	if res.Started {
		t.Fatal("expected duplicate start to be rejected")
	}
	if !res.Start.Equal(first) {
		t.Fatalf("expected rejection to report the existing start %v, got %v", first, res.Start)
	}
	if active := s.ActiveStart(); active == nil || !active.Equal(first) {
		t.Fatalf("expected active start to stay %v, got %v", first, active)
	}
}

func TestNapSession_EndBeforeStartRejectedWithoutMutation(t *testing.T) {
	loc := testLocation(t)
	s := &NapSession{}

	start := time.Date(2025, 6, 1, 13, 0, 0, 0, loc)
	s.Start(start)
	res := s.End(time.Date(2025, 6, 1, 12, 30, 0, 0, loc))
	if res.Status != NapEndBeforeStart {
		t.Fatalf("expected chronological rejection, got status %d", res.Status)
	}
	if active := s.ActiveStart(); active == nil || !active.Equal(start) {
		t.Fatal("expected rejected end to leave the active nap untouched")
	}
}

func TestNapSession_EndAtExactStartCloses(t *testing.T) {
	loc := testLocation(t)
	s := &NapSession{}

	start := time.Date(2025, 6, 1, 13, 0, 0, 0, loc)
	s.Start(start)
	res := s.End(start)
	if res.Status != NapEndClosed {
		t.Fatalf("expected end at t == start to close, got status %d", res.Status)
	}
	if res.DurationSeconds != 0 {
		t.Fatalf("expected zero duration, got %d", res.DurationSeconds)
	}
}

func TestNapSession_EndWhileIdle(t *testing.T) {
	loc := testLocation(t)
	s := &NapSession{}

	res := s.End(time.Date(2025, 6, 1, 14, 0, 0, 0, loc))
	if res.Status != NapEndNoActive {
		t.Fatalf("expected no-active rejection, got status %d", res.Status)
	}
	if res.LastStart != nil {
		t.Fatal("expected no last start before any nap")
	}

	start := time.Date(2025, 6, 1, 13, 0, 0, 0, loc)
	s.Start(start)
	s.End(time.Date(2025, 6, 1, 14, 0, 0, 0, loc))

	res = s.End(time.Date(2025, 6, 1, 15, 0, 0, 0, loc))
	if res.Status != NapEndNoActive {
		t.Fatalf("expected no-active rejection, got status %d", res.Status)
	}
	if res.LastStart == nil || !res.LastStart.Equal(start) {
		t.Fatalf("expected last start hint %v, got %v", start, res.LastStart)
	}
}

func TestNapSession_Restore(t *testing.T) {
	loc := testLocation(t)
	s := &NapSession{}

	active := time.Date(2025, 6, 1, 13, 0, 0, 0, loc)
	last := time.Date(2025, 5, 31, 13, 0, 0, 0, loc)
	s.Restore(&active, &last)

	if got := s.ActiveStart(); got == nil || !got.Equal(active) {
		t.Fatalf("expected restored active start %v, got %v", active, got)
	}
	if got := s.LastStart(); got == nil || !got.Equal(last) {
		t.Fatalf("expected restored last start %v, got %v", last, got)
	}

	s.Restore(nil, nil)
	if s.ActiveStart() != nil || s.LastStart() != nil {
		t.Fatal("expected empty session after restoring nothing")
	}
}

func TestFmtDuration(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{2730, "0:45"},
		{5400, "1:30"},
		{3600, "1:00"},
		{36600, "10:10"},
	}
	for _, c := range cases {
		if got := fmtDuration(c.seconds); got != c.want {
			t.Fatalf("fmtDuration(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
