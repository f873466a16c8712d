package matching

import (
	"testing"
	"time"
)

func TestParseRecencyWindow(t *testing.T) {
	for _, s := range []string{"1day", "3days", "1week", "2weeks", "1month"} {
		if _, ok := ParseRecencyWindow(s); !ok {
			t.Fatalf("expected %q to parse", s)
		}
	}
	if _, ok := ParseRecencyWindow("2months"); ok {
		t.Fatalf("expected unknown window to be rejected")
	}
}

func TestRecencyWindowDays(t *testing.T) {
	cases := map[RecencyWindow]int{
		RecencyOneDay:   1,
		RecencyThreeDay: 3,
		RecencyOneWeek:  7,
		RecencyTwoWeek:  14,
		RecencyOneMonth: 30,
		"":              7,
	}
	for w, want := range cases {
		if got := w.Days(); got != want {
			t.Fatalf("Days(%q) = %d, want %d", w, got, want)
		}
	}
}

func TestRecencyScore(t *testing.T) {
	now := time.Now().UTC()

	if s := recencyScore(RecencyOneWeek, now, now); s != recencyBonusMax {
		t.Fatalf("brand-new posting should earn +5, got %v", s)
	}
	if s := recencyScore(RecencyOneWeek, now.Add(-40*24*time.Hour), now); s != recencyPenalty {
		t.Fatalf("posting past the threshold should earn -10, got %v", s)
	}

	// Exactly at the threshold the bonus decays to 0, not the penalty.
	atThreshold := recencyScore(RecencyOneWeek, now.Add(-7*24*time.Hour), now)
	if atThreshold != 0 {
		t.Fatalf("posting at the threshold should earn 0, got %v", atThreshold)
	}

	half := recencyScore(RecencyOneWeek, now.Add(-3*24*time.Hour-12*time.Hour), now)
	if half != recencyBonusMax/2 {
		t.Fatalf("half-aged posting should earn half the bonus, got %v", half)
	}

	if s := recencyScore(RecencyOneWeek, time.Time{}, now); s != 0 {
		t.Fatalf("missing timestamp should contribute 0, got %v", s)
	}
}
