package matching

import "time"

// RecencyWindow is the caller-configurable age threshold beyond which a
// posting is penalized instead of bonused.
type RecencyWindow string

const (
	RecencyOneDay   RecencyWindow = "1day"
	RecencyThreeDay RecencyWindow = "3days"
	RecencyOneWeek  RecencyWindow = "1week"
	RecencyTwoWeek  RecencyWindow = "2weeks"
	RecencyOneMonth RecencyWindow = "1month"
)

const (
	recencyBonusMax = 5.0
	recencyPenalty  = -10.0
)

func ParseRecencyWindow(s string) (RecencyWindow, bool) {
	switch RecencyWindow(s) {
	case RecencyOneDay, RecencyThreeDay, RecencyOneWeek, RecencyTwoWeek, RecencyOneMonth:
		return RecencyWindow(s), true
	}
	return "", false
}

// Days returns the max-age threshold. Unknown or empty windows fall back to
// one week.
func (w RecencyWindow) Days() int {
	switch w {
	case RecencyOneDay:
		return 1
	case RecencyThreeDay:
		return 3
	case RecencyTwoWeek:
		return 14
	case RecencyOneMonth:
		return 30
	default:
		return 7
	}
}

// recencyScore decays linearly from +5 for a brand-new posting to 0 at the
// threshold, then flips to a flat -10 beyond it. Postings without a creation
// timestamp contribute nothing.
func recencyScore(w RecencyWindow, createdAt, now time.Time) float64 {
	if createdAt.IsZero() {
		return 0
	}

	ageDays := now.Sub(createdAt).Hours() / 24
	if ageDays < 0 {
		ageDays = 0
	}

	threshold := float64(w.Days())
	if ageDays > threshold {
		return recencyPenalty
	}
	return recencyBonusMax * (1 - ageDays/threshold)
}
