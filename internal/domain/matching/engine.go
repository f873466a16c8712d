package matching

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Preferences struct {
	JobTitles         []string
	PreferredLocation string
	JobTypes          []string
	ExperienceLevel   string
	Skills            []string
	Industries        []string
}

type Overrides struct {
	LocationFilter     []string
	LocationFlexible   *bool
	RemoteOnly         bool
	RecencyWindow      RecencyWindow
	JobLevels          []string
	ExcludedIndustries []string
	SalaryMin          *int
	SalaryMax          *int
}

// Flexible reports the location-flexibility flag, defaulting to true when unset.
func (o Overrides) Flexible() bool {
	return o.LocationFlexible == nil || *o.LocationFlexible
}

type Posting struct {
	ID           uuid.UUID
	Title        string
	Company      string
	Location     string
	Description  string
	Requirements string
	SalaryRange  string
	Industry     string
	RemoteType   string
	Schedule     string
	Department   string
	Level        string
	JobType      string
	CreatedAt    time.Time
}

type Reason string

const (
	ReasonIndustry   Reason = "industry_match"
	ReasonLocation   Reason = "location_match"
	ReasonRemote     Reason = "remote_friendly"
	ReasonWorkType   Reason = "work_type_match"
	ReasonTitle      Reason = "title_match"
	ReasonExperience Reason = "experience_match"
)

type Result struct {
	Posting Posting
	Reasons []Reason
	Score   float64
}

const (
	industryWeight   = 40.0
	locationWeight   = 25.0
	workTypeWeight   = 20.0
	titleWeight      = 10.0
	experienceWeight = 5.0

	remoteFallbackFactor = 0.8
	titleMatchThreshold  = 0.3
	maxReasons           = 3
)

// Ordered; first match wins when keywords overlap.
var remoteKeywords = []string{"remote", "远程", "在宅", "リモート"}

// Rank drops excluded postings, scores the rest against the preference state
// and returns them sorted by score, highest first. Ties keep input order.
func Rank(prefs Preferences, ov Overrides, postings []Posting, excludedIDs []uuid.UUID, now time.Time) []Result {
	excluded := make(map[uuid.UUID]struct{}, len(excludedIDs))
	for _, id := range excludedIDs {
		if id == uuid.Nil {
			continue
		}
		excluded[id] = struct{}{}
	}

	out := make([]Result, 0, len(postings))
	for _, p := range postings {
		if _, ok := excluded[p.ID]; ok {
			continue
		}
		out = append(out, scorePosting(prefs, ov, p, now))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

func scorePosting(prefs Preferences, ov Overrides, p Posting, now time.Time) Result {
	var score float64
	reasons := make([]Reason, 0, maxReasons)

	add := func(contrib float64, reason Reason) {
		if contrib <= 0 {
			return
		}
		score += contrib
		if len(reasons) < maxReasons {
			reasons = append(reasons, reason)
		}
	}

	add(industryScore(prefs, ov, p), ReasonIndustry)

	locScore, locReason := locationScore(prefs, ov, p)
	add(locScore, locReason)

	add(workTypeScore(prefs, p), ReasonWorkType)
	add(titleScore(prefs, p), ReasonTitle)
	add(experienceScore(prefs, ov, p), ReasonExperience)

	// Recency never emits a reason and may push the total below zero.
	score += recencyScore(ov.RecencyWindow, p.CreatedAt, now)

	return Result{Posting: p, Reasons: reasons, Score: score}
}

func industryScore(prefs Preferences, ov Overrides, p Posting) float64 {
	industry := strings.TrimSpace(p.Industry)
	if industry == "" {
		return 0
	}
	if containsFold(ov.ExcludedIndustries, industry) {
		return 0
	}
	if containsFold(prefs.Industries, industry) {
		return industryWeight
	}
	return 0
}

// locationScore is a short-circuit chain: the first satisfied branch wins and
// later branches are never added on top of it.
func locationScore(prefs Preferences, ov Overrides, p Posting) (float64, Reason) {
	remote := IsRemote(p)

	if ov.RemoteOnly && remote {
		return locationWeight, ReasonRemote
	}

	for _, f := range ov.LocationFilter {
		if substringEither(f, p.Location) {
			return locationWeight, ReasonLocation
		}
	}

	if substringEither(prefs.PreferredLocation, p.Location) {
		return locationWeight, ReasonLocation
	}

	if ov.Flexible() && remote && containsFold(prefs.JobTypes, "remote") {
		return locationWeight * remoteFallbackFactor, ReasonRemote
	}

	return 0, ""
}

func workTypeScore(prefs Preferences, p Posting) float64 {
	for _, t := range derivedWorkTypes(p) {
		if containsFold(prefs.JobTypes, t) {
			return workTypeWeight
		}
	}
	return 0
}

// derivedWorkTypes is the posting's declared job type plus "remote" when the
// remote work-type field says so.
func derivedWorkTypes(p Posting) []string {
	out := make([]string, 0, 2)
	if jt := strings.TrimSpace(p.JobType); jt != "" {
		out = append(out, jt)
	}
	if IsRemote(p) {
		out = append(out, "remote")
	}
	return out
}

func titleScore(prefs Preferences, p Posting) float64 {
	title := strings.ToLower(p.Title)
	if title == "" {
		return 0
	}

	best := 0.0
	for _, want := range prefs.JobTitles {
		tokens := titleTokens(want)
		if len(tokens) == 0 {
			continue
		}
		hits := 0
		for _, tok := range tokens {
			if strings.Contains(title, tok) {
				hits++
			}
		}
		if frac := float64(hits) / float64(len(tokens)); frac > best {
			best = frac
		}
	}

	if best > titleMatchThreshold {
		return titleWeight * best
	}
	return 0
}

func titleTokens(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

func experienceScore(prefs Preferences, ov Overrides, p Posting) float64 {
	got := levelBucket(p.Level)
	if got == "" {
		return 0
	}

	targets := ov.JobLevels
	if len(targets) == 0 {
		if strings.TrimSpace(prefs.ExperienceLevel) == "" {
			return 0
		}
		targets = []string{prefs.ExperienceLevel}
	}

	for _, t := range targets {
		if levelBucket(t) == got {
			return experienceWeight
		}
	}
	return 0
}

// IsRemote detects remote postings by case-insensitive substring match on the
// remote work-type field.
func IsRemote(p Posting) bool {
	v := strings.ToLower(strings.TrimSpace(p.RemoteType))
	if v == "" {
		return false
	}
	for _, kw := range remoteKeywords {
		if strings.Contains(v, kw) {
			return true
		}
	}
	return false
}

// substringEither counts a match when either trimmed lowercase string contains
// the other. Empty sides never match.
func substringEither(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func containsFold(list []string, s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, it := range list {
		if strings.EqualFold(strings.TrimSpace(it), s) {
			return true
		}
	}
	return false
}
