package usecase

import (
	"context"
	"errors"
	"time"

	"smartapplyhub/internal/domain/matching"
	"smartapplyhub/internal/repository"

	"github.com/google/uuid"
)

const (
	defaultRecommendationLimit = 20
	maxRecommendationLimit     = 50

	// How many recent postings are pulled into one scoring pass.
	scoringPoolSize = 200
)

type RecommendationParams struct {
	Limit    int
	MinScore float64
}

type RecommendationItem struct {
	JobID    uuid.UUID         `json:"job_id"`
	Title    string            `json:"title"`
	Company  string            `json:"company"`
	Location string            `json:"location"`
	Industry string            `json:"industry"`
	Score    float64           `json:"score"`
	Reasons  []matching.Reason `json:"reasons"`
	PostedAt time.Time         `json:"posted_at"`
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, params RecommendationParams) ([]RecommendationItem, error)
}

type Recommendation struct {
	postings     repository.PostingRepository
	prefs        repository.PreferenceRepository
	applications repository.ApplicationRepository
	cache        RecommendationCache

	now func() time.Time
}

func NewRecommendationUsecase(
	postings repository.PostingRepository,
	prefs repository.PreferenceRepository,
	applications repository.ApplicationRepository,
	cache RecommendationCache,
) *Recommendation {
	return &Recommendation{
		postings:     postings,
		prefs:        prefs,
		applications: applications,
		cache:        cache,
		now:          time.Now,
	}
}

func recommendationCacheKey(userID uuid.UUID) string {
	return "recommendations:" + userID.String()
}

func (u *Recommendation) GetRecommendations(ctx context.Context, userID uuid.UUID, params RecommendationParams) ([]RecommendationItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	if u.cache != nil {
		var cached []RecommendationItem
		if found, err := u.cache.GetJSON(ctx, recommendationCacheKey(userID), &cached); err == nil && found {
			return applyRecommendationParams(cached, limit, params.MinScore)
		}
	}

	cp, err := u.prefs.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return nil, ErrPreferenceProfileEmpty
		}
		return nil, ErrInternal
	}
	enginePrefs := toEnginePreferences(cp)
	if preferencesEmpty(enginePrefs) {
		return nil, ErrPreferenceProfileEmpty
	}

	var engineOverrides matching.Overrides
	sp, err := u.prefs.FindSearchByUserID(ctx, userID)
	if err == nil {
		engineOverrides = toEngineOverrides(sp)
	} else if !errors.Is(err, repository.ErrSearchPreferencesNotFound) {
		return nil, ErrInternal
	}

	appliedIDs, err := u.applications.ListAppliedJobIDs(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	postings, err := u.postings.ListRecent(ctx, scoringPoolSize, 0)
	if err != nil {
		return nil, ErrInternal
	}
	if len(postings) == 0 {
		return nil, ErrNoPostingsFound
	}

	enginePostings := make([]matching.Posting, 0, len(postings))
	for _, p := range postings {
		enginePostings = append(enginePostings, toEnginePosting(p))
	}

	ranked := matching.Rank(enginePrefs, engineOverrides, enginePostings, appliedIDs, u.now().UTC())

	items := make([]RecommendationItem, 0, len(ranked))
	for _, r := range ranked {
		if len(items) == maxRecommendationLimit {
			break
		}
		items = append(items, RecommendationItem{
			JobID:    r.Posting.ID,
			Title:    r.Posting.Title,
			Company:  r.Posting.Company,
			Location: r.Posting.Location,
			Industry: r.Posting.Industry,
			Score:    r.Score,
			Reasons:  r.Reasons,
			PostedAt: r.Posting.CreatedAt,
		})
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, recommendationCacheKey(userID), items, 0)
	}

	return applyRecommendationParams(items, limit, params.MinScore)
}

func applyRecommendationParams(items []RecommendationItem, limit int, minScore float64) ([]RecommendationItem, error) {
	out := make([]RecommendationItem, 0, limit)
	for _, it := range items {
		if len(out) == limit {
			break
		}
		if minScore > 0 && it.Score < minScore {
			continue
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil, ErrNoPostingsFound
	}
	return out, nil
}

func toEnginePreferences(p repository.CandidatePreferences) matching.Preferences {
	return matching.Preferences{
		JobTitles:         p.JobTitles,
		PreferredLocation: p.PreferredLocation,
		JobTypes:          p.JobTypes,
		ExperienceLevel:   p.ExperienceLevel,
		Skills:            p.Skills,
		Industries:        p.Industries,
	}
}

func preferencesEmpty(p matching.Preferences) bool {
	return len(p.JobTitles) == 0 &&
		p.PreferredLocation == "" &&
		len(p.JobTypes) == 0 &&
		p.ExperienceLevel == "" &&
		len(p.Skills) == 0 &&
		len(p.Industries) == 0
}

func toEngineOverrides(p repository.SearchPreferences) matching.Overrides {
	// Unknown windows fall through to the engine default.
	window, _ := matching.ParseRecencyWindow(p.RecencyWindow)

	return matching.Overrides{
		LocationFilter:     p.LocationFilter,
		LocationFlexible:   p.LocationFlexible,
		RemoteOnly:         p.RemoteOnly,
		RecencyWindow:      window,
		JobLevels:          p.JobLevels,
		ExcludedIndustries: p.ExcludedIndustries,
		SalaryMin:          p.SalaryMin,
		SalaryMax:          p.SalaryMax,
	}
}

func toEnginePosting(p repository.Posting) matching.Posting {
	return matching.Posting{
		ID:           p.ID,
		Title:        p.Title,
		Company:      p.Company,
		Location:     p.Location,
		Description:  p.Description,
		Requirements: p.Requirements,
		SalaryRange:  p.SalaryRange,
		Industry:     p.Industry,
		RemoteType:   p.RemoteType,
		Schedule:     p.Schedule,
		Department:   p.Department,
		Level:        p.Level,
		JobType:      p.JobType,
		CreatedAt:    p.CreatedAt,
	}
}
