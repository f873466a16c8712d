package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"smartapplyhub/internal/repository"

	"github.com/google/uuid"
)

type mockPostingRepo struct {
	postings []repository.Posting
	exists   bool
	err      error
}

func (m mockPostingRepo) ExistsByID(context.Context, uuid.UUID) (bool, error) {
	return m.exists, m.err
}

func (m mockPostingRepo) ListRecent(context.Context, int, int) ([]repository.Posting, error) {
	return m.postings, m.err
}

type mockPreferenceRepo struct {
	prefs     repository.CandidatePreferences
	prefsErr  error
	search    repository.SearchPreferences
	searchErr error

	savedPrefs  *repository.CandidatePreferences
	savedSearch *repository.SearchPreferences
}

func (m *mockPreferenceRepo) FindByUserID(context.Context, uuid.UUID) (repository.CandidatePreferences, error) {
	return m.prefs, m.prefsErr
}

func (m *mockPreferenceRepo) Save(_ context.Context, p repository.CandidatePreferences) error {
	m.savedPrefs = &p
	return nil
}

func (m *mockPreferenceRepo) FindSearchByUserID(context.Context, uuid.UUID) (repository.SearchPreferences, error) {
	return m.search, m.searchErr
}

func (m *mockPreferenceRepo) SaveSearch(_ context.Context, p repository.SearchPreferences) error {
	m.savedSearch = &p
	return nil
}

type mockApplicationRepo struct {
	appliedIDs []uuid.UUID
	apps       []repository.Application
	created    repository.Application
	createErr  error
	err        error
}

func (m mockApplicationRepo) Create(context.Context, uuid.UUID, uuid.UUID) (repository.Application, error) {
	return m.created, m.createErr
}

func (m mockApplicationRepo) ListByUserID(context.Context, uuid.UUID, int, int) ([]repository.Application, error) {
	return m.apps, m.err
}

func (m mockApplicationRepo) ListAppliedJobIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return m.appliedIDs, m.err
}

type mockCache struct {
	data    map[string][]byte
	deleted []string
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string][]byte)}
}

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *mockCache) Delete(_ context.Context, key string) error {
	m.deleted = append(m.deleted, key)
	delete(m.data, key)
	return nil
}

func candidatePrefs(userID uuid.UUID) repository.CandidatePreferences {
	return repository.CandidatePreferences{
		UserID:          userID,
		JobTitles:       []string{"Backend Engineer"},
		JobTypes:        []string{"remote"},
		ExperienceLevel: "senior",
		Industries:      []string{"Technology"},
	}
}

func TestRecommendationUsecase_NilUser(t *testing.T) {
	uc := NewRecommendationUsecase(mockPostingRepo{}, &mockPreferenceRepo{}, mockApplicationRepo{}, nil)
	_, err := uc.GetRecommendations(context.Background(), uuid.Nil, RecommendationParams{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRecommendationUsecase_EmptyProfile(t *testing.T) {
	userID := uuid.New()
	uc := NewRecommendationUsecase(
		mockPostingRepo{},
		&mockPreferenceRepo{prefsErr: repository.ErrPreferencesNotFound},
		mockApplicationRepo{},
		nil,
	)
	_, err := uc.GetRecommendations(context.Background(), userID, RecommendationParams{})
	if !errors.Is(err, ErrPreferenceProfileEmpty) {
		t.Fatalf("expected ErrPreferenceProfileEmpty, got %v", err)
	}
}

func TestRecommendationUsecase_RanksAndExcludesApplied(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC()

	matchJob := repository.Posting{
		ID: uuid.New(), Title: "Senior Backend Engineer", Company: "Acme",
		Location: "Shanghai", Industry: "Technology", RemoteType: "remote",
		Level: "senior", CreatedAt: now,
	}
	appliedJob := matchJob
	appliedJob.ID = uuid.New()
	weakJob := repository.Posting{
		ID: uuid.New(), Title: "Florist", Industry: "Retail", CreatedAt: now,
	}

	uc := NewRecommendationUsecase(
		mockPostingRepo{postings: []repository.Posting{weakJob, appliedJob, matchJob}},
		&mockPreferenceRepo{prefs: candidatePrefs(userID), searchErr: repository.ErrSearchPreferencesNotFound},
		mockApplicationRepo{appliedIDs: []uuid.UUID{appliedJob.ID}},
		nil,
	)

	items, err := uc.GetRecommendations(context.Background(), userID, RecommendationParams{Limit: 10})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].JobID != matchJob.ID {
		t.Fatalf("expected strongest match first")
	}
	for _, it := range items {
		if it.JobID == appliedJob.ID {
			t.Fatalf("applied job leaked into recommendations")
		}
	}
	if items[0].Score <= items[1].Score {
		t.Fatalf("expected descending scores, got %v then %v", items[0].Score, items[1].Score)
	}
	if len(items[0].Reasons) == 0 || len(items[0].Reasons) > 3 {
		t.Fatalf("expected 1..3 reasons, got %d", len(items[0].Reasons))
	}
}

func TestRecommendationUsecase_MinScoreFilter(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC()

	uc := NewRecommendationUsecase(
		mockPostingRepo{postings: []repository.Posting{
			{ID: uuid.New(), Title: "Florist", Industry: "Retail", CreatedAt: now},
		}},
		&mockPreferenceRepo{prefs: candidatePrefs(userID), searchErr: repository.ErrSearchPreferencesNotFound},
		mockApplicationRepo{},
		nil,
	)

	_, err := uc.GetRecommendations(context.Background(), userID, RecommendationParams{MinScore: 50})
	if !errors.Is(err, ErrNoPostingsFound) {
		t.Fatalf("expected ErrNoPostingsFound when nothing clears min score, got %v", err)
	}
}

func TestRecommendationUsecase_ServesFromCache(t *testing.T) {
	userID := uuid.New()
	cache := newMockCache()

	cached := []RecommendationItem{{JobID: uuid.New(), Title: "Cached", Score: 42}}
	if err := cache.SetJSON(context.Background(), recommendationCacheKey(userID), cached, 0); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	// Repositories fail hard, so any result must come from the cache.
	uc := NewRecommendationUsecase(
		mockPostingRepo{err: errors.New("db down")},
		&mockPreferenceRepo{prefsErr: errors.New("db down")},
		mockApplicationRepo{err: errors.New("db down")},
		cache,
	)

	items, err := uc.GetRecommendations(context.Background(), userID, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Cached" {
		t.Fatalf("expected cached payload, got %+v", items)
	}
}

func TestRecommendationUsecase_WritesCacheAfterCompute(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC()
	cache := newMockCache()

	uc := NewRecommendationUsecase(
		mockPostingRepo{postings: []repository.Posting{
			{ID: uuid.New(), Title: "Backend Engineer", Industry: "Technology", RemoteType: "remote", CreatedAt: now},
		}},
		&mockPreferenceRepo{prefs: candidatePrefs(userID), searchErr: repository.ErrSearchPreferencesNotFound},
		mockApplicationRepo{},
		cache,
	)

	if _, err := uc.GetRecommendations(context.Background(), userID, RecommendationParams{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, ok := cache.data[recommendationCacheKey(userID)]; !ok {
		t.Fatalf("expected ranked payload to be cached")
	}
}

func TestRecommendationUsecase_OverridesReachEngine(t *testing.T) {
	userID := uuid.New()
	now := time.Now().UTC()

	tech := repository.Posting{
		ID: uuid.New(), Title: "Backend Engineer", Industry: "Technology",
		RemoteType: "remote", CreatedAt: now,
	}

	base := NewRecommendationUsecase(
		mockPostingRepo{postings: []repository.Posting{tech}},
		&mockPreferenceRepo{prefs: candidatePrefs(userID), searchErr: repository.ErrSearchPreferencesNotFound},
		mockApplicationRepo{},
		nil,
	)
	vetoed := NewRecommendationUsecase(
		mockPostingRepo{postings: []repository.Posting{tech}},
		&mockPreferenceRepo{
			prefs:  candidatePrefs(userID),
			search: repository.SearchPreferences{ExcludedIndustries: []string{"Technology"}},
		},
		mockApplicationRepo{},
		nil,
	)

	baseItems, err := base.GetRecommendations(context.Background(), userID, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	vetoedItems, err := vetoed.GetRecommendations(context.Background(), userID, RecommendationParams{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	// The veto from search preferences strips exactly the 40-point industry axis.
	diff := baseItems[0].Score - vetoedItems[0].Score
	if diff < 39.999 || diff > 40.001 {
		t.Fatalf("expected veto to remove 40 points, removed %v", diff)
	}
}
