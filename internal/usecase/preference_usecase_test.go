package usecase

import (
	"context"
	"errors"
	"testing"

	"smartapplyhub/internal/repository"

	"github.com/google/uuid"
)

func TestPreferenceUsecase_SaveSearch_InvalidWindow(t *testing.T) {
	uc := NewPreferenceUsecase(&mockPreferenceRepo{}, nil)
	err := uc.SaveSearchPreferences(context.Background(), uuid.New(), SearchPreferenceInput{
		RecencyWindow: "2months",
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPreferenceUsecase_SaveSearch_InvertedSalary(t *testing.T) {
	lo, hi := 90000, 50000
	uc := NewPreferenceUsecase(&mockPreferenceRepo{}, nil)
	err := uc.SaveSearchPreferences(context.Background(), uuid.New(), SearchPreferenceInput{
		SalaryMin: &lo,
		SalaryMax: &hi,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted bounds, got %v", err)
	}
}

func TestPreferenceUsecase_SaveSearch_NegativeSalary(t *testing.T) {
	neg := -1
	uc := NewPreferenceUsecase(&mockPreferenceRepo{}, nil)
	err := uc.SaveSearchPreferences(context.Background(), uuid.New(), SearchPreferenceInput{
		SalaryMin: &neg,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative salary, got %v", err)
	}
}

func TestPreferenceUsecase_SaveSearch_OversizedArray(t *testing.T) {
	filter := make([]string, 51)
	for i := range filter {
		filter[i] = "somewhere"
	}
	uc := NewPreferenceUsecase(&mockPreferenceRepo{}, nil)
	err := uc.SaveSearchPreferences(context.Background(), uuid.New(), SearchPreferenceInput{
		LocationFilter: filter,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for >50 entries, got %v", err)
	}
}

func TestPreferenceUsecase_SaveSearch_Valid(t *testing.T) {
	repo := &mockPreferenceRepo{}
	cache := newMockCache()
	userID := uuid.New()
	flexible := false

	uc := NewPreferenceUsecase(repo, cache)
	err := uc.SaveSearchPreferences(context.Background(), userID, SearchPreferenceInput{
		LocationFilter:     []string{"Berlin"},
		LocationFlexible:   &flexible,
		RemoteOnly:         true,
		RecencyWindow:      "2weeks",
		ExcludedIndustries: []string{"Gambling"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.savedSearch == nil {
		t.Fatalf("expected search preferences to be persisted")
	}
	if repo.savedSearch.RecencyWindow != "2weeks" {
		t.Fatalf("unexpected recency window %q", repo.savedSearch.RecencyWindow)
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != recommendationCacheKey(userID) {
		t.Fatalf("expected recommendation cache invalidation, got %v", cache.deleted)
	}
}

func TestPreferenceUsecase_SavePreferences_InvalidatesCache(t *testing.T) {
	repo := &mockPreferenceRepo{}
	cache := newMockCache()
	userID := uuid.New()

	uc := NewPreferenceUsecase(repo, cache)
	err := uc.SavePreferences(context.Background(), userID, PreferenceInput{
		JobTitles:  []string{"Backend Engineer"},
		Industries: []string{"Technology"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if repo.savedPrefs == nil {
		t.Fatalf("expected preferences to be persisted")
	}
	if len(cache.deleted) != 1 {
		t.Fatalf("expected cache invalidation, got %v", cache.deleted)
	}
}

func TestPreferenceUsecase_Get_MissingRowIsEmptyProfile(t *testing.T) {
	uc := NewPreferenceUsecase(&mockPreferenceRepo{prefsErr: repository.ErrPreferencesNotFound}, nil)
	_, err := uc.GetPreferences(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("missing preferences row should read as empty profile, got %v", err)
	}
}
