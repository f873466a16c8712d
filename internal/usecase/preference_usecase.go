package usecase

import (
	"context"
	"errors"
	"fmt"

	"smartapplyhub/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PreferenceInput struct {
	JobTitles         []string `validate:"max=50,dive,max=200"`
	PreferredLocation string   `validate:"max=200"`
	JobTypes          []string `validate:"max=50,dive,max=100"`
	ExperienceLevel   string   `validate:"max=100"`
	Skills            []string `validate:"max=50,dive,max=100"`
	Industries        []string `validate:"max=50,dive,max=100"`
}

type SearchPreferenceInput struct {
	LocationFilter     []string `validate:"max=50,dive,max=200"`
	LocationFlexible   *bool
	RemoteOnly         bool
	RecencyWindow      string   `validate:"omitempty,oneof=1day 3days 1week 2weeks 1month"`
	JobLevels          []string `validate:"max=50,dive,max=100"`
	ExcludedIndustries []string `validate:"max=50,dive,max=100"`
	SalaryMin          *int     `validate:"omitempty,gte=0"`
	SalaryMax          *int     `validate:"omitempty,gte=0"`
}

type PreferenceUsecase interface {
	GetPreferences(ctx context.Context, userID uuid.UUID) (repository.CandidatePreferences, error)
	SavePreferences(ctx context.Context, userID uuid.UUID, in PreferenceInput) error
	GetSearchPreferences(ctx context.Context, userID uuid.UUID) (repository.SearchPreferences, error)
	SaveSearchPreferences(ctx context.Context, userID uuid.UUID, in SearchPreferenceInput) error
}

type Preference struct {
	repo     repository.PreferenceRepository
	cache    RecommendationCache
	validate *validator.Validate
}

func NewPreferenceUsecase(repo repository.PreferenceRepository, cache RecommendationCache) *Preference {
	return &Preference{
		repo:     repo,
		cache:    cache,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (u *Preference) GetPreferences(ctx context.Context, userID uuid.UUID) (repository.CandidatePreferences, error) {
	if userID == uuid.Nil {
		return repository.CandidatePreferences{}, ErrUnauthorized
	}

	p, err := u.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPreferencesNotFound) {
			return repository.CandidatePreferences{UserID: userID}, nil
		}
		return repository.CandidatePreferences{}, ErrInternal
	}
	return p, nil
}

func (u *Preference) SavePreferences(ctx context.Context, userID uuid.UUID, in PreferenceInput) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	err := u.repo.Save(ctx, repository.CandidatePreferences{
		UserID:            userID,
		JobTitles:         in.JobTitles,
		PreferredLocation: in.PreferredLocation,
		JobTypes:          in.JobTypes,
		ExperienceLevel:   in.ExperienceLevel,
		Skills:            in.Skills,
		Industries:        in.Industries,
	})
	if err != nil {
		return ErrInternal
	}

	u.invalidateRecommendations(ctx, userID)
	return nil
}

func (u *Preference) GetSearchPreferences(ctx context.Context, userID uuid.UUID) (repository.SearchPreferences, error) {
	if userID == uuid.Nil {
		return repository.SearchPreferences{}, ErrUnauthorized
	}

	p, err := u.repo.FindSearchByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSearchPreferencesNotFound) {
			return repository.SearchPreferences{UserID: userID}, nil
		}
		return repository.SearchPreferences{}, ErrInternal
	}
	return p, nil
}

func (u *Preference) SaveSearchPreferences(ctx context.Context, userID uuid.UUID, in SearchPreferenceInput) error {
	if userID == uuid.Nil {
		return ErrUnauthorized
	}
	if err := u.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMax < *in.SalaryMin {
		return fmt.Errorf("%w: salary_max below salary_min", ErrInvalidInput)
	}

	err := u.repo.SaveSearch(ctx, repository.SearchPreferences{
		UserID:             userID,
		LocationFilter:     in.LocationFilter,
		LocationFlexible:   in.LocationFlexible,
		RemoteOnly:         in.RemoteOnly,
		RecencyWindow:      in.RecencyWindow,
		JobLevels:          in.JobLevels,
		ExcludedIndustries: in.ExcludedIndustries,
		SalaryMin:          in.SalaryMin,
		SalaryMax:          in.SalaryMax,
	})
	if err != nil {
		return ErrInternal
	}

	u.invalidateRecommendations(ctx, userID)
	return nil
}

func (u *Preference) invalidateRecommendations(ctx context.Context, userID uuid.UUID) {
	if u.cache == nil {
		return
	}
	_ = u.cache.Delete(ctx, recommendationCacheKey(userID))
}
