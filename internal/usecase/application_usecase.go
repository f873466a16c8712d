package usecase

import (
	"context"
	"errors"

	"smartapplyhub/internal/repository"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, jobID uuid.UUID) (repository.Application, error)
	ListApplications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.Application, error)
}

type Application struct {
	applications repository.ApplicationRepository
	postings     repository.PostingRepository
	cache        RecommendationCache
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	postings repository.PostingRepository,
	cache RecommendationCache,
) *Application {
	return &Application{applications: applications, postings: postings, cache: cache}
}

// Apply records an application. The job drops out of future recommendation
// runs, so the cached ranking is invalidated here.
func (u *Application) Apply(ctx context.Context, userID, jobID uuid.UUID) (repository.Application, error) {
	if userID == uuid.Nil {
		return repository.Application{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return repository.Application{}, ErrJobNotFound
	}

	exists, err := u.postings.ExistsByID(ctx, jobID)
	if err != nil {
		return repository.Application{}, ErrInternal
	}
	if !exists {
		return repository.Application{}, ErrJobNotFound
	}

	a, err := u.applications.Create(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyApplied) {
			return repository.Application{}, ErrAlreadyApplied
		}
		return repository.Application{}, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.Delete(ctx, recommendationCacheKey(userID))
	}

	return a, nil
}

func (u *Application) ListApplications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]repository.Application, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	items, err := u.applications.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
