package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smartapplyhub/internal/repository"

	"github.com/google/uuid"
)

func TestApplicationUsecase_Apply_JobNotFound(t *testing.T) {
	uc := NewApplicationUsecase(mockApplicationRepo{}, mockPostingRepo{exists: false}, nil)
	_, err := uc.Apply(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApplicationUsecase_Apply_Duplicate(t *testing.T) {
	uc := NewApplicationUsecase(
		mockApplicationRepo{createErr: repository.ErrAlreadyApplied},
		mockPostingRepo{exists: true},
		nil,
	)
	_, err := uc.Apply(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestApplicationUsecase_Apply_InvalidatesCache(t *testing.T) {
	userID := uuid.New()
	jobID := uuid.New()
	cache := newMockCache()

	created := repository.Application{
		ID: uuid.New(), UserID: userID, JobID: jobID,
		Status: repository.StatusApplied, AppliedAt: time.Now().UTC(),
	}

	uc := NewApplicationUsecase(
		mockApplicationRepo{created: created},
		mockPostingRepo{exists: true},
		cache,
	)

	a, err := uc.Apply(context.Background(), userID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.JobID != jobID {
		t.Fatalf("unexpected job id on application")
	}
	if len(cache.deleted) != 1 || cache.deleted[0] != recommendationCacheKey(userID) {
		t.Fatalf("expected recommendation cache invalidation, got %v", cache.deleted)
	}
}

func TestApplicationUsecase_List(t *testing.T) {
	userID := uuid.New()
	uc := NewApplicationUsecase(
		mockApplicationRepo{apps: []repository.Application{{ID: uuid.New(), UserID: userID}}},
		mockPostingRepo{},
		nil,
	)

	items, err := uc.ListApplications(context.Background(), userID, 20, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 application, got %d", len(items))
	}
}
