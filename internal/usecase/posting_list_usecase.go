package usecase

import (
	"context"

	"smartapplyhub/internal/repository"
)

type PostingListParams struct {
	Limit  int
	Offset int
}

type PostingListUsecase interface {
	ListPostings(ctx context.Context, params PostingListParams) ([]repository.Posting, error)
}

type PostingList struct {
	postings repository.PostingRepository
}

func NewPostingListUsecase(postings repository.PostingRepository) *PostingList {
	return &PostingList{postings: postings}
}

func (u *PostingList) ListPostings(ctx context.Context, params PostingListParams) ([]repository.Posting, error) {
	if params.Limit < 0 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	limit := params.Limit
	if limit == 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	items, err := u.postings.ListRecent(ctx, limit, params.Offset)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}
