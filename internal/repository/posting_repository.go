package repository

import (
	"context"
	"errors"
	"time"

	"smartapplyhub/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrPostingNotFound = errors.New("posting not found")

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

type PostingRepository interface {
	ExistsByID(ctx context.Context, postingID uuid.UUID) (bool, error)
	ListRecent(ctx context.Context, limit, offset int) ([]Posting, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

func (r *PostgresPostingRepository) ExistsByID(ctx context.Context, postingID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_postings WHERE id = $1)`, postingID)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresPostingRepository) ListRecent(ctx context.Context, limit, offset int) ([]Posting, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id,
		        COALESCE(title, ''),
		        COALESCE(company, ''),
		        COALESCE(location, ''),
		        COALESCE(description, ''),
		        COALESCE(requirements, ''),
		        COALESCE(salary_range, ''),
		        COALESCE(industry, ''),
		        COALESCE(remote_work_type, ''),
		        COALESCE(work_schedule, ''),
		        COALESCE(department, ''),
		        COALESCE(job_level, ''),
		        COALESCE(job_type, ''),
		        created_at
		 FROM job_postings
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Posting, 0)
	for rows.Next() {
		var p Posting
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Company, &p.Location, &p.Description,
			&p.Requirements, &p.SalaryRange, &p.Industry, &p.RemoteType,
			&p.Schedule, &p.Department, &p.Level, &p.JobType, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
