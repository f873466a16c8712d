package repository

import (
	"context"
	"errors"
	"time"

	"smartapplyhub/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrAlreadyApplied = errors.New("already applied")

const StatusApplied = "applied"

type Application struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	JobID     uuid.UUID
	Status    string
	AppliedAt time.Time
}

type ApplicationRepository interface {
	Create(ctx context.Context, userID, jobID uuid.UUID) (Application, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Application, error)
	ListAppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, userID, jobID uuid.UUID) (Application, error) {
	a := Application{UserID: userID, JobID: jobID, Status: StatusApplied}
	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (user_id, job_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, job_id) DO NOTHING
		 RETURNING id, applied_at`,
		userID, jobID, StatusApplied,
	)
	if err := row.Scan(&a.ID, &a.AppliedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Application{}, ErrAlreadyApplied
		}
		return Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Application, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, job_id, COALESCE(status, ''), applied_at
		 FROM applications
		 WHERE user_id = $1
		 ORDER BY applied_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Application, 0)
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.JobID, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListAppliedJobIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id FROM applications WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
