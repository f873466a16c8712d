package repository

import (
	"context"
	"errors"

	"smartapplyhub/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrPreferencesNotFound       = errors.New("preferences not found")
	ErrSearchPreferencesNotFound = errors.New("search preferences not found")
)

type CandidatePreferences struct {
	UserID            uuid.UUID
	JobTitles         []string
	PreferredLocation string
	JobTypes          []string
	ExperienceLevel   string
	Skills            []string
	Industries        []string
}

// SearchPreferences supersede candidate preferences per field when present.
type SearchPreferences struct {
	UserID             uuid.UUID
	LocationFilter     []string
	LocationFlexible   *bool
	RemoteOnly         bool
	RecencyWindow      string
	JobLevels          []string
	ExcludedIndustries []string
	SalaryMin          *int
	SalaryMax          *int
}

type PreferenceRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (CandidatePreferences, error)
	Save(ctx context.Context, prefs CandidatePreferences) error
	FindSearchByUserID(ctx context.Context, userID uuid.UUID) (SearchPreferences, error)
	SaveSearch(ctx context.Context, prefs SearchPreferences) error
}

type PostgresPreferenceRepository struct {
	db database.DB
}

func NewPostgresPreferenceRepository(db database.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

func (r *PostgresPreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (CandidatePreferences, error) {
	p := CandidatePreferences{UserID: userID}
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(job_titles, '{}'),
		        COALESCE(preferred_location, ''),
		        COALESCE(job_types, '{}'),
		        COALESCE(experience_level, ''),
		        COALESCE(skills, '{}'),
		        COALESCE(industries, '{}')
		 FROM user_preferences
		 WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&p.JobTitles, &p.PreferredLocation, &p.JobTypes, &p.ExperienceLevel, &p.Skills, &p.Industries); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CandidatePreferences{}, ErrPreferencesNotFound
		}
		return CandidatePreferences{}, err
	}
	return p, nil
}

func (r *PostgresPreferenceRepository) Save(ctx context.Context, prefs CandidatePreferences) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO user_preferences (user_id, job_titles, preferred_location, job_types, experience_level, skills, industries, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   job_titles = EXCLUDED.job_titles,
		   preferred_location = EXCLUDED.preferred_location,
		   job_types = EXCLUDED.job_types,
		   experience_level = EXCLUDED.experience_level,
		   skills = EXCLUDED.skills,
		   industries = EXCLUDED.industries,
		   updated_at = now()`,
		prefs.UserID, prefs.JobTitles, prefs.PreferredLocation, prefs.JobTypes,
		prefs.ExperienceLevel, prefs.Skills, prefs.Industries,
	)
	return err
}

func (r *PostgresPreferenceRepository) FindSearchByUserID(ctx context.Context, userID uuid.UUID) (SearchPreferences, error) {
	p := SearchPreferences{UserID: userID}
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(location_filter, '{}'),
		        location_flexible,
		        COALESCE(remote_only, false),
		        COALESCE(recency_window, ''),
		        COALESCE(job_levels, '{}'),
		        COALESCE(excluded_industries, '{}'),
		        salary_min,
		        salary_max
		 FROM search_preferences
		 WHERE user_id = $1`,
		userID,
	)
	if err := row.Scan(&p.LocationFilter, &p.LocationFlexible, &p.RemoteOnly, &p.RecencyWindow, &p.JobLevels, &p.ExcludedIndustries, &p.SalaryMin, &p.SalaryMax); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SearchPreferences{}, ErrSearchPreferencesNotFound
		}
		return SearchPreferences{}, err
	}
	return p, nil
}

func (r *PostgresPreferenceRepository) SaveSearch(ctx context.Context, prefs SearchPreferences) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO search_preferences (user_id, location_filter, location_flexible, remote_only, recency_window, job_levels, excluded_industries, salary_min, salary_max, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
		 ON CONFLICT (user_id) DO UPDATE SET
		   location_filter = EXCLUDED.location_filter,
		   location_flexible = EXCLUDED.location_flexible,
		   remote_only = EXCLUDED.remote_only,
		   recency_window = EXCLUDED.recency_window,
		   job_levels = EXCLUDED.job_levels,
		   excluded_industries = EXCLUDED.excluded_industries,
		   salary_min = EXCLUDED.salary_min,
		   salary_max = EXCLUDED.salary_max,
		   updated_at = now()`,
		prefs.UserID, prefs.LocationFilter, prefs.LocationFlexible, prefs.RemoteOnly,
		prefs.RecencyWindow, prefs.JobLevels, prefs.ExcludedIndustries,
		prefs.SalaryMin, prefs.SalaryMax,
	)
	return err
}
