package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationResponse struct {
	JobID        uuid.UUID `json:"job_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Industry     string    `json:"industry"`
	MatchScore   float64   `json:"match_score"`
	MatchReasons []string  `json:"match_reasons"`
	PostedAt     time.Time `json:"posted_at"`
}
