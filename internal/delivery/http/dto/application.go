package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApplyRequest struct {
	JobID uuid.UUID `json:"job_id"`
}

type ApplicationResponse struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	AppliedAt time.Time `json:"applied_at"`
}
