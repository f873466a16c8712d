package dto

import (
	"time"

	"github.com/google/uuid"
)

type PostingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	SalaryRange string    `json:"salary_range,omitempty"`
	Industry    string    `json:"industry,omitempty"`
	RemoteType  string    `json:"remote_work_type,omitempty"`
	JobLevel    string    `json:"job_level,omitempty"`
	JobType     string    `json:"job_type,omitempty"`
	PostedAt    time.Time `json:"posted_at"`
}
