package domain

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// RenderJob tracks one asynchronous LaTeX → PDF compilation of a stored résumé.
type RenderJob struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	ResumeID uuid.UUID `json:"resume_id"`
	Template string    `json:"template"`
	Status   JobStatus `json:"status"`
	// Metadata carries artifact paths and failure details.
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

func (j *RenderJob) Fail(reason string) {
	j.Status = JobFailed
	if j.Metadata == nil {
		j.Metadata = map[string]interface{}{}
	}
	j.Metadata["error"] = reason
	j.UpdatedAt = time.Now()
}
