package domain

import (
	"time"

	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// Resume is a stored résumé owned by one user and bound to one template.
type Resume struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	Template  string             `json:"template"`
	Values    model.ResumeValues `json:"values"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
