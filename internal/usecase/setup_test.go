package usecase

import (
	"context"
	"testing"

	"resume-builder/internal/adapter/memory"
	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/templates"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type harness struct {
	resumes *memory.Resumes
	subs    *memory.Subscriptions
	catalog *templates.Catalog
	svc     *ResumeService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cat, err := templates.New("")
	require.NoError(t, err)
	h := &harness{resumes: memory.NewResumes(), subs: memory.NewSubscriptions(), catalog: cat}
	h.svc = NewResumeService(h.resumes, cat, h.subs)
	return h
}

func (h *harness) subscribe(userID uuid.UUID, tier domain.Tier) {
	h.subs.Set(domain.Subscription{UserID: userID, Tier: tier})
}

func adaValues() model.ResumeValues {
	return model.ResumeValues{
		FirstName: "Ada",
		LastName:  "Lovelace",
		JobTitle:  "Engineer",
		Email:     "ada@example.com",
		WorkExperiences: []model.WorkExperience{{
			Position:    "Developer",
			Company:     "Acme",
			StartDate:   "2022-01",
			Description: []string{"Shipped X"},
		}},
	}
}

func logCount(t *testing.T, repo *memory.Credits, userID uuid.UUID) int {
	t.Helper()
	logs, err := repo.Logs(context.Background(), userID, 1000)
	require.NoError(t, err)
	return len(logs)
}
