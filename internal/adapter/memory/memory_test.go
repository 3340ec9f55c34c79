package memory

import (
	"context"
	"testing"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumesListOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewResumes()
	user := uuid.New()
	now := time.Now()
	older := domain.Resume{ID: uuid.New(), UserID: user, UpdatedAt: now.Add(-time.Hour)}
	newer := domain.Resume{ID: uuid.New(), UserID: user, UpdatedAt: now}
	require.NoError(t, repo.Create(ctx, &older))
	require.NoError(t, repo.Create(ctx, &newer))
	require.NoError(t, repo.Create(ctx, &domain.Resume{ID: uuid.New(), UserID: uuid.New()}))

	list, err := repo.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)

	assert.ErrorIs(t, repo.Update(ctx, &domain.Resume{ID: uuid.New()}), domain.ErrNotFound)
}

func TestJobsSaveCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewJobs()
	j := &domain.RenderJob{ID: uuid.New(), Status: domain.JobPending, Metadata: map[string]interface{}{}}
	require.NoError(t, repo.Save(ctx, j))
	j.Metadata["pdf"] = "x.pdf"

	got, err := repo.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.NotContains(t, got.Metadata, "pdf")
}

func TestCreditsApply(t *testing.T) {
	ctx := context.Background()
	repo := NewCredits()
	user := uuid.New()
	require.NoError(t, repo.Create(ctx, domain.Credit{UserID: user, Balance: 2, ReferralCode: "ABC"}, domain.CreditLog{UserID: user, Key: "signup", ChangeAmount: 2}))

	testCases := []struct {
		name        string
		log         domain.CreditLog
		wantErr     error
		wantBalance int64
	}{
		{name: "debit", log: domain.CreditLog{UserID: user, Key: "a", ChangeAmount: -1}, wantBalance: 1},
		{name: "repeated key", log: domain.CreditLog{UserID: user, Key: "a", ChangeAmount: -1}, wantBalance: 1},
		{name: "overdraft", log: domain.CreditLog{UserID: user, Key: "b", ChangeAmount: -5}, wantErr: domain.ErrCreditNotEnough, wantBalance: 1},
		{name: "unknown user", log: domain.CreditLog{UserID: uuid.New(), Key: "c", ChangeAmount: 1}, wantErr: domain.ErrNotFound, wantBalance: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := repo.Apply(ctx, tc.log)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			c, err := repo.FindByUser(ctx, user)
			require.NoError(t, err)
			assert.Equal(t, tc.wantBalance, c.Balance)
		})
	}

	logs, err := repo.Logs(ctx, user, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "a", logs[0].Key)

	found, err := repo.FindByReferralCode(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, user, found.UserID)
}
