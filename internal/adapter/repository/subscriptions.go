package repository

import (
	"context"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// SubscriptionsRepo reads tiers written by the billing system.
type SubscriptionsRepo struct {
	pool *pgxpool.Pool
}

func NewSubscriptionsRepo(pool *pgxpool.Pool) *SubscriptionsRepo {
	return &SubscriptionsRepo{pool: pool}
}

// Get returns the free tier for users without a row.
func (r *SubscriptionsRepo) Get(ctx context.Context, userID uuid.UUID) (domain.Subscription, error) {
	var (
		tier      string
		expiresAt *time.Time
	)
	err := r.pool.QueryRow(ctx, `SELECT tier, expires_at FROM subscriptions WHERE user_id = $1`, userID).
		Scan(&tier, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Subscription{UserID: userID, Tier: domain.TierFree}, nil
		}
		return domain.Subscription{}, errors.Wrap(err, "select subscription")
	}
	return domain.Subscription{UserID: userID, Tier: domain.ParseTier(tier), ExpiresAt: expiresAt}, nil
}
