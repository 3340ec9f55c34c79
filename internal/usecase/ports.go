package usecase

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

type ResumeRepo interface {
	Create(ctx context.Context, r *domain.Resume) error
	Get(ctx context.Context, id uuid.UUID) (domain.Resume, error)
	Update(ctx context.Context, r *domain.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error)
}

type TemplateSource interface {
	Get(name string) (domain.ResumeTemplate, error)
	List() []domain.ResumeTemplate
}

// SubscriptionRepo returns a free subscription for users without one.
type SubscriptionRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Subscription, error)
}

type JobsRepo interface {
	Save(ctx context.Context, j *domain.RenderJob) error
	Get(ctx context.Context, id uuid.UUID) (domain.RenderJob, error)
}

type Compiler interface {
	Compile(ctx context.Context, markup string) ([]byte, error)
}

type FileStore interface {
	Put(ctx context.Context, key string, data []byte) (string, error)
}

// RevisionStore remembers the newest preview revision per résumé.
type RevisionStore interface {
	// Claim records rev and reports true when it is newer than any seen.
	Claim(ctx context.Context, resumeID uuid.UUID, rev int64) (bool, error)
	IsLatest(ctx context.Context, resumeID uuid.UUID, rev int64) (bool, error)
}

type CreditRepo interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (domain.Credit, error)
	FindByReferralCode(ctx context.Context, code string) (domain.Credit, error)
	// Create stores a new account and its opening ledger line.
	Create(ctx context.Context, c domain.Credit, l domain.CreditLog) error
	// Apply adds l.ChangeAmount to the balance. A repeated Key is a no-op and
	// a debit beyond the balance fails with domain.ErrCreditNotEnough.
	Apply(ctx context.Context, l domain.CreditLog) error
	// Redeem links userID to referrerID once and credits both with bonus.
	Redeem(ctx context.Context, userID, referrerID uuid.UUID, bonus int64) error
	Logs(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CreditLog, error)
}

type RenderObserver interface {
	ObserveRender(template, kind, outcome string)
}

func observe(o RenderObserver, template, kind, outcome string) {
	if o != nil {
		o.ObserveRender(template, kind, outcome)
	}
}
