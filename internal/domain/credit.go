package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	CreditBizReferral = "referral"
	CreditBizSignup   = "signup"
	CreditBizAI       = "ai_generation"
	CreditBizRefund   = "ai_refund"
)

type Credit struct {
	UserID       uuid.UUID `json:"user_id"`
	Balance      int64     `json:"balance"`
	ReferralCode string    `json:"referral_code"`
	// ReferredBy is set once the user redeemed someone else's code.
	ReferredBy *uuid.UUID `json:"referred_by,omitempty"`
}

// CreditLog is one ledger line. Key is unique and makes a change idempotent.
type CreditLog struct {
	ID           int64     `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Key          string    `json:"key"`
	ChangeAmount int64     `json:"change_amount"`
	Biz          string    `json:"biz"`
	Desc         string    `json:"desc"`
	CreatedAt    time.Time `json:"created_at"`
}

type Subscription struct {
	UserID    uuid.UUID  `json:"user_id"`
	Tier      Tier       `json:"tier"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// Effective returns the tier in force at now; expired subscriptions are free.
func (s Subscription) Effective(now time.Time) Tier {
	if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
		return TierFree
	}
	return s.Tier
}
