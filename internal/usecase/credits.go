package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
)

const referralCodeLen = 10

type CreditService struct {
	repo          CreditRepo
	referralBonus int64
	signupBonus   int64
	newCode       func() string
	now           func() time.Time
}

func NewCreditService(repo CreditRepo, referralBonus, signupBonus int64) *CreditService {
	return &CreditService{
		repo:          repo,
		referralBonus: referralBonus,
		signupBonus:   signupBonus,
		newCode: func() string {
			return strings.ToUpper(shortuuid.New()[:referralCodeLen])
		},
		now: time.Now,
	}
}

// Account returns the user's balance, opening it with the signup bonus on
// first use.
func (s *CreditService) Account(ctx context.Context, userID uuid.UUID) (domain.Credit, error) {
	c, err := s.repo.FindByUser(ctx, userID)
	if err == nil {
		return c, nil
	}
	if !isNotFound(err) {
		return domain.Credit{}, fmt.Errorf("load credits: %w", err)
	}
	c = domain.Credit{UserID: userID, Balance: s.signupBonus, ReferralCode: s.newCode()}
	opening := domain.CreditLog{
		UserID:       userID,
		Key:          "signup:" + userID.String(),
		ChangeAmount: s.signupBonus,
		Biz:          domain.CreditBizSignup,
		Desc:         "signup bonus",
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, c, opening); err != nil {
		// lost a race with a concurrent first request
		if existing, ferr := s.repo.FindByUser(ctx, userID); ferr == nil {
			return existing, nil
		}
		return domain.Credit{}, fmt.Errorf("open credits: %w", err)
	}
	return c, nil
}

// Redeem applies someone else's referral code. Both users get the bonus.
func (s *CreditService) Redeem(ctx context.Context, userID uuid.UUID, code string) (domain.Credit, error) {
	me, err := s.Account(ctx, userID)
	if err != nil {
		return domain.Credit{}, err
	}
	if me.ReferredBy != nil {
		return domain.Credit{}, domain.ErrAlreadyReferred
	}
	referrer, err := s.repo.FindByReferralCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if isNotFound(err) {
		return domain.Credit{}, domain.ErrReferralCodeNotFound
	}
	if err != nil {
		return domain.Credit{}, fmt.Errorf("find referral code: %w", err)
	}
	if referrer.UserID == userID {
		return domain.Credit{}, domain.ErrSelfReferral
	}
	if err := s.repo.Redeem(ctx, userID, referrer.UserID, s.referralBonus); err != nil {
		return domain.Credit{}, err
	}
	return s.repo.FindByUser(ctx, userID)
}

// Charge debits amount and returns the ledger key to pass to Refund.
func (s *CreditService) Charge(ctx context.Context, userID uuid.UUID, amount int64, desc string) (string, error) {
	if _, err := s.Account(ctx, userID); err != nil {
		return "", err
	}
	key := "ai:" + shortuuid.New()
	err := s.repo.Apply(ctx, domain.CreditLog{
		UserID:       userID,
		Key:          key,
		ChangeAmount: -amount,
		Biz:          domain.CreditBizAI,
		Desc:         desc,
		CreatedAt:    s.now(),
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// Refund returns a charge. Refunding the same key twice credits once.
func (s *CreditService) Refund(ctx context.Context, userID uuid.UUID, chargeKey string, amount int64) error {
	return s.repo.Apply(ctx, domain.CreditLog{
		UserID:       userID,
		Key:          "refund:" + chargeKey,
		ChangeAmount: amount,
		Biz:          domain.CreditBizRefund,
		Desc:         "refund " + chargeKey,
		CreatedAt:    s.now(),
	})
}

func (s *CreditService) Logs(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CreditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.Logs(ctx, userID, limit)
}

// IsCreditError reports whether err is one of the user-facing credit errors.
func IsCreditError(err error) bool {
	return errors.Is(err, domain.ErrCreditNotEnough) ||
		errors.Is(err, domain.ErrSelfReferral) ||
		errors.Is(err, domain.ErrAlreadyReferred) ||
		errors.Is(err, domain.ErrReferralCodeNotFound)
}
