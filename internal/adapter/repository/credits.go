package repository

import (
	"context"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/pkg/errors"
)

// CreditsRepo keeps balances in credits and every change in credit_logs. The
// unique credit_logs.key makes a change idempotent.
type CreditsRepo struct {
	pool *pgxpool.Pool
}

func NewCreditsRepo(pool *pgxpool.Pool) *CreditsRepo {
	return &CreditsRepo{pool: pool}
}

const creditColumns = `user_id, balance, referral_code, referred_by`

func scanCredit(row pgx.Row) (domain.Credit, error) {
	var c domain.Credit
	err := row.Scan(&c.UserID, &c.Balance, &c.ReferralCode, &c.ReferredBy)
	return c, err
}

func (r *CreditsRepo) FindByUser(ctx context.Context, userID uuid.UUID) (domain.Credit, error) {
	c, err := scanCredit(r.pool.QueryRow(ctx, `SELECT `+creditColumns+` FROM credits WHERE user_id = $1`, userID))
	if err != nil {
		return domain.Credit{}, wrap(err, "select credits")
	}
	return c, nil
}

func (r *CreditsRepo) FindByReferralCode(ctx context.Context, code string) (domain.Credit, error) {
	c, err := scanCredit(r.pool.QueryRow(ctx, `SELECT `+creditColumns+` FROM credits WHERE referral_code = $1`, code))
	if err != nil {
		return domain.Credit{}, wrap(err, "select credits by code")
	}
	return c, nil
}

func (r *CreditsRepo) Create(ctx context.Context, c domain.Credit, l domain.CreditLog) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO credits (user_id, balance, referral_code) VALUES ($1,$2,$3)`,
			c.UserID, c.Balance, c.ReferralCode); err != nil {
			return errors.Wrap(err, "insert credits")
		}
		_, err := insertLog(ctx, tx, l)
		return err
	})
}

func (r *CreditsRepo) Apply(ctx context.Context, l domain.CreditLog) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		inserted, err := insertLog(ctx, tx, l)
		if err != nil || !inserted {
			return err
		}
		tag, err := tx.Exec(ctx, `UPDATE credits SET balance = balance + $2, updated_at = now()
			WHERE user_id = $1 AND balance + $2 >= 0`, l.UserID, l.ChangeAmount)
		if err != nil {
			return errors.Wrap(err, "update balance")
		}
		if tag.RowsAffected() == 1 {
			return nil
		}
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM credits WHERE user_id = $1)`, l.UserID).Scan(&exists); err != nil {
			return errors.Wrap(err, "check credits")
		}
		if !exists {
			return domain.ErrNotFound
		}
		return domain.ErrCreditNotEnough
	})
}

func (r *CreditsRepo) Redeem(ctx context.Context, userID, referrerID uuid.UUID, bonus int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE credits SET referred_by = $2, balance = balance + $3, updated_at = now()
			WHERE user_id = $1 AND referred_by IS NULL`, userID, referrerID, bonus)
		if err != nil {
			return errors.Wrap(err, "mark referred")
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrAlreadyReferred
		}
		if _, err := tx.Exec(ctx, `UPDATE credits SET balance = balance + $2, updated_at = now() WHERE user_id = $1`,
			referrerID, bonus); err != nil {
			return errors.Wrap(err, "credit referrer")
		}
		for _, l := range []domain.CreditLog{
			{UserID: userID, Key: "referral:" + userID.String(), ChangeAmount: bonus, Biz: domain.CreditBizReferral, Desc: "redeemed referral code"},
			{UserID: referrerID, Key: "referral:" + userID.String() + ":referrer", ChangeAmount: bonus, Biz: domain.CreditBizReferral, Desc: "referred " + userID.String()},
		} {
			if _, err := insertLog(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CreditsRepo) Logs(ctx context.Context, userID uuid.UUID, limit int) ([]domain.CreditLog, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, key, change_amount, biz, "desc", created_at
		FROM credit_logs WHERE user_id = $1 ORDER BY id DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list credit logs")
	}
	defer rows.Close()

	var out []domain.CreditLog
	for rows.Next() {
		var l domain.CreditLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Key, &l.ChangeAmount, &l.Biz, &l.Desc, &l.CreatedAt); err != nil {
			return nil, errors.Wrap(err, "scan credit log")
		}
		out = append(out, l)
	}
	return out, errors.Wrap(rows.Err(), "list credit logs")
}

// insertLog reports false when the key was already recorded.
func insertLog(ctx context.Context, tx pgx.Tx, l domain.CreditLog) (bool, error) {
	tag, err := tx.Exec(ctx, `INSERT INTO credit_logs (user_id, key, change_amount, biz, "desc")
		VALUES ($1,$2,$3,$4,$5) ON CONFLICT (key) DO NOTHING`,
		l.UserID, l.Key, l.ChangeAmount, l.Biz, l.Desc)
	if err != nil {
		return false, errors.Wrap(err, "insert credit log")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *CreditsRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := fn(tx); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(ctx), "commit")
}
