// Package memory holds process-local repositories. The server falls back to
// them when Postgres is unreachable; nothing survives a restart.
package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
)

type Resumes struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]domain.Resume
}

func NewResumes() *Resumes {
	return &Resumes{rows: make(map[uuid.UUID]domain.Resume)}
}

func (m *Resumes) Create(_ context.Context, r *domain.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[r.ID] = *r
	return nil
}

func (m *Resumes) Get(_ context.Context, id uuid.UUID) (domain.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rows[id]
	if !ok {
		return domain.Resume{}, domain.ErrNotFound
	}
	return r, nil
}

func (m *Resumes) Update(_ context.Context, r *domain.Resume) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[r.ID]; !ok {
		return domain.ErrNotFound
	}
	m.rows[r.ID] = *r
	return nil
}

func (m *Resumes) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rows, id)
	return nil
}

// ListByUser returns the most recently updated first.
func (m *Resumes) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Resume, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Resume
	for _, r := range m.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out, nil
}

type Jobs struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]domain.RenderJob
}

func NewJobs() *Jobs {
	return &Jobs{rows: make(map[uuid.UUID]domain.RenderJob)}
}

// Save stores a copy so later changes to j are not visible until saved again.
func (m *Jobs) Save(_ context.Context, j *domain.RenderJob) error {
	cp := *j
	cp.Metadata = make(map[string]interface{}, len(j.Metadata))
	for k, v := range j.Metadata {
		cp.Metadata[k] = v
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[j.ID] = cp
	return nil
}

func (m *Jobs) Get(_ context.Context, id uuid.UUID) (domain.RenderJob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	j, ok := m.rows[id]
	if !ok {
		return domain.RenderJob{}, domain.ErrNotFound
	}
	return j, nil
}

// Subscriptions treats unknown users as free.
type Subscriptions struct {
	mu   sync.RWMutex
	rows map[uuid.UUID]domain.Subscription
}

func NewSubscriptions() *Subscriptions {
	return &Subscriptions{rows: make(map[uuid.UUID]domain.Subscription)}
}

func (m *Subscriptions) Set(s domain.Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows[s.UserID] = s
}

func (m *Subscriptions) Get(_ context.Context, userID uuid.UUID) (domain.Subscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.rows[userID]; ok {
		return s, nil
	}
	return domain.Subscription{UserID: userID, Tier: domain.TierFree}, nil
}

var errAccountExists = errors.New("credit account already exists")

type Credits struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]domain.Credit
	logs     []domain.CreditLog
	keys     map[string]bool
}

func NewCredits() *Credits {
	return &Credits{accounts: make(map[uuid.UUID]domain.Credit), keys: make(map[string]bool)}
}

func (m *Credits) FindByUser(_ context.Context, userID uuid.UUID) (domain.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.accounts[userID]
	if !ok {
		return domain.Credit{}, domain.ErrNotFound
	}
	return c, nil
}

func (m *Credits) FindByReferralCode(_ context.Context, code string) (domain.Credit, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.accounts {
		if strings.EqualFold(c.ReferralCode, code) {
			return c, nil
		}
	}
	return domain.Credit{}, domain.ErrNotFound
}

func (m *Credits) Create(_ context.Context, c domain.Credit, l domain.CreditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[c.UserID]; ok {
		return errAccountExists
	}
	m.accounts[c.UserID] = c
	m.appendLog(l)
	return nil
}

func (m *Credits) Apply(_ context.Context, l domain.CreditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.keys[l.Key] {
		return nil
	}
	c, ok := m.accounts[l.UserID]
	if !ok {
		return domain.ErrNotFound
	}
	if c.Balance+l.ChangeAmount < 0 {
		return domain.ErrCreditNotEnough
	}
	c.Balance += l.ChangeAmount
	m.accounts[l.UserID] = c
	m.appendLog(l)
	return nil
}

func (m *Credits) Redeem(_ context.Context, userID, referrerID uuid.UUID, bonus int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	me, ok := m.accounts[userID]
	if !ok {
		return domain.ErrNotFound
	}
	if me.ReferredBy != nil {
		return domain.ErrAlreadyReferred
	}
	ref, ok := m.accounts[referrerID]
	if !ok {
		return domain.ErrReferralCodeNotFound
	}
	me.ReferredBy = &referrerID
	me.Balance += bonus
	ref.Balance += bonus
	m.accounts[userID], m.accounts[referrerID] = me, ref
	m.appendLog(domain.CreditLog{UserID: userID, Key: "referral:" + userID.String(), ChangeAmount: bonus, Biz: domain.CreditBizReferral})
	m.appendLog(domain.CreditLog{UserID: referrerID, Key: "referral:" + userID.String() + ":referrer", ChangeAmount: bonus, Biz: domain.CreditBizReferral})
	return nil
}

// Logs returns the newest entries first.
func (m *Credits) Logs(_ context.Context, userID uuid.UUID, limit int) ([]domain.CreditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.CreditLog
	for i := len(m.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if m.logs[i].UserID == userID {
			out = append(out, m.logs[i])
		}
	}
	return out, nil
}

func (m *Credits) appendLog(l domain.CreditLog) {
	l.ID = int64(len(m.logs) + 1)
	m.keys[l.Key] = true
	m.logs = append(m.logs, l)
}
