package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

type ResumeService struct {
	repo      ResumeRepo
	templates TemplateSource
	subs      SubscriptionRepo
	now       func() time.Time
}

func NewResumeService(repo ResumeRepo, templates TemplateSource, subs SubscriptionRepo) *ResumeService {
	return &ResumeService{repo: repo, templates: templates, subs: subs, now: time.Now}
}

// TemplateInfo is a catalog entry as seen by one user.
type TemplateInfo struct {
	domain.ResumeTemplate
	Locked bool `json:"locked"`
}

func (s *ResumeService) Templates(ctx context.Context, userID uuid.UUID) ([]TemplateInfo, error) {
	tier, err := s.tier(ctx, userID)
	if err != nil {
		return nil, err
	}
	list := s.templates.List()
	out := make([]TemplateInfo, 0, len(list))
	for _, t := range list {
		out = append(out, TemplateInfo{ResumeTemplate: t, Locked: !tier.Allows(t.MinTier)})
	}
	return out, nil
}

func (s *ResumeService) Create(ctx context.Context, userID uuid.UUID, templateName string, values model.ResumeValues) (domain.Resume, error) {
	tpl, err := s.allowedTemplate(ctx, userID, templateName)
	if err != nil {
		return domain.Resume{}, err
	}
	if err := model.Validate(values); err != nil {
		return domain.Resume{}, err
	}
	if values.Customization == nil {
		def, err := DefaultCustomization(tpl.Name)
		if err != nil {
			return domain.Resume{}, err
		}
		values.Customization = &def
	}
	now := s.now()
	r := domain.Resume{
		ID:        uuid.New(),
		UserID:    userID,
		Template:  tpl.Name,
		Values:    values,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, &r); err != nil {
		return domain.Resume{}, fmt.Errorf("create resume: %w", err)
	}
	return r, nil
}

// Get returns the résumé when userID owns it. Other users see ErrNotFound.
func (s *ResumeService) Get(ctx context.Context, userID, id uuid.UUID) (domain.Resume, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.Resume{}, err
	}
	if r.UserID != userID {
		return domain.Resume{}, domain.ErrNotFound
	}
	return r, nil
}

func (s *ResumeService) List(ctx context.Context, userID uuid.UUID) ([]domain.Resume, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update replaces the values. A missing customization keeps the stored one.
func (s *ResumeService) Update(ctx context.Context, userID, id uuid.UUID, values model.ResumeValues) (domain.Resume, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return domain.Resume{}, err
	}
	if err := model.Validate(values); err != nil {
		return domain.Resume{}, err
	}
	if values.Customization == nil {
		values.Customization = r.Values.Customization
	}
	r.Values = values
	return s.save(ctx, r)
}

func (s *ResumeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// SwitchTemplate binds the résumé to another template and starts from that
// template's defaults.
func (s *ResumeService) SwitchTemplate(ctx context.Context, userID, id uuid.UUID, templateName string) (domain.Resume, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return domain.Resume{}, err
	}
	tpl, err := s.allowedTemplate(ctx, userID, templateName)
	if err != nil {
		return domain.Resume{}, err
	}
	def, err := DefaultCustomization(tpl.Name)
	if err != nil {
		return domain.Resume{}, err
	}
	r.Template = tpl.Name
	r.Values.Customization = &def
	return s.save(ctx, r)
}

func (s *ResumeService) Customize(ctx context.Context, userID, id uuid.UUID, patch CustomizationPatch) (domain.Resume, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return domain.Resume{}, err
	}
	def, err := DefaultCustomization(r.Template)
	if err != nil {
		return domain.Resume{}, err
	}
	next, err := ApplyCustomizationPatch(MergeCustomization(def, r.Values.Customization), patch)
	if err != nil {
		return domain.Resume{}, err
	}
	r.Values.Customization = &next
	if err := model.Validate(r.Values); err != nil {
		return domain.Resume{}, fmt.Errorf("%w: %v", domain.ErrInvalidCustomization, err)
	}
	return s.save(ctx, r)
}

func (s *ResumeService) ResetCustomization(ctx context.Context, userID, id uuid.UUID) (domain.Resume, error) {
	r, err := s.Get(ctx, userID, id)
	if err != nil {
		return domain.Resume{}, err
	}
	def, err := ResetCustomization(r.Template)
	if err != nil {
		return domain.Resume{}, err
	}
	r.Values.Customization = &def
	return s.save(ctx, r)
}

func (s *ResumeService) save(ctx context.Context, r domain.Resume) (domain.Resume, error) {
	r.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, &r); err != nil {
		return domain.Resume{}, fmt.Errorf("update resume: %w", err)
	}
	return r, nil
}

func (s *ResumeService) tier(ctx context.Context, userID uuid.UUID) (domain.Tier, error) {
	sub, err := s.subs.Get(ctx, userID)
	if err != nil {
		return domain.TierFree, fmt.Errorf("load subscription: %w", err)
	}
	return sub.Effective(s.now()), nil
}

// allowedTemplate resolves name and checks the user's tier against it.
func (s *ResumeService) allowedTemplate(ctx context.Context, userID uuid.UUID, name string) (domain.ResumeTemplate, error) {
	tpl, err := s.templates.Get(name)
	if err != nil {
		return domain.ResumeTemplate{}, err
	}
	tier, err := s.tier(ctx, userID)
	if err != nil {
		return domain.ResumeTemplate{}, err
	}
	if err := checkTier(tier, tpl); err != nil {
		return domain.ResumeTemplate{}, err
	}
	return tpl, nil
}

func checkTier(tier domain.Tier, tpl domain.ResumeTemplate) error {
	if tier.Allows(tpl.MinTier) {
		return nil
	}
	return fmt.Errorf("%w: %s needs %s, have %s", domain.ErrTierTooLow, tpl.Name, tpl.MinTier, tier)
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}
