package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"resume-builder/internal/domain"
	"resume-builder/internal/metrics"
	"resume-builder/internal/model"
	"resume-builder/internal/render"

	"github.com/google/uuid"
)

// PreviewRequest renders the stored résumé unless Values or Template are set,
// which lets the editor preview unsaved changes.
type PreviewRequest struct {
	Revision int64               `json:"revision"`
	Template string              `json:"template,omitempty"`
	Values   *model.ResumeValues `json:"values,omitempty"`
}

type PreviewResult struct {
	Template string `json:"template"`
	Revision int64  `json:"revision"`
	Markup   string `json:"markup"`
	// Stale is set when a newer revision was requested meanwhile; the
	// caller should discard the markup.
	Stale bool `json:"stale"`
}

type PreviewService struct {
	resumes   *ResumeService
	revisions RevisionStore
	metrics   RenderObserver
}

func NewPreviewService(resumes *ResumeService, revisions RevisionStore, m RenderObserver) *PreviewService {
	return &PreviewService{resumes: resumes, revisions: revisions, metrics: m}
}

func (s *PreviewService) Preview(ctx context.Context, userID, id uuid.UUID, req PreviewRequest) (PreviewResult, error) {
	r, err := s.resumes.Get(ctx, userID, id)
	if err != nil {
		return PreviewResult{}, err
	}
	values := r.Values
	if req.Values != nil {
		if err := model.Validate(*req.Values); err != nil {
			return PreviewResult{}, err
		}
		values = *req.Values
		if values.Customization == nil {
			values.Customization = r.Values.Customization
		}
	}
	name := r.Template
	if req.Template != "" {
		name = req.Template
	}
	tpl, err := s.resumes.allowedTemplate(ctx, userID, name)
	if err != nil {
		if errors.Is(err, domain.ErrTierTooLow) {
			observe(s.metrics, name, "preview", metrics.OutcomeTierDeny)
		}
		return PreviewResult{}, err
	}

	claimed, err := s.revisions.Claim(ctx, id, req.Revision)
	if err != nil {
		observe(s.metrics, tpl.Name, "preview", metrics.OutcomeFailed)
		return PreviewResult{}, fmt.Errorf("%w: claim revision: %v", domain.ErrRenderFailed, err)
	}

	if !claimed {
		slog.Debug("preview revision already superseded", "resume", id, "revision", req.Revision)
	}

	markup := render.Generate(tpl.Name, tpl.Markup, values)
	if markup == "" {
		observe(s.metrics, tpl.Name, "preview", metrics.OutcomeEmpty)
		return PreviewResult{}, fmt.Errorf("%w: template %s produced no markup", domain.ErrRenderFailed, tpl.Name)
	}

	latest, err := s.revisions.IsLatest(ctx, id, req.Revision)
	if err != nil {
		slog.Warn("revision check failed, treating preview as current", "resume", id, "error", err)
		latest = true
	}
	res := PreviewResult{
		Template: tpl.Name,
		Revision: req.Revision,
		Markup:   markup,
		Stale:    !latest,
	}
	if res.Stale {
		observe(s.metrics, tpl.Name, "preview", metrics.OutcomeStale)
	} else {
		observe(s.metrics, tpl.Name, "preview", metrics.OutcomeOK)
	}
	return res, nil
}
