package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/metrics"
	"resume-builder/internal/render"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	errEmptyMarkup = errors.New("template produced no markup")
	errInvalidPDF  = errors.New("invalid PDF output")
)

// Processor compiles stored résumés to PDF in the background.
type Processor struct {
	resumes   ResumeRepo
	templates TemplateSource
	subs      SubscriptionRepo
	compiler  Compiler
	files     FileStore
	jobs      JobsRepo
	metrics   RenderObserver

	// Attempts and Backoff control compile retries; the n-th retry waits
	// Backoff * 2^(n-1).
	Attempts int
	Backoff  time.Duration
	now      func() time.Time
}

func NewProcessor(resumes ResumeRepo, templates TemplateSource, subs SubscriptionRepo, compiler Compiler, files FileStore, jobs JobsRepo, m RenderObserver) *Processor {
	return &Processor{
		resumes:   resumes,
		templates: templates,
		subs:      subs,
		compiler:  compiler,
		files:     files,
		jobs:      jobs,
		metrics:   m,
		Attempts:  3,
		Backoff:   time.Second,
		now:       time.Now,
	}
}

// Enqueue records a pending job for a résumé the user owns.
func (p *Processor) Enqueue(ctx context.Context, userID, resumeID uuid.UUID) (*domain.RenderJob, error) {
	r, err := p.resumes.Get(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if r.UserID != userID {
		return nil, domain.ErrNotFound
	}
	now := p.now()
	job := &domain.RenderJob{
		ID:        uuid.New(),
		UserID:    userID,
		ResumeID:  resumeID,
		Template:  r.Template,
		Status:    domain.JobPending,
		Metadata:  map[string]interface{}{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := p.jobs.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("save job: %w", err)
	}
	return job, nil
}

// Job returns a job owned by userID.
func (p *Processor) Job(ctx context.Context, userID, jobID uuid.UUID) (domain.RenderJob, error) {
	j, err := p.jobs.Get(ctx, jobID)
	if err != nil {
		return domain.RenderJob{}, err
	}
	if j.UserID != userID {
		return domain.RenderJob{}, domain.ErrNotFound
	}
	return j, nil
}

// Process runs one job to completion. The job is persisted at every status
// change; the returned error is also recorded in its metadata.
func (p *Processor) Process(ctx context.Context, job *domain.RenderJob) error {
	if job.Metadata == nil {
		job.Metadata = map[string]interface{}{}
	}
	job.Status = domain.JobRunning
	job.UpdatedAt = p.now()
	p.persist(ctx, job)

	var (
		res domain.Resume
		tpl domain.ResumeTemplate
		sub domain.Subscription
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := p.resumes.Get(gctx, job.ResumeID)
		if err != nil {
			return fmt.Errorf("load resume: %w", err)
		}
		res = r
		return nil
	})
	g.Go(func() error {
		t, err := p.templates.Get(job.Template)
		if err != nil {
			return fmt.Errorf("load template: %w", err)
		}
		tpl = t
		return nil
	})
	g.Go(func() error {
		s, err := p.subs.Get(gctx, job.UserID)
		if err != nil {
			return fmt.Errorf("load subscription: %w", err)
		}
		sub = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return p.fail(ctx, job, err, metrics.OutcomeFailed)
	}

	if res.UserID != job.UserID {
		return p.fail(ctx, job, domain.ErrNotFound, metrics.OutcomeFailed)
	}
	if err := checkTier(sub.Effective(p.now()), tpl); err != nil {
		return p.fail(ctx, job, err, metrics.OutcomeTierDeny)
	}

	markup := render.Generate(tpl.Name, tpl.Markup, res.Values)
	if markup == "" {
		return p.fail(ctx, job, errEmptyMarkup, metrics.OutcomeEmpty)
	}

	base := path.Join(job.UserID.String(), job.ID.String())
	texPath, err := p.files.Put(ctx, base+".tex", []byte(markup))
	if err != nil {
		return p.fail(ctx, job, fmt.Errorf("store markup: %w", err), metrics.OutcomeFailed)
	}
	job.Metadata["tex"] = texPath

	pdf, err := p.compile(ctx, markup)
	if err != nil {
		return p.fail(ctx, job, err, metrics.OutcomeFailed)
	}
	pdfPath, err := p.files.Put(ctx, base+".pdf", pdf)
	if err != nil {
		return p.fail(ctx, job, fmt.Errorf("store pdf: %w", err), metrics.OutcomeFailed)
	}

	job.Status = domain.JobCompleted
	job.Metadata["pdf"] = pdfPath
	job.Metadata["pdf_bytes"] = len(pdf)
	job.UpdatedAt = p.now()
	observe(p.metrics, tpl.Name, "pdf", metrics.OutcomeOK)
	if err := p.jobs.Save(ctx, job); err != nil {
		return fmt.Errorf("save job: %w", err)
	}
	slog.Info("render job completed", "job", job.ID, "template", tpl.Name, "bytes", len(pdf))
	return nil
}

// compile retries with exponential backoff until the engine returns a
// PDF.
func (p *Processor) compile(ctx context.Context, markup string) ([]byte, error) {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		pdf, err := p.compiler.Compile(ctx, markup)
		if err == nil {
			if bytes.HasPrefix(pdf, []byte("%PDF")) {
				return pdf, nil
			}
			err = fmt.Errorf("%w (len=%d)", errInvalidPDF, len(pdf))
		}
		lastErr = err
		slog.Warn("compile attempt failed", "attempt", i+1, "error", err)

		if i < attempts-1 {
			backoff := time.Duration(1<<i) * p.Backoff
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("compile failed after %d attempts: %w", attempts, lastErr)
}

func (p *Processor) fail(ctx context.Context, job *domain.RenderJob, err error, outcome string) error {
	job.Fail(err.Error())
	observe(p.metrics, job.Template, "pdf", outcome)
	slog.Error("render job failed", "job", job.ID, "template", job.Template, "error", err)
	p.persist(ctx, job)
	return err
}

func (p *Processor) persist(ctx context.Context, job *domain.RenderJob) {
	if err := p.jobs.Save(ctx, job); err != nil {
		slog.Warn("failed to save job", "job", job.ID, "status", job.Status, "error", err)
	}
}
