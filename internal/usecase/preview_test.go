package usecase

import (
	"context"
	"errors"
	"testing"

	"resume-builder/internal/adapter/cache"
	"resume-builder/internal/domain"
	"resume-builder/internal/metrics"
	"resume-builder/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenRevisions struct{}

func (brokenRevisions) Claim(context.Context, uuid.UUID, int64) (bool, error) {
	return false, errors.New("redis down")
}

func (brokenRevisions) IsLatest(context.Context, uuid.UUID, int64) (bool, error) {
	return true, nil
}

func TestPreview(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	obs := &countingObserver{}
	svc := NewPreviewService(h.svc, cache.NewMemoryRevisions(), obs)
	user := uuid.New()
	r, err := h.svc.Create(ctx, user, "classic", adaValues())
	require.NoError(t, err)

	res, err := svc.Preview(ctx, user, r.ID, PreviewRequest{Revision: 1})
	require.NoError(t, err)
	assert.False(t, res.Stale)
	assert.Equal(t, "classic", res.Template)
	assert.Contains(t, res.Markup, "Ada")
	assert.Contains(t, res.Markup, "Acme")
	assert.NotContains(t, res.Markup, "<<")
	assert.Equal(t, 1, obs.counts["classic/preview/"+metrics.OutcomeOK])
}

func TestPreviewUnsavedValues(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	svc := NewPreviewService(h.svc, cache.NewMemoryRevisions(), nil)
	user := uuid.New()
	r, err := h.svc.Create(ctx, user, "classic", adaValues())
	require.NoError(t, err)

	v := adaValues()
	v.FirstName = "Grace"
	res, err := svc.Preview(ctx, user, r.ID, PreviewRequest{Revision: 1, Values: &v})
	require.NoError(t, err)
	assert.Contains(t, res.Markup, "Grace")

	stored, err := h.svc.Get(ctx, user, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", stored.Values.FirstName)

	bad := model.ResumeValues{Customization: &model.CustomizationValues{PrimaryColor: "7,7,7"}}
	_, err = svc.Preview(ctx, user, r.ID, PreviewRequest{Revision: 2, Values: &bad})
	assert.ErrorIs(t, err, model.ErrInvalidResume)
}

func TestPreviewStaleRevision(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	revs := cache.NewMemoryRevisions()
	obs := &countingObserver{}
	svc := NewPreviewService(h.svc, revs, obs)
	user := uuid.New()
	r, err := h.svc.Create(ctx, user, "classic", adaValues())
	require.NoError(t, err)

	_, err = svc.Preview(ctx, user, r.ID, PreviewRequest{Revision: 5})
	require.NoError(t, err)

	old, err := svc.Preview(ctx, user, r.ID, PreviewRequest{Revision: 3})
	require.NoError(t, err)
	assert.True(t, old.Stale)
	assert.Equal(t, 1, obs.counts["classic/preview/"+metrics.OutcomeStale])

	again, err := svc.Preview(ctx, user, r.ID, PreviewRequest{Revision: 5})
	require.NoError(t, err)
	assert.False(t, again.Stale, "re-rendering the newest revision is current")
}

func TestPreviewErrors(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	obs := &countingObserver{}
	svc := NewPreviewService(h.svc, cache.NewMemoryRevisions(), obs)
	user := uuid.New()
	r, err := h.svc.Create(ctx, user, "classic", adaValues())
	require.NoError(t, err)

	_, err = svc.Preview(ctx, uuid.New(), r.ID, PreviewRequest{Revision: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.Preview(ctx, user, r.ID, PreviewRequest{Revision: 1, Template: "modern"})
	assert.ErrorIs(t, err, domain.ErrTierTooLow)
	assert.Equal(t, 1, obs.counts["modern/preview/"+metrics.OutcomeTierDeny])

	broken := NewPreviewService(h.svc, brokenRevisions{}, nil)
	_, err = broken.Preview(ctx, user, r.ID, PreviewRequest{Revision: 1})
	assert.ErrorIs(t, err, domain.ErrRenderFailed)
}
