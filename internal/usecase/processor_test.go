package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/metrics"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakePDF = []byte("%PDF-1.5 fake")

type processorFixture struct {
	*harness
	compiler *fakeCompiler
	files    *memFiles
	jobs     *memJobs
	obs      *countingObserver
	proc     *Processor
}

func newProcessorFixture(t *testing.T, compiler *fakeCompiler) *processorFixture {
	h := newHarness(t)
	f := &processorFixture{
		harness:  h,
		compiler: compiler,
		files:    newMemFiles(),
		jobs:     newMemJobs(),
		obs:      &countingObserver{},
	}
	f.proc = NewProcessor(h.resumes, h.catalog, h.subs, compiler, f.files, f.jobs, f.obs)
	f.proc.Backoff = time.Millisecond
	return f
}

func TestProcessorSuccess(t *testing.T) {
	ctx := context.Background()
	f := newProcessorFixture(t, &fakeCompiler{outputs: [][]byte{fakePDF}})
	user := uuid.New()
	r, err := f.svc.Create(ctx, user, "classic", adaValues())
	require.NoError(t, err)

	job, err := f.proc.Enqueue(ctx, user, r.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobPending, job.Status)

	require.NoError(t, f.proc.Process(ctx, job))
	got, err := f.proc.Job(ctx, user, job.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, got.Status)
	assert.Equal(t, len(fakePDF), got.Metadata["pdf_bytes"])
	assert.Equal(t, []domain.JobStatus{domain.JobPending, domain.JobRunning, domain.JobCompleted}, f.jobs.history)

	base := user.String() + "/" + job.ID.String()
	assert.Equal(t, fakePDF, f.files.files[base+".pdf"])
	assert.True(t, strings.Contains(string(f.files.files[base+".tex"]), "Ada"))
	assert.Equal(t, "/data/"+base+".pdf", got.Metadata["pdf"])
	assert.Equal(t, 1, f.obs.counts["classic/pdf/"+metrics.OutcomeOK])

	_, err = f.proc.Job(ctx, uuid.New(), job.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessorRetries(t *testing.T) {
	testCases := []struct {
		name      string
		compiler  *fakeCompiler
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "recovers after transient errors",
			compiler:  &fakeCompiler{errs: []error{errors.New("boom"), errors.New("boom")}, outputs: [][]byte{nil, nil, fakePDF}},
			wantCalls: 3,
		},
		{
			name:      "invalid pdf is retried",
			compiler:  &fakeCompiler{outputs: [][]byte{[]byte("<html>"), fakePDF}},
			wantCalls: 2,
		},
		{
			name:      "gives up after attempts",
			compiler:  &fakeCompiler{errs: []error{errors.New("a"), errors.New("b"), errors.New("c")}},
			wantErr:   true,
			wantCalls: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			f := newProcessorFixture(t, tc.compiler)
			user := uuid.New()
			r, err := f.svc.Create(ctx, user, "classic", adaValues())
			require.NoError(t, err)
			job, err := f.proc.Enqueue(ctx, user, r.ID)
			require.NoError(t, err)

			err = f.proc.Process(ctx, job)
			assert.Equal(t, tc.wantCalls, tc.compiler.calls)
			stored, gerr := f.jobs.Get(ctx, job.ID)
			require.NoError(t, gerr)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Equal(t, domain.JobFailed, stored.Status)
				assert.Contains(t, stored.Metadata["error"], "compile failed after 3 attempts")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, domain.JobCompleted, stored.Status)
		})
	}
}

func TestProcessorTierDenied(t *testing.T) {
	ctx := context.Background()
	f := newProcessorFixture(t, &fakeCompiler{outputs: [][]byte{fakePDF}})
	user := uuid.New()
	f.subscribe(user, domain.TierPro)
	r, err := f.svc.Create(ctx, user, "modern", adaValues())
	require.NoError(t, err)
	job, err := f.proc.Enqueue(ctx, user, r.ID)
	require.NoError(t, err)

	// subscription lapsed between enqueue and processing
	f.subscribe(user, domain.TierFree)
	err = f.proc.Process(ctx, job)
	assert.ErrorIs(t, err, domain.ErrTierTooLow)
	assert.Equal(t, 0, f.compiler.calls)
	assert.Equal(t, domain.JobFailed, job.Status)
	assert.Equal(t, 1, f.obs.counts["modern/pdf/"+metrics.OutcomeTierDeny])
}

func TestProcessorEnqueueOwnership(t *testing.T) {
	ctx := context.Background()
	f := newProcessorFixture(t, &fakeCompiler{})
	r, err := f.svc.Create(ctx, uuid.New(), "classic", adaValues())
	require.NoError(t, err)
	_, err = f.proc.Enqueue(ctx, uuid.New(), r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.proc.Enqueue(ctx, uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProcessorCanceledDuringBackoff(t *testing.T) {
	f := newProcessorFixture(t, &fakeCompiler{errs: []error{errors.New("boom")}})
	f.proc.Backoff = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	user := uuid.New()
	r, err := f.svc.Create(ctx, user, "classic", adaValues())
	require.NoError(t, err)
	job, err := f.proc.Enqueue(ctx, user, r.ID)
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	err = f.proc.Process(ctx, job)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, domain.JobFailed, job.Status)
}
