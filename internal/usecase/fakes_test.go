package usecase

import (
	"context"
	"sync"

	"resume-builder/internal/domain"
	"resume-builder/pkg/ai"

	"github.com/google/uuid"
)

type memJobs struct {
	mu      sync.Mutex
	rows    map[uuid.UUID]domain.RenderJob
	history []domain.JobStatus
}

func newMemJobs() *memJobs { return &memJobs{rows: map[uuid.UUID]domain.RenderJob{}} }

func (m *memJobs) Save(_ context.Context, j *domain.RenderJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *j
	cp.Metadata = map[string]interface{}{}
	for k, v := range j.Metadata {
		cp.Metadata[k] = v
	}
	m.rows[j.ID] = cp
	m.history = append(m.history, j.Status)
	return nil
}

func (m *memJobs) Get(_ context.Context, id uuid.UUID) (domain.RenderJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.rows[id]
	if !ok {
		return domain.RenderJob{}, domain.ErrNotFound
	}
	return j, nil
}

type fakeCompiler struct {
	mu      sync.Mutex
	outputs [][]byte
	errs    []error
	calls   int
	sources []string
}

func (f *fakeCompiler) Compile(_ context.Context, markup string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.calls
	f.calls++
	f.sources = append(f.sources, markup)
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	var out []byte
	if i < len(f.outputs) {
		out = f.outputs[i]
	}
	return out, err
}

type memFiles struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemFiles() *memFiles { return &memFiles{files: map[string][]byte{}} }

func (m *memFiles) Put(_ context.Context, key string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = append([]byte(nil), data...)
	return "/data/" + key, nil
}

type fakeGenerator struct {
	out string
	err error
}

func (f fakeGenerator) Generate(context.Context, ai.Request) (string, error) {
	return f.out, f.err
}

type countingObserver struct {
	mu     sync.Mutex
	counts map[string]int
}

func (o *countingObserver) ObserveRender(template, kind, outcome string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.counts == nil {
		o.counts = map[string]int{}
	}
	o.counts[template+"/"+kind+"/"+outcome]++
}
