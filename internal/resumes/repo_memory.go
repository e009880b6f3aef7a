package resumes

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryRepo stores analysis results in memory and is safe for concurrent
// use. It backs dev mode without a database and handler tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]AnalysisResult
	ordered []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]AnalysisResult),
	}
}

// Create stores the result, assigning CreatedAt.
func (r *MemoryRepo) Create(ctx context.Context, result *AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[result.ID]; exists {
		return fmt.Errorf("duplicate id %s", result.ID)
	}
	result.CreatedAt = time.Now().UTC()
	r.byID[result.ID] = *result
	r.ordered = append(r.ordered, result.ID)
	return nil
}

// ListAll returns all results, newest first. Records created at the same
// instant keep reverse insertion order.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]AnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]AnalysisResult, 0, len(r.ordered))
	for i := len(r.ordered) - 1; i >= 0; i-- {
		out = append(out, r.byID[r.ordered[i]])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
