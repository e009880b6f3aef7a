package resumes

import "context"

// Repo defines persistence operations for analysis results. Records are
// write-once; there is no update or delete.
type Repo interface {
	// Create inserts one record keyed by its ID. The store assigns
	// CreatedAt and writes it back into the record. A failed create leaves
	// no row behind.
	Create(ctx context.Context, result *AnalysisResult) error
	// ListAll returns every stored record ordered by CreatedAt descending.
	ListAll(ctx context.Context) ([]AnalysisResult, error)
}
