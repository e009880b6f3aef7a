package resumes

import (
	"context"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &PGRepo{DB: db}
	result := sampleResult("4f3c2a10-aaaa-bbbb-cccc-000000000001", "jane.pdf")
	createdAt := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO resumes")).
		WithArgs(
			result.ID,
			result.FileName,
			mustJSON(t, result.PersonalDetails),
			mustJSON(t, result.ResumeContent),
			mustJSON(t, result.Skills),
			mustJSON(t, result.AIFeedback),
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	require.NoError(t, repo.Create(context.Background(), &result))
	assert.Equal(t, createdAt, result.CreatedAt, "created_at comes back from the database")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &PGRepo{DB: db}

	newer := sampleResult("4f3c2a10-aaaa-bbbb-cccc-000000000002", "newer.pdf")
	newer.CreatedAt = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	older := sampleResult("4f3c2a10-aaaa-bbbb-cccc-000000000003", "older.pdf")
	older.CreatedAt = newer.CreatedAt.Add(-time.Hour)

	cols := []string{"id", "file_name", "personal_details", "resume_content", "skills", "ai_feedback", "created_at"}
	rows := sqlmock.NewRows(cols)
	for _, r := range []AnalysisResult{newer, older} {
		rows.AddRow(
			r.ID,
			r.FileName,
			mustJSON(t, r.PersonalDetails),
			mustJSON(t, r.ResumeContent),
			mustJSON(t, r.Skills),
			mustJSON(t, r.AIFeedback),
			r.CreatedAt,
		)
	}
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).WillReturnRows(rows)

	listed, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, newer, listed[0])
	assert.Equal(t, older, listed[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPGRepoListAllEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := &PGRepo{DB: db}
	cols := []string{"id", "file_name", "personal_details", "resume_content", "skills", "ai_feedback", "created_at"}
	mock.ExpectQuery(regexp.QuoteMeta("FROM resumes")).WillReturnRows(sqlmock.NewRows(cols))

	listed, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
