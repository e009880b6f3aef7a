package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
)

// PGRepo implements Repo using Postgres. The four nested structures are
// stored as JSONB columns; created_at is assigned by the database.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis result in a single statement.
func (r *PGRepo) Create(ctx context.Context, result *AnalysisResult) error {
	const query = `
INSERT INTO resumes (id, file_name, personal_details, resume_content, skills, ai_feedback)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at`

	personalDetails, err := json.Marshal(result.PersonalDetails)
	if err != nil {
		return err
	}
	resumeContent, err := json.Marshal(result.ResumeContent)
	if err != nil {
		return err
	}
	skills, err := json.Marshal(result.Skills)
	if err != nil {
		return err
	}
	aiFeedback, err := json.Marshal(result.AIFeedback)
	if err != nil {
		return err
	}

	return r.DB.QueryRowContext(ctx, query,
		result.ID,
		result.FileName,
		personalDetails,
		resumeContent,
		skills,
		aiFeedback,
	).Scan(&result.CreatedAt)
}

// ListAll returns every stored record, newest first.
func (r *PGRepo) ListAll(ctx context.Context) ([]AnalysisResult, error) {
	const query = `
SELECT id, file_name, personal_details, resume_content, skills, ai_feedback, created_at
FROM resumes
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []AnalysisResult{}
	for rows.Next() {
		var result AnalysisResult
		var personalDetails, resumeContent, skills, aiFeedback []byte
		if err := rows.Scan(
			&result.ID,
			&result.FileName,
			&personalDetails,
			&resumeContent,
			&skills,
			&aiFeedback,
			&result.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(personalDetails) > 0 {
			if err := json.Unmarshal(personalDetails, &result.PersonalDetails); err != nil {
				return nil, err
			}
		}
		if len(resumeContent) > 0 {
			if err := json.Unmarshal(resumeContent, &result.ResumeContent); err != nil {
				return nil, err
			}
		}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &result.Skills); err != nil {
				return nil, err
			}
		}
		if len(aiFeedback) > 0 {
			if err := json.Unmarshal(aiFeedback, &result.AIFeedback); err != nil {
				return nil, err
			}
		}
		out = append(out, result)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
