package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/extract"
	"resume-insight/internal/llm"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/storage/object"
	"resume-insight/internal/shared/telemetry"
)

// Service runs the extraction pipeline: prompt construction, model
// invocation, response normalization, schema validation, persistence.
type Service struct {
	Repo  Repo
	LLM   llm.Client
	Store object.ObjectStore
}

// Analyze runs the full pipeline for pre-extracted resume text and returns
// the persisted result in the same call. Nothing is retried: a provider or
// storage failure surfaces immediately and leaves no record behind.
func (s *Service) Analyze(ctx context.Context, text, fileName string) (AnalysisResult, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(fileName) == "" {
		return AnalysisResult{}, ErrInvalidInput
	}

	metrics.IncAnalysisStarted()
	started := time.Now()

	prompt := llm.BuildAnalysisPrompt(SchemaJSON(), text)

	raw, err := s.LLM.Generate(ctx, prompt, llm.Options{
		Temperature: llm.AnalysisTemperature,
		JSONMode:    true,
	})
	if err != nil {
		metrics.IncAnalysisFailed()
		return AnalysisResult{}, fmt.Errorf("%w: %v", ErrModelFailure, err)
	}

	cleaned := llm.StripFences(raw)

	var payload AnalysisPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.bad_json", map[string]any{
			"file_name": fileName,
			"error":     err.Error(),
			"raw":       truncate(cleaned, 2000),
		})
		return AnalysisResult{}, ErrNotJSON
	}

	normalizePayload(&payload)

	if err := ValidatePayload(payload); err != nil {
		metrics.IncAnalysisFailed()
		telemetry.Error("analysis.schema_mismatch", map[string]any{
			"file_name": fileName,
			"error":     err.Error(),
		})
		return AnalysisResult{}, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	result := AnalysisResult{
		ID:              uuid.NewString(),
		FileName:        fileName,
		AnalysisPayload: payload,
	}

	if err := s.Repo.Create(ctx, &result); err != nil {
		metrics.IncAnalysisFailed()
		return AnalysisResult{}, fmt.Errorf("save analysis: %w", err)
	}

	durationMs := float64(time.Since(started).Microseconds()) / 1000.0
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(durationMs)
	telemetry.Info("analysis.completed", map[string]any{
		"analysis_id": result.ID,
		"file_name":   fileName,
		"duration_ms": durationMs,
	})

	return result, nil
}

// AnalyzeDocument saves an uploaded document, extracts its text, and runs
// the same pipeline. Extraction failure is a hard error; there is no
// fallback text.
func (s *Service) AnalyzeDocument(ctx context.Context, fileName string, r io.Reader) (AnalysisResult, error) {
	if strings.TrimSpace(fileName) == "" {
		return AnalysisResult{}, ErrInvalidInput
	}
	if s.Store == nil {
		return AnalysisResult{}, errors.New("object store not configured")
	}

	storageKey, _, mimeType, err := s.Store.Save(ctx, fileName, r)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("save upload: %w", err)
	}

	text, err := extract.ExtractText(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedType) {
			return AnalysisResult{}, err
		}
		return AnalysisResult{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return AnalysisResult{}, ErrExtractionFailed
	}

	return s.Analyze(ctx, text, fileName)
}

// History returns all stored results, newest first.
func (s *Service) History(ctx context.Context) ([]AnalysisResult, error) {
	return s.Repo.ListAll(ctx)
}

// normalizePayload repairs the model output so every sequence is present,
// nullable strings are genuinely null rather than empty, the rating stays in
// range, and the name is never missing.
func normalizePayload(payload *AnalysisPayload) {
	pd := &payload.PersonalDetails
	pd.Name = cleanNullable(pd.Name)
	pd.Email = cleanNullable(pd.Email)
	pd.Phone = cleanNullable(pd.Phone)
	pd.LinkedIn = cleanNullable(pd.LinkedIn)
	pd.Portfolio = cleanNullable(pd.Portfolio)
	if pd.Name == nil {
		sentinel := SentinelName
		pd.Name = &sentinel
	}

	rc := &payload.ResumeContent
	rc.Summary = cleanNullable(rc.Summary)
	if rc.WorkExperience == nil {
		rc.WorkExperience = []WorkExperience{}
	}
	if rc.Education == nil {
		rc.Education = []Education{}
	}
	if rc.Projects == nil {
		rc.Projects = []Project{}
	}
	if rc.Certifications == nil {
		rc.Certifications = []string{}
	}

	if payload.Skills.TechnicalSkills == nil {
		payload.Skills.TechnicalSkills = []string{}
	}
	if payload.Skills.SoftSkills == nil {
		payload.Skills.SoftSkills = []string{}
	}

	fb := &payload.AIFeedback
	fb.ImprovementAreas = cleanNullable(fb.ImprovementAreas)
	if fb.SuggestedSkills == nil {
		fb.SuggestedSkills = []string{}
	}
	if fb.Rating != nil && (*fb.Rating < 1 || *fb.Rating > 10) {
		fb.Rating = nil
	}
}

func cleanNullable(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
