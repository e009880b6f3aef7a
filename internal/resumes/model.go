package resumes

import "time"

// SentinelName replaces a missing candidate name so downstream consumers
// never see an empty identity field.
const SentinelName = "Unknown User"

// PersonalDetails holds contact information extracted from a resume.
// All fields are nullable; the pipeline guarantees Name is non-nil.
type PersonalDetails struct {
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	LinkedIn  *string `json:"linkedin"`
	Portfolio *string `json:"portfolio"`
}

// WorkExperience is one employment entry.
type WorkExperience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is one education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Project is one project entry.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ResumeContent groups the narrative sections of a resume.
type ResumeContent struct {
	Summary        *string          `json:"summary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Projects       []Project        `json:"projects"`
	Certifications []string         `json:"certifications"`
}

// Skills splits extracted skills into technical and soft.
type Skills struct {
	TechnicalSkills []string `json:"technicalSkills"`
	SoftSkills      []string `json:"softSkills"`
}

// AIFeedback carries model-generated advice about the resume.
type AIFeedback struct {
	Rating           *int     `json:"rating"`
	ImprovementAreas *string  `json:"improvementAreas"`
	SuggestedSkills  []string `json:"suggestedSkills"`
}

// AnalysisPayload is the model-produced portion of an analysis, before the
// pipeline assigns identity and timestamps.
type AnalysisPayload struct {
	PersonalDetails PersonalDetails `json:"personalDetails"`
	ResumeContent   ResumeContent   `json:"resumeContent"`
	Skills          Skills          `json:"skills"`
	AIFeedback      AIFeedback      `json:"aiFeedback"`
}

// AnalysisResult is the persisted and returned analysis record.
// Records are write-once: created by the pipeline, never updated.
type AnalysisResult struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	AnalysisPayload
	CreatedAt time.Time `json:"createdAt"`
}
