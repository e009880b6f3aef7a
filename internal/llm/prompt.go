package llm

import (
	_ "embed"
	"strings"
)

//go:embed prompts/analyze.txt
var analyzePrompt string

// AnalysisTemperature is the fixed sampling temperature for resume analysis.
// Moderate and non-zero so feedback fields read naturally while the JSON
// structure stays stable.
const AnalysisTemperature float32 = 0.7

// BuildAnalysisPrompt fills the analysis template with the schema description
// and the resume text. The resume text is embedded verbatim between the
// delimiter lines, never truncated or transformed.
func BuildAnalysisPrompt(schemaJSON, resumeText string) string {
	prompt := strings.Replace(analyzePrompt, "{{SCHEMA}}", schemaJSON, 1)
	return strings.Replace(prompt, "{{RESUME_TEXT}}", resumeText, 1)
}
