package resumes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// PayloadSchema returns the JSON Schema (draft 2020-12 subset) for
// AnalysisPayload as a generic map. It is the single definition backing both
// the schema description embedded in the prompt and local validation, so the
// two can never drift apart.
func PayloadSchema() map[string]any {
	nullableString := func() map[string]any {
		return map[string]any{"type": []string{"string", "null"}}
	}
	stringArray := func() map[string]any {
		return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
	}
	objectArray := func(props map[string]any) map[string]any {
		return map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":       "object",
				"properties": props,
			},
		}
	}

	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"properties": map[string]any{
			"personalDetails": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":      nullableString(),
					"email":     nullableString(),
					"phone":     nullableString(),
					"linkedin":  nullableString(),
					"portfolio": nullableString(),
				},
			},
			"resumeContent": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"summary": nullableString(),
					"workExperience": objectArray(map[string]any{
						"title":       map[string]any{"type": "string"},
						"company":     map[string]any{"type": "string"},
						"duration":    map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					}),
					"education": objectArray(map[string]any{
						"degree":      map[string]any{"type": "string"},
						"institution": map[string]any{"type": "string"},
						"year":        map[string]any{"type": "string"},
					}),
					"projects": objectArray(map[string]any{
						"name":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					}),
					"certifications": stringArray(),
				},
			},
			"skills": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"technicalSkills": stringArray(),
					"softSkills":      stringArray(),
				},
			},
			"aiFeedback": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"rating": map[string]any{
						"type":    []string{"integer", "null"},
						"minimum": 1,
						"maximum": 10,
					},
					"improvementAreas": nullableString(),
					"suggestedSkills":  stringArray(),
				},
			},
		},
		"required": []string{"personalDetails", "resumeContent", "skills", "aiFeedback"},
	}
}

// SchemaJSON renders the payload schema as indented JSON for embedding in
// the analysis prompt.
func SchemaJSON() string {
	data, err := json.MarshalIndent(PayloadSchema(), "", "  ")
	if err != nil {
		// The schema is a static literal; marshal cannot fail.
		panic(fmt.Sprintf("marshal payload schema: %v", err))
	}
	return string(data)
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// ValidatePayload checks a normalized payload against the schema.
func ValidatePayload(payload AnalysisPayload) error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("payload.json", bytes.NewReader([]byte(SchemaJSON()))); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("payload.json")
	})
	if compileErr != nil {
		return fmt.Errorf("compile payload schema: %w", compileErr)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return compiledSchema.Validate(doc)
}
