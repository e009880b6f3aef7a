package resumes

import "errors"

var (
	// ErrInvalidInput means the caller supplied empty text or file name.
	ErrInvalidInput = errors.New("resume text and file name are required")
	// ErrModelFailure means the provider call itself errored.
	ErrModelFailure = errors.New("model invocation failed")
	// ErrNotJSON means the model reply did not parse as JSON after fence stripping.
	ErrNotJSON = errors.New("model response is not valid JSON")
	// ErrSchemaMismatch means the normalized payload failed schema validation.
	ErrSchemaMismatch = errors.New("model response does not match schema")
	// ErrExtractionFailed means no text could be extracted from the document.
	ErrExtractionFailed = errors.New("text extraction failed")
)
