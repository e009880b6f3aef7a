package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain name", "resume.pdf", "resume.pdf"},
		{"trims whitespace", "  resume.pdf  ", "resume.pdf"},
		{"forward slashes replaced", "a/b/resume.pdf", "a_b_resume.pdf"},
		{"back slashes replaced", `a\b\resume.pdf`, "a_b_resume.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeFileName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeFileNameRejectsInvalid(t *testing.T) {
	for _, input := range []string{"", "   ", "../etc/passwd", "a..b"} {
		_, err := SanitizeFileName(input)
		assert.Error(t, err, "input %q", input)
	}
}
