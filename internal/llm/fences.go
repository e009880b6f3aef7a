package llm

import "strings"

// StripFences removes markdown code-fence markers some providers wrap around
// JSON replies. It only trims known wrapper patterns; it never attempts to
// repair malformed JSON, and input without fences passes through unchanged.
func StripFences(raw string) string {
	clean := strings.TrimSpace(raw)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	return strings.TrimSpace(clean)
}
