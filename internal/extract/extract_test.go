package extract

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	localstore "resume-insight/internal/shared/storage/object/local"
)

func TestNormalizeMimeType(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		fileName string
		want     string
	}{
		{"pdf passthrough", "application/pdf", "cv.pdf", mimePDF},
		{"docx passthrough", mimeDOCX, "cv.docx", mimeDOCX},
		{"plain passthrough", "text/plain", "cv.txt", mimePlain},
		{"charset suffix stripped", "text/plain; charset=utf-8", "cv.txt", mimePlain},
		{"zip resolved by docx extension", "application/zip", "cv.docx", mimeDOCX},
		{"octet-stream resolved by pdf extension", "application/octet-stream", "cv.PDF", mimePDF},
		{"empty resolved by txt extension", "", "notes.txt", mimePlain},
		{"unknown stays unknown", "image/png", "photo.png", "image/png"},
		{"octet-stream with unknown extension", "application/octet-stream", "blob.bin", "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeMimeType(tt.mimeType, tt.fileName))
		})
	}
}

func TestExtractTextFromBytesPlainText(t *testing.T) {
	text, err := ExtractTextFromBytes(context.Background(), []byte("Jane Smith\nBackend Engineer"), "text/plain; charset=utf-8", "jane.txt")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith\nBackend Engineer", text)
}

func TestExtractTextFromBytesUnsupportedType(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte{0x89, 0x50, 0x4e, 0x47}, "image/png", "photo.png")
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractTextFromBytesCorruptPDF(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("this is not a pdf"), "application/pdf", "cv.pdf")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractTextFromBytesCorruptDOCX(t *testing.T) {
	_, err := ExtractTextFromBytes(context.Background(), []byte("this is not a zip"), mimeDOCX, "cv.docx")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractTextFromBytesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractTextFromBytes(ctx, []byte("text"), "text/plain", "cv.txt")
	require.ErrorIs(t, err, context.Canceled)
}

func TestExtractTextSavesDerivedCopy(t *testing.T) {
	dir := t.TempDir()
	store := localstore.New(dir)
	ctx := context.Background()

	key, _, mimeType, err := store.Save(ctx, "jane.txt", strings.NewReader("Jane Smith\nBackend Engineer\n"))
	require.NoError(t, err)

	text, err := ExtractText(ctx, store, key, mimeType, "jane.txt")
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Smith")

	derived, err := store.Open(ctx, key+".extracted.txt")
	require.NoError(t, err)
	defer derived.Close()

	saved, err := io.ReadAll(derived)
	require.NoError(t, err)
	assert.Equal(t, text, string(saved))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, filepath.Base(key))
	assert.Contains(t, names, filepath.Base(key)+".extracted.txt")
}
