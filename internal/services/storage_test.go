package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	assert.NoError(t, err)

	return form.File["file"][0]
}

func TestTempStorage_SaveAndCleanup(t *testing.T) {
	dir := t.TempDir()
	storage := NewTempStorage(dir)

	content := []byte("%PDF-1.4 resume bytes")
	path, cleanup, err := storage.Save(buildFileHeader(t, "resume.pdf", content))
	assert.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	saved, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, content, saved)

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Double cleanup must not panic.
	cleanup()
}

func TestTempStorage_DefaultExtension(t *testing.T) {
	storage := NewTempStorage(t.TempDir())

	path, cleanup, err := storage.Save(buildFileHeader(t, "resume", []byte("bytes")))
	assert.NoError(t, err)
	defer cleanup()

	assert.True(t, strings.HasSuffix(path, ".bin"))
}

func TestTempStorage_UniquePaths(t *testing.T) {
	storage := NewTempStorage(t.TempDir())

	header := buildFileHeader(t, "resume.pdf", []byte("bytes"))

	first, cleanupFirst, err := storage.Save(header)
	assert.NoError(t, err)
	defer cleanupFirst()

	second, cleanupSecond, err := storage.Save(header)
	assert.NoError(t, err)
	defer cleanupSecond()

	assert.NotEqual(t, first, second)
}
