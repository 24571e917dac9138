package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// TempStorage writes an upload to a uniquely named transient file that lives
// for one request. The returned cleanup removes the file and swallows
// removal errors; callers defer it on every exit path.
type TempStorage interface {
	Save(file *multipart.FileHeader) (string, func(), error)
}

type tempStorage struct {
	dir string
}

func NewTempStorage(dir string) TempStorage {
	if dir == "" {
		dir = os.TempDir()
	}
	return &tempStorage{dir: dir}
}

func (s *tempStorage) Save(file *multipart.FileHeader) (string, func(), error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".bin"
	}

	filePath := filepath.Join(s.dir, fmt.Sprintf("resume_%s%s", uuid.New().String(), ext))

	src, err := file.Open()
	if err != nil {
		return "", nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(filePath)
		return "", nil, fmt.Errorf("failed to save file: %w", err)
	}

	cleanup := func() {
		_ = os.Remove(filePath)
	}

	return filePath, cleanup, nil
}
