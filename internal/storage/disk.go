package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// GenerateName builds a collision-resistant file name from the form field
// that carried the upload and the original file's extension:
// {field}-{32 hex chars}{ext}. It does no I/O.
func GenerateName(field, originalName string) (string, error) {
	suffix := make([]byte, 16)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("failed to generate file name: %w", err)
	}

	return field + "-" + hex.EncodeToString(suffix) + filepath.Ext(originalName), nil
}

// Disk persists uploaded blobs under a single content directory and hands
// back relative paths suitable for serving over /uploads.
type Disk struct {
	dir string
}

func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &Disk{dir: dir}, nil
}

func (d *Disk) Store(field, originalName string, data io.Reader) (string, error) {
	name, err := GenerateName(field, originalName)
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return filepath.ToSlash(filepath.Join(filepath.Base(d.dir), name)), nil
}
