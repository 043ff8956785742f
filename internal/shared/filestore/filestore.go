package filestore

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type FileStore interface {
	// Store writes data under dir with a random filename that keeps ext and
	// returns the relative path "dir/<name>.<ext>".
	Store(data []byte, ext string, dir string) (string, error)
}

// DiskStore persists files below a single root directory on local disk.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Store(data []byte, ext string, dir string) (string, error) {
	name, err := randomName()
	if err != nil {
		return "", fmt.Errorf("generate filename: %w", err)
	}

	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext != "" {
		name = name + "." + ext
	}
	relPath := filepath.ToSlash(filepath.Join(dir, name))

	fullPath := filepath.Join(s.root, dir, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return relPath, nil
}

// randomName returns 40 hex characters, matching the length of the filenames
// historical uploads already use.
func randomName() (string, error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
