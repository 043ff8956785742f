package employee

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage is the persistence port for the whole collection. The contract is
// deliberately rewrite-the-world: Load reads everything, SaveAll replaces
// everything. Swapping the JSON file for a real datastore only means
// implementing these two methods.
type Storage interface {
	Load() ([]Employee, error)
	SaveAll(employees []Employee) error
}

type jsonStorage struct {
	path string
}

// NewJSONStorage persists the collection as a single JSON document at path.
func NewJSONStorage(path string) Storage {
	return &jsonStorage{path: path}
}

func (s *jsonStorage) Load() ([]Employee, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run, nothing stored yet.
			return []Employee{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var employees []Employee
	if err := json.Unmarshal(content, &employees); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return employees, nil
}

// SaveAll writes the full document to a temp file and renames it over the
// target so readers never observe a partial write.
func (s *jsonStorage) SaveAll(employees []Employee) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	content, err := json.MarshalIndent(employees, "", "    ")
	if err != nil {
		return fmt.Errorf("encode employees: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "employees-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
