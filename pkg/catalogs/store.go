package catalogs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/planequery/fleetsync/pkg/errors"
	"github.com/planequery/fleetsync/pkg/logging"
)

// File and directory permissions for persisted catalog documents.
const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Store persists one catalog document per airline under a base
// directory, keyed by IATA/ICAO code. Documents are whole-file
// replacements on each successful reconciliation; history lives inside
// the records, not in a storage-layer log.
type Store struct {
	dir string
}

// NewStore creates a store rooted at the given directory.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the document path for an airline code.
func (s *Store) Path(code string) string {
	return filepath.Join(s.dir, strings.ToLower(code)+".json")
}

// Load reads the catalog document for an airline. A missing document is
// reported through errors.ErrNotFound so callers can start a fresh
// catalog on first run.
func (s *Store) Load(code string) (*AirlineCatalog, error) {
	path := s.Path(code)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("catalog", code)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	var catalog AirlineCatalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &catalog, nil
}

// Save writes a catalog document, replacing any previous version. The
// write goes through a temp file and rename so a crash never leaves a
// half-written document behind.
func (s *Store) Save(catalog *AirlineCatalog) error {
	code := catalog.Airline.Code()
	if code == "" {
		return errors.NewValidationError("airline", code, "catalog has no airline code")
	}

	if err := os.MkdirAll(s.dir, dirPermissions); err != nil {
		return errors.WrapIO("create", s.dir, err)
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return errors.WrapParse("json", s.Path(code), err)
	}
	data = append(data, '\n')

	path := s.Path(code)
	tmp, err := os.CreateTemp(s.dir, "."+strings.ToLower(code)+"-*.json")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.WrapIO("write", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), filePermissions); err != nil {
		return errors.WrapIO("write", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Debug().
		Str("airline", code).
		Str("path", path).
		Int("aircraft", catalog.Len()).
		Msg("Saved catalog document")
	return nil
}

// List returns the airline codes with persisted catalogs, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.WrapIO("read", s.dir, err)
	}

	var codes []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		codes = append(codes, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(codes)
	return codes, nil
}
