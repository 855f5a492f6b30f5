package md2quote

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2quote/internal/fileutil"
	"github.com/alnah/go-md2quote/internal/yamlutil"
)

// profileFilePerm keeps the profile file private; it carries bank details.
const profileFilePerm = 0o600

// ProfileStore owns the persistence of a Profile, including the numbering
// counter state. The engine functions never touch the store; the caller
// loads a profile, runs the engine, and persists counter updates explicitly.
//
// Concurrent number generation against the same file needs external
// serialization: the load-compute-ApplyNumber sequence is a critical
// section, one update in flight at a time per profile.
type ProfileStore struct {
	path string
}

// NewProfileStore creates a store backed by the given file path.
func NewProfileStore(path string) (*ProfileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrProfileNotFound)
	}
	return &ProfileStore{path: path}, nil
}

// ResolveProfilePath locates a profile file by name: <name>.yaml or
// <name>.yml in the current directory, then in the user config directory
// (~/.config/go-md2quote/). Names containing a path separator are used as
// file paths directly.
func ResolveProfilePath(nameOrPath string) (string, error) {
	if nameOrPath == "" {
		return "", fmt.Errorf("%w: empty name", ErrProfileNotFound)
	}

	if strings.ContainsAny(nameOrPath, "/\\") {
		return nameOrPath, nil
	}

	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := nameOrPath + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-md2quote", nameOrPath+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrProfileNotFound, strings.Join(triedPaths, ", "))
}

// Path returns the backing file path.
func (s *ProfileStore) Path() string {
	return s.path
}

// Load reads and validates the profile file. Unknown fields fail the parse
// so configuration typos surface instead of being dropped.
func (s *ProfileStore) Load() (Profile, error) {
	data, err := os.ReadFile(s.path) // #nosec G304 -- profile path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, s.path)
		}
		return Profile{}, fmt.Errorf("reading profile file: %w", err)
	}

	var p Profile
	if err := yamlutil.UnmarshalStrict(data, &p); err != nil {
		return Profile{}, fmt.Errorf("%w: %v", ErrProfileParse, err)
	}

	if p.Defaults.VATType != "" && !p.Defaults.VATType.Valid() {
		return Profile{}, fmt.Errorf("%w: defaults.vat_type %q", ErrProfileParse, p.Defaults.VATType)
	}

	return p, nil
}

// Save writes the profile back atomically, creating parent directories as
// needed.
func (s *ProfileStore) Save(p Profile) error {
	data, err := yamlutil.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("creating profile directory: %w", err)
		}
	}

	if err := fileutil.WriteFileAtomic(s.path, data, profileFilePerm); err != nil {
		return fmt.Errorf("writing profile file: %w", err)
	}
	return nil
}

// ApplyNumber persists the counter state of a generated quotation number:
// it re-reads the profile, stamps the counter and period key, and saves.
// Call it once per issued number, after the caller has accepted it.
func (s *ProfileStore) ApplyNumber(n NumberResult) error {
	p, err := s.Load()
	if err != nil {
		return err
	}
	p.QuotationNumber.Counter = n.Counter
	p.QuotationNumber.LastPeriod = n.PeriodKey
	return s.Save(p)
}
