// Package assets provides the HTML layout templates and CSS styles used to
// render quotations. Defaults are embedded in the binary; a directory
// loader allows user overrides.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for asset loading.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidAssetDir  = errors.New("invalid asset directory")
)

// DefaultTemplateName is the built-in quotation layout.
const DefaultTemplateName = "quote"

// DefaultStyleName is the built-in stylesheet.
const DefaultStyleName = "default"

//go:embed styles/*.css
var styles embed.FS

//go:embed templates/*.html
var templates embed.FS

// Loader defines the contract for loading styles and layout templates.
type Loader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML layout template by name (without .html
	// extension).
	LoadTemplate(name string) (string, error)
}

// ValidateAssetName rejects names that could escape the asset directory.
func ValidateAssetName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// EmbeddedLoader serves the built-in assets.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}
	return string(content), nil
}

// DirLoader loads assets from a user directory, falling back to the
// embedded defaults for names it does not carry. Expected layout:
//
//	<dir>/styles/<name>.css
//	<dir>/templates/<name>.html
type DirLoader struct {
	dir      string
	fallback *EmbeddedLoader
}

// NewDirLoader creates a DirLoader rooted at dir.
func NewDirLoader(dir string) (*DirLoader, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAssetDir, dir)
	}
	return &DirLoader{dir: dir, fallback: NewEmbeddedLoader()}, nil
}

func (d *DirLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	path := filepath.Join(d.dir, "styles", name+".css")
	if content, err := os.ReadFile(path); err == nil { // #nosec G304 -- path is validated against traversal above
		return string(content), nil
	}
	return d.fallback.LoadStyle(name)
}

func (d *DirLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	path := filepath.Join(d.dir, "templates", name+".html")
	if content, err := os.ReadFile(path); err == nil { // #nosec G304 -- path is validated against traversal above
		return string(content), nil
	}
	return d.fallback.LoadTemplate(name)
}

// Compile-time interface checks.
var (
	_ Loader = (*EmbeddedLoader)(nil)
	_ Loader = (*DirLoader)(nil)
)
