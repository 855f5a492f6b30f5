package md2quote

import "time"

// defaultTimeout bounds PDF rendering per document.
const defaultTimeout = 1 * time.Minute

// serviceConfig holds configurable Service behavior.
type serviceConfig struct {
	timeout  time.Duration
	style    string
	template string
	assetDir string
}

// Option customizes a Service.
type Option func(*Service)

// WithTimeout sets the PDF rendering timeout (default 1 minute).
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.cfg.timeout = d
		}
	}
}

// WithStyle selects a named stylesheet instead of the built-in default.
func WithStyle(name string) Option {
	return func(s *Service) {
		s.cfg.style = name
	}
}

// WithTemplate selects a named layout template instead of the built-in
// quote layout.
func WithTemplate(name string) Option {
	return func(s *Service) {
		s.cfg.template = name
	}
}

// WithAssetDir loads templates and styles from a directory, falling back
// to the embedded defaults for assets the directory does not carry.
func WithAssetDir(dir string) Option {
	return func(s *Service) {
		s.cfg.assetDir = dir
	}
}
