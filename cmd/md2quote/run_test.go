package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	md2quote "github.com/alnah/go-md2quote"
)

const testProfileYAML = `company:
  name: Ada Lovelace
defaults:
  currency: EUR
  vat_type: german_vat
  tax_rate: 19.0
  language: en
quotation_number:
  enabled: true
  format: "{PREFIX}-{YYYY}-{NNN}"
  counter: 5
  last_period: "2025"
`

const testMarkdown = `---
client:
  name: Example GmbH
---
# Offer

| Description | Qty | Unit | Rate | Total |
| --- | --- | --- | --- | --- |
| Design | 10 | h | 85 | |
`

func writeFixtures(t *testing.T) (inputPath, profilePath string) {
	t.Helper()
	dir := t.TempDir()

	inputPath = filepath.Join(dir, "offer.md")
	if err := os.WriteFile(inputPath, []byte(testMarkdown), 0o600); err != nil {
		t.Fatalf("writing markdown fixture: %v", err)
	}

	profilePath = filepath.Join(dir, "profile.yaml")
	if err := os.WriteFile(profilePath, []byte(testProfileYAML), 0o600); err != nil {
		t.Fatalf("writing profile fixture: %v", err)
	}
	return inputPath, profilePath
}

func TestParseFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		f, err := parseFlags([]string{"offer.md"})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.profile != "config" {
			t.Errorf("profile = %q, want config", f.profile)
		}
		if f.generateNumber || f.htmlOnly || f.verbose || f.version {
			t.Errorf("boolean flags = %+v, want all false", f)
		}
		if len(f.args) != 1 || f.args[0] != "offer.md" {
			t.Errorf("args = %v", f.args)
		}
	})

	t.Run("all flags", func(t *testing.T) {
		f, err := parseFlags([]string{
			"-p", "freelance", "-o", "out.pdf", "--style", "dark",
			"--template", "minimal", "--assets", "/tmp/assets",
			"--date", "2025-06-01", "-n", "--html-only", "-v",
			"offer.md",
		})
		if err != nil {
			t.Fatalf("parseFlags() error = %v", err)
		}
		if f.profile != "freelance" || f.output != "out.pdf" || f.style != "dark" ||
			f.template != "minimal" || f.assetDir != "/tmp/assets" || f.date != "2025-06-01" {
			t.Errorf("flags = %+v", f)
		}
		if !f.generateNumber || !f.htmlOnly || !f.verbose {
			t.Errorf("boolean flags = %+v, want set", f)
		}
	})

	t.Run("unknown flag", func(t *testing.T) {
		if _, err := parseFlags([]string{"--bogus"}); err == nil {
			t.Error("parseFlags() error = nil, want unknown flag error")
		}
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("missing input", func(t *testing.T) {
		err := run(ctx, &cliFlags{}, &bytes.Buffer{})
		if !errors.Is(err, ErrMissingInput) {
			t.Errorf("error = %v, want ErrMissingInput", err)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		err := run(ctx, &cliFlags{args: []string{"offer.txt"}}, &bytes.Buffer{})
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("unreadable input", func(t *testing.T) {
		err := run(ctx, &cliFlags{args: []string{filepath.Join(t.TempDir(), "absent.md")}}, &bytes.Buffer{})
		if !errors.Is(err, ErrReadMarkdown) {
			t.Errorf("error = %v, want ErrReadMarkdown", err)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		inputPath, _ := writeFixtures(t)
		err := run(ctx, &cliFlags{args: []string{inputPath}, profile: filepath.Join(t.TempDir(), "absent.yaml")}, &bytes.Buffer{})
		if err == nil {
			t.Error("run() error = nil, want profile load error")
		}
	})

	t.Run("bad date flag", func(t *testing.T) {
		inputPath, profilePath := writeFixtures(t)
		err := run(ctx, &cliFlags{args: []string{inputPath}, profile: profilePath, date: "whenever"}, &bytes.Buffer{})
		if err == nil {
			t.Error("run() error = nil, want date parse error")
		}
	})

	t.Run("html only end to end", func(t *testing.T) {
		inputPath, profilePath := writeFixtures(t)
		outputPath := filepath.Join(filepath.Dir(inputPath), "offer.html")

		var stderr bytes.Buffer
		err := run(ctx, &cliFlags{
			args:     []string{inputPath},
			profile:  profilePath,
			output:   outputPath,
			date:     "2025-06-01",
			htmlOnly: true,
		}, &stderr)
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}

		html, err := os.ReadFile(outputPath) // #nosec G304 -- test-created path
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !strings.Contains(string(html), "Example GmbH") {
			t.Error("output HTML missing client name")
		}
		if !strings.Contains(stderr.String(), "Created ") {
			t.Errorf("stderr = %q, want creation notice", stderr.String())
		}
	})

	t.Run("positional output argument", func(t *testing.T) {
		inputPath, profilePath := writeFixtures(t)
		outputPath := filepath.Join(filepath.Dir(inputPath), "final.html")

		err := run(ctx, &cliFlags{
			args:     []string{inputPath, outputPath},
			profile:  profilePath,
			date:     "2025-06-01",
			htmlOnly: true,
		}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}

		if _, err := os.Stat(outputPath); err != nil {
			t.Errorf("positional output not written: %v", err)
		}
		if _, err := os.Stat(filepath.Join(filepath.Dir(inputPath), "offer.html")); err == nil {
			t.Error("default output written despite positional output argument")
		}
	})

	t.Run("output flag wins over positional", func(t *testing.T) {
		inputPath, profilePath := writeFixtures(t)
		dir := filepath.Dir(inputPath)
		flagPath := filepath.Join(dir, "flag.html")
		positionalPath := filepath.Join(dir, "positional.html")

		err := run(ctx, &cliFlags{
			args:     []string{inputPath, positionalPath},
			profile:  profilePath,
			output:   flagPath,
			date:     "2025-06-01",
			htmlOnly: true,
		}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}

		if _, err := os.Stat(flagPath); err != nil {
			t.Errorf("flag output not written: %v", err)
		}
		if _, err := os.Stat(positionalPath); err == nil {
			t.Error("positional output written despite --output")
		}
	})

	t.Run("too many arguments", func(t *testing.T) {
		err := run(ctx, &cliFlags{args: []string{"a.md", "b.pdf", "c.pdf"}}, &bytes.Buffer{})
		if !errors.Is(err, ErrTooManyArgs) {
			t.Errorf("error = %v, want ErrTooManyArgs", err)
		}
	})

	t.Run("generate number persists the counter", func(t *testing.T) {
		inputPath, profilePath := writeFixtures(t)

		var stderr bytes.Buffer
		err := run(ctx, &cliFlags{
			args:           []string{inputPath},
			profile:        profilePath,
			date:           "2025-06-01",
			generateNumber: true,
			htmlOnly:       true,
		}, &stderr)
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}
		if !strings.Contains(stderr.String(), "AL-2025-006") {
			t.Errorf("stderr = %q, want the issued number", stderr.String())
		}

		store, err := md2quote.NewProfileStore(profilePath)
		if err != nil {
			t.Fatalf("reopening store: %v", err)
		}
		p, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if p.QuotationNumber.Counter != 6 {
			t.Errorf("persisted Counter = %d, want 6", p.QuotationNumber.Counter)
		}
	})
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		input    string
		htmlOnly bool
		want     string
	}{
		{"offer.md", false, "offer.pdf"},
		{"offer.md", true, "offer.html"},
		{"dir/offer.markdown", false, "dir/offer.pdf"},
	}

	for _, tt := range tests {
		if got := defaultOutputPath(tt.input, tt.htmlOnly); got != tt.want {
			t.Errorf("defaultOutputPath(%q, %v) = %q, want %q", tt.input, tt.htmlOnly, got, tt.want)
		}
	}
}
