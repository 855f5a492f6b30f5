package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	md2quote "github.com/alnah/go-md2quote"
	"github.com/alnah/go-md2quote/internal/dateutil"
)

// Sentinel errors for CLI operations.
var (
	ErrMissingInput     = errors.New("missing input file")
	ErrTooManyArgs      = errors.New("too many arguments")
	ErrInvalidExtension = errors.New("input must have .md or .markdown extension")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
)

// outputFilePerm for generated documents.
const outputFilePerm = 0o644

// run executes one conversion based on parsed flags.
func run(ctx context.Context, f *cliFlags, stderr io.Writer) error {
	if len(f.args) < 1 {
		return ErrMissingInput
	}
	if len(f.args) > 2 {
		return fmt.Errorf("%w: expected <input.md> [output], got %d", ErrTooManyArgs, len(f.args))
	}
	inputPath := f.args[0]

	if ext := filepath.Ext(inputPath); ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
	}

	content, err := os.ReadFile(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}

	profilePath, err := md2quote.ResolveProfilePath(f.profile)
	if err != nil {
		return err
	}
	store, err := md2quote.NewProfileStore(profilePath)
	if err != nil {
		return err
	}
	profile, err := store.Load()
	if err != nil {
		return err
	}
	if f.verbose {
		fmt.Fprintf(stderr, "Profile: %s\n", store.Path())
	}

	asOf := time.Now()
	if f.date != "" {
		asOf, err = dateutil.ParseDate(f.date)
		if err != nil {
			return err
		}
	}

	var opts []md2quote.Option
	if f.style != "" {
		opts = append(opts, md2quote.WithStyle(f.style))
	}
	if f.template != "" {
		opts = append(opts, md2quote.WithTemplate(f.template))
	}
	if f.assetDir != "" {
		opts = append(opts, md2quote.WithAssetDir(f.assetDir))
	}

	svc, err := md2quote.NewService(opts...)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	result, err := svc.Generate(ctx, md2quote.Input{
		Markdown:       string(content),
		Profile:        profile,
		AsOf:           asOf,
		GenerateNumber: f.generateNumber,
		HTMLOnly:       f.htmlOnly,
	})
	if err != nil {
		return err
	}

	// Row-scoped numeric errors don't abort the render, but the user
	// should see them.
	for _, rowErr := range result.Document.RowErrors {
		fmt.Fprintf(stderr, "warning: %v\n", rowErr)
	}

	// The counter is only persisted once the render succeeded, so a
	// failed conversion never burns a quotation number.
	if result.Number != nil {
		if err := store.ApplyNumber(*result.Number); err != nil {
			return fmt.Errorf("persisting quotation number: %w", err)
		}
		fmt.Fprintf(stderr, "Quotation number: %s\n", result.Number.Number)
	}

	// --output wins over the positional output argument.
	outputPath := f.output
	if outputPath == "" && len(f.args) == 2 {
		outputPath = f.args[1]
	}
	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath, f.htmlOnly)
	}

	data := result.PDF
	if f.htmlOnly {
		data = []byte(result.HTML)
	}
	if err := os.WriteFile(outputPath, data, outputFilePerm); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Fprintf(stderr, "Created %s\n", outputPath)
	return nil
}

// defaultOutputPath swaps the markdown extension for .pdf or .html.
func defaultOutputPath(inputPath string, htmlOnly bool) string {
	ext := ".pdf"
	if htmlOnly {
		ext = ".html"
	}
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}
