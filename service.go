package md2quote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alnah/go-md2quote/internal/assets"
)

// Compile-time interface implementation checks.
var (
	_ htmlConverter = (*goldmarkConverter)(nil)
	_ pdfConverter  = (*rodConverter)(nil)
)

// Service orchestrates the quotation pipeline: parse, number, totals,
// layout rendering, and PDF generation.
// Create with NewService, use Generate per document, and Close when done.
type Service struct {
	cfg           serviceConfig
	loader        assets.Loader
	htmlConverter htmlConverter
	layout        *layoutRenderer
	pdfConverter  pdfConverter
	styleCSS      string
}

// NewService creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithStyle,
// WithAssetDir). Returns an error if asset loading or template parsing
// fails.
func NewService(opts ...Option) (*Service, error) {
	s := &Service{
		cfg:           serviceConfig{timeout: defaultTimeout},
		loader:        assets.NewEmbeddedLoader(),
		htmlConverter: newGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cfg.assetDir != "" {
		loader, err := assets.NewDirLoader(s.cfg.assetDir)
		if err != nil {
			return nil, err
		}
		s.loader = loader
	}

	styleName := s.cfg.style
	if styleName == "" {
		styleName = assets.DefaultStyleName
	}
	css, err := s.loader.LoadStyle(styleName)
	if err != nil {
		return nil, err
	}
	s.styleCSS = css

	templateName := s.cfg.template
	if templateName == "" {
		templateName = assets.DefaultTemplateName
	}
	source, err := s.loader.LoadTemplate(templateName)
	if err != nil {
		return nil, err
	}
	s.layout, err = newLayoutRenderer(source)
	if err != nil {
		return nil, err
	}

	// PDF converter is created here rather than injected so casual users
	// never touch go-rod; tests swap in a fake.
	if s.pdfConverter == nil {
		s.pdfConverter = newRodConverter(s.cfg.timeout)
	}

	return s, nil
}

// Generate runs the full pipeline for one document.
// Parsing, numbering, and totals errors abort the whole call; row-scoped
// numeric errors do not (they are reported on Result.Document.RowErrors).
func (s *Service) Generate(ctx context.Context, input Input) (*Result, error) {
	if strings.TrimSpace(input.Markdown) == "" {
		return nil, ErrEmptyMarkdown
	}

	doc, err := Parse(input.Markdown)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	result := &Result{Document: doc}

	var number string
	if input.GenerateNumber {
		next, err := ComputeNumber(input.Profile, asOf)
		if err != nil {
			return nil, fmt.Errorf("generating quotation number: %w", err)
		}
		result.Number = &next
		number = next.Number
	}

	var totals *TotalsBreakdown
	if len(doc.LineItems) > 0 {
		computed, err := ComputeTotals(doc.LineItems, input.Profile.Defaults.vatType(), profileTaxRate(input.Profile.Defaults))
		if err != nil {
			return nil, fmt.Errorf("computing totals: %w", err)
		}
		totals = &computed
		result.Totals = computed
	}

	bodyHTML := make([]string, len(doc.BodyBlocks))
	for i, block := range doc.BodyBlocks {
		fragment, err := s.htmlConverter.ToHTML(ctx, preprocessMarkdown(block))
		if err != nil {
			return nil, fmt.Errorf("converting body to HTML: %w", err)
		}
		bodyHTML[i] = fragment
	}

	data := buildLayoutData(input.Profile, doc, totals, bodyHTML, number, asOf, s.styleCSS)
	htmlContent, err := s.layout.Render(data)
	if err != nil {
		return nil, fmt.Errorf("rendering layout: %w", err)
	}
	result.HTML = htmlContent

	if input.HTMLOnly {
		return result, nil
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	result.PDF = pdfBytes

	return result, nil
}

// Close releases resources (the headless Chrome browser).
func (s *Service) Close() error {
	if s.pdfConverter != nil {
		return s.pdfConverter.Close()
	}
	return nil
}
