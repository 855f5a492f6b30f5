package md2quote

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alnah/go-md2quote/internal/dateutil"
	"github.com/alnah/go-md2quote/internal/yamlutil"
)

// PageBreakSigil is the reserved body token: a line containing only this
// three-character marker forces a page break in the rendered PDF.
const PageBreakSigil = "<<<"

// Client is the quotation recipient, taken from frontmatter.
type Client struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Email   string `yaml:"email"`
}

// QuotationMeta is the quotation metadata from frontmatter.
// Date's zero value means no date was given; ValidDays < 0 means absent.
type QuotationMeta struct {
	Number    string
	Date      time.Time
	ValidDays int
}

// QuotationDocument is the structured form of a parsed source document.
// It is rebuilt from scratch on every parse; nothing mutates it afterwards.
type QuotationDocument struct {
	Client    Client
	Quotation QuotationMeta

	// LineItems is the extracted billable-work table, in source order.
	// Order is significant: it drives table rendering order.
	LineItems []LineItem

	// BodyBlocks are the remaining markdown blocks, in source order,
	// opaque to the engine. The extracted line-item table is not among
	// them.
	BodyBlocks []string

	// PageBreaks are indices between body blocks: a value of n means a
	// page break before BodyBlocks[n].
	PageBreaks []int

	// RowErrors collects row-scoped numeric parse failures from the
	// line-item table. A non-empty slice does not make the parse fail.
	RowErrors []*RowError

	// Meta is the raw frontmatter mapping, for layout variables the core
	// does not model (e.g. a template override key).
	Meta map[string]any
}

// Parse parses a source document (optional YAML frontmatter followed by a
// Markdown body) into a QuotationDocument.
//
// A frontmatter block that is opened but never closed, or whose content is
// not a YAML mapping, fails with an error wrapping ErrFrontmatter. A
// quotation.date that is not a recognizable date, or a quotation.valid_days
// that is not a non-negative integer, fails wrapping ErrSchema. Missing
// frontmatter or missing individual fields never fail on their own.
func Parse(raw string) (*QuotationDocument, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptyMarkdown
	}

	content := normalizeLineEndings(raw)

	fmBlock, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, err
	}

	doc := &QuotationDocument{Quotation: QuotationMeta{ValidDays: -1}}

	if fmBlock != "" {
		if err := doc.applyFrontmatter(fmBlock); err != nil {
			return nil, err
		}
	}

	doc.parseBody(body)
	return doc, nil
}

// splitFrontmatter separates the frontmatter block from the body.
// Frontmatter starts with "---" on the first line and ends at the next
// "---" line. No opening marker means no frontmatter.
func splitFrontmatter(content string) (frontmatter, body string, err error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", content, nil
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), nil
		}
	}

	return "", "", ErrFrontmatterUnclosed
}

// applyFrontmatter decodes the frontmatter mapping and extracts the typed
// client and quotation fields, validating their schema.
func (d *QuotationDocument) applyFrontmatter(block string) error {
	if strings.TrimSpace(block) == "" {
		return nil
	}

	meta := map[string]any{}
	if err := yamlutil.Unmarshal([]byte(block), &meta); err != nil {
		return fmt.Errorf("%w: %v", ErrFrontmatter, err)
	}
	d.Meta = meta

	if q, ok := mappingField(meta, "quotation"); ok {
		d.Quotation.Number = stringField(q, "number")

		if rawDate, present := q["date"]; present && rawDate != nil {
			parsed, err := parseDateValue(rawDate)
			if err != nil {
				return fmt.Errorf("%w: quotation.date: %v", ErrSchema, err)
			}
			d.Quotation.Date = parsed
		}

		if rawDays, present := q["valid_days"]; present && rawDays != nil {
			days, ok := intValue(rawDays)
			if !ok || days < 0 {
				return fmt.Errorf("%w: quotation.valid_days must be a non-negative integer, got %v", ErrSchema, rawDays)
			}
			d.Quotation.ValidDays = days
		}
	}

	if c, ok := mappingField(meta, "client"); ok {
		d.Client.Name = stringField(c, "name")
		d.Client.Address = stringField(c, "address")
		d.Client.Email = stringField(c, "email")
	}

	return nil
}

// parseBody splits the body into blank-line-separated blocks, extracting
// page-break sigils and the first line-item table it encounters. Further
// tables, and a recognized table without data rows, stay in the body
// untouched.
func (d *QuotationDocument) parseBody(body string) {
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		if d.LineItems == nil && isLineItemTable(block) {
			if items, rowErrs := parseLineItemTable(block); len(items) > 0 {
				d.LineItems, d.RowErrors = items, rowErrs
				block = block[:0]
				return
			}
		}
		d.BodyBlocks = append(d.BodyBlocks, strings.Join(block, "\n"))
		block = block[:0]
	}

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			flush()
		case trimmed == PageBreakSigil:
			flush()
			d.PageBreaks = append(d.PageBreaks, len(d.BodyBlocks))
		default:
			block = append(block, line)
		}
	}
	flush()
}

// parseDateValue accepts the YAML scalar types a date may decode to.
func parseDateValue(v any) (time.Time, error) {
	switch val := v.(type) {
	case time.Time:
		return val, nil
	case string:
		return dateutil.ParseDate(val)
	default:
		return time.Time{}, fmt.Errorf("expected a date, got %T", v)
	}
}

// mappingField returns meta[key] as a nested mapping.
func mappingField(meta map[string]any, key string) (map[string]any, bool) {
	m, ok := meta[key].(map[string]any)
	return m, ok
}

// stringField returns m[key] as a string, or "" when absent or not a string.
func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// intValue converts the integer representations the YAML decoder may
// produce. Floats are accepted only when integral.
func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
