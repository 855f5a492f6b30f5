package md2quote

import "time"

// Input contains generation parameters for one quotation.
type Input struct {
	// Markdown is the source document (required): optional YAML
	// frontmatter followed by the quote body.
	Markdown string

	// Profile supplies company identity, tax defaults, numbering
	// configuration, and styling.
	Profile Profile

	// AsOf is the reference date for numbering and the displayed
	// quotation date when the frontmatter has none. Zero means now.
	AsOf time.Time

	// GenerateNumber requests the next quotation number from the
	// profile's numbering configuration. The result carries the updated
	// counter state; the caller persists it (ProfileStore.ApplyNumber).
	// Without this flag the counter never advances, so previews are free.
	GenerateNumber bool

	// HTMLOnly skips PDF generation; Result.PDF stays nil and no browser
	// is needed.
	HTMLOnly bool
}

// Result is the outcome of Service.Generate.
type Result struct {
	// PDF is the rendered document, nil when Input.HTMLOnly was set.
	PDF []byte

	// HTML is the intermediate layout HTML, useful for previews and
	// debugging.
	HTML string

	// Document is the parsed source, including any row-scoped numeric
	// parse errors (Document.RowErrors).
	Document *QuotationDocument

	// Totals is the computed tax breakdown. Zero when the document has
	// no line-item table.
	Totals TotalsBreakdown

	// Number is set when Input.GenerateNumber was requested; the caller
	// must persist Number.Counter and Number.PeriodKey before issuing
	// the quotation.
	Number *NumberResult
}
