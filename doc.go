// Package md2quote turns Markdown quotation documents into styled PDFs.
//
// A quotation document is plain Markdown with an optional YAML frontmatter
// block carrying client and quotation metadata, and (usually) one line-item
// table. The package parses the document, computes the tax breakdown for the
// line items, optionally generates the next quotation number from a profile,
// renders everything through an HTML layout template, and prints the result
// to PDF with headless Chrome.
//
// # Quick Start
//
//	svc, err := md2quote.NewService()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer svc.Close()
//
//	profile := md2quote.DefaultProfile()
//	profile.Company.Name = "Acme Ltd"
//
//	result, err := svc.Generate(ctx, md2quote.Input{
//	    Markdown: source,
//	    Profile:  profile,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("quote.pdf", result.PDF, 0644)
//
// The result carries the PDF bytes, the intermediate HTML, the parsed
// document, and the computed totals. Use Input.HTMLOnly to skip PDF
// generation (no browser needed).
//
// # Document Format
//
// Frontmatter keys understood by the parser:
//
//	---
//	quotation:
//	  number: AL-2025-007   # optional, overrides generated number
//	  date: 2025-06-01
//	  valid_days: 30
//	client:
//	  name: Example GmbH
//	  address: Musterstr. 1, 10115 Berlin
//	  email: billing@example.com
//	---
//
// A table whose header covers Description/Qty/Unit/Rate/Total (German
// headers Beschreibung/Menge/Einh./Satz/Gesamt work too) is extracted as
// the line-item table. A line containing only "<<<" forces a page break.
//
// # Engine Functions
//
// Parse, ComputeNumber, and ComputeTotals are usable standalone, without a
// Service or a browser:
//
//	doc, err := md2quote.Parse(source)
//	totals, err := md2quote.ComputeTotals(doc.LineItems, md2quote.VATGerman, &rate)
//	next, err := md2quote.ComputeNumber(profile, time.Now())
//
// ComputeNumber never mutates the profile; it returns the counter and period
// key for the caller to persist (see ProfileStore.ApplyNumber). Repeated
// previews therefore never advance the counter.
//
// # Profiles
//
// A Profile bundles company identity, tax defaults, numbering configuration,
// and layout styling. Profiles live in a YAML file managed by ProfileStore
// (default location: ~/.config/go-md2quote/config.yaml).
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads a
// managed Chromium on first run. Set ROD_BROWSER_BIN to use a pre-installed
// browser; NoSandbox is enabled automatically in CI.
package md2quote
