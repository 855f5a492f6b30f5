package md2quote

import "errors"

// Sentinel errors for library operations.
var (
	// Document parsing errors.
	ErrEmptyMarkdown       = errors.New("markdown content cannot be empty")
	ErrFrontmatter         = errors.New("invalid frontmatter")
	ErrFrontmatterUnclosed = errors.New("frontmatter block opened but never closed")
	ErrSchema              = errors.New("invalid frontmatter field")
	ErrNumericParse        = errors.New("unparseable numeric value")

	// Numbering errors.
	ErrNumberingDisabled = errors.New("quotation numbering is disabled for this profile")

	// Totals errors.
	ErrInvalidRate    = errors.New("invalid tax rate")
	ErrInvalidVATType = errors.New("invalid VAT type")

	// Rendering errors.
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrLayoutRender   = errors.New("layout template rendering failed")

	// PDF generation errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Profile store errors.
	ErrProfileNotFound = errors.New("profile file not found")
	ErrProfileParse    = errors.New("failed to parse profile file")
)
