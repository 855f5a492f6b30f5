package md2quote

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alnah/go-md2quote/internal/dateutil"
)

// defaultValidDays applies when frontmatter carries no valid_days.
const defaultValidDays = 30

// layoutData is the context handed to the quote layout template. It exposes
// the documented layout variables: company, contact, legal, bank, defaults,
// typography, colors, snippets, quotation, client, content, and the
// computed totals.
type layoutData struct {
	Company    CompanyConfig
	Contact    ContactConfig
	Legal      LegalConfig
	Bank       BankConfig
	Defaults   DefaultsConfig
	Typography Typography
	Colors     ColorScheme
	Snippets   Snippets
	Labels     layoutLabels

	Quotation quotationView
	Client    Client
	Content   template.HTML
	LineItems []lineItemView
	Totals    *totalsView
	Style     template.CSS
}

// quotationView is the display form of the quotation metadata.
type quotationView struct {
	Number      string
	Date        string
	ValidUntil  string
	PaymentDays int
}

// lineItemView is one pre-formatted table row.
type lineItemView struct {
	Description string
	Quantity    string
	Unit        string
	Rate        string
	Total       string
}

// totalsView is the pre-formatted totals block.
type totalsView struct {
	Subtotal   string
	TaxRate    string
	TaxAmount  string
	GrandTotal string
	ShowTax    bool
	ExemptNote string
}

// layoutLabels are the static strings of the layout, per language.
type layoutLabels struct {
	Quotation   string
	Date        string
	ValidUntil  string
	Description string
	Qty         string
	Unit        string
	Rate        string
	Total       string
	Subtotal    string
	VAT         string
	GrandTotal  string
	TaxID       string
	Chamber     string
	ExemptNote  string
}

var labelsByLanguage = map[string]layoutLabels{
	"en": {
		Quotation:   "Quotation",
		Date:        "Date",
		ValidUntil:  "Valid until",
		Description: "Description",
		Qty:         "Qty",
		Unit:        "Unit",
		Rate:        "Rate",
		Total:       "Total",
		Subtotal:    "Subtotal",
		VAT:         "VAT",
		GrandTotal:  "Grand total",
		TaxID:       "VAT ID",
		Chamber:     "Commercial register",
		ExemptNote:  "No VAT charged in accordance with § 19 UStG (small business exemption).",
	},
	"de": {
		Quotation:   "Angebot",
		Date:        "Datum",
		ValidUntil:  "Gültig bis",
		Description: "Beschreibung",
		Qty:         "Menge",
		Unit:        "Einh.",
		Rate:        "Satz",
		Total:       "Gesamt",
		Subtotal:    "Zwischensumme",
		VAT:         "USt.",
		GrandTotal:  "Gesamtbetrag",
		TaxID:       "USt-IdNr.",
		Chamber:     "Handelsregister",
		ExemptNote:  "Gemäß § 19 UStG wird keine Umsatzsteuer berechnet.",
	},
}

// layoutRenderer renders the layout context through an HTML template.
type layoutRenderer struct {
	tmpl *template.Template
}

// newLayoutRenderer parses the template source once.
func newLayoutRenderer(source string) (*layoutRenderer, error) {
	tmpl, err := template.New("quote").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLayoutRender, err)
	}
	return &layoutRenderer{tmpl: tmpl}, nil
}

// Render executes the layout template with the given context.
func (r *layoutRenderer) Render(data *layoutData) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrLayoutRender, err)
	}
	return buf.String(), nil
}

// buildLayoutData assembles the template context from the profile, the
// parsed document, the computed totals, and the pre-rendered body HTML.
// number overrides the document's own quotation number when non-empty.
func buildLayoutData(p Profile, doc *QuotationDocument, totals *TotalsBreakdown, bodyHTML []string, number string, asOf time.Time, style string) *layoutData {
	lang := strings.ToLower(p.Defaults.Language)
	labels, ok := labelsByLanguage[lang]
	if !ok {
		labels = labelsByLanguage["en"]
	}

	if number == "" {
		number = doc.Quotation.Number
	}

	date := doc.Quotation.Date
	if date.IsZero() {
		date = asOf
	}

	validDays := doc.Quotation.ValidDays
	if validDays < 0 {
		validDays = defaultValidDays
	}

	data := &layoutData{
		Company:    p.Company,
		Contact:    p.Contact,
		Legal:      p.Legal,
		Bank:       p.Bank,
		Defaults:   p.Defaults,
		Typography: p.Typography,
		Colors:     p.Colors,
		Snippets:   p.Snippets,
		Labels:     labels,
		Client:     doc.Client,
		Content:    assembleContent(bodyHTML, doc.PageBreaks),
		Style:      template.CSS(style), // #nosec G203 -- style comes from the asset loader, not user documents
		Quotation: quotationView{
			Number:      number,
			Date:        dateutil.FormatForLanguage(date, lang),
			ValidUntil:  dateutil.FormatForLanguage(date.AddDate(0, 0, validDays), lang),
			PaymentDays: p.Defaults.PaymentDays,
		},
	}

	currency := p.Defaults.Currency
	for _, it := range doc.LineItems {
		data.LineItems = append(data.LineItems, lineItemView{
			Description: it.Description,
			Quantity:    formatQuantity(it.Quantity, lang),
			Unit:        it.Unit,
			Rate:        formatCurrency(it.Rate, currency, lang),
			Total:       formatCurrency(it.RowTotal(), currency, lang),
		})
	}

	if totals != nil {
		view := &totalsView{
			Subtotal:   formatCurrency(totals.Subtotal, currency, lang),
			TaxRate:    totals.TaxRate.String(),
			TaxAmount:  formatCurrency(totals.TaxAmount, currency, lang),
			GrandTotal: formatCurrency(totals.GrandTotal, currency, lang),
			ShowTax:    totals.VATNote == VATGerman,
		}
		if totals.VATNote == VATKleinunternehmer {
			view.ExemptNote = labels.ExemptNote
		}
		data.Totals = view
	}

	return data
}

// assembleContent joins pre-rendered body block HTML, inserting page-break
// divs at the recorded positions.
func assembleContent(blocks []string, breaks []int) template.HTML {
	breakBefore := make(map[int]int, len(breaks))
	for _, idx := range breaks {
		breakBefore[idx]++
	}

	var b strings.Builder
	for i, blockHTML := range blocks {
		for n := 0; n < breakBefore[i]; n++ {
			b.WriteString(`<div class="page-break"></div>` + "\n")
		}
		b.WriteString(blockHTML)
	}
	// Breaks recorded past the last block.
	for n := 0; n < breakBefore[len(blocks)]; n++ {
		b.WriteString(`<div class="page-break"></div>` + "\n")
	}

	// Body HTML comes from goldmark, which escapes raw input.
	return template.HTML(b.String()) // #nosec G203
}

// currencySymbols maps ISO codes to display symbols. Unknown codes render
// as the code itself.
var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CHF": "CHF",
}

// formatCurrency renders an amount with two decimals, grouped per language
// convention: "1.234,56 €" for German, "€1,234.56" otherwise.
func formatCurrency(d decimal.Decimal, currency, lang string) string {
	symbol, ok := currencySymbols[strings.ToUpper(currency)]
	if !ok {
		symbol = currency
	}

	if lang == "de" {
		return formatNumber(d.StringFixed(2), ".", ",") + " " + symbol
	}
	return symbol + formatNumber(d.StringFixed(2), ",", ".")
}

// formatQuantity renders a quantity without forcing decimals, grouped like
// the currency amounts next to it.
func formatQuantity(d decimal.Decimal, lang string) string {
	if lang == "de" {
		return formatNumber(d.String(), ".", ",")
	}
	return formatNumber(d.String(), ",", ".")
}

// formatNumber regroups a plain "1234.56" into localized separators.
func formatNumber(s, thousands, dec string) string {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	fracPart := ""
	if idx := strings.Index(s, "."); idx != -1 {
		intPart, fracPart = s[:idx], s[idx+1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, thousands)
	if fracPart != "" {
		out += dec + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
