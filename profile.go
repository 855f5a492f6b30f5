package md2quote

// VATType selects the tax regime applied to a quotation.
type VATType string

// Supported VAT regimes.
const (
	// VATGerman applies the standard German VAT rate to the subtotal.
	VATGerman VATType = "german_vat"

	// VATKleinunternehmer is the German small-business exemption
	// (§19 UStG): no tax is charged and the layout must show the legal
	// exemption phrase.
	VATKleinunternehmer VATType = "kleinunternehmer"

	// VATNone charges no tax and shows no note.
	VATNone VATType = "none"
)

// Valid reports whether v is a known VAT regime.
func (v VATType) Valid() bool {
	switch v {
	case VATGerman, VATKleinunternehmer, VATNone:
		return true
	}
	return false
}

// Profile bundles everything a quotation layout needs about the issuing
// company: identity, contact and legal details, bank account, tax and
// formatting defaults, styling, and the numbering configuration.
//
// A Profile is a plain value. The engine functions never mutate it; counter
// updates from ComputeNumber are persisted explicitly through ProfileStore.
type Profile struct {
	Company         CompanyConfig   `yaml:"company"`
	Contact         ContactConfig   `yaml:"contact"`
	Legal           LegalConfig     `yaml:"legal"`
	Bank            BankConfig      `yaml:"bank"`
	Defaults        DefaultsConfig  `yaml:"defaults"`
	Typography      Typography      `yaml:"typography"`
	Colors          ColorScheme     `yaml:"colors"`
	Snippets        Snippets        `yaml:"snippets"`
	QuotationNumber NumberingConfig `yaml:"quotation_number"`
}

// CompanyConfig identifies the issuing company.
type CompanyConfig struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Logo    string `yaml:"logo"` // path or URL, resolved by the layout
}

// ContactConfig holds the company's contact details.
type ContactConfig struct {
	Street     string `yaml:"street"`
	City       string `yaml:"city"`
	PostalCode string `yaml:"postal_code"`
	Country    string `yaml:"country"`
	Phone      string `yaml:"phone"`
	Email      string `yaml:"email"`
	Website    string `yaml:"website"`
}

// LegalConfig holds registration identifiers shown in the quote footer.
type LegalConfig struct {
	TaxID             string `yaml:"tax_id"`
	ChamberOfCommerce string `yaml:"chamber_of_commerce"`
}

// BankConfig holds the payment account details.
type BankConfig struct {
	Holder   string `yaml:"holder"`
	IBAN     string `yaml:"iban"`
	BIC      string `yaml:"bic"`
	BankName string `yaml:"bank_name"`
}

// DefaultsConfig holds per-quotation defaults.
type DefaultsConfig struct {
	Currency    string   `yaml:"currency"`
	VATType     VATType  `yaml:"vat_type"`
	TaxRate     *float64 `yaml:"tax_rate"` // percentage; nil = not configured
	PaymentDays int      `yaml:"payment_days"`
	Language    string   `yaml:"language"` // "de" or "en"
}

// vatType normalizes an unconfigured regime to VATNone. An unknown
// non-empty value is returned as-is so ComputeTotals rejects it loudly.
func (d DefaultsConfig) vatType() VATType {
	if d.VATType == "" {
		return VATNone
	}
	return d.VATType
}

// Typography configures fonts used by the layout.
type Typography struct {
	Heading string    `yaml:"heading"`
	Body    string    `yaml:"body"`
	Mono    string    `yaml:"mono"`
	Sizes   FontSizes `yaml:"sizes"`
}

// FontSizes are layout font sizes in px.
type FontSizes struct {
	CompanyName int `yaml:"company_name"`
	Heading1    int `yaml:"heading1"`
	Heading2    int `yaml:"heading2"`
	Body        int `yaml:"body"`
	Small       int `yaml:"small"`
}

// ColorScheme configures the document color palette.
type ColorScheme struct {
	Primary    string `yaml:"primary"`
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Muted      string `yaml:"muted"`
	Border     string `yaml:"border"`
	TableAlt   string `yaml:"table_alt"`
}

// Snippets are reusable text fragments available to the layout.
type Snippets struct {
	Greeting string `yaml:"greeting"`
	Closing  string `yaml:"closing"`
}

// NumberingConfig configures quotation number generation.
// Counter and LastPeriod are persisted state owned by the profile store;
// ComputeNumber reads them and returns updated values without writing back.
type NumberingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Format     string `yaml:"format"` // e.g. "{PREFIX}-{YYYY}-{NNN}"
	Counter    int    `yaml:"counter"`
	LastPeriod string `yaml:"last_period"`
}

// DefaultProfile returns a profile with the stock defaults: EUR, German VAT
// at 19%, 14 payment days, German language, and the standard typography and
// color palette. Numbering is disabled until a format is configured.
func DefaultProfile() Profile {
	rate := 19.0
	return Profile{
		Defaults: DefaultsConfig{
			Currency:    "EUR",
			VATType:     VATGerman,
			TaxRate:     &rate,
			PaymentDays: 14,
			Language:    "de",
		},
		Typography: Typography{
			Heading: "Montserrat",
			Body:    "Source Sans Pro",
			Mono:    "JetBrains Mono",
			Sizes: FontSizes{
				CompanyName: 24,
				Heading1:    18,
				Heading2:    14,
				Body:        10,
				Small:       8,
			},
		},
		Colors: ColorScheme{
			Primary:    "#1a1a2e",
			Accent:     "#e94560",
			Background: "#ffffff",
			Text:       "#2d2d2d",
			Muted:      "#6c757d",
			Border:     "#dee2e6",
			TableAlt:   "#f8f9fa",
		},
		QuotationNumber: NumberingConfig{
			Enabled: false,
			Format:  "{PREFIX}-{YYYY}-{NNN}",
			Counter: 0,
		},
	}
}
