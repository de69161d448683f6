package domain

// Category is the fixed set of expense categories.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryGroceries     Category = "Groceries"
	CategoryUtilities     Category = "Utilities"
	CategoryHealth        Category = "Health"
	CategoryOther         Category = "Other"
)

// Categories lists all categories in display order. CategoryOther is the
// default when no keyword matches.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryGroceries,
	CategoryUtilities,
	CategoryHealth,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Currency is an ISO-like currency code.
type Currency string

const (
	CurrencyHKD Currency = "HKD"
	CurrencyTWD Currency = "TWD"
	CurrencyUSD Currency = "USD"
	CurrencyCNY Currency = "CNY"
	CurrencyJPY Currency = "JPY"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencySGD Currency = "SGD"
	CurrencyKRW Currency = "KRW"
	CurrencyMYR Currency = "MYR"
)

// BaseCurrency is the currency all persisted amounts are converted into.
const BaseCurrency = CurrencyHKD

// Currencies lists all supported currencies, base currency first.
var Currencies = []Currency{
	CurrencyHKD,
	CurrencyTWD,
	CurrencyUSD,
	CurrencyCNY,
	CurrencyJPY,
	CurrencyEUR,
	CurrencyGBP,
	CurrencySGD,
	CurrencyKRW,
	CurrencyMYR,
}

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	for _, known := range Currencies {
		if c == known {
			return true
		}
	}
	return false
}

// Source records which input channel produced an expense.
type Source string

const (
	SourceReceiptPhoto Source = "receipt_photo"
	SourceVoice        Source = "voice"
	SourceFreeText     Source = "free_text"
	SourceQuickForm    Source = "quick_form"
)

// AllowedSources maps valid source tags.
var AllowedSources = map[Source]bool{
	SourceReceiptPhoto: true,
	SourceVoice:        true,
	SourceFreeText:     true,
	SourceQuickForm:    true,
}

// FileType represents the allowed receipt file types for upload.
type FileType string

const (
	FileTypePDF FileType = "pdf"
	FileTypeJPG FileType = "jpg"
	FileTypePNG FileType = "png"
)

// AllowedContentTypes maps MIME content types to FileType.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
}
