package parser

import (
	"regexp"

	"expenso/internal/domain"
)

// currencyEntry pairs a currency code with its surface patterns: symbols,
// ISO codes, and language-specific words.
type currencyEntry struct {
	code     domain.Currency
	patterns []*regexp.Regexp
}

// currencyTable is scanned top to bottom and the first matching entry wins.
// The declaration order IS the disambiguation policy (e.g. text containing
// both "$" and "TWD" resolves to TWD because TWD is checked first), so the
// order must be preserved exactly.
var currencyTable = []currencyEntry{
	{domain.CurrencyTWD, compileAll(`\bTWD\b`, `\bNT\$`, `\bNT\b`, `元`, `塊`, `台幣`)},
	{domain.CurrencyHKD, compileAll(`\bHKD\b`, `\bHK\$`, `港幣`, `港元`)},
	{domain.CurrencyUSD, compileAll(`\bUSD\b`, `\bUS\$`, `\bUS\s*dollars?\b`)},
	{domain.CurrencyCNY, compileAll(`\bCNY\b`, `\bRMB\b`, `人民幣`)},
	{domain.CurrencyJPY, compileAll(`\bJPY\b`, `円`, `日元`, `日幣`)},
	{domain.CurrencyEUR, compileAll(`\bEUR\b`, `€`)},
	{domain.CurrencyGBP, compileAll(`\bGBP\b`, `£`)},
	{domain.CurrencySGD, compileAll(`\bSGD\b`, `\bSG\$`)},
	{domain.CurrencyKRW, compileAll(`\bKRW\b`, `원`, `韓元`)},
	{domain.CurrencyMYR, compileAll(`\bMYR\b`, `\bRM\b`)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+p))
	}
	return compiled
}

// DetectCurrency returns the first currency whose any pattern matches text,
// in table order, or the base currency when nothing matches.
func DetectCurrency(text string) domain.Currency {
	for _, entry := range currencyTable {
		for _, re := range entry.patterns {
			if re.MatchString(text) {
				return entry.code
			}
		}
	}
	return domain.BaseCurrency
}
