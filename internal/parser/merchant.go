package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// inputShape is the tagged variant over input text shape, decided once up
// front. Each shape has its own merchant/items derivation.
type inputShape int

const (
	shapeReceipt inputShape = iota // multi-line, resembles an itemized receipt
	shapeSentenceLocative          // single line with an at/from/在 marker
	shapeBareSentence              // single line, no locative marker
)

const receiptMerchantMaxLen = 40

var (
	// locativeRe captures the phrase after a locative marker, terminated by
	// a spend verb or a digit. A marker with no terminator after it is not
	// locative; the sentence falls through to bare-sentence stripping.
	// Chinese 在 is not followed by whitespace.
	locativeRe = regexp.MustCompile(`(?i)(?:\b(?:at|from)\s+|在\s*)(.+?)(?:\s+(?:for|spent|paid|\d)|花|付)`)

	// numericLineRe matches lines that are purely numeric/punctuation
	// (dates, phone numbers, separators) and so cannot be a merchant name.
	numericLineRe = regexp.MustCompile(`^[\d\s/:.\-]+$`)

	// stripAmountRe removes currency-tagged amounts (symbol-before or
	// code/word-after).
	stripAmountRe = regexp.MustCompile(`(?i)(?:NT\$?|HK\$?|US\$?|SG\$?|RM|€|£|\$)\s*\d+(?:\.\d+)?|\d+(?:\.\d+)?\s*(?:TWD|HKD|USD|CNY|JPY|EUR|GBP|SGD|KRW|MYR|元|dollars?|塊|円|원)`)

	// stripLooseAmountRe additionally removes bare numbers with optional
	// currency markers on either side; used when deriving items from a
	// sentence whose merchant is already known.
	stripLooseAmountRe = regexp.MustCompile(`(?i)(?:NT\$?|HK\$?|US\$?|SG\$?|RM|€|£|\$)?\s*\d+(?:\.\d+)?\s*(?:TWD|HKD|USD|CNY|JPY|EUR|GBP|SGD|KRW|MYR|元|dollars?|塊|円|원)?`)

	englishFillerRe  = regexp.MustCompile(`(?i)\b(?:spent|paid|bought|at|from|for|on|today|yesterday|I)\b`)
	chineseFillerRe  = regexp.MustCompile(`(?:花了|付了|消費|買了|在)`)
	currencyCodeRe   = regexp.MustCompile(`(?i)\b(?:TWD|HKD|USD|CNY|JPY|EUR|GBP|SGD|KRW|MYR)\b`)
	strayPunctCutset = "—-,. "
)

func detectShape(text string) inputShape {
	if strings.Contains(text, "\n") {
		return shapeReceipt
	}
	if locativeRe.MatchString(text) {
		return shapeSentenceLocative
	}
	return shapeBareSentence
}

// extractReceiptMerchant returns the first non-empty line of a receipt dump
// as the merchant name, unless that line is purely numeric/punctuation or
// too long to be a plausible name.
func extractReceiptMerchant(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if numericLineRe.MatchString(line) || utf8.RuneCountInString(line) > receiptMerchantMaxLen {
			return "Unknown"
		}
		return line
	}
	return "Unknown"
}

// extractLocative returns the merchant phrase captured after the locative
// marker and the items text derived from the remainder: the merchant
// substring, amount tokens, and filler words stripped out, falling back to
// the merchant itself when stripping leaves nothing.
func extractLocative(text string) (merchant, items string) {
	m := locativeRe.FindStringSubmatch(text)
	merchant = strings.TrimSpace(m[1])

	merchantRe := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(merchant))
	items = merchantRe.ReplaceAllString(text, "")
	items = stripLooseAmountRe.ReplaceAllString(items, "")
	items = englishFillerRe.ReplaceAllString(items, "")
	items = chineseFillerRe.ReplaceAllString(items, "")
	items = strings.Trim(strings.TrimSpace(items), strayPunctCutset)
	if items == "" {
		items = merchant
	}
	return merchant, items
}

// extractBareSentence strips all currency-tagged amounts, ISO dates, filler
// words, and currency codes from text. An empty remainder means no merchant
// is derivable and the whole local parse fails. Otherwise a short remainder
// (≤ 2 tokens) is both merchant and items; a longer one splits into first
// token (merchant) and the rest (items). Untagged numbers survive the
// stripping and can land in the merchant; the review form is where such
// names get corrected.
func extractBareSentence(text string) (merchant, items string, ok bool) {
	remaining := stripAmountRe.ReplaceAllString(text, "")
	remaining = isoDateRe.ReplaceAllString(remaining, "")
	remaining = englishFillerRe.ReplaceAllString(remaining, "")
	remaining = chineseFillerRe.ReplaceAllString(remaining, "")
	remaining = currencyCodeRe.ReplaceAllString(remaining, "")
	remaining = strings.Trim(strings.TrimSpace(remaining), strayPunctCutset)

	if remaining == "" {
		return "", "", false
	}

	words := strings.Fields(remaining)
	if len(words) <= 2 {
		joined := strings.Join(words, " ")
		return joined, joined, true
	}
	return words[0], strings.Join(words[1:], " "), true
}
