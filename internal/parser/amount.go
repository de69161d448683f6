package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// Amount extraction is a strict cascade: each strategy runs only if the
// previous one produced nothing.
var (
	// Strategy 1: labeled total line on itemized receipts.
	totalLineRe = regexp.MustCompile(`(?i)(?:TOTAL|Grand\s*Total|Amount\s*Due|合計|總計|小計|應付|總額)\s*[:\s]*(?:NT\$?|HK\$?|US\$?|\$)?\s*(\d[\d,]*\.?\d*)`)

	// Strategy 2: natural-language spend verbs followed by a number.
	spendVerbRe = regexp.MustCompile(`(?i)(?:spent|paid|花了|付了|消費)\s*(?:NT\$?|HK\$?|US\$?|\$)?\s*(\d+(?:\.\d+)?)`)

	// Strategy 3: number adjacent to a currency symbol (before) or a
	// currency code/word (after).
	taggedAmountRe = regexp.MustCompile(`(?i)(?:NT\$?|HK\$?|US\$?|SG\$?|RM|€|£|\$)\s*(\d+(?:\.\d+)?)|(\d+(?:\.\d+)?)\s*(?:TWD|HKD|USD|CNY|JPY|EUR|GBP|SGD|KRW|MYR|元|dollars?|塊|円|원)`)

	// Strategy 4: bare numeric tokens.
	bareNumberRe = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\b`)
)

const (
	bareNumberMin       = 1
	bareNumberMax       = 100000
	bareNumberMaxDigits = 6 // excludes phone numbers, order IDs, etc.
)

// ExtractAmount returns the most plausible monetary amount in text.
// The second return value is false when no strategy yields a candidate,
// which is the terminal failure condition for the local parse.
func ExtractAmount(text string) (float64, bool) {
	if strings.Contains(text, "\n") {
		if m := totalLineRe.FindStringSubmatch(text); m != nil {
			if v, err := parseAmountToken(m[1]); err == nil {
				return v, true
			}
		}
	}

	if m := spendVerbRe.FindStringSubmatch(text); m != nil {
		if v, err := parseAmountToken(m[1]); err == nil {
			return v, true
		}
	}

	if m := taggedAmountRe.FindStringSubmatch(text); m != nil {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		if v, err := parseAmountToken(token); err == nil {
			return v, true
		}
	}

	return extractBareNumber(text)
}

// extractBareNumber collects plausible bare numeric tokens. A single
// candidate is used as-is; with several, the maximum wins (the largest
// number in unlabeled text is most likely the total, not a quantity).
func extractBareNumber(text string) (float64, bool) {
	var candidates []float64
	for _, m := range bareNumberRe.FindAllStringSubmatch(text, -1) {
		token := m[1]
		if len(token) > bareNumberMaxDigits {
			continue
		}
		v, err := strconv.ParseFloat(token, 64)
		if err != nil || v < bareNumberMin || v > bareNumberMax {
			continue
		}
		candidates = append(candidates, v)
	}

	switch len(candidates) {
	case 0:
		return 0, false
	case 1:
		return candidates[0], true
	default:
		best := candidates[0]
		for _, v := range candidates[1:] {
			if v > best {
				best = v
			}
		}
		return best, true
	}
}

func parseAmountToken(token string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
}
