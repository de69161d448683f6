package parser

import (
	"time"

	"expenso/internal/domain"
)

// ParseLocal attempts a deterministic parse of text into an expense record.
// It is a pure function of its inputs: no I/O, no side effects, identical
// output for identical (text, now).
//
// Amount extraction runs first and its failure is terminal (ErrNoAmount).
// Merchant/items derivation depends on the input shape; in bare-sentence
// mode an underivable merchant voids the whole parse (ErrNoMerchant) even
// though an amount was found.
func ParseLocal(text string, now time.Time) (*domain.ExpenseRecord, error) {
	amount, ok := ExtractAmount(text)
	if !ok {
		return nil, ErrNoAmount
	}

	date := ExtractDate(text, now)
	currency := DetectCurrency(text)
	category := GuessCategory(text)

	var merchant, items string
	switch detectShape(text) {
	case shapeReceipt:
		merchant = extractReceiptMerchant(text)
		// No line-item aggregation is attempted locally.
		items = merchant
	case shapeSentenceLocative:
		merchant, items = extractLocative(text)
	case shapeBareSentence:
		merchant, items, ok = extractBareSentence(text)
		if !ok {
			return nil, ErrNoMerchant
		}
	}

	return &domain.ExpenseRecord{
		Date:     date,
		Merchant: merchant,
		Category: category,
		Currency: currency,
		Amount:   amount,
		Items:    items,
	}, nil
}
