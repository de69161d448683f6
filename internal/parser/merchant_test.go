package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectShape(t *testing.T) {
	assert.Equal(t, shapeReceipt, detectShape("Store\nTOTAL: 45"))
	assert.Equal(t, shapeSentenceLocative, detectShape("Coffee at Starbucks 150"))
	assert.Equal(t, shapeSentenceLocative, detectShape("在全聯 花了300"))
	assert.Equal(t, shapeBareSentence, detectShape("coffee 45"))

	// A locative marker with nothing after the merchant is not locative:
	// the phrase needs a spend-verb or digit terminator.
	assert.Equal(t, shapeBareSentence, detectShape("spent 200 at IKEA"))
}

func TestExtractReceiptMerchant(t *testing.T) {
	assert.Equal(t, "7-ELEVEN 信義店", extractReceiptMerchant("7-ELEVEN 信義店\n可樂 25\n合計 25"))
	assert.Equal(t, "Corner Cafe", extractReceiptMerchant("\n\nCorner Cafe\nTOTAL 90"))
}

func TestExtractReceiptMerchant_Unknown(t *testing.T) {
	// A purely numeric first line (date/phone) is not a merchant name.
	assert.Equal(t, "Unknown", extractReceiptMerchant("2025-03-14 10:30\nStore\nTOTAL 50"))

	// Overlong first lines are OCR noise, not names.
	long := "XXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXXX\nTOTAL 50"
	assert.Equal(t, "Unknown", extractReceiptMerchant(long))
}

func TestExtractLocative(t *testing.T) {
	merchant, items := extractLocative("Coffee at Starbucks 150 dollars today")
	assert.Equal(t, "Starbucks", merchant)
	assert.Equal(t, "Coffee", items)
}

func TestExtractLocative_ItemsFallBackToMerchant(t *testing.T) {
	merchant, items := extractLocative("在誠品花了500")
	assert.Equal(t, "誠品", merchant)
	assert.Equal(t, "誠品", items)
}

func TestExtractBareSentence(t *testing.T) {
	// Untagged numbers survive stripping: first token becomes the merchant
	// even when it is a digit string.
	merchant, items, ok := extractBareSentence("I bought 2 things for 80")
	assert.True(t, ok)
	assert.Equal(t, "2", merchant)
	assert.Equal(t, "things 80", items)
}

func TestExtractBareSentence_ShortRemainder(t *testing.T) {
	merchant, items, ok := extractBareSentence("coffee 45")
	assert.True(t, ok)
	assert.Equal(t, "coffee 45", merchant)
	assert.Equal(t, "coffee 45", items)
}

func TestExtractBareSentence_TrailingLocativeMarker(t *testing.T) {
	// "at IKEA" has no terminator, so the sentence is bare and the amount
	// token stays in the merchant.
	merchant, items, ok := extractBareSentence("spent 200 at IKEA")
	assert.True(t, ok)
	assert.Equal(t, "200 IKEA", merchant)
	assert.Equal(t, "200 IKEA", items)
}

func TestExtractBareSentence_NothingLeft(t *testing.T) {
	_, _, ok := extractBareSentence("spent NT$100")
	assert.False(t, ok)

	_, _, ok = extractBareSentence("paid $50 today")
	assert.False(t, ok)
}
