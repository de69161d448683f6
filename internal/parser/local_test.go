package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expenso/internal/domain"
)

func TestParseLocal_LocativeSentence(t *testing.T) {
	rec, err := ParseLocal("Coffee at Starbucks 150 dollars today", testNow)
	require.NoError(t, err)

	assert.Equal(t, "Starbucks", rec.Merchant)
	assert.Equal(t, 150.0, rec.Amount)
	assert.Equal(t, domain.CurrencyHKD, rec.Currency)
	assert.Equal(t, domain.CategoryFood, rec.Category)
	assert.Equal(t, "2025-03-14", rec.Date)
	assert.Equal(t, "Coffee", rec.Items)
}

func TestParseLocal_ReceiptDump(t *testing.T) {
	text := "7-ELEVEN 信義店\n可樂 25\n御飯糰 30\n合計 55"
	rec, err := ParseLocal(text, testNow)
	require.NoError(t, err)

	assert.Equal(t, "7-ELEVEN 信義店", rec.Merchant)
	assert.Equal(t, 55.0, rec.Amount)
	assert.Equal(t, rec.Merchant, rec.Items)
}

func TestParseLocal_ChineseSentence(t *testing.T) {
	rec, err := ParseLocal("在全聯 花了300", testNow)
	require.NoError(t, err)

	assert.Equal(t, "全聯", rec.Merchant)
	assert.Equal(t, 300.0, rec.Amount)
	assert.Equal(t, domain.CategoryGroceries, rec.Category)
}

func TestParseLocal_ExplicitDate(t *testing.T) {
	rec, err := ParseLocal("lunch NT$250 on 2025-01-02", testNow)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-02", rec.Date)
	assert.Equal(t, domain.CurrencyTWD, rec.Currency)
	assert.Equal(t, 250.0, rec.Amount)
}

func TestParseLocal_NoAmount(t *testing.T) {
	_, err := ParseLocal("hello there", testNow)
	assert.ErrorIs(t, err, ErrNoAmount)
}

func TestParseLocal_NoMerchantVoidsParse(t *testing.T) {
	// An amount alone is not enough: the bare sentence leaves no merchant.
	_, err := ParseLocal("spent NT$100", testNow)
	assert.ErrorIs(t, err, ErrNoMerchant)
}

func TestParseLocal_TrailingLocativeIsBare(t *testing.T) {
	// "at IKEA" at the end of the sentence has no locative terminator, so
	// the whole line goes through bare-sentence stripping instead.
	rec, err := ParseLocal("spent 200 at IKEA", testNow)
	require.NoError(t, err)

	assert.Equal(t, 200.0, rec.Amount)
	assert.Equal(t, "200 IKEA", rec.Merchant)
	assert.Equal(t, "200 IKEA", rec.Items)
}

func TestParseLocal_NumericMerchantToken(t *testing.T) {
	rec, err := ParseLocal("I bought 2 things for 80", testNow)
	require.NoError(t, err)

	assert.Equal(t, 80.0, rec.Amount)
	assert.Equal(t, "2", rec.Merchant)
	assert.Equal(t, "things 80", rec.Items)
}

func TestParseLocal_Deterministic(t *testing.T) {
	text := "Uber to airport HK$320"
	first, err := ParseLocal(text, testNow)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := ParseLocal(text, testNow)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestParseLocal_RecordValidates(t *testing.T) {
	rec, err := ParseLocal("Coffee at Starbucks 150 dollars today", testNow)
	require.NoError(t, err)
	assert.NoError(t, rec.Validate())
}
