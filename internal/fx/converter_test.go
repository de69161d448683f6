package fx

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"expenso/internal/domain"
)

func TestConverter_FallbackSeed(t *testing.T) {
	c := NewConverter()
	assert.Equal(t, SourceFallback, c.Source())

	// HKD is the base: conversion is identity (plus rounding).
	got := c.ToBase(123.456, domain.CurrencyHKD)
	assert.True(t, got.Equal(decimal.NewFromFloat(123.46)), got.String())
}

func TestConverter_ToBase(t *testing.T) {
	c := NewConverter()

	// 412 TWD at 4.12 TWD per HKD is 100 HKD.
	got := c.ToBase(412, domain.CurrencyTWD)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), got.String())

	// 1950 JPY at 19.5 JPY per HKD is 100 HKD.
	got = c.ToBase(1950, domain.CurrencyJPY)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), got.String())
}

func TestConverter_UnknownCurrencyPassesThrough(t *testing.T) {
	c := NewConverter()
	got := c.ToBase(50, domain.Currency("XYZ"))
	assert.True(t, got.Equal(decimal.NewFromInt(50)), got.String())
}

func TestConverter_SetRatesPinsBase(t *testing.T) {
	c := NewConverter()
	c.SetRates(map[domain.Currency]decimal.Decimal{
		domain.CurrencyTWD: decimal.NewFromFloat(4.0),
		// Deliberately wrong base rate; SetRates must pin it back to 1.
		domain.CurrencyHKD: decimal.NewFromFloat(2.0),
	}, SourceLive)

	assert.Equal(t, SourceLive, c.Source())

	got := c.ToBase(100, domain.CurrencyHKD)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), got.String())

	got = c.ToBase(400, domain.CurrencyTWD)
	assert.True(t, got.Equal(decimal.NewFromInt(100)), got.String())
}

func TestConverter_Snapshot(t *testing.T) {
	c := NewConverter()
	rows := c.Snapshot()
	require.Len(t, rows, len(domain.Currencies))

	for _, row := range rows {
		assert.Equal(t, SourceFallback, row.Source)
		assert.False(t, row.Rate.IsZero(), string(row.Currency))
	}
	// Base currency first, rate exactly 1.
	assert.Equal(t, domain.BaseCurrency, rows[0].Currency)
	assert.True(t, rows[0].Rate.Equal(decimal.NewFromInt(1)))
}
