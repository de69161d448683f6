package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"expenso/internal/domain"
)

func TestGuessCategory(t *testing.T) {
	tests := []struct {
		text string
		want domain.Category
	}{
		{"Coffee at Starbucks", domain.CategoryFood},
		{"晚餐 at 鼎泰豐", domain.CategoryFood},
		{"Uber to airport", domain.CategoryTransport},
		{"捷運儲值 100", domain.CategoryTransport},
		{"new clothes at Uniqlo", domain.CategoryShopping},
		{"Netflix subscription", domain.CategoryEntertainment},
		{"Costco run", domain.CategoryGroceries},
		{"去全聯補貨", domain.CategoryGroceries},
		{"electric bill", domain.CategoryUtilities},
		{"pharmacy pickup", domain.CategoryHealth},
		{"mystery charge 300", domain.CategoryOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GuessCategory(tt.text), tt.text)
	}
}

func TestGuessCategory_CaseInsensitive(t *testing.T) {
	assert.Equal(t, domain.CategoryFood, GuessCategory("STARBUCKS RESERVE"))
}

func TestGuessCategory_FirstMatchWins(t *testing.T) {
	// "lunch" (Food) appears before "taxi" (Transport) in the table, so
	// mixed text resolves to Food regardless of word order.
	assert.Equal(t, domain.CategoryFood, GuessCategory("taxi to lunch meeting"))
}
