package parser

import (
	"strings"

	"expenso/internal/domain"
)

// categoryEntry pairs a category with its keyword list (English +
// Traditional Chinese).
type categoryEntry struct {
	category domain.Category
	keywords []string
}

// categoryTable is evaluated in declaration order; the first category with
// any keyword contained in the text wins. This is deliberately first-match,
// not best-match: ambiguous text resolves to the earlier category.
var categoryTable = []categoryEntry{
	{domain.CategoryFood, []string{
		"coffee", "cafe", "restaurant", "lunch", "dinner", "breakfast", "food", "eat",
		"starbucks", "mcdonald", "kfc", "subway", "pizza", "sushi", "ramen", "bento",
		"飯", "餐", "吃", "咖啡", "早餐", "午餐", "晚餐", "小吃", "便當", "麵",
	}},
	{domain.CategoryTransport, []string{
		"uber", "taxi", "bus", "mrt", "train", "gas", "parking", "grab",
		"計程車", "捷運", "公車", "加油", "停車", "高鐵", "火車", "交通",
	}},
	{domain.CategoryShopping, []string{
		"shop", "mall", "clothes", "amazon", "uniqlo", "nike", "adidas",
		"買", "購物", "衣服", "商場", "百貨",
	}},
	{domain.CategoryEntertainment, []string{
		"movie", "game", "netflix", "spotify", "concert", "bar",
		"電影", "遊戲", "演唱會", "ktv", "娛樂",
	}},
	{domain.CategoryGroceries, []string{
		"supermarket", "grocery", "market", "costco", "carrefour", "pxmart",
		"超市", "全聯", "家樂福", "好市多", "市場", "菜",
	}},
	{domain.CategoryUtilities, []string{
		"electric", "water", "internet", "phone", "bill",
		"電費", "水費", "網路", "電話", "帳單",
	}},
	{domain.CategoryHealth, []string{
		"hospital", "doctor", "pharmacy", "medicine", "clinic",
		"醫院", "診所", "藥", "看診", "掛號",
	}},
}

// GuessCategory maps text to exactly one category by case-insensitive
// keyword containment, defaulting to Other.
func GuessCategory(text string) domain.Category {
	lower := strings.ToLower(text)
	for _, entry := range categoryTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return domain.CategoryOther
}
