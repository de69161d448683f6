package parser

import (
	"fmt"
	"time"

	"expenso/internal/domain"
)

const promptTemplate = `Extract expense info from this text as JSON.
Text: %s
Today: %s
Return ONLY JSON: {"date":"YYYY-MM-DD","merchant":"name","category":"Food|Transport|Shopping|Entertainment|Groceries|Utilities|Health|Other","currency":"HKD|TWD|USD|CNY|JPY|EUR|GBP|SGD|KRW|MYR","amount":0.0,"items":"description"}`

// BuildExpensePrompt returns the constrained extraction prompt for the
// remote fallback: the fixed JSON schema with both enumerations spelled
// out, plus today's date so the model can resolve relative dates.
func BuildExpensePrompt(text string, today time.Time) string {
	return fmt.Sprintf(promptTemplate, text, today.Format(domain.DateLayout))
}
