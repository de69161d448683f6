package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"expenso/internal/domain"
)

// utf8BOM makes Excel open the file with the right encoding for Chinese
// merchant names.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Columns is the CSV/XLSX export column order.
var Columns = []string{
	"Date",
	"Merchant",
	"Category",
	"Currency",
	"Amount",
	"Amount (HKD)",
	"Items",
	"Source",
}

func row(e domain.Expense) []string {
	return []string{
		e.Date,
		e.Merchant,
		string(e.Category),
		string(e.Currency),
		fmt.Sprintf("%.2f", e.Amount),
		e.AmountHKD.StringFixed(2),
		e.Items,
		string(e.Source),
	}
}

// WriteCSV writes expenses as UTF-8 CSV with a BOM prefix.
func WriteCSV(w io.Writer, expenses []domain.Expense) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("export.WriteCSV: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("export.WriteCSV header: %w", err)
	}
	for _, e := range expenses {
		if err := cw.Write(row(e)); err != nil {
			return fmt.Errorf("export.WriteCSV row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export.WriteCSV flush: %w", err)
	}
	return nil
}
