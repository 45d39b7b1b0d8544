package ledgercsv

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses a monetary cell into cents. Handles US grouping
// ("1,234.56"), European grouping ("1.234,56"), and a leading currency
// symbol. Negative and zero amounts are rejected since a payment must
// move money toward the expense.
func parseAmount(s string) (int64, error) {
	clean := strings.TrimLeft(s, "$€£ ")

	lastComma := strings.LastIndexByte(clean, ',')
	lastDot := strings.LastIndexByte(clean, '.')

	if lastComma > lastDot {
		// European style: dots group thousands, the comma is the
		// decimal separator.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		return 0, fmt.Errorf("amount must be positive")
	}

	return cents, nil
}
