// Package currency converts between integer cents and display strings.
package currency

import (
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders integer cents as a US dollar string, e.g. 123456 -> "$1,234.56".
func Format(cents int64) string {
	return printer.Sprintf("$%.2f", float64(cents)/100)
}

// ToCents parses a decimal amount string and converts it to integer cents,
// rounding half away from zero. "10.255" becomes 1026, not 1025. Non-finite
// amounts and amounts whose cents would not fit in an int64 are rejected.
func ToCents(amount string) (int64, error) {
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return 0, err
	}
	cents := math.Round(f * 100)
	// float64(MaxInt64) is 2^63; anything at or past it would overflow
	// the int64 conversion
	if math.IsNaN(cents) || math.Abs(cents) >= math.MaxInt64 {
		return 0, fmt.Errorf("amount %q out of range", amount)
	}
	return int64(cents), nil
}

// ToDollars converts stored cents back to a decimal amount for form prefill.
func ToDollars(cents int64) float64 {
	return float64(cents) / 100
}
