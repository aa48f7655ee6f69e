package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Charge amounts travel through the bridge as integer kobo, the smallest
// currency unit. 100 kobo = 1 naira.

// KoboToNaira converts an integer kobo amount to its decimal naira value.
func KoboToNaira(kobo int) decimal.Decimal {
	return decimal.New(int64(kobo), -2)
}

// FormatKobo renders a kobo amount as a naira string with two decimal
// places, e.g. 5000 -> "50.00".
func FormatKobo(kobo int) string {
	return KoboToNaira(kobo).StringFixed(2)
}

// NairaToKobo parses a decimal naira amount and converts it to integer kobo.
// Amounts with sub-kobo precision or negative values are rejected.
func NairaToKobo(naira string) (int, error) {
	if naira == "" {
		return 0, fmt.Errorf("amount cannot be empty")
	}

	dec, err := decimal.NewFromString(naira)
	if err != nil {
		return 0, fmt.Errorf("invalid amount format: %w", err)
	}

	if dec.IsNegative() {
		return 0, fmt.Errorf("amount cannot be negative")
	}

	shifted := dec.Shift(2)
	if !shifted.Equal(shifted.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has sub-kobo precision", naira)
	}

	return int(shifted.IntPart()), nil
}
