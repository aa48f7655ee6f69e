// Package charge turns an untyped charge description into a validated
// ChargeRequest: first the card validator, then the request builder with its
// optional-field rules.
package charge

import (
	"strconv"

	"github.com/arttitude360/paystack-go/types"
)

// CardRules is the slice of the payment gateway the validator depends on:
// the card-level validity checks the SDK owns.
type CardRules interface {
	ValidCardNumber(number string) bool
	ValidCVC(number, cvc string) bool
	ValidExpiry(month, year int) bool
}

// ValidateCard runs the card checks in a fixed order, returning on the first
// failure. Only a card that passed every check is returned, and it is the
// only way to obtain a Card with Valid() == true.
func ValidateCard(rules CardRules, number, expiryMonth, expiryYear, cvc string) (*types.Card, *types.BridgeError) {
	if number == "" {
		return nil, types.NewBridgeError(types.ErrInvalidNumber, "Empty card number")
	}

	if !rules.ValidCardNumber(number) {
		return nil, types.NewBridgeError(types.ErrInvalidNumber, "Invalid card number")
	}

	if cvc == "" {
		return nil, types.NewBridgeError(types.ErrInvalidCVC, "Empty CVC")
	}

	if !rules.ValidCVC(number, cvc) {
		return nil, types.NewBridgeError(types.ErrInvalidCVC, "Invalid CVC")
	}

	month, err := strconv.Atoi(expiryMonth)
	if err != nil || month < 1 {
		return nil, types.NewBridgeError(types.ErrInvalidMonth, "Invalid expiration month")
	}

	year, err := strconv.Atoi(expiryYear)
	if err != nil || year < 1 {
		return nil, types.NewBridgeError(types.ErrInvalidYear, "Invalid expiration year")
	}

	if !rules.ValidExpiry(month, year) {
		return nil, types.NewBridgeError(types.ErrInvalidDate, "Invalid expiration date")
	}

	return types.NewValidatedCard(number, cvc, month, year), nil
}
