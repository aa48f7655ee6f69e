// Package gateway defines the contract the bridge expects from the
// underlying payment SDK: credential setup, the card-level validity rules
// the SDK owns (issuer checksum, brand-aware CVC format, composite expiry),
// and the asynchronous charge flow itself.
package gateway

import (
	"context"

	"github.com/arttitude360/paystack-go/types"
)

// EventKind tags the outcome variants a charge in flight can report.
type EventKind int

const (
	// EventSuccess carries the final transaction reference.
	EventSuccess EventKind = iota
	// EventChallenge signals an out-of-band verification step (OTP,
	// 3-D-Secure) before the charge can conclude. Not terminal.
	EventChallenge
	// EventError carries the gateway's failure. Terminal.
	EventError
)

// Event is one notification from a charge in flight. The gateway closes the
// event channel after delivering a terminal event (success or error); a
// challenge may precede either.
type Event struct {
	Kind      EventKind
	Reference string
	Err       error
}

// Gateway is the payment collaborator. Implementations wrap a concrete
// payment SDK; they perform the actual tokenization and network calls, which
// this module deliberately knows nothing about.
type Gateway interface {
	// Initialize sets the public key all subsequent charges use.
	Initialize(publicKey string) error

	// ValidCardNumber applies the issuer checksum and format rule.
	ValidCardNumber(number string) bool

	// ValidCVC applies the CVC format rule, which depends on the card
	// brand identified by number.
	ValidCVC(number, cvc string) bool

	// ValidExpiry reports whether the month/year combination is valid and
	// not in the past.
	ValidExpiry(month, year int) bool

	// ChargeCard starts the asynchronous charge flow. A non-nil error
	// means the charge could not be submitted at all; otherwise outcomes
	// arrive on the returned channel. The gateway may keep the charge
	// open indefinitely; no timeout is imposed here.
	ChargeCard(ctx context.Context, req *types.ChargeRequest) (<-chan Event, error)
}
