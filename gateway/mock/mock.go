// Package mock provides a scriptable Gateway implementation for tests and
// local development.
package mock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/arttitude360/paystack-go/gateway"
	"github.com/arttitude360/paystack-go/types"
)

// Gateway is a stub payment collaborator. Each behaviour can be overridden
// through the corresponding Func field; the defaults are permissive enough
// for happy-path tests: Luhn card numbers, 3-4 digit CVCs, expiry dates not
// in the past, and every charge succeeding with a fresh reference.
type Gateway struct {
	InitializeFunc      func(publicKey string) error
	ValidCardNumberFunc func(number string) bool
	ValidCVCFunc        func(number, cvc string) bool
	ValidExpiryFunc     func(month, year int) bool
	ChargeCardFunc      func(ctx context.Context, req *types.ChargeRequest) (<-chan gateway.Event, error)

	// PublicKey records the last Initialize call.
	PublicKey string

	// LastRequest records the last submitted charge.
	LastRequest *types.ChargeRequest
}

func New() *Gateway {
	return &Gateway{}
}

func (g *Gateway) Initialize(publicKey string) error {
	g.PublicKey = publicKey
	if g.InitializeFunc != nil {
		return g.InitializeFunc(publicKey)
	}
	return nil
}

func (g *Gateway) ValidCardNumber(number string) bool {
	if g.ValidCardNumberFunc != nil {
		return g.ValidCardNumberFunc(number)
	}
	return luhnValid(number)
}

func (g *Gateway) ValidCVC(number, cvc string) bool {
	if g.ValidCVCFunc != nil {
		return g.ValidCVCFunc(number, cvc)
	}
	if len(cvc) < 3 || len(cvc) > 4 {
		return false
	}
	for _, r := range cvc {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (g *Gateway) ValidExpiry(month, year int) bool {
	if g.ValidExpiryFunc != nil {
		return g.ValidExpiryFunc(month, year)
	}
	if month < 1 || month > 12 {
		return false
	}
	now := time.Now()
	if year < 100 {
		year += 2000
	}
	if year > now.Year() {
		return true
	}
	return year == now.Year() && month >= int(now.Month())
}

func (g *Gateway) ChargeCard(ctx context.Context, req *types.ChargeRequest) (<-chan gateway.Event, error) {
	g.LastRequest = req
	if g.ChargeCardFunc != nil {
		return g.ChargeCardFunc(ctx, req)
	}
	return Events(gateway.Event{Kind: gateway.EventSuccess, Reference: uuid.NewString()}), nil
}

// Events builds a closed, buffered event channel delivering evts in order.
// Useful for scripting ChargeCardFunc.
func Events(evts ...gateway.Event) <-chan gateway.Event {
	ch := make(chan gateway.Event, len(evts))
	for _, ev := range evts {
		ch <- ev
	}
	close(ch)
	return ch
}

// luhnValid implements the standard issuer checksum over a digit string.
func luhnValid(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		r := number[i]
		if r < '0' || r > '9' {
			return false
		}
		d := int(r - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
