// Package paystack bridges a host application layer to a card-charging
// payment gateway. It validates an untyped charge description, assembles a
// typed charge request, submits it through the pluggable gateway
// collaborator, and reports the asynchronous outcome through a single
// resolve-or-reject completion handle.
package paystack

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/arttitude360/paystack-go/config"
	"github.com/arttitude360/paystack-go/gateway"
	"github.com/arttitude360/paystack-go/logger"
	"github.com/arttitude360/paystack-go/metrics"
	"github.com/arttitude360/paystack-go/types"
)

// Bridge is the entry point of the library. It must be initialized with a
// public key before charging, and it coordinates at most one charge at a
// time; overlapping calls are rejected with E_BUSY.
type Bridge struct {
	gw      gateway.Gateway
	coord   *Coordinator
	log     logger.Logger
	rec     metrics.Recorder
	timeout time.Duration

	mu        sync.Mutex
	publicKey string
}

// New creates a Bridge around the given gateway. Logging and metrics default
// to no-ops; use the options to plug in real implementations.
func New(gw gateway.Gateway, opts ...Option) *Bridge {
	b := &Bridge{
		gw:  gw,
		log: logger.NoopLogger{},
		rec: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.coord = NewCoordinator(gw, b.log, b.rec, b.timeout)
	return b
}

// FromConfig builds and initializes a Bridge from an environment-driven
// configuration.
func FromConfig(gw gateway.Gateway, cfg *config.Config) (*Bridge, error) {
	opts := make([]Option, 0, 3)
	if cfg.LogLevel != "" {
		opts = append(opts, WithLogger(logger.NewZapLogger(cfg.LogLevel)))
	}
	if cfg.EnableMetrics {
		opts = append(opts, WithMetrics(metrics.NewPrometheusRecorder()))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, WithTimeout(cfg.Timeout))
	}

	b := New(gw, opts...)
	if err := b.Init(cfg.PublicKey); err != nil {
		return nil, err
	}
	return b, nil
}

// Init sets the process-wide public key the gateway charges under. It must
// be called before any charge operation.
func (b *Bridge) Init(publicKey string) error {
	if publicKey == "" {
		return fmt.Errorf("paystack: public key cannot be empty")
	}
	if err := b.gw.Initialize(publicKey); err != nil {
		return fmt.Errorf("paystack: gateway initialization failed: %w", err)
	}

	b.mu.Lock()
	b.publicKey = publicKey
	b.mu.Unlock()

	b.log.Info("bridge initialized", nil)
	return nil
}

// ChargeCard starts a full charge: card fields, email, and amount are
// required; currency, plan, subAccount, bearer, transactionCharge,
// reference, and metadata are attached when present. The outcome is
// delivered once through completion.
func (b *Bridge) ChargeCard(ctx context.Context, input types.RawChargeInput, completion Completion) {
	if !b.initialized() {
		completion.Reject(types.ErrCharge, "bridge not initialized: call Init first")
		return
	}
	b.coord.Charge(ctx, input, completion)
}

// ChargeCardWithAccessCode charges against a transaction already initialized
// on the server: card fields are required, the access code is attached when
// present.
func (b *Bridge) ChargeCardWithAccessCode(ctx context.Context, input types.RawChargeInput, completion Completion) {
	if !b.initialized() {
		completion.Reject(types.ErrCharge, "bridge not initialized: call Init first")
		return
	}
	b.coord.ChargeWithAccessCode(ctx, input, completion)
}

func (b *Bridge) initialized() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.publicKey != ""
}
