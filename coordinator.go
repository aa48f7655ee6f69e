package paystack

import (
	"context"
	"sync"
	"time"

	"github.com/arttitude360/paystack-go/charge"
	"github.com/arttitude360/paystack-go/gateway"
	"github.com/arttitude360/paystack-go/logger"
	"github.com/arttitude360/paystack-go/metrics"
	"github.com/arttitude360/paystack-go/types"
)

// State is the coordinator's position in the charge lifecycle.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitted
	StateAwaitingChallenge
)

// Coordinator owns the single in-flight charge: it runs the validation
// pipeline, submits the built request to the gateway, and drives the pending
// completion from the gateway's event stream. A second charge started while
// one is pending is rejected with E_BUSY rather than silently orphaning the
// first caller.
type Coordinator struct {
	gw      gateway.Gateway
	builder *charge.Builder
	log     logger.Logger
	rec     metrics.Recorder

	// timeout bounds a submitted charge when > 0. Zero means none: the
	// gateway may keep a charge open indefinitely.
	timeout time.Duration

	mu        sync.Mutex
	state     State
	pending   *pendingCompletion
	reference string
}

func NewCoordinator(gw gateway.Gateway, log logger.Logger, rec metrics.Recorder, timeout time.Duration) *Coordinator {
	if log == nil {
		log = logger.NoopLogger{}
	}
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &Coordinator{
		gw:      gw,
		builder: charge.NewBuilder(gw, log),
		log:     log,
		rec:     rec,
		timeout: timeout,
	}
}

// State reports the coordinator's current lifecycle position.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Charge runs the full-charge pipeline and submits the result.
func (c *Coordinator) Charge(ctx context.Context, input types.RawChargeInput, completion Completion) {
	pending, ok := c.begin(completion)
	if !ok {
		return
	}
	req, buildErr := c.builder.BuildCharge(input)
	if buildErr != nil {
		c.fail(pending, buildErr.Code, buildErr.Message)
		return
	}
	c.submit(ctx, req, pending, "charge")
}

// ChargeWithAccessCode runs the access-code pipeline and submits the result.
func (c *Coordinator) ChargeWithAccessCode(ctx context.Context, input types.RawChargeInput, completion Completion) {
	pending, ok := c.begin(completion)
	if !ok {
		return
	}
	req, buildErr := c.builder.BuildAccessCodeCharge(input)
	if buildErr != nil {
		c.fail(pending, buildErr.Code, buildErr.Message)
		return
	}
	c.submit(ctx, req, pending, "access_code_charge")
}

// begin claims the single pending slot, rejecting the new completion when a
// charge is already in flight.
func (c *Coordinator) begin(completion Completion) (*pendingCompletion, bool) {
	c.mu.Lock()
	if c.pending != nil {
		c.mu.Unlock()
		completion.Reject(types.ErrBusy, "another charge is already in progress")
		c.rec.IncCounter("charge", map[string]string{"result": "busy"})
		return nil, false
	}
	pending := newPending(completion)
	c.pending = pending
	c.state = StateValidating
	c.reference = ""
	c.mu.Unlock()
	return pending, true
}

func (c *Coordinator) submit(ctx context.Context, req *types.ChargeRequest, pending *pendingCompletion, operation string) {
	if !req.Card.Valid() {
		c.fail(pending, types.ErrCharge, "card did not pass validation")
		return
	}

	events, err := c.gw.ChargeCard(ctx, req)
	if err != nil {
		c.fail(pending, types.ErrCharge, err.Error())
		return
	}

	c.mu.Lock()
	c.state = StateSubmitted
	c.mu.Unlock()

	go c.consume(events, pending, operation, time.Now())
}

// consume drives the state machine from the gateway's event stream until a
// terminal event arrives. It runs on its own goroutine; every touch of
// coordinator state goes through the mutex.
func (c *Coordinator) consume(events <-chan gateway.Event, pending *pendingCompletion, operation string, start time.Time) {
	var timeoutCh <-chan time.Time
	if c.timeout > 0 {
		timer := time.NewTimer(c.timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	for {
		var ev gateway.Event
		var open bool
		select {
		case ev, open = <-events:
		case <-timeoutCh:
			c.conclude(pending, func(inner Completion) {
				inner.Reject(types.ErrTransaction, "charge timed out")
			})
			c.rec.IncCounter("charge", map[string]string{"result": "timeout"})
			return
		}
		if !open {
			break
		}

		switch ev.Kind {
		case gateway.EventChallenge:
			c.mu.Lock()
			c.state = StateAwaitingChallenge
			c.reference = ev.Reference
			c.mu.Unlock()
			c.log.Info("charge awaiting challenge", map[string]any{"reference": ev.Reference})

		case gateway.EventSuccess:
			c.conclude(pending, func(inner Completion) {
				inner.Resolve(types.ChargeResult{Reference: ev.Reference})
			})
			c.log.Info("charge succeeded", map[string]any{"reference": ev.Reference})
			c.rec.IncCounter("charge", map[string]string{"result": "success"})
			c.rec.ObserveLatency(operation, time.Since(start), map[string]string{"result": "success"})
			return

		case gateway.EventError:
			c.mu.Lock()
			reference := c.reference
			c.mu.Unlock()

			message := "charge failed"
			if ev.Err != nil {
				message = ev.Err.Error()
			}
			if reference != "" {
				message = reference + " concluded with error: " + message
			}

			c.conclude(pending, func(inner Completion) {
				inner.Reject(types.ErrTransaction, message)
			})
			c.log.Warn("charge failed", map[string]any{"reference": reference, "error": message})
			c.rec.IncCounter("charge", map[string]string{"result": "error"})
			c.rec.ObserveLatency(operation, time.Since(start), map[string]string{"result": "error"})
			return
		}
	}

	// The gateway closed the stream without a terminal event. Treat it as a
	// transaction error so the caller's handle is not orphaned.
	c.conclude(pending, func(inner Completion) {
		inner.Reject(types.ErrTransaction, "charge ended without a result")
	})
	c.rec.IncCounter("charge", map[string]string{"result": "aborted"})
}

// fail rejects a pre-submission failure and returns the coordinator to idle.
func (c *Coordinator) fail(pending *pendingCompletion, code, message string) {
	c.conclude(pending, func(inner Completion) {
		inner.Reject(code, message)
	})
	c.rec.IncCounter("charge", map[string]string{"result": "invalid"})
}

// conclude consumes the pending handle exactly once, clears the slot so a
// subsequent charge starts clean, and then delivers the outcome outside the
// mutex so a completion callback may safely re-enter the coordinator.
func (c *Coordinator) conclude(pending *pendingCompletion, deliver func(Completion)) {
	c.mu.Lock()
	inner, ok := pending.take()
	if c.pending == pending {
		c.pending = nil
		c.state = StateIdle
		c.reference = ""
	}
	c.mu.Unlock()

	if ok {
		deliver(inner)
	}
}
