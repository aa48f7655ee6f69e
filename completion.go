package paystack

import (
	"context"

	"github.com/arttitude360/paystack-go/types"
)

// Completion is the single asynchronous result handle for a charge: exactly
// one of Resolve or Reject is called, once.
type Completion interface {
	Resolve(result types.ChargeResult)
	Reject(code, message string)
}

// pendingCompletion wraps the caller's Completion with the exactly-once
// guard. The coordinator's mutex serializes access to consumed.
type pendingCompletion struct {
	inner    Completion
	consumed bool
}

func newPending(inner Completion) *pendingCompletion {
	return &pendingCompletion{inner: inner}
}

// take consumes the handle, returning the wrapped Completion on the first
// call and ok == false on every later one. Callers hold the coordinator
// mutex; delivery itself happens after it is released.
func (p *pendingCompletion) take() (Completion, bool) {
	if p == nil || p.consumed {
		return nil, false
	}
	p.consumed = true
	return p.inner, true
}

// ResultCompletion is a channel-backed Completion for callers that want to
// wait for the outcome synchronously.
type ResultCompletion struct {
	ch chan completionOutcome
}

type completionOutcome struct {
	result types.ChargeResult
	err    *types.BridgeError
}

func NewResultCompletion() *ResultCompletion {
	return &ResultCompletion{ch: make(chan completionOutcome, 1)}
}

func (c *ResultCompletion) Resolve(result types.ChargeResult) {
	select {
	case c.ch <- completionOutcome{result: result}:
	default:
	}
}

func (c *ResultCompletion) Reject(code, message string) {
	select {
	case c.ch <- completionOutcome{err: types.NewBridgeError(code, message)}:
	default:
	}
}

// Wait blocks until the charge concludes or ctx is done. The returned error
// is a *types.BridgeError when the charge was rejected.
func (c *ResultCompletion) Wait(ctx context.Context) (types.ChargeResult, error) {
	select {
	case out := <-c.ch:
		if out.err != nil {
			return types.ChargeResult{}, out.err
		}
		return out.result, nil
	case <-ctx.Done():
		return types.ChargeResult{}, ctx.Err()
	}
}
