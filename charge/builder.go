package charge

import (
	"github.com/go-playground/validator/v10"

	"github.com/arttitude360/paystack-go/logger"
	"github.com/arttitude360/paystack-go/types"
	"github.com/arttitude360/paystack-go/utils"
)

var validate = validator.New()

// Builder assembles ChargeRequests from raw input. Required-field checks
// fail fast with a field error; optional fields are attached only when
// present and well-formed, and never fail the build.
type Builder struct {
	rules CardRules
	log   logger.Logger
}

func NewBuilder(rules CardRules, log logger.Logger) *Builder {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &Builder{rules: rules, log: log}
}

// BuildCharge runs the full-charge pipeline: card validation, required email
// and amount, then the optional fields.
func (b *Builder) BuildCharge(input types.RawChargeInput) (*types.ChargeRequest, *types.BridgeError) {
	card, cardErr := b.validateCard(input)
	if cardErr != nil {
		return nil, cardErr
	}

	email := input.String("email")
	if email == "" {
		return nil, types.NewBridgeError(types.ErrInvalidEmail, "Email cannot be empty")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, types.NewBridgeError(types.ErrInvalidEmail, "Invalid email")
	}

	amount := input.Int("amountInKobo")
	if amount < 1 {
		return nil, types.NewBridgeError(types.ErrInvalidAmount, "Invalid amount")
	}

	req := &types.ChargeRequest{
		Card:         card,
		Email:        email,
		AmountInKobo: amount,
	}
	b.attachOptional(req, input)

	b.log.Debug("charge request built", map[string]any{
		"email":  email,
		"amount": utils.FormatKobo(amount),
	})

	return req, nil
}

// BuildAccessCodeCharge runs the access-code pipeline: card validation only.
// The access code itself is attached when present but its absence is not a
// validation failure; the server side owns that check.
func (b *Builder) BuildAccessCodeCharge(input types.RawChargeInput) (*types.ChargeRequest, *types.BridgeError) {
	card, cardErr := b.validateCard(input)
	if cardErr != nil {
		return nil, cardErr
	}

	req := &types.ChargeRequest{Card: card}
	if input.HasString("accessCode") {
		req.AccessCode = input.String("accessCode")
	}

	return req, nil
}

func (b *Builder) validateCard(input types.RawChargeInput) (*types.Card, *types.BridgeError) {
	return ValidateCard(
		b.rules,
		input.String("cardNumber"),
		input.String("expiryMonth"),
		input.String("expiryYear"),
		input.String("cvc"),
	)
}

// attachOptional applies the optional-field rules: each field attaches only
// when present and non-empty (or positive), and bearer/transactionCharge are
// evaluated only under a present subAccount. Malformed metadata is logged
// and dropped; it must never block an otherwise-valid charge.
func (b *Builder) attachOptional(req *types.ChargeRequest, input types.RawChargeInput) {
	if input.HasString("currency") {
		req.Currency = input.String("currency")
	}

	if input.HasString("plan") {
		req.Plan = input.String("plan")
	}

	if input.HasString("subAccount") {
		req.SubAccount = input.String("subAccount")

		switch types.Bearer(input.String("bearer")) {
		case types.BearerSubAccount:
			req.Bearer = types.BearerSubAccount
		case types.BearerAccount:
			req.Bearer = types.BearerAccount
		}

		if tc := input.Int("transactionCharge"); tc > 0 {
			req.TransactionCharge = tc
		}
	}

	if input.HasString("reference") {
		req.Reference = input.String("reference")
	}

	if raw, present := input["metadata"]; present {
		m := input.Map("metadata")
		if m == nil {
			b.log.Warn("metadata dropped: not a document", map[string]any{"kind": kindOf(raw)})
			return
		}
		converted, _ := utils.ToPortableDocument(m)
		doc, ok := converted.(map[string]any)
		if !ok {
			b.log.Warn("metadata dropped: conversion failed", nil)
			return
		}
		req.Metadata = doc
	}
}

func kindOf(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case []any:
		return "sequence"
	default:
		return "other"
	}
}
