package types

// Bearer identifies which party absorbs transaction fees when a sub-account
// is attached to a charge.
type Bearer string

const (
	BearerSubAccount Bearer = "subaccount"
	BearerAccount    Bearer = "account"
)

// Card holds the card details for a charge. A Card obtained from anywhere
// other than the validator reports Valid() == false and must not be
// submitted to the gateway.
type Card struct {
	Number      string
	CVC         string
	ExpiryMonth int
	ExpiryYear  int

	valid bool
}

// NewValidatedCard builds a Card that reports Valid() == true. Only the card
// validator should call this, after every check has passed.
func NewValidatedCard(number, cvc string, expiryMonth, expiryYear int) *Card {
	return &Card{
		Number:      number,
		CVC:         cvc,
		ExpiryMonth: expiryMonth,
		ExpiryYear:  expiryYear,
		valid:       true,
	}
}

// Valid reports whether the card passed full validation.
func (c *Card) Valid() bool {
	return c != nil && c.valid
}

// ChargeRequest is a fully-assembled charge ready for submission to the
// payment gateway.
type ChargeRequest struct {
	Card *Card

	// Email is set in full-charge mode; AccessCode in access-code mode.
	Email      string
	AccessCode string

	// Amount in the smallest currency unit (kobo). Required in full-charge
	// mode, must be >= 1.
	AmountInKobo int

	Currency  string
	Plan      string
	Reference string

	// SubAccount routes part of the charge to a sub-account. Bearer and
	// TransactionCharge are only ever set when SubAccount is set.
	SubAccount        string
	Bearer            Bearer
	TransactionCharge int

	// Metadata is an arbitrary JSON-ready document attached to the charge.
	Metadata map[string]any
}

// ChargeResult is the terminal success payload delivered to the caller.
type ChargeResult struct {
	Reference string `json:"reference"`
}

// BridgeError is the error surface of the bridge: a stable code plus a
// human-readable message.
type BridgeError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewBridgeError(code, message string) *BridgeError {
	return &BridgeError{Code: code, Message: message}
}

func (e *BridgeError) Error() string {
	return e.Message
}

// Error codes surfaced to the caller.
const (
	ErrInvalidNumber = "E_INVALID_NUMBER"
	ErrInvalidCVC    = "E_INVALID_CVC"
	ErrInvalidMonth  = "E_INVALID_MONTH"
	ErrInvalidYear   = "E_INVALID_YEAR"
	ErrInvalidDate   = "E_INVALID_DATE"
	ErrInvalidEmail  = "E_INVALID_EMAIL"
	ErrInvalidAmount = "E_INVALID_AMOUNT"
	ErrMetadata      = "E_METADATA_ERROR"
	ErrCharge        = "E_CHARGE_ERROR"
	ErrTransaction   = "E_TRANSACTION_ERROR"

	// ErrBusy is returned when a charge is started while another one is
	// still in flight.
	ErrBusy = "E_BUSY"
)
