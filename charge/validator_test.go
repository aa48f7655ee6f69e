package charge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arttitude360/paystack-go/charge"
	"github.com/arttitude360/paystack-go/gateway/mock"
	"github.com/arttitude360/paystack-go/types"
)

const (
	testCardNumber = "4084084084084081"
	testCVC        = "408"
)

func TestValidateCard(t *testing.T) {
	t.Run("valid card passes every check", func(t *testing.T) {
		card, err := charge.ValidateCard(mock.New(), testCardNumber, "12", "30", testCVC)
		require.Nil(t, err)
		require.NotNil(t, card)
		assert.True(t, card.Valid())
		assert.Equal(t, testCardNumber, card.Number)
		assert.Equal(t, 12, card.ExpiryMonth)
		assert.Equal(t, 30, card.ExpiryYear)
	})

	t.Run("first failure wins", func(t *testing.T) {
		cases := []struct {
			name     string
			number   string
			month    string
			year     string
			cvc      string
			wantCode string
			wantMsg  string
		}{
			{"empty number", "", "12", "30", testCVC, types.ErrInvalidNumber, "Empty card number"},
			{"bad checksum", "4084084084084082", "12", "30", testCVC, types.ErrInvalidNumber, "Invalid card number"},
			{"empty cvc", testCardNumber, "12", "30", "", types.ErrInvalidCVC, "Empty CVC"},
			{"bad cvc", testCardNumber, "12", "30", "4x8", types.ErrInvalidCVC, "Invalid CVC"},
			{"unparseable month", testCardNumber, "dec", "30", testCVC, types.ErrInvalidMonth, "Invalid expiration month"},
			{"zero month", testCardNumber, "0", "30", testCVC, types.ErrInvalidMonth, "Invalid expiration month"},
			{"unparseable year", testCardNumber, "12", "soon", testCVC, types.ErrInvalidYear, "Invalid expiration year"},
			{"negative year", testCardNumber, "12", "-1", testCVC, types.ErrInvalidYear, "Invalid expiration year"},
			{"past expiry", testCardNumber, "12", "20", testCVC, types.ErrInvalidDate, "Invalid expiration date"},
			{"month out of range", testCardNumber, "13", "30", testCVC, types.ErrInvalidDate, "Invalid expiration date"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				card, err := charge.ValidateCard(mock.New(), tc.number, tc.month, tc.year, tc.cvc)
				require.NotNil(t, err)
				assert.Nil(t, card)
				assert.Equal(t, tc.wantCode, err.Code)
				assert.Equal(t, tc.wantMsg, err.Message)
			})
		}
	})

	t.Run("empty number short circuits the gateway rules", func(t *testing.T) {
		gw := mock.New()
		var numberChecked bool
		gw.ValidCardNumberFunc = func(string) bool {
			numberChecked = true
			return true
		}

		_, err := charge.ValidateCard(gw, "", "12", "30", testCVC)
		require.NotNil(t, err)
		assert.Equal(t, types.ErrInvalidNumber, err.Code)
		assert.False(t, numberChecked, "gateway rule ran before the emptiness check")
	})

	t.Run("cvc rule sees the card number for brand detection", func(t *testing.T) {
		gw := mock.New()
		var seenNumber string
		gw.ValidCVCFunc = func(number, cvc string) bool {
			seenNumber = number
			return true
		}

		_, err := charge.ValidateCard(gw, testCardNumber, "12", "30", testCVC)
		require.Nil(t, err)
		assert.Equal(t, testCardNumber, seenNumber)
	})
}
