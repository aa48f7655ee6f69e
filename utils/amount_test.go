package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKobo(t *testing.T) {
	assert.Equal(t, "50.00", FormatKobo(5000))
	assert.Equal(t, "0.01", FormatKobo(1))
	assert.Equal(t, "1234.56", FormatKobo(123456))
}

func TestNairaToKobo(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		kobo, err := NairaToKobo("50.00")
		require.NoError(t, err)
		assert.Equal(t, 5000, kobo)
		assert.Equal(t, "50.00", FormatKobo(kobo))
	})

	t.Run("whole naira", func(t *testing.T) {
		kobo, err := NairaToKobo("7")
		require.NoError(t, err)
		assert.Equal(t, 700, kobo)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		for _, in := range []string{"", "abc", "-1", "0.005"} {
			_, err := NairaToKobo(in)
			assert.Error(t, err, "input %q", in)
		}
	})
}
