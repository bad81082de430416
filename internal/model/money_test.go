package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmountCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"1500.00", 150000},
		{"1500", 150000},
		{"99.5", 9950},
		{"0.07", 7},
		{"0", 0},
		{" 12.30 ", 1230},
	}
	for _, tc := range cases {
		got, err := ParseAmountCents(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestParseAmountCentsRejects(t *testing.T) {
	for _, in := range []string{"", "-5", "+5", "1.234", "abc", "1.2x", ".50", "1.", "12,50"} {
		_, err := ParseAmountCents(in)
		assert.ErrorIs(t, err, ErrBadAmount, "input %q", in)
	}
}

func TestFormatAmountCents(t *testing.T) {
	assert.Equal(t, "4500.00", FormatAmountCents(450000))
	assert.Equal(t, "0.07", FormatAmountCents(7))
	assert.Equal(t, "0.00", FormatAmountCents(0))
	assert.Equal(t, "-12.30", FormatAmountCents(-1230))
}

func TestTotalIsExact(t *testing.T) {
	// price 1500.00 × quantity 3 must be exactly 4500.00
	price, err := ParseAmountCents("1500.00")
	require.NoError(t, err)
	total := price * 3
	assert.Equal(t, "4500.00", FormatAmountCents(total))
}

func TestValidTicketType(t *testing.T) {
	assert.True(t, ValidTicketType(TicketTypeDancefloor))
	assert.True(t, ValidTicketType(TicketTypeFanZone))
	assert.True(t, ValidTicketType(TicketTypeVIP))
	assert.False(t, ValidTicketType("balcony"))
	assert.False(t, ValidTicketType(""))
}
