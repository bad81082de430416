package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Monetary amounts are stored as integer cents so that totals like
// 1500.00 × 3 come out exact.  These helpers convert between the cents
// representation and the decimal strings used in forms and responses.

// ErrBadAmount is returned when a decimal amount string cannot be
// parsed into cents.
var ErrBadAmount = errors.New("invalid amount")

// ParseAmountCents converts a decimal string such as "1500.00", "99.5"
// or "120" into cents.  At most two fractional digits are accepted and
// negative amounts are rejected.
func ParseAmountCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrBadAmount
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
		if frac == "" {
			return 0, ErrBadAmount
		}
	}
	if whole == "" || len(frac) > 2 {
		return 0, ErrBadAmount
	}
	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrBadAmount
	}
	cents := int64(0)
	if frac != "" {
		n, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, ErrBadAmount
		}
		if len(frac) == 1 {
			n *= 10
		}
		cents = n
	}
	return units*100 + cents, nil
}

// FormatAmountCents renders cents as a decimal string with exactly two
// fractional digits, e.g. 450000 -> "4500.00".
func FormatAmountCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
