package repository

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	assert.Equal(t, "T000001", FormatOrderNumber(1))
	assert.Equal(t, "T000042", FormatOrderNumber(42))
	assert.Equal(t, "T999999", FormatOrderNumber(999999))
	// ids past six digits keep growing rather than wrapping
	assert.Equal(t, "T1000000", FormatOrderNumber(1000000))
}

func TestFormatOrderNumberPatternAndOrdering(t *testing.T) {
	pat := regexp.MustCompile(`^T\d{6}$`)
	prev := ""
	for id := uint64(1); id <= 500; id++ {
		n := FormatOrderNumber(id)
		assert.Regexp(t, pat, n)
		// lexicographic order matches assignment order within the padded range
		assert.Greater(t, n, prev)
		prev = n
	}
}
