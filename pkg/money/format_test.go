package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGroup(t *testing.T) {
	assert.Equal(t, "0", Group(0))
	assert.Equal(t, "999", Group(999))
	assert.Equal(t, "1 234 567", Group(1234567))
}

func TestSum(t *testing.T) {
	assert.Equal(t, "12 500 so'm", Sum(12500))
	assert.Equal(t, "12 500 so'm", SumDecimal(decimal.RequireFromString("12500.99")))
}
