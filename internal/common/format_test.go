package common

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "Rs. 85000", FormatAmount("Rs.", decimal.NewFromInt(85000)))
	assert.Equal(t, "PKR -30000", FormatAmount("PKR", decimal.NewFromInt(-30000)))
}

func TestBoxPrefixes(t *testing.T) {
	assert.Equal(t, "│  ", BoxPrefix(false))
	assert.Equal(t, "└  ", BoxPrefix(true))
	assert.Equal(t, "│  ", BoxDetailPrefix(false))
	assert.Equal(t, "   ", BoxDetailPrefix(true))
}
