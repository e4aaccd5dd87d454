package render

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/token-bubbles/core"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "$0.00"},
		{"-1", "$0.00"},
		{"0.00001234", "$0.0₄1234"},
		{"0.000012345678", "$0.0₄1234"},
		{"0.0000120", "$0.0₄12"},
		{"0.000000000005", "$0.0₁₁5"},
		{"0.05123", "$0.0512"},
		{"0.5", "$0.5000"},
		{"1.23456", "$1.2346"},
		{"1234.5", "$1.23K"},
		{"2500000", "$2.50M"},
		{"7100000000", "$7.10B"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(decimal.RequireFromString(tc.in)), tc.in)
	}
}

func TestEntityPriceFallback(t *testing.T) {
	e := core.Entity{Price: 0.5}
	assert.Equal(t, "$0.5000", EntityPrice(&e))

	e.PriceUSD = decimal.RequireFromString("0.00001234")
	assert.Equal(t, "$0.0₄1234", EntityPrice(&e))

	assert.Equal(t, "$0.00", EntityPrice(&core.Entity{}))
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "-", FormatUSD(0))
	assert.Equal(t, "$999.00", FormatUSD(999))
	assert.Equal(t, "$1.50K", FormatUSD(1500))
	assert.Equal(t, "$12.35M", FormatUSD(12_345_678))
	assert.Equal(t, "$3.00B", FormatUSD(3e9))
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "+3.46%", FormatPct(3.456))
	assert.Equal(t, "-12.00%", FormatPct(-12))
	assert.Equal(t, "0.00%", FormatPct(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "PEPE", truncate("PEPE", 4))
	assert.Equal(t, "PE…", truncate("PEPE", 3))
	assert.Equal(t, "P", truncate("PEPE", 1))
	assert.Equal(t, "", truncate("PEPE", 0))
}

func TestChangeColor(t *testing.T) {
	assert.Equal(t, RgbStrongGain, ChangeColor(7))
	assert.Equal(t, RgbGain, ChangeColor(5))
	assert.Equal(t, RgbNeutral, ChangeColor(0))
	assert.Equal(t, RgbLoss, ChangeColor(-5))
	assert.Equal(t, RgbStrongLoss, ChangeColor(-5.1))
}

func TestHexAndBlend(t *testing.T) {
	assert.Equal(t, RGB{0x16, 0xa0, 0x85}, Hex("#16a085"))
	assert.Equal(t, RGBBlack, Hex("nope"))
	assert.Equal(t, RGB{128, 128, 128}, Blend(RGBBlack, RGBWhite, 0.5))
	assert.Equal(t, RGBWhite, Contrast(RgbStrongLoss))
}
