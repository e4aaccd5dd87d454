package market

import (
	"bytes"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Number is a float that decodes from JSON numbers, numeric strings, null or garbage
// Anything that is not a finite number decodes to 0
type Number float64

// UnmarshalJSON never fails, so one bad field cannot drop a whole pair
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = 0
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Number(f)
	return nil
}

// Float64 returns the value as float64
func (n Number) Float64() float64 {
	return float64(n)
}

// Price is an exact decimal price, string or number on the wire
type Price struct {
	Value decimal.Decimal
	Valid bool
}

// UnmarshalJSON leaves the price invalid on anything unparsable
func (p *Price) UnmarshalJSON(b []byte) error {
	*p = Price{}
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	*p = Price{Value: d, Valid: true}
	return nil
}

// Float64 returns the nearest float, 0 when invalid
func (p Price) Float64() float64 {
	if !p.Valid {
		return 0
	}
	return p.Value.InexactFloat64()
}
