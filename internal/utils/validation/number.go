package validation

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MaxAmount bounds every monetary input so that stores with fixed-point integer
// columns cannot overflow.
var MaxAmount = decimal.NewFromInt(1_000_000_000_000)

// AmountPlaces is the number of fractional digits both stores keep.
const AmountPlaces = 4

// Number is a monetary request field that accepts either a JSON number or a
// numeric string. The raw text is kept so that parsing stays exact.
type Number string

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*n = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(strings.TrimSpace(s))
		return nil
	}
	*n = Number(raw)
	return nil
}

// IsSet reports whether the field was present and non-null.
func (n Number) IsSet() bool {
	return n != ""
}

// Decimal parses the number. NaN, infinities and non-numeric text are rejected.
func (n Number) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(string(n))
}

// Positive parses n and requires it to be greater than zero.
func Positive(field string, n Number) (decimal.Decimal, error) {
	d, err := parseAmount(field, n)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, apperrors.NewValidationError(field, "Invalid "+field)
	}
	return d, nil
}

// NonNegative parses n and requires it to be zero or greater.
func NonNegative(field string, n Number) (decimal.Decimal, error) {
	d, err := parseAmount(field, n)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, apperrors.NewValidationError(field, "Invalid "+field)
	}
	return d, nil
}

func parseAmount(field string, n Number) (decimal.Decimal, error) {
	if !n.IsSet() {
		return decimal.Zero, apperrors.NewValidationError(field, "Missing required fields: "+field)
	}
	d, err := n.Decimal()
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError(field, "Invalid "+field)
	}
	if d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, apperrors.NewValidationError(field, field+" is too large")
	}
	if !d.Equal(d.Truncate(AmountPlaces)) {
		return decimal.Zero, apperrors.NewValidationError(field, fmt.Sprintf("%s must have at most %d decimal places", field, AmountPlaces))
	}
	return d, nil
}
