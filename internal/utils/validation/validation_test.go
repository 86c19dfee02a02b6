package validation_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_UnmarshalJSON(t *testing.T) {
	var body struct {
		A validation.Number `json:"a"`
		B validation.Number `json:"b"`
		C validation.Number `json:"c"`
		D validation.Number `json:"d"`
	}
	err := json.Unmarshal([]byte(`{"a": 12.50, "b": " 7 ", "c": null}`), &body)
	require.NoError(t, err)

	assert.Equal(t, validation.Number("12.50"), body.A)
	assert.Equal(t, validation.Number("7"), body.B)
	assert.False(t, body.C.IsSet())
	assert.False(t, body.D.IsSet())
}

func TestPositive(t *testing.T) {
	tests := []struct {
		name    string
		input   validation.Number
		want    string
		wantErr bool
	}{
		{name: "integer", input: "100", want: "100"},
		{name: "decimal string", input: "0.01", want: "0.01"},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "NaN", input: "NaN", wantErr: true},
		{name: "infinity", input: "Infinity", wantErr: true},
		{name: "missing", input: "", wantErr: true},
		{name: "too large", input: "1000000000001", wantErr: true},
		{name: "four places", input: "1.0005", want: "1.0005"},
		{name: "trailing zeros", input: "2.500000", want: "2.5"},
		{name: "below store precision", input: "0.00001", wantErr: true},
		{name: "five places", input: "1.00005", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := validation.Positive("amount", tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Equal(t, "amount", apperrors.FieldOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestNonNegative(t *testing.T) {
	got, err := validation.NonNegative("current", "0")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = validation.NonNegative("current", "-0.5")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = validation.NonNegative("spent", "0.00001")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "spent", apperrors.FieldOf(err))
}

func TestParseID(t *testing.T) {
	id, err := validation.ParseID("id", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "-1", "1.5", " 1", "99999999999999999999"} {
		_, err := validation.ParseID("id", raw)
		assert.ErrorIs(t, err, apperrors.ErrValidation, raw)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{raw: "2024-03-05T10:20:30Z", want: time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)},
		{raw: "2024-03-05T10:20:30+02:00", want: time.Date(2024, 3, 5, 8, 20, 30, 0, time.UTC)},
		{raw: "2024-03-05T10:20:30.123Z", want: time.Date(2024, 3, 5, 10, 20, 30, 123000000, time.UTC)},
		{raw: "2024-03-05T10:20", want: time.Date(2024, 3, 5, 10, 20, 0, 0, time.UTC)},
		{raw: "2024-03-05", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		got, err := validation.ParseTimestamp("date", tt.raw)
		require.NoError(t, err, tt.raw)
		assert.True(t, tt.want.Equal(got), tt.raw)
		assert.Equal(t, time.UTC, got.Location())
	}

	_, err := validation.ParseTimestamp("date", "05/03/2024")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestParseDate_TruncatesTime(t *testing.T) {
	got, err := validation.ParseDate("deadline", "2025-12-31T18:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), got)
}

func TestParseYear(t *testing.T) {
	year, err := validation.ParseYear("year", "2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	for _, raw := range []string{"24", "20x4", "0000", "-202"} {
		_, err := validation.ParseYear("year", raw)
		assert.ErrorIs(t, err, apperrors.ErrValidation, raw)
	}
}

type sampleRequest struct {
	Type     string            `json:"type" binding:"required,oneof=income expense"`
	Amount   validation.Number `json:"amount" binding:"required"`
	Category string            `json:"category" binding:"required"`
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := validation.Struct(sampleRequest{Type: "income", Amount: "5"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, "category", apperrors.FieldOf(err))

	err = validation.Struct(sampleRequest{Type: "transfer", Amount: "5", Category: "x"})
	require.Error(t, err)
	assert.Equal(t, "type", apperrors.FieldOf(err))

	assert.NoError(t, validation.Struct(sampleRequest{Type: "expense", Amount: "5", Category: "Food"}))
}

func TestOptionalString(t *testing.T) {
	var body struct {
		A validation.OptionalString `json:"a"`
		B validation.OptionalString `json:"b"`
		C validation.OptionalString `json:"c"`
		D validation.OptionalString `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": "x", "b": null, "c": ""}`), &body))

	assert.True(t, body.A.Set)
	require.NotNil(t, body.A.NonEmpty())
	assert.Equal(t, "x", *body.A.NonEmpty())
	assert.True(t, body.B.Set)
	assert.Nil(t, body.B.NonEmpty())
	assert.True(t, body.C.Set)
	assert.Nil(t, body.C.NonEmpty())
	assert.False(t, body.D.Set)
}
