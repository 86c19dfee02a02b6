package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// timestampFormat is used for every timestamp written to a response.
const timestampFormat = "2006-01-02T15:04:05.000Z07:00"

// IDResponse is returned by create endpoints.
type IDResponse struct {
	ID int64 `json:"id"`
}

// UpdateResponse reports the number of rows changed by an update.
type UpdateResponse struct {
	Success bool   `json:"success"`
	Changes int64  `json:"changes"`
	Message string `json:"message"`
}

// StatusResponse is a plain success acknowledgement.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is returned by delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func toNumber(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
