package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
)

// CreateTransactionRequest defines the data needed to record a ledger entry.
type CreateTransactionRequest struct {
	Type        string            `json:"type" binding:"required,oneof=income expense"`
	Amount      validation.Number `json:"amount" binding:"required"`
	Category    string            `json:"category" binding:"required,max=100"`
	Description string            `json:"description" binding:"max=500"`
	Date        string            `json:"date" binding:"required"`
}

// UpdateTransactionRequest replaces the editable fields of a ledger entry.
type UpdateTransactionRequest struct {
	Description string            `json:"description" binding:"required,max=500"`
	Amount      validation.Number `json:"amount" binding:"required"`
}

// ListTransactionsParams holds the optional paging query parameters.
type ListTransactionsParams struct {
	Limit     string `form:"limit"`
	NextToken string `form:"next_token"`
}

// TransactionResponse defines the data returned for a ledger entry.
type TransactionResponse struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// ToTransactionResponse converts a domain Transaction to its response DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      toNumber(t.Amount),
		Category:    t.Category,
		Description: t.Description,
		Date:        formatTimestamp(t.Date),
	}
}

// ToListTransactionResponse converts domain Transactions to response DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}
