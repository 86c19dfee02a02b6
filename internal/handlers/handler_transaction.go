package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// NextTokenHeader carries the token of the next ledger page.
const NextTokenHeader = "X-Next-Token"

// transactionHandler handles HTTP requests related to the ledger.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// RegisterTransactionRoutes registers the ledger routes on rg.
func RegisterTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txns := rg.Group("/transactions")
	{
		txns.GET("", h.listTransactions)
		txns.POST("", h.createTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns ledger entries newest first. With limit or next_token the list is paged and X-Next-Token points at the following page.
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size (1-500)"
// @Param next_token query string false "Token from a previous X-Next-Token header"
// @Success 200 {array} dto.TransactionResponse
// @Header 200 {string} X-Next-Token "Token of the next page"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	var params dto.ListTransactionsParams
	if !bindQuery(c, &params, "listing transactions") {
		return
	}

	txns, nextToken, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "listing transactions")
		return
	}

	if nextToken != "" {
		c.Header(NextTokenHeader, nextToken)
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// createTransaction godoc
// @Summary Record a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.IDResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if !bindJSON(c, &req, "creating transaction") {
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "creating transaction")
		return
	}

	logger.Info("Transaction created successfully", slog.Int64("transaction_id", txn.ID))
	c.JSON(http.StatusCreated, dto.IDResponse{ID: txn.ID})
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces the description and amount of a ledger entry.
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "New description and amount"
// @Success 200 {object} dto.UpdateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	id, ok := pathID(c, "updating transaction")
	if !ok {
		return
	}
	var req dto.UpdateTransactionRequest
	if !bindJSON(c, &req, "updating transaction") {
		return
	}

	if _, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "updating transaction")
		return
	}

	c.JSON(http.StatusOK, dto.UpdateResponse{Success: true, Changes: 1, Message: "Transaction updated successfully"})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Transaction ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	id, ok := pathID(c, "deleting transaction")
	if !ok {
		return
	}

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondError(c, err, "deleting transaction")
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}
