package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/ports"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/pagination"
	"github.com/SscSPs/finance_tracker/internal/utils/validation"
)

const (
	defaultLedgerPageSize = 50
	maxLedgerPageSize     = 500
)

// transactionService implements portssvc.TransactionSvcFacade
type transactionService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryFacade
	publisher ports.LedgerEventPublisher
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithLedgerEventPublisher announces every successful ledger mutation through p.
func WithLedgerEventPublisher(p ports.LedgerEventPublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.publisher = p
	}
}

// WithTransactionClock overrides the clock used to timestamp ledger events.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Clock = clock
	}
}

// NewTransactionService creates a new ledger service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{txnRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ListTransactions returns the ledger, newest first. Without limit or next_token the whole ledger is returned.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, string, error) {
	page := domain.LedgerPage{}
	if params.Limit != "" {
		limit, err := strconv.Atoi(params.Limit)
		if err != nil || limit < 1 || limit > maxLedgerPageSize {
			return nil, "", apperrors.NewValidationError("limit", fmt.Sprintf("limit must be between 1 and %d", maxLedgerPageSize))
		}
		page.Limit = limit
	}
	if params.NextToken != "" {
		cursor, err := pagination.DecodeLedgerToken(params.NextToken)
		if err != nil {
			s.LogWarn(ctx, "Rejected malformed ledger page token", slog.String("error", err.Error()))
			return nil, "", apperrors.NewValidationError("next_token", "Invalid next_token")
		}
		page.After = &cursor
		if page.Limit == 0 {
			page.Limit = defaultLedgerPageSize
		}
	}

	// Fetch one extra row to learn whether another page exists.
	query := page
	if query.Limit > 0 {
		query.Limit++
	}
	txns, err := s.txnRepo.ListTransactions(ctx, query)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	nextToken := ""
	if page.Limit > 0 && len(txns) > page.Limit {
		txns = txns[:page.Limit]
		last := txns[len(txns)-1]
		nextToken = pagination.EncodeLedgerToken(domain.LedgerCursor{Date: last.Date, ID: last.ID})
	}

	s.LogDebug(ctx, "Transactions listed", slog.Int("count", len(txns)), slog.Bool("has_more", nextToken != ""))
	return txns, nextToken, nil
}

// CreateTransaction validates and records a new ledger entry.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	amount, err := validation.Positive("amount", req.Amount)
	if err != nil {
		return nil, err
	}
	date, err := validation.ParseTimestamp("date", req.Date)
	if err != nil {
		return nil, err
	}

	txn := domain.Transaction{
		Type:        domain.TransactionType(req.Type),
		Amount:      amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}
	if !txn.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "type must be one of [income expense]")
	}

	id, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("category", txn.Category))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	txn.ID = id

	s.LogInfo(ctx, "Transaction created", slog.Int64("transaction_id", id), slog.String("type", string(txn.Type)))
	s.publish(ctx, domain.LedgerEventCreated, txn)
	return &txn, nil
}

// UpdateTransaction replaces the description and amount of an existing entry.
func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	amount, err := validation.Positive("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.UpdateTransaction(ctx, id, domain.TransactionUpdate{Description: req.Description, Amount: amount})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", id))
		return nil, fmt.Errorf("failed to update transaction %d: %w", id, err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", id))
	s.publish(ctx, domain.LedgerEventUpdated, *txn)
	return txn, nil
}

// DeleteTransaction removes a ledger entry.
func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	txn, err := s.txnRepo.DeleteTransaction(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", id))
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", id))
	s.publish(ctx, domain.LedgerEventDeleted, *txn)
	return nil
}

// publish is best-effort: a failure is logged and never fails the request.
func (s *transactionService) publish(ctx context.Context, kind domain.LedgerEventKind, txn domain.Transaction) {
	if s.publisher == nil {
		return
	}
	event := domain.LedgerEvent{
		Kind:          kind,
		TransactionID: txn.ID,
		Category:      txn.Category,
		Timestamp:     s.Now(),
	}
	if err := s.publisher.PublishLedgerEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish ledger event",
			slog.String("kind", string(kind)),
			slog.Int64("transaction_id", txn.ID))
	}
}
