package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
)

const transactionColumns = "id, type, amount_minor, category, description, txn_date"

type SQLiteTransactionRepository struct {
	BaseRepository
}

func newSQLiteTransactionRepository(db *sql.DB) portsrepo.TransactionRepositoryFacade {
	return &SQLiteTransactionRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var (
		m       models.Transaction
		amount  int64
		txnDate string
	)
	if err := row.Scan(&m.ID, &m.Type, &amount, &m.Category, &m.Description, &txnDate); err != nil {
		return m, err
	}
	date, err := parseTimestamp(txnDate)
	if err != nil {
		return m, err
	}
	m.Amount = fromMinor(amount)
	m.TxnDate = date
	return m, nil
}

// ListTransactions retrieves one page of the ledger, newest first.
func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context, page domain.LedgerPage) ([]domain.Transaction, error) {
	var sb strings.Builder
	args := make([]any, 0, 3)

	sb.WriteString("SELECT " + transactionColumns + " FROM transactions")
	if page.After != nil {
		sb.WriteString(" WHERE (txn_date, id) < (?, ?)")
		args = append(args, formatTimestamp(page.After.Date), page.After.ID)
	}
	sb.WriteString(" ORDER BY txn_date DESC, id DESC")
	if page.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, page.Limit)
	}

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// SaveTransaction inserts a new ledger entry.
func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (type, amount_minor, category, description, txn_date)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id;
	`
	var id int64
	err := r.DB.QueryRowContext(ctx, query, m.Type, toMinor(m.Amount), m.Category, m.Description, formatTimestamp(m.TxnDate)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return id, nil
}

// UpdateTransaction changes the description and amount of an entry.
func (r *SQLiteTransactionRepository) UpdateTransaction(ctx context.Context, id int64, update domain.TransactionUpdate) (*domain.Transaction, error) {
	query := `UPDATE transactions SET description = ?, amount_minor = ? WHERE id = ? RETURNING ` + transactionColumns
	m, err := scanTransaction(r.DB.QueryRowContext(ctx, query, update.Description, toMinor(update.Amount), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Transaction not found")
		}
		return nil, fmt.Errorf("failed to update transaction %d: %w", id, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// DeleteTransaction removes an entry and returns the deleted row.
func (r *SQLiteTransactionRepository) DeleteTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `DELETE FROM transactions WHERE id = ? RETURNING ` + transactionColumns
	m, err := scanTransaction(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Transaction not found")
		}
		return nil, fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}
