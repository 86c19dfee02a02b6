package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = "id, type, amount, category, description, txn_date"

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.ID, &m.Type, &m.Amount, &m.Category, &m.Description, &m.TxnDate)
	return m, err
}

// ListTransactions retrieves one page of the ledger, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, page domain.LedgerPage) ([]domain.Transaction, error) {
	var sb strings.Builder
	args := make([]any, 0, 3)

	sb.WriteString("SELECT " + transactionColumns + " FROM transactions")
	if page.After != nil {
		args = append(args, page.After.Date.UTC(), page.After.ID)
		sb.WriteString(" WHERE (txn_date, id) < ($1, $2)")
	}
	sb.WriteString(" ORDER BY txn_date DESC, id DESC")
	if page.Limit > 0 {
		args = append(args, page.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// SaveTransaction inserts a new ledger entry.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (int64, error) {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (type, amount, category, description, txn_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	if err := r.Pool.QueryRow(ctx, query, m.Type, m.Amount, m.Category, m.Description, m.TxnDate).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return id, nil
}

// UpdateTransaction changes the description and amount of an entry.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, id int64, update domain.TransactionUpdate) (*domain.Transaction, error) {
	query := `
		UPDATE transactions SET description = $1, amount = $2
		WHERE id = $3
		RETURNING ` + transactionColumns
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, update.Description, update.Amount, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Transaction not found")
		}
		return nil, fmt.Errorf("failed to update transaction %d: %w", id, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// DeleteTransaction removes an entry and returns the deleted row.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `DELETE FROM transactions WHERE id = $1 RETURNING ` + transactionColumns
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Transaction not found")
		}
		return nil, fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}
