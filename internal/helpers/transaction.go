package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sullivan-trading/sullivan-api/internal/logger"
	"go.uber.org/zap"
)

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction executes a function within a database transaction.
// It automatically handles commit/rollback based on the error returned by the function.
// If the function returns an error, the transaction is rolled back.
// If the function returns nil, the transaction is committed.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// If the transaction is already committed, rollback returns ErrTxClosed.
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction",
				zap.Error(rollbackErr),
			)
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// WithTransactionRetry executes a function within a database transaction with retry logic.
// It will retry the transaction up to maxRetries times if it encounters a serialization error.
func WithTransactionRetry(ctx context.Context, pool *pgxpool.Pool, maxRetries int, fn TransactionFunc) error {
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = WithTransaction(ctx, pool, fn)
		if err == nil {
			return nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "40001" { // serialization_failure
			if attempt < maxRetries {
				logger.Log.Warn("Transaction failed due to serialization error, retrying",
					zap.Int("attempt", attempt+1),
					zap.Int("max_retries", maxRetries),
					zap.Error(err),
				)
				continue
			}
		}

		break
	}

	return err
}
