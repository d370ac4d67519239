package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"guestlink/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// RetryPolicy bounds RunInTxWithRetry. Attempt n (0-based) waits BaseDelay*(n+1) before retrying.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

var DefaultRetryPolicy = RetryPolicy{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}

// RunInTx commits when fn succeeds and rolls back otherwise.
func RunInTx[T any](ctx context.Context, b TxBeginner, fn func(tx DBTX) (T, error)) (T, error) {
	var zero T

	tx, err := b.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTransactionBegin)
	}

	result, err := fn(tx)
	if err != nil {
		rollback(ctx, tx)
		return zero, err
	}

	if err := tx.Commit(ctx); err != nil {
		rollback(ctx, tx)
		return zero, errs.Mark(err, ErrTransactionCommit)
	}
	return result, nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	// the request may already be gone; the rollback must still reach the server
	err := tx.Rollback(context.WithoutCancel(ctx))
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		slog.Warn("failed to rollback transaction", "error", err)
	}
}

// RunInTxWithRetry reruns the whole transaction on serialization failures and deadlocks.
func RunInTxWithRetry[T any](ctx context.Context, b TxBeginner, policy RetryPolicy, fn func(tx DBTX) (T, error)) (T, error) {
	var zero T

	for attempt := 0; ; attempt++ {
		result, err := RunInTx(ctx, b, fn)
		if err == nil || !IsRetryable(err) {
			return result, err
		}

		if attempt >= policy.MaxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err)
			return zero, errs.Mark(err, ErrMaxRetriesExceeded)
		}

		wait := policy.BaseDelay * time.Duration(attempt+1)
		slog.Warn("retrying transaction", "attempt", attempt+1, "wait", wait, "error", err)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

// IsRetryable reports serialization_failure (40001) and deadlock_detected (40P01).
func IsRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
