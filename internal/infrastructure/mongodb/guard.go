package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/identity-mongo/internal/domain/entity"
	"github.com/oksasatya/identity-mongo/internal/domain/repository"
)

// lifecycle tracks whether a store was closed. The store never owns the client.
type lifecycle struct {
	closed atomic.Bool
}

// Close marks the store as closed. Later calls fail with ErrDisposed.
func (l *lifecycle) Close() error {
	l.closed.Store(true)
	return nil
}

// enter runs the checks every operation performs before any I/O.
func (l *lifecycle) enter(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrCancelled, err)
	}
	if l.closed.Load() {
		return repository.ErrDisposed
	}
	return nil
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// driverErr maps context errors returned by the driver to ErrCancelled and
// passes everything else through unchanged.
func driverErr(err error) error {
	if err != nil && isContextErr(err) {
		return fmt.Errorf("%w: %w", repository.ErrCancelled, err)
	}
	return err
}

// writeResult folds a write error into a failed Result with the given code.
func writeResult(err error, code, description string) (entity.Result, error) {
	if err == nil {
		return entity.Success(), nil
	}
	if isContextErr(err) {
		return entity.Result{}, fmt.Errorf("%w: %w", repository.ErrCancelled, err)
	}
	if !errors.Is(err, mongo.ErrUnacknowledgedWrite) {
		description = description + ": " + err.Error()
	}
	return entity.Failed(entity.ResultError{Code: code, Description: description}), nil
}
