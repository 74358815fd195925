package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command execution.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork spans one transaction over the batch and settings tables.
// Repositories obtained before Begin run outside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	// Commit fails when no transaction is open.
	Commit(ctx context.Context) error
	// Rollback fails when no transaction is open, so a deferred call after
	// Commit returns an error that callers ignore.
	Rollback(ctx context.Context) error

	BatchRepository() BatchRepository
	SettingsRepository() SettingsRepository
}
