package commands

import (
	"context"
)

// PurgeExpiredBatchesCommandHandler deletes old batches and reports how many went.
type PurgeExpiredBatchesCommandHandler struct {
	uowFactory BatchUoWFactory
}

func NewPurgeExpiredBatchesCommandHandler(uowFactory BatchUoWFactory) PurgeExpiredBatchesCommandHandler {
	return PurgeExpiredBatchesCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h PurgeExpiredBatchesCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredBatchesCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.BatchRepository().DeleteCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
