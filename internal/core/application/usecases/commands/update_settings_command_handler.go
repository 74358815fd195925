package commands

import (
	"context"
)

// UpdateSettingsCommandHandler persists new shipping settings.
type UpdateSettingsCommandHandler struct {
	uowFactory SettingsUoWFactory
}

func NewUpdateSettingsCommandHandler(uowFactory SettingsUoWFactory) UpdateSettingsCommandHandler {
	return UpdateSettingsCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateSettingsCommandHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SettingsRepository().Save(ctx, cmd.Settings()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
