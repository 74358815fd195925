package commands

import (
	"errors"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand replaces the stored shipping settings.
// Only closed value sets are checked; numeric strings are stored as given
// and fail later, for the shipments that read them.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	settings settings.ShippingSettings

	guard guard.ConstructorGuard
}

func NewUpdateSettingsCommand(s settings.ShippingSettings) (UpdateSettingsCommand, error) {
	if err := s.Validate(); err != nil {
		return UpdateSettingsCommand{}, err
	}

	return UpdateSettingsCommand{
		settings: s,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

func (c UpdateSettingsCommand) Settings() settings.ShippingSettings {
	return c.settings
}
