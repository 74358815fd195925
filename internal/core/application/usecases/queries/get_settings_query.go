package queries

import (
	"context"
	"errors"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/guard"
)

var ErrGetSettingsQueryIsNotConstructed = errors.New(
	"GetSettingsQuery must be created via NewGetSettingsQuery constructor",
)

// GetSettingsQuery reads the shipping settings.
type GetSettingsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetSettingsQuery() GetSettingsQuery {
	return GetSettingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetSettingsQuery) Validate() error {
	return q.guard.Validate(ErrGetSettingsQueryIsNotConstructed)
}

// GetSettingsResponse holds the settings as saved and as classification sees them.
type GetSettingsResponse struct {
	Stored    settings.ShippingSettings
	Effective settings.ShippingSettings
}

type GetSettingsQueryHandler struct {
	settings SettingsReader
}

func NewGetSettingsQueryHandler(reader SettingsReader) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{settings: reader}
}

func (h GetSettingsQueryHandler) Handle(ctx context.Context, query GetSettingsQuery) (GetSettingsResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSettingsResponse{}, err
	}

	stored, err := h.settings.Get(ctx)
	if err != nil {
		return GetSettingsResponse{}, err
	}

	return GetSettingsResponse{
		Stored:    stored,
		Effective: stored.Resolved(),
	}, nil
}
