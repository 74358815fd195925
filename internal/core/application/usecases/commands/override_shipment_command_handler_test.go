package commands_test

import (
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/commands"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewOverrideShipmentCommand(t *testing.T) {
	zero := decimal.Zero

	_, err := commands.NewOverrideShipmentCommand(kernel.UUID{}, " ", shipment.Override{Weight: &zero})

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestOverrideShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	b := testBatch(t)
	service := shipment.ServicePriority
	cmd, err := commands.NewOverrideShipmentCommand(b.ID(), "1001", shipment.Override{Service: &service})
	require.NoError(t, err)

	repo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(repo).Once(),
		repo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
		repo.On("SaveOverrides", ctx, mock.MatchedBy(func(saved *batch.Batch) bool {
			_, ok := saved.Overrides()["1001"]
			return ok
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	got, err := commands.NewOverrideShipmentCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.ServicePriority, got.Service)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOverrideShipmentCommandHandler_Handle_UnknownReference(t *testing.T) {
	ctx := t.Context()
	b := testBatch(t)
	cmd, err := commands.NewOverrideShipmentCommand(b.ID(), "9999", shipment.Override{})
	require.NoError(t, err)

	repo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(repo).Once(),
		repo.On("Get", ctx, b.ID()).Return(b, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewOverrideShipmentCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "SaveOverrides", mock.Anything, mock.Anything)
}

func TestOverrideShipmentCommandHandler_Handle_BatchNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewOverrideShipmentCommand(id, "1001", shipment.Override{})

	repo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(repo).Once(),
		repo.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("batch", id.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := commands.NewOverrideShipmentCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
