package commands_test

import (
	"errors"
	"testing"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/commands"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func referencesOf(shipments []shipment.Shipment) []string {
	result := make([]string, 0, len(shipments))
	for _, s := range shipments {
		result = append(result, s.Reference)
	}
	return result
}

func batchUoW(t *testing.T, repo *MockBatchRepository) (*MockUoW, *MockBatchUoWFactory) {
	t.Helper()
	ctx := t.Context()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BatchRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestNewExportCommands(t *testing.T) {
	_, err := commands.NewExportBatchCommand(kernel.UUID{}, exportTime)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewExportReturnCommand(kernel.NewUUID(), "", exportTime)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewPurgeExpiredBatchesCommand(exportTime.AddDate(0, 0, -30))
	assert.NoError(t, err)
}

func TestExportBatchCommandHandler_Handle_OneFilePerLabelSize(t *testing.T) {
	ctx := t.Context()
	b := testBatch(t)
	cmd, err := commands.NewExportBatchCommand(b.ID(), exportTime)
	require.NoError(t, err)

	repo := new(MockBatchRepository)
	repo.On("Get", ctx, b.ID()).Return(b, nil).Once()
	uow, factory := batchUoW(t, repo)

	encoder := new(MockLabelEncoder)
	encoder.On("Encode", mock.MatchedBy(func(s []shipment.Shipment) bool {
		return assert.ObjectsAreEqual([]string{"1001", "1005"}, referencesOf(s))
	})).Return([]byte("small"), nil).Once()
	encoder.On("Encode", mock.MatchedBy(func(s []shipment.Shipment) bool {
		return assert.ObjectsAreEqual([]string{"1003"}, referencesOf(s))
	})).Return([]byte("large"), nil).Once()

	store := new(MockExportStore)
	store.On("Put", ctx, "labels_7x3_20260301-093000.csv", "text/csv", []byte("small")).
		Return("exports/labels_7x3_20260301-093000.csv", nil).Once()
	store.On("Put", ctx, "labels_4x6_20260301-093000.csv", "text/csv", []byte("large")).
		Return("exports/labels_4x6_20260301-093000.csv", nil).Once()

	files, err := commands.NewExportBatchCommandHandler(factory, encoder, store, zap.NewNop()).Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, commands.ExportedFile{
		LabelSize: shipment.LabelSize7x3,
		Name:      "labels_7x3_20260301-093000.csv",
		Location:  "exports/labels_7x3_20260301-093000.csv",
		Shipments: 2,
	}, files[0])
	assert.Equal(t, shipment.LabelSize4x6, files[1].LabelSize)
	encoder.AssertExpectations(t)
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExportBatchCommandHandler_Handle_AppliesOverrides(t *testing.T) {
	ctx := t.Context()
	b := testBatch(t)
	size := shipment.LabelSize4x6
	require.NoError(t, b.SetOverride("1005", shipment.Override{LabelSize: &size}))
	cmd, _ := commands.NewExportBatchCommand(b.ID(), exportTime)

	repo := new(MockBatchRepository)
	repo.On("Get", ctx, b.ID()).Return(b, nil).Once()
	_, factory := batchUoW(t, repo)

	encoder := new(MockLabelEncoder)
	encoder.On("Encode", mock.Anything).Return([]byte("data"), nil)
	store := new(MockExportStore)
	store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return("somewhere", nil)

	files, err := commands.NewExportBatchCommandHandler(factory, encoder, store, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, 1, files[0].Shipments)
	assert.Equal(t, 2, files[1].Shipments)
}

func TestExportBatchCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	b := testBatch(t)
	cmd, _ := commands.NewExportBatchCommand(b.ID(), exportTime)

	repo := new(MockBatchRepository)
	repo.On("Get", ctx, b.ID()).Return(b, nil).Once()
	_, factory := batchUoW(t, repo)

	encoder := new(MockLabelEncoder)
	encoder.On("Encode", mock.Anything).Return([]byte("data"), nil).Once()
	store := new(MockExportStore)
	store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("disk full")).Once()

	files, err := commands.NewExportBatchCommandHandler(factory, encoder, store, nil).Handle(ctx, cmd)

	require.EqualError(t, err, "disk full")
	assert.Empty(t, files)
}

func TestExportReturnCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	b := testBatch(t)
	cmd, err := commands.NewExportReturnCommand(b.ID(), "1003", exportTime)
	require.NoError(t, err)

	repo := new(MockBatchRepository)
	repo.On("Get", ctx, b.ID()).Return(b, nil).Once()
	uow, factory := batchUoW(t, repo)

	original, err := b.Shipment("1003")
	require.NoError(t, err)

	encoder := new(MockLabelEncoder)
	encoder.On("Encode", []shipment.Shipment{original.Swapped()}).Return([]byte("return"), nil).Once()
	store := new(MockExportStore)
	store.On("Put", ctx, "return_4x6_20260301-093000.csv", "text/csv", []byte("return")).
		Return("exports/return_4x6_20260301-093000.csv", nil).Once()

	file, err := commands.NewExportReturnCommandHandler(factory, encoder, store).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, file.Shipments)
	assert.Equal(t, shipment.LabelSize4x6, file.LabelSize)
	encoder.AssertExpectations(t)
	store.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExportReturnCommandHandler_Handle_UnknownReference(t *testing.T) {
	ctx := t.Context()
	b := testBatch(t)
	cmd, _ := commands.NewExportReturnCommand(b.ID(), "4242", exportTime)

	repo := new(MockBatchRepository)
	repo.On("Get", ctx, b.ID()).Return(b, nil).Once()
	_, factory := batchUoW(t, repo)

	_, err := commands.NewExportReturnCommandHandler(factory, new(MockLabelEncoder), new(MockExportStore)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPurgeExpiredBatchesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cutoff := exportTime.AddDate(0, 0, -30)
	cmd, err := commands.NewPurgeExpiredBatchesCommand(cutoff)
	require.NoError(t, err)

	repo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(repo).Once(),
		repo.On("DeleteCreatedBefore", ctx, cutoff).Return(int64(3), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	deleted, err := commands.NewPurgeExpiredBatchesCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	uow.AssertExpectations(t)
}
