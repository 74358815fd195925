package batchrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/out/postgres/batchrepo"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/adapters/out/postgres/pgtest"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// BatchRepositoryIntegrationTestSuite exercises the batch repository against PostgreSQL.
type BatchRepositoryIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	repo     *batchrepo.GormBatchRepository
}

func (suite *BatchRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repo = batchrepo.NewGormBatchRepository(database.DB, noopTracker{})
}

func (suite *BatchRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *BatchRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Stop(context.Background()))
}

var sender = kernel.Address{Name: "Card Shop", Street1: "1 Warehouse Rd", City: "Austin", State: "TX", Zip: "73301", Country: "US"}

func testEntry(reference string, orderIDs []string, pkg shipment.PackageType, size shipment.LabelSize) batch.Entry {
	return batch.Entry{
		Shipment: shipment.Shipment{
			Reference: reference,
			ToAddress: kernel.Address{
				Name: "Ada Lovelace", Street1: "12 Main St ", Street2: "Apt 4",
				City: "Boston", State: "MA", Zip: "02134-1234", Country: "US",
			},
			FromAddress:   sender,
			ReturnAddress: sender,
			Parcel: shipment.Parcel{
				Length:            decimal.NewFromInt(8),
				Width:             decimal.NewFromInt(6),
				Height:            decimal.RequireFromString("0.75"),
				Weight:            decimal.RequireFromString("3.31"),
				PredefinedPackage: pkg,
			},
			Carrier: shipment.Carrier,
			Service: shipment.ServiceGround,
			Options: shipment.Options{
				LabelFormat:          shipment.LabelFormatPDF,
				LabelSize:            size,
				InvoiceNumber:        reference,
				DeliveryConfirmation: shipment.Signature,
			},
		},
		OrderIDs:  orderIDs,
		ItemCount: 31,
		Value:     kernel.MustMoney("275.40"),
	}
}

func (suite *BatchRepositoryIntegrationTestSuite) newBatch(createdAt time.Time) *batch.Batch {
	b, err := batch.NewBatch("TCGplayer_ShippingExport.csv", createdAt, []batch.Entry{
		testEntry("2002", []string{"2002"}, shipment.PackageParcel, shipment.LabelSize4x6),
		testEntry("1001", []string{"1001", "1005", "1009"}, shipment.PackageFlat, shipment.LabelSize6x4),
		testEntry("3003", []string{"3003"}, shipment.PackageLetter, shipment.LabelSize7x3),
	})
	suite.Require().NoError(err)
	return b
}

func (suite *BatchRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	b := suite.newBatch(createdAt)

	suite.Require().NoError(suite.repo.Add(ctx, b))

	got, err := suite.repo.Get(ctx, b.ID())
	suite.Require().NoError(err)

	suite.True(got.ID().IsEqual(b.ID()))
	suite.Equal("TCGplayer_ShippingExport.csv", got.SourceName())
	suite.True(createdAt.Equal(got.CreatedAt()))
	suite.Require().Len(got.Entries(), 3)

	refs := make([]string, 0, 3)
	for _, e := range got.Entries() {
		refs = append(refs, e.Shipment.Reference)
	}
	suite.Equal([]string{"2002", "1001", "3003"}, refs, "pipeline order is preserved")

	e := got.Entries()[1]
	suite.Equal([]string{"1001", "1005", "1009"}, e.OrderIDs)
	suite.Equal(31, e.ItemCount)
	suite.True(e.Value.IsEqual(kernel.MustMoney("275.40")))
	suite.Equal("12 Main St ", e.Shipment.ToAddress.Street1, "address fields are stored raw")
	suite.Equal(sender, e.Shipment.FromAddress)
	suite.Equal(sender, e.Shipment.ReturnAddress)
	suite.True(e.Shipment.Parcel.Weight.Equal(decimal.RequireFromString("3.31")))
	suite.True(e.Shipment.Parcel.Height.Equal(decimal.RequireFromString("0.75")))
	suite.Equal(shipment.PackageFlat, e.Shipment.Parcel.PredefinedPackage)
	suite.Equal(shipment.LabelSize6x4, e.Shipment.Options.LabelSize)
	suite.Equal(shipment.Signature, e.Shipment.Options.DeliveryConfirmation)
	suite.Empty(got.Overrides())
}

func (suite *BatchRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BatchRepositoryIntegrationTestSuite) TestSaveOverrides() {
	ctx := context.Background()
	b := suite.newBatch(time.Now())
	suite.Require().NoError(suite.repo.Add(ctx, b))

	service := shipment.ServicePriority
	weight := decimal.RequireFromString("4.5")
	suite.Require().NoError(b.SetOverride("1001", shipment.Override{Service: &service, Weight: &weight}))
	size := shipment.LabelSize4x6
	suite.Require().NoError(b.SetOverride("3003", shipment.Override{LabelSize: &size}))
	suite.Require().NoError(suite.repo.SaveOverrides(ctx, b))

	got, err := suite.repo.Get(ctx, b.ID())
	suite.Require().NoError(err)
	overrides := got.Overrides()
	suite.Require().Len(overrides, 2)
	suite.Equal(shipment.ServicePriority, *overrides["1001"].Service)
	suite.True(overrides["1001"].Weight.Equal(weight))
	suite.Nil(overrides["1001"].Length)
	suite.Equal(shipment.LabelSize4x6, *overrides["3003"].LabelSize)

	effective, err := got.Shipment("1001")
	suite.Require().NoError(err)
	suite.Equal(shipment.ServicePriority, effective.Service)

	// Clearing an override writes NULLs back.
	suite.Require().NoError(got.SetOverride("3003", shipment.Override{}))
	suite.Require().NoError(suite.repo.SaveOverrides(ctx, got))

	again, err := suite.repo.Get(ctx, b.ID())
	suite.Require().NoError(err)
	suite.Len(again.Overrides(), 1)
	_, stillThere := again.Overrides()["3003"]
	suite.False(stillThere)
}

func (suite *BatchRepositoryIntegrationTestSuite) TestSaveOverrides_UnknownBatch() {
	b := suite.newBatch(time.Now())

	err := suite.repo.SaveOverrides(context.Background(), b)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BatchRepositoryIntegrationTestSuite) TestDeleteCreatedBefore() {
	ctx := context.Background()
	now := time.Date(2026, 3, 31, 3, 0, 0, 0, time.UTC)
	old := suite.newBatch(now.AddDate(0, 0, -31))
	fresh := suite.newBatch(now.AddDate(0, 0, -1))
	suite.Require().NoError(suite.repo.Add(ctx, old))
	suite.Require().NoError(suite.repo.Add(ctx, fresh))

	deleted, err := suite.repo.DeleteCreatedBefore(ctx, now.AddDate(0, 0, -30))

	suite.Require().NoError(err)
	suite.Equal(int64(1), deleted)
	_, err = suite.repo.Get(ctx, old.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = suite.repo.Get(ctx, fresh.ID())
	suite.Require().NoError(err)

	var orphans int64
	suite.Require().NoError(suite.database.DB.Model(&batchrepo.ShipmentDTO{}).
		Where("batch_id = ?", old.ID().Bytes()).Count(&orphans).Error)
	suite.Zero(orphans, "shipments are removed with their batch")
}

func TestBatchRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(BatchRepositoryIntegrationTestSuite))
}
