// Package batchrepo persists batch aggregates: one batches row and one
// batch_shipments row per entry, reviewer overrides held in nullable columns.
package batchrepo

import (
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/batch"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// BatchDTO is the batches row.
type BatchDTO struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	SourceName string        `gorm:"type:text;not null"`
	CreatedAt  time.Time     `gorm:"type:timestamptz;not null;index"`
	Shipments  []ShipmentDTO `gorm:"foreignKey:BatchID;constraint:OnDelete:CASCADE"`
}

func (BatchDTO) TableName() string {
	return "batches"
}

// ShipmentDTO is one batch_shipments row.
type ShipmentDTO struct {
	BatchID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference string          `gorm:"type:text;primaryKey"`
	Position  int             `gorm:"type:integer;not null"`
	OrderIDs  pq.StringArray  `gorm:"column:order_ids;type:text[];not null"`
	ItemCount int             `gorm:"type:integer;not null"`
	Value     decimal.Decimal `gorm:"type:numeric;not null"`

	To     AddressDTO `gorm:"embedded;embeddedPrefix:to_"`
	From   AddressDTO `gorm:"embedded;embeddedPrefix:from_"`
	Return AddressDTO `gorm:"embedded;embeddedPrefix:return_"`

	Parcel  ParcelDTO  `gorm:"embedded;embeddedPrefix:parcel_"`
	Carrier string     `gorm:"type:text;not null"`
	Service string     `gorm:"type:text;not null"`
	Options OptionsDTO `gorm:"embedded;embeddedPrefix:option_"`

	Override OverrideDTO `gorm:"embedded;embeddedPrefix:override_"`
}

func (ShipmentDTO) TableName() string {
	return "batch_shipments"
}

type AddressDTO struct {
	Name    string `gorm:"type:text"`
	Company string `gorm:"type:text"`
	Street1 string `gorm:"column:street1;type:text"`
	Street2 string `gorm:"column:street2;type:text"`
	City    string `gorm:"type:text"`
	State   string `gorm:"type:text"`
	Zip     string `gorm:"type:text"`
	Country string `gorm:"type:text"`
	Phone   string `gorm:"type:text"`
	Email   string `gorm:"type:text"`
}

type ParcelDTO struct {
	Length            decimal.Decimal `gorm:"type:numeric;not null"`
	Width             decimal.Decimal `gorm:"type:numeric;not null"`
	Height            decimal.Decimal `gorm:"type:numeric;not null"`
	Weight            decimal.Decimal `gorm:"type:numeric;not null"`
	PredefinedPackage string          `gorm:"type:text;not null"`
}

type OptionsDTO struct {
	LabelFormat          string `gorm:"type:text;not null"`
	LabelSize            string `gorm:"type:text;not null"`
	InvoiceNumber        string `gorm:"type:text;not null"`
	DeliveryConfirmation string `gorm:"type:text;not null"`
}

// OverrideDTO columns are NULL when the reviewer left the field alone.
type OverrideDTO struct {
	Service              *string             `gorm:"type:text"`
	PackageType          *string             `gorm:"type:text"`
	LabelSize            *string             `gorm:"type:text"`
	Length               decimal.NullDecimal `gorm:"type:numeric"`
	Width                decimal.NullDecimal `gorm:"type:numeric"`
	Height               decimal.NullDecimal `gorm:"type:numeric"`
	Weight               decimal.NullDecimal `gorm:"type:numeric"`
	DeliveryConfirmation *string             `gorm:"type:text"`
}

// columns maps override column names to values for a targeted UPDATE.
// NULLs are written explicitly.
func (o OverrideDTO) columns() map[string]any {
	return map[string]any{
		"override_service":               o.Service,
		"override_package_type":          o.PackageType,
		"override_label_size":            o.LabelSize,
		"override_length":                o.Length,
		"override_width":                 o.Width,
		"override_height":                o.Height,
		"override_weight":                o.Weight,
		"override_delivery_confirmation": o.DeliveryConfirmation,
	}
}

func fromDomain(b *batch.Batch) BatchDTO {
	id := b.ID().Bytes()
	overrides := b.Overrides()

	entries := b.Entries()
	shipments := make([]ShipmentDTO, 0, len(entries))
	for i, e := range entries {
		s := e.Shipment
		shipments = append(shipments, ShipmentDTO{
			BatchID:   id,
			Reference: s.Reference,
			Position:  i,
			OrderIDs:  pq.StringArray(e.OrderIDs),
			ItemCount: e.ItemCount,
			Value:     e.Value.Amount(),
			To:        addressFromDomain(s.ToAddress),
			From:      addressFromDomain(s.FromAddress),
			Return:    addressFromDomain(s.ReturnAddress),
			Parcel: ParcelDTO{
				Length:            s.Parcel.Length,
				Width:             s.Parcel.Width,
				Height:            s.Parcel.Height,
				Weight:            s.Parcel.Weight,
				PredefinedPackage: string(s.Parcel.PredefinedPackage),
			},
			Carrier: s.Carrier,
			Service: string(s.Service),
			Options: OptionsDTO{
				LabelFormat:          string(s.Options.LabelFormat),
				LabelSize:            string(s.Options.LabelSize),
				InvoiceNumber:        s.Options.InvoiceNumber,
				DeliveryConfirmation: string(s.Options.DeliveryConfirmation),
			},
			Override: overrideFromDomain(overrides[s.Reference]),
		})
	}

	return BatchDTO{
		ID:         id,
		SourceName: b.SourceName(),
		CreatedAt:  b.CreatedAt(),
		Shipments:  shipments,
	}
}

// toDomain expects dto.Shipments ordered by position.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	entries := make([]batch.Entry, 0, len(dto.Shipments))
	overrides := make(map[string]shipment.Override)
	for _, s := range dto.Shipments {
		value, err := kernel.NewMoney(s.Value)
		if err != nil {
			return nil, err
		}

		entries = append(entries, batch.Entry{
			Shipment: shipment.Shipment{
				Reference:     s.Reference,
				ToAddress:     s.To.toDomain(),
				FromAddress:   s.From.toDomain(),
				ReturnAddress: s.Return.toDomain(),
				Parcel: shipment.Parcel{
					Length:            s.Parcel.Length,
					Width:             s.Parcel.Width,
					Height:            s.Parcel.Height,
					Weight:            s.Parcel.Weight,
					PredefinedPackage: shipment.PackageType(s.Parcel.PredefinedPackage),
				},
				Carrier: s.Carrier,
				Service: shipment.ServiceTier(s.Service),
				Options: shipment.Options{
					LabelFormat:          shipment.LabelFormat(s.Options.LabelFormat),
					LabelSize:            shipment.LabelSize(s.Options.LabelSize),
					InvoiceNumber:        s.Options.InvoiceNumber,
					DeliveryConfirmation: shipment.DeliveryConfirmation(s.Options.DeliveryConfirmation),
				},
			},
			OrderIDs:  []string(s.OrderIDs),
			ItemCount: s.ItemCount,
			Value:     value,
		})

		if o := s.Override.toDomain(); !o.IsEmpty() {
			overrides[s.Reference] = o
		}
	}

	return batch.RestoreBatch(id, dto.SourceName, dto.CreatedAt, entries, overrides)
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO(a)
}

func (a AddressDTO) toDomain() kernel.Address {
	return kernel.Address(a)
}

func overrideFromDomain(o shipment.Override) OverrideDTO {
	return OverrideDTO{
		Service:              stringPtr(o.Service),
		PackageType:          stringPtr(o.PackageType),
		LabelSize:            stringPtr(o.LabelSize),
		Length:               nullDecimal(o.Length),
		Width:                nullDecimal(o.Width),
		Height:               nullDecimal(o.Height),
		Weight:               nullDecimal(o.Weight),
		DeliveryConfirmation: stringPtr(o.DeliveryConfirmation),
	}
}

func (o OverrideDTO) toDomain() shipment.Override {
	return shipment.Override{
		Service:              typedPtr[shipment.ServiceTier](o.Service),
		PackageType:          typedPtr[shipment.PackageType](o.PackageType),
		LabelSize:            typedPtr[shipment.LabelSize](o.LabelSize),
		Length:               decimalPtr(o.Length),
		Width:                decimalPtr(o.Width),
		Height:               decimalPtr(o.Height),
		Weight:               decimalPtr(o.Weight),
		DeliveryConfirmation: typedPtr[shipment.DeliveryConfirmation](o.DeliveryConfirmation),
	}
}

func stringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func typedPtr[T ~string](v *string) *T {
	if v == nil {
		return nil
	}
	t := T(*v)
	return &t
}

func nullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}

func decimalPtr(v decimal.NullDecimal) *decimal.Decimal {
	if !v.Valid {
		return nil
	}
	d := v.Decimal
	return &d
}
