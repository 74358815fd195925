package http

import (
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/commands"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/application/usecases/queries"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/settings"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code         int           `json:"code"`
	Message      string        `json:"message"`
	RejectedRows []RejectedRow `json:"rejectedRows,omitempty"`
	Failures     []Failure     `json:"failures,omitempty"`
}

type RejectedRow struct {
	Line    int    `json:"line"`
	OrderID string `json:"orderId,omitempty"`
	Message string `json:"message"`
}

type Failure struct {
	Reference string   `json:"reference"`
	OrderIDs  []string `json:"orderIds"`
	Message   string   `json:"message"`
}

type ImportResult struct {
	BatchID      string        `json:"batchId"`
	Shipments    int           `json:"shipments"`
	MergedGroups int           `json:"mergedGroups"`
	RejectedRows []RejectedRow `json:"rejectedRows"`
}

type Address struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type Parcel struct {
	Length            string `json:"length"`
	Width             string `json:"width"`
	Height            string `json:"height"`
	Weight            string `json:"weight"`
	PredefinedPackage string `json:"predefinedPackage"`
}

type Options struct {
	LabelFormat          string `json:"labelFormat"`
	LabelSize            string `json:"labelSize"`
	InvoiceNumber        string `json:"invoiceNumber"`
	DeliveryConfirmation string `json:"deliveryConfirmation"`
}

type Shipment struct {
	Reference     string   `json:"reference"`
	OrderIDs      []string `json:"orderIds,omitempty"`
	Overridden    bool     `json:"overridden"`
	ToAddress     Address  `json:"toAddress"`
	FromAddress   Address  `json:"fromAddress"`
	ReturnAddress Address  `json:"returnAddress"`
	Parcel        Parcel   `json:"parcel"`
	Carrier       string   `json:"carrier"`
	Service       string   `json:"service"`
	Options       Options  `json:"options"`
}

type BatchShipments struct {
	BatchID    string     `json:"batchId"`
	SourceName string     `json:"sourceName"`
	CreatedAt  time.Time  `json:"createdAt"`
	Shipments  []Shipment `json:"shipments"`
}

// Override is the PATCH body. Absent fields keep the assembled value.
type Override struct {
	Service              *string `json:"service" validate:"omitempty,oneof=First GroundAdvantage Priority Express"`
	PackageType          *string `json:"packageType" validate:"omitempty,oneof=Letter Flat Parcel"`
	LabelSize            *string `json:"labelSize" validate:"omitempty,oneof=7x3 6x4 4x6"`
	Length               *string `json:"length" validate:"omitempty,numeric"`
	Width                *string `json:"width" validate:"omitempty,numeric"`
	Height               *string `json:"height" validate:"omitempty,numeric"`
	Weight               *string `json:"weight" validate:"omitempty,numeric"`
	DeliveryConfirmation *string `json:"deliveryConfirmation" validate:"omitempty,oneof=SIGNATURE NO_SIGNATURE"`
}

type ManifestRow struct {
	Reference     string   `json:"reference"`
	RecipientName string   `json:"recipientName"`
	OrderIDs      []string `json:"orderIds"`
	ItemCount     int      `json:"itemCount"`
	Value         string   `json:"value"`
	PackageType   string   `json:"packageType"`
	Service       string   `json:"service"`
	LabelSize     string   `json:"labelSize"`
	Weight        string   `json:"weight"`
}

type Manifest struct {
	Rows []ManifestRow `json:"rows"`
}

type ExportedFile struct {
	LabelSize string `json:"labelSize"`
	Name      string `json:"name"`
	Location  string `json:"location"`
	Shipments int    `json:"shipments"`
}

type ExportedFiles struct {
	Files []ExportedFile `json:"files"`
}

// PackageProfile numeric fields are free-form strings; they are parsed when
// shipments are classified, not when settings are saved.
type PackageProfile struct {
	LabelSize     string `json:"labelSize" validate:"omitempty,oneof=7x3 6x4 4x6"`
	BaseWeight    string `json:"baseWeight"`
	PerItemWeight string `json:"perItemWeight"`
	MaxItemCount  string `json:"maxItemCount"`
	MaxValue      string `json:"maxValue"`
	Length        string `json:"length"`
	Width         string `json:"width"`
	Height        string `json:"height"`
}

type Settings struct {
	Letter           PackageProfile `json:"letter"`
	Flat             PackageProfile `json:"flat"`
	Parcel           PackageProfile `json:"parcel"`
	Sender           Address        `json:"sender"`
	LabelFormat      string         `json:"labelFormat" validate:"omitempty,oneof=PNG PDF ZPL EPL2"`
	ExpeditedService string         `json:"expeditedService" validate:"omitempty,oneof=First GroundAdvantage Priority Express"`
}

type SettingsView struct {
	Stored    Settings `json:"stored"`
	Effective Settings `json:"effective"`
}

func rejectedRows(rows []*errs.RowIsMalformedError) []RejectedRow {
	out := make([]RejectedRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, RejectedRow{Line: r.Line, OrderID: r.OrderID, Message: r.Error()})
	}
	return out
}

func failures(fs []services.ClassificationFailure) []Failure {
	out := make([]Failure, 0, len(fs))
	for _, f := range fs {
		out = append(out, Failure{Reference: f.Reference, OrderIDs: f.OrderIDs, Message: f.Cause.Error()})
	}
	return out
}

func importResult(r commands.ImportOrdersResult) ImportResult {
	return ImportResult{
		BatchID:      r.BatchID.String(),
		Shipments:    r.Shipments,
		MergedGroups: r.MergedGroups,
		RejectedRows: rejectedRows(r.Rejected),
	}
}

func addressFromDomain(a kernel.Address) Address {
	return Address(a)
}

func (a Address) toDomain() kernel.Address {
	return kernel.Address(a)
}

func shipmentFromDomain(s shipment.Shipment) Shipment {
	return Shipment{
		Reference:     s.Reference,
		ToAddress:     addressFromDomain(s.ToAddress),
		FromAddress:   addressFromDomain(s.FromAddress),
		ReturnAddress: addressFromDomain(s.ReturnAddress),
		Parcel: Parcel{
			Length:            s.Parcel.Length.String(),
			Width:             s.Parcel.Width.String(),
			Height:            s.Parcel.Height.String(),
			Weight:            s.Parcel.Weight.RoundCeil(2).StringFixed(2),
			PredefinedPackage: string(s.Parcel.PredefinedPackage),
		},
		Carrier: s.Carrier,
		Service: string(s.Service),
		Options: Options{
			LabelFormat:          string(s.Options.LabelFormat),
			LabelSize:            string(s.Options.LabelSize),
			InvoiceNumber:        s.Options.InvoiceNumber,
			DeliveryConfirmation: string(s.Options.DeliveryConfirmation),
		},
	}
}

func batchShipments(r queries.GetBatchShipmentsResponse) BatchShipments {
	out := BatchShipments{
		BatchID:    r.BatchID.String(),
		SourceName: r.SourceName,
		CreatedAt:  r.CreatedAt,
		Shipments:  make([]Shipment, 0, len(r.Shipments)),
	}
	for _, s := range r.Shipments {
		view := shipmentFromDomain(s.Shipment)
		view.OrderIDs = s.OrderIDs
		view.Overridden = s.Overridden
		out.Shipments = append(out.Shipments, view)
	}
	return out
}

func manifest(rows []services.ManifestRow) Manifest {
	out := Manifest{Rows: make([]ManifestRow, 0, len(rows))}
	for _, r := range rows {
		out.Rows = append(out.Rows, ManifestRow{
			Reference:     r.Reference,
			RecipientName: r.RecipientName,
			OrderIDs:      r.OrderIDs,
			ItemCount:     r.ItemCount,
			Value:         r.Value.String(),
			PackageType:   string(r.PackageType),
			Service:       string(r.Service),
			LabelSize:     string(r.LabelSize),
			Weight:        r.Weight.RoundCeil(2).StringFixed(2),
		})
	}
	return out
}

func exportedFile(f commands.ExportedFile) ExportedFile {
	return ExportedFile{
		LabelSize: string(f.LabelSize),
		Name:      f.Name,
		Location:  f.Location,
		Shipments: f.Shipments,
	}
}

func (o Override) toDomain() (shipment.Override, error) {
	var result shipment.Override
	if o.Service != nil {
		v := shipment.ServiceTier(*o.Service)
		result.Service = &v
	}
	if o.PackageType != nil {
		v := shipment.PackageType(*o.PackageType)
		result.PackageType = &v
	}
	if o.LabelSize != nil {
		v := shipment.LabelSize(*o.LabelSize)
		result.LabelSize = &v
	}
	if o.DeliveryConfirmation != nil {
		v := shipment.DeliveryConfirmation(*o.DeliveryConfirmation)
		result.DeliveryConfirmation = &v
	}

	for _, m := range []struct {
		name   string
		raw    *string
		target **decimal.Decimal
	}{
		{"length", o.Length, &result.Length},
		{"width", o.Width, &result.Width},
		{"height", o.Height, &result.Height},
		{"weight", o.Weight, &result.Weight},
	} {
		if m.raw == nil {
			continue
		}
		d, err := decimal.NewFromString(*m.raw)
		if err != nil {
			return shipment.Override{}, errs.NewValueIsInvalidErrorWithCause(m.name, err)
		}
		*m.target = &d
	}

	return result, nil
}

func profileFromDomain(p settings.PackageProfile) PackageProfile {
	return PackageProfile{
		LabelSize:     string(p.LabelSize),
		BaseWeight:    p.BaseWeight,
		PerItemWeight: p.PerItemWeight,
		MaxItemCount:  p.MaxItemCount,
		MaxValue:      p.MaxValue,
		Length:        p.Length,
		Width:         p.Width,
		Height:        p.Height,
	}
}

func (p PackageProfile) toDomain() settings.PackageProfile {
	return settings.PackageProfile{
		LabelSize:     shipment.LabelSize(p.LabelSize),
		BaseWeight:    p.BaseWeight,
		PerItemWeight: p.PerItemWeight,
		MaxItemCount:  p.MaxItemCount,
		MaxValue:      p.MaxValue,
		Length:        p.Length,
		Width:         p.Width,
		Height:        p.Height,
	}
}

func settingsFromDomain(s settings.ShippingSettings) Settings {
	return Settings{
		Letter:           profileFromDomain(s.Letter),
		Flat:             profileFromDomain(s.Flat),
		Parcel:           profileFromDomain(s.Parcel),
		Sender:           addressFromDomain(s.Sender),
		LabelFormat:      string(s.LabelFormat),
		ExpeditedService: string(s.ExpeditedService),
	}
}

func (s Settings) toDomain() settings.ShippingSettings {
	return settings.ShippingSettings{
		Letter:           s.Letter.toDomain(),
		Flat:             s.Flat.toDomain(),
		Parcel:           s.Parcel.toDomain(),
		Sender:           s.Sender.toDomain(),
		LabelFormat:      shipment.LabelFormat(s.LabelFormat),
		ExpeditedService: shipment.ServiceTier(s.ExpeditedService),
	}
}
