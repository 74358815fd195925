// Package labelcsv writes shipments in the label-purchasing batch CSV format
// and the packing manifest as CSV.
package labelcsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/kernel"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
)

// TimestampLayout is the timestamp embedded in exported file names.
const TimestampLayout = "20060102-150405"

const contentType = "text/csv"

var addressFields = []string{"name", "company", "street1", "street2", "city", "state", "zip", "country", "phone", "email"}

// Header returns the column names of a label batch file.
func Header() []string {
	header := []string{"reference"}
	for _, prefix := range []string{"to_address", "from_address", "return_address"} {
		for _, field := range addressFields {
			header = append(header, prefix+"."+field)
		}
	}
	return append(header,
		"parcel.length",
		"parcel.width",
		"parcel.height",
		"parcel.weight",
		"parcel.predefined_package",
		"carrier",
		"service",
		"options.label_format",
		"options.label_size",
		"options.invoice_number",
		"options.delivery_confirmation",
	)
}

// Encoder implements ports.LabelEncoder.
type Encoder struct{}

func NewEncoder() Encoder {
	return Encoder{}
}

func (Encoder) Encode(shipments []shipment.Shipment) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header()); err != nil {
		return nil, err
	}
	for _, s := range shipments {
		if err := w.Write(row(s)); err != nil {
			return nil, fmt.Errorf("write shipment %s: %w", s.Reference, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName is "<prefix>_<size>_<YYYYMMDD-HHMMSS>.csv" in UTC.
func (Encoder) FileName(prefix string, size shipment.LabelSize, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s.csv", prefix, size, at.UTC().Format(TimestampLayout))
}

func (Encoder) ContentType() string {
	return contentType
}

func row(s shipment.Shipment) []string {
	r := make([]string, 0, len(Header()))
	r = append(r, s.Reference)
	r = append(r, address(s.ToAddress)...)
	r = append(r, address(s.FromAddress)...)
	r = append(r, address(s.ReturnAddress)...)
	return append(r,
		s.Parcel.Length.String(),
		s.Parcel.Width.String(),
		s.Parcel.Height.String(),
		s.Parcel.Weight.RoundCeil(2).StringFixed(2),
		string(s.Parcel.PredefinedPackage),
		s.Carrier,
		string(s.Service),
		string(s.Options.LabelFormat),
		string(s.Options.LabelSize),
		s.Options.InvoiceNumber,
		string(s.Options.DeliveryConfirmation),
	)
}

func address(a kernel.Address) []string {
	return []string{a.Name, a.Company, a.Street1, a.Street2, a.City, a.State, a.Zip, a.Country, a.Phone, a.Email}
}
