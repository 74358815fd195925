// Package orderexport reads the marketplace's shipping export CSV into raw order records.
package orderexport

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/order"
	"github.com/xerodok/tcgplayer-easypost-tool/internal/pkg/errs"
)

// Export header names.
const (
	ColumnOrderID        = "Order #"
	ColumnFirstName      = "FirstName"
	ColumnLastName       = "LastName"
	ColumnAddress1       = "Address1"
	ColumnAddress2       = "Address2"
	ColumnCity           = "City"
	ColumnState          = "State"
	ColumnPostalCode     = "PostalCode"
	ColumnCountry        = "Country"
	ColumnItemCount      = "Item Count"
	ColumnValue          = "Value Of Products"
	ColumnShippingMethod = "Shipping Method"
)

var ErrEmptyExport = errors.New("export has no header row")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// requiredColumns must appear in the header; Address2 and Country may be absent.
var requiredColumns = []string{
	ColumnOrderID,
	ColumnFirstName,
	ColumnLastName,
	ColumnAddress1,
	ColumnCity,
	ColumnState,
	ColumnPostalCode,
	ColumnItemCount,
	ColumnValue,
	ColumnShippingMethod,
}

// Reader decodes an export file. It does not parse numbers or validate rows;
// that belongs to services.RecordNormalizer.
type Reader struct{}

func NewReader() Reader {
	return Reader{}
}

// Read returns one record per data row, footer rows included.
func (Reader) Read(r io.Reader) ([]order.Record, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = false

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyExport
	}
	if err != nil {
		return nil, fmt.Errorf("read export header: %w", err)
	}

	index, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var records []order.Record
	for line := 1; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read export row %d: %w", line, err)
		}

		cell := func(column string) string {
			i, ok := index[column]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		records = append(records, order.Record{
			Line:           line,
			OrderID:        cell(ColumnOrderID),
			FirstName:      cell(ColumnFirstName),
			LastName:       cell(ColumnLastName),
			Address1:       cell(ColumnAddress1),
			Address2:       cell(ColumnAddress2),
			City:           cell(ColumnCity),
			State:          cell(ColumnState),
			PostalCode:     cell(ColumnPostalCode),
			Country:        cell(ColumnCountry),
			ItemCount:      cell(ColumnItemCount),
			Value:          cell(ColumnValue),
			ShippingMethod: cell(ColumnShippingMethod),
		})
	}

	return records, nil
}

func indexHeader(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, seen := index[name]; !seen {
			index[name] = i
		}
	}

	var missing []error
	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			missing = append(missing, errs.NewValueIsRequiredError("column "+column))
		}
	}

	return index, errors.Join(missing...)
}
