package ports

import (
	"context"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/model/shipment"
)

// LabelEncoder serializes shipments into the label-purchasing batch file format.
type LabelEncoder interface {
	// Encode renders one file holding every shipment, in order.
	Encode(shipments []shipment.Shipment) ([]byte, error)

	// FileName names a file for prefix and label size created at the given time.
	FileName(prefix string, size shipment.LabelSize, at time.Time) string

	// ContentType is the media type of encoded files.
	ContentType() string
}

// ExportStore keeps exported files somewhere the operator can fetch them.
type ExportStore interface {
	// Put stores data under name and returns where it can be found.
	Put(ctx context.Context, name, contentType string, data []byte) (string, error)
}
