package labelcsv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xerodok/tcgplayer-easypost-tool/internal/core/domain/services"
)

var manifestHeader = []string{
	"reference",
	"recipient",
	"order_ids",
	"item_count",
	"value",
	"package_type",
	"service",
	"label_size",
	"weight",
}

// ManifestFileName is "manifest_<YYYYMMDD-HHMMSS>.csv" in UTC.
func ManifestFileName(at time.Time) string {
	return fmt.Sprintf("manifest_%s.csv", at.UTC().Format(TimestampLayout))
}

// EncodeManifest writes manifest rows in the order given. Merged order ids
// share one cell separated by spaces.
func EncodeManifest(rows []services.ManifestRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(manifestHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		record := []string{
			r.Reference,
			r.RecipientName,
			strings.Join(r.OrderIDs, " "),
			strconv.Itoa(r.ItemCount),
			r.Value.String(),
			string(r.PackageType),
			string(r.Service),
			string(r.LabelSize),
			r.Weight.RoundCeil(2).StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
