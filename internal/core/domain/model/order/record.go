package order

// Record is one data row of the marketplace shipping export before any parsing.
// Line is the 1-based data row number in the source file (header excluded).
type Record struct {
	Line           int
	OrderID        string
	FirstName      string
	LastName       string
	Address1       string
	Address2       string
	City           string
	State          string
	PostalCode     string
	Country        string
	ItemCount      string
	Value          string
	ShippingMethod string
}

// IsFooter reports whether the row is the export's trailing non-data row.
// The marketplace writes totals in a final row whose order id cell is empty.
func (r Record) IsFooter() bool {
	return r.OrderID == ""
}
