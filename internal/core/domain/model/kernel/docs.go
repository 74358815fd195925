// Package kernel provides the value objects shared by the order, shipment and
// batch models.
//
// The package includes:
//   - UUID: identifier for persisted batches
//   - Money: non-negative decimal currency amount
//   - Address: postal address used for recipients, senders and return addresses
//   - NormalizePostalCode: repairs postal codes mangled by spreadsheet exports
//
// Values are immutable; arithmetic returns new values. Money never goes through
// float64 so summing merchandise values across merged orders is exact.
package kernel
