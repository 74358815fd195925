// Package order models marketplace orders after normalization and the
// consolidated orders produced by merging orders bound for the same address.
//
// The package includes:
//   - Record: one raw export row, every column still a string
//   - Order: a validated order with a non-empty identifier
//   - ShippingMethod: the buyer-selected method tag, expedited or standard
//   - AddressKey: the comparable tuple that defines "same shipment"
//   - ConsolidatedOrder: one or more orders merged into a single shipment
//
// Key business rules:
//   - An order identifier is never empty; empty-id rows are footers and never become Orders
//   - Address keys compare raw field values, no trimming or case folding
//   - Merging sums item counts and values exactly and lets an expedited method win
package order
