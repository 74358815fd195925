// Package shipment models the label-ready shipment records handed to the
// external label-purchasing system.
//
// The package includes:
//   - ServiceTier, PackageType, LabelSize, LabelFormat, DeliveryConfirmation: closed value sets
//   - Parcel: dimensions, computed weight and the package type of the profile used
//   - Shipment: one physical package, addresses, carrier, service and options
//   - Override: manual reviewer edits layered on top of an assembled shipment
//
// Shipments produced by the assembler are never edited in place. Reviewer edits
// are kept as an Override and applied with WithOverride, so the deterministic
// pipeline output can always be replayed.
package shipment
