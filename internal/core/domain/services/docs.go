// Package services provides the domain services of the consolidation and
// classification pipeline. Each service is a stateless value; every call is a
// pure function of its arguments and the settings snapshot passed in.
//
// The package includes:
//   - RecordNormalizer: raw export rows to validated orders
//   - OrderMerger: same-address orders to consolidated orders
//   - ServiceClassifier, PackageClassifier: the two threshold cascades
//   - ParcelBuilder: profile selection, weight and dimensions
//   - ShipmentAssembler: one shipment per consolidated order
//   - ExportPartitioner: label size partitions and the return view
//   - PackingManifestBuilder: the sorted pull sheet
//   - BatchBuilder: the whole pipeline over one export
//
// Pipeline:
//
//	RecordNormalizer -> OrderMerger -> ShipmentAssembler -> ExportPartitioner
//	                                   (ServiceClassifier, PackageClassifier, ParcelBuilder)
package services
