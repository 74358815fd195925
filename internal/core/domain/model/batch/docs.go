// Package batch contains the Batch aggregate: the complete, classified result of
// importing one marketplace export, plus the reviewer overrides recorded on it.
//
// A batch is only ever created from a fully successful pipeline run. Its
// assembled shipments never change afterwards; reviewer edits are stored per
// reference as shipment.Override values and applied on read.
package batch
