// Package settings holds the shipping configuration: per package type profiles,
// the sender address, label format and the expedited service default.
//
// Numeric profile fields are user-editable strings. They are stored as typed in
// and parsed only when a classifier asks for them, so a bad value fails the
// shipment that needs it instead of the save. Empty fields fall back to
// Default() at the point of use; stored settings are never rewritten.
package settings
