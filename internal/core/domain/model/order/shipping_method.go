package order

import "strings"

const expeditedPrefix = "expedited"

// ShippingMethod is the buyer-selected shipping method as exported,
// e.g. "Standard (7-10 days)" or "Expedited Priority".
type ShippingMethod string

// IsExpedited reports whether the method carries the expedited prefix.
// Matching ignores case and leading whitespace.
func (m ShippingMethod) IsExpedited() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(string(m))), expeditedPrefix)
}

// String returns the original tag.
func (m ShippingMethod) String() string {
	return string(m)
}
