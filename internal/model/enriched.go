package model

// ProductMetadata holds catalog attributes fetched from the product API.
type ProductMetadata struct {
	Title    string
	Category string
	Brand    string
	Rating   float64
}

// EnrichedTransaction is a valid transaction with optional catalog metadata
// attached. Metadata is nil when no catalog entry matched; the writer emits
// empty trailing fields in that case rather than placeholder text.
type EnrichedTransaction struct {
	ValidTransaction
	Metadata *ProductMetadata
}

// Matched reports whether catalog metadata was attached.
func (e EnrichedTransaction) Matched() bool {
	return e.Metadata != nil
}
