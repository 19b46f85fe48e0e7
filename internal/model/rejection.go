package model

// RejectionReason identifies the first validation rule a candidate failed.
type RejectionReason string

const (
	// ReasonMalformedRow indicates the line did not split into 8 fields.
	ReasonMalformedRow RejectionReason = "malformed_row"
	// ReasonMissingField indicates one or more fields were empty after trimming.
	ReasonMissingField RejectionReason = "missing_field"
	// ReasonInvalidIDFormat indicates a T/P/C identifier prefix rule failed.
	ReasonInvalidIDFormat RejectionReason = "invalid_id_format"
	// ReasonNonNumericField indicates quantity or unit price was not numeric.
	ReasonNonNumericField RejectionReason = "non_numeric_field"
	// ReasonNonPositiveValue indicates quantity or unit price was zero or negative.
	ReasonNonPositiveValue RejectionReason = "non_positive_value"
	// ReasonInvalidDate indicates the date was not a valid YYYY-MM-DD calendar date.
	ReasonInvalidDate RejectionReason = "invalid_date"
)

// Description returns a human-readable explanation for report output.
func (r RejectionReason) Description() string {
	switch r {
	case ReasonMalformedRow:
		return "wrong number of fields"
	case ReasonMissingField:
		return "missing required field"
	case ReasonInvalidIDFormat:
		return "invalid identifier format"
	case ReasonNonNumericField:
		return "non-numeric quantity or price"
	case ReasonNonPositiveValue:
		return "non-positive quantity or price"
	case ReasonInvalidDate:
		return "invalid date"
	default:
		return string(r)
	}
}

// RejectedTransaction pairs a failed candidate with the reason it failed.
// Rejected records are reported but never analyzed.
type RejectedTransaction struct {
	Transaction Transaction
	Reason      RejectionReason
}
