// Package model defines the core domain types shared across the pipeline.
package model

import "time"

// Transaction is a parsed but not-yet-validated sales record. Quantity and
// UnitPrice stay as raw text so the validator can distinguish "not a number"
// from "number but non-positive".
type Transaction struct {
	TransactionID string
	Date          string
	ProductID     string
	ProductName   string
	Quantity      string
	UnitPrice     string
	CustomerID    string
	Region        string

	// RawLine preserves the original input for malformed rows.
	RawLine string
	// Malformed is set by the parser when the line did not split into the
	// expected field count. Such candidates bypass field-level validation.
	Malformed bool
	// Line is the 1-based position in the input file, for diagnostics.
	Line int
}

// ValidTransaction is a transaction that passed every validation rule, with
// numeric fields coerced and the line total derived.
type ValidTransaction struct {
	TransactionID string
	Date          time.Time
	ProductID     string
	ProductName   string
	Quantity      int
	UnitPrice     float64
	CustomerID    string
	Region        string
	LineTotal     float64
}

// DateString returns the date in the input file format.
func (t ValidTransaction) DateString() string {
	return t.Date.Format("2006-01-02")
}
