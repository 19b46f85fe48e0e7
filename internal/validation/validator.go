// Package validation classifies transaction candidates as valid or rejected.
//
// Classification is pure and total: every candidate ends in exactly one of
// {valid, rejected-with-reason}, and the same candidate always classifies the
// same way. Rules run in a fixed order and the first failing rule supplies
// the reason, so a row failing several rules still gets a single
// deterministic reason.
package validation

import (
	"strconv"
	"strings"
	"time"

	"github.com/salescope/salescope/internal/model"
)

// DateFormat is the expected calendar date layout in the input file.
const DateFormat = "2006-01-02"

// rule pairs a rejection reason with its failure predicate. Order in the
// rules slice is the priority order.
type rule struct {
	reason model.RejectionReason
	fails  func(model.Transaction) bool
}

var rules = []rule{
	{model.ReasonMissingField, hasMissingField},
	{model.ReasonInvalidIDFormat, hasInvalidIDPrefix},
	{model.ReasonNonNumericField, hasNonNumericField},
	{model.ReasonNonPositiveValue, hasNonPositiveValue},
	{model.ReasonInvalidDate, hasInvalidDate},
}

// Validator applies the field-level rules to parsed candidates.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Classify partitions candidates into valid and rejected sets, preserving
// input order within each.
func (v *Validator) Classify(candidates []model.Transaction) ([]model.ValidTransaction, []model.RejectedTransaction) {
	valids := make([]model.ValidTransaction, 0, len(candidates))
	var rejects []model.RejectedTransaction

	for _, c := range candidates {
		if valid, reason, ok := v.ClassifyOne(c); ok {
			valids = append(valids, valid)
		} else {
			rejects = append(rejects, model.RejectedTransaction{Transaction: c, Reason: reason})
		}
	}

	return valids, rejects
}

// ClassifyOne classifies a single candidate. ok reports whether the candidate
// is valid; otherwise reason carries the first failing rule.
func (v *Validator) ClassifyOne(c model.Transaction) (model.ValidTransaction, model.RejectionReason, bool) {
	if c.Malformed {
		return model.ValidTransaction{}, model.ReasonMalformedRow, false
	}

	for _, r := range rules {
		if r.fails(c) {
			return model.ValidTransaction{}, r.reason, false
		}
	}

	// All rules passed; coercions below cannot fail.
	quantity, _ := strconv.Atoi(c.Quantity)
	unitPrice, _ := strconv.ParseFloat(c.UnitPrice, 64)
	date, _ := time.Parse(DateFormat, c.Date)

	return model.ValidTransaction{
		TransactionID: c.TransactionID,
		Date:          date,
		ProductID:     c.ProductID,
		ProductName:   c.ProductName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    c.CustomerID,
		Region:        c.Region,
		LineTotal:     float64(quantity) * unitPrice,
	}, "", true
}

// CountByReason tallies rejections per reason for summary output.
func CountByReason(rejects []model.RejectedTransaction) map[model.RejectionReason]int {
	counts := make(map[model.RejectionReason]int)
	for _, r := range rejects {
		counts[r.Reason]++
	}
	return counts
}

func hasMissingField(c model.Transaction) bool {
	for _, f := range []string{
		c.TransactionID, c.Date, c.ProductID, c.ProductName,
		c.Quantity, c.UnitPrice, c.CustomerID, c.Region,
	} {
		if f == "" {
			return true
		}
	}
	return false
}

func hasInvalidIDPrefix(c model.Transaction) bool {
	return !strings.HasPrefix(c.TransactionID, "T") ||
		!strings.HasPrefix(c.ProductID, "P") ||
		!strings.HasPrefix(c.CustomerID, "C")
}

func hasNonNumericField(c model.Transaction) bool {
	if _, err := strconv.Atoi(c.Quantity); err != nil {
		return true
	}
	if _, err := strconv.ParseFloat(c.UnitPrice, 64); err != nil {
		return true
	}
	return false
}

func hasNonPositiveValue(c model.Transaction) bool {
	quantity, _ := strconv.Atoi(c.Quantity)
	unitPrice, _ := strconv.ParseFloat(c.UnitPrice, 64)
	return quantity <= 0 || unitPrice <= 0
}

func hasInvalidDate(c model.Transaction) bool {
	_, err := time.Parse(DateFormat, c.Date)
	return err != nil
}
