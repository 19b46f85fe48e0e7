package salesfile

import (
	"log/slog"
	"strings"

	"github.com/salescope/salescope/internal/model"
)

// FieldCount is the number of pipe-delimited columns in a well-formed row.
const FieldCount = 8

// Parser turns raw data lines into transaction candidates. It never rejects:
// structurally broken lines become candidates flagged as malformed so the
// validator can record them with a reason.
type Parser struct{}

// NewParser creates a new sales file parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse converts data lines into candidates, preserving input order.
func (p *Parser) Parse(lines []Line) []model.Transaction {
	candidates := make([]model.Transaction, 0, len(lines))
	malformed := 0

	for _, line := range lines {
		txn := p.parseLine(line)
		if txn.Malformed {
			malformed++
		}
		candidates = append(candidates, txn)
	}

	if malformed > 0 {
		slog.Warn("Encountered malformed rows",
			"count", malformed,
			"total", len(lines))
	}

	return candidates
}

func (p *Parser) parseLine(line Line) model.Transaction {
	fields := strings.Split(line.Text, "|")
	if len(fields) != FieldCount {
		return model.Transaction{
			RawLine:   line.Text,
			Malformed: true,
			Line:      line.Number,
		}
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	return model.Transaction{
		TransactionID: fields[0],
		Date:          fields[1],
		ProductID:     fields[2],
		ProductName:   strings.ReplaceAll(fields[3], ",", " "),
		Quantity:      stripCommas(fields[4]),
		UnitPrice:     stripCommas(fields[5]),
		CustomerID:    fields[6],
		Region:        fields[7],
		RawLine:       line.Text,
		Line:          line.Number,
	}
}

// stripCommas removes thousands separators from numeric field text.
func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
