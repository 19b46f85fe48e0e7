// Package salesfile reads and parses pipe-delimited sales transaction logs.
package salesfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/salescope/salescope/internal/common"
)

// DefaultEncodings is the decode order tried against the input bytes.
var DefaultEncodings = []string{"utf-8", "latin-1", "cp1252"}

// Line is one data line of the input file with its original position.
type Line struct {
	Text   string
	Number int
}

// Reader loads a sales data file, tolerating legacy 8-bit encodings.
type Reader struct {
	encodings []string
}

// NewReader creates a reader trying the given encodings in order. With no
// arguments it uses DefaultEncodings.
func NewReader(encodings ...string) *Reader {
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}
	return &Reader{encodings: encodings}
}

// ReadFile reads the file at path and returns its data lines plus the number
// of lines skipped (the header row and blank lines). A missing file or a file
// that no supported encoding can decode is fatal.
func (r *Reader) ReadFile(path string) ([]Line, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, fmt.Errorf("%w: %s", common.ErrFileNotFound, path)
		}
		return nil, 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content, encoding, err := r.decode(data)
	if err != nil {
		return nil, 0, err
	}
	if encoding != "utf-8" {
		slog.Warn("Input file decoded with fallback encoding",
			"file", path,
			"encoding", encoding)
	}

	lines, skipped := splitLines(content)

	slog.Debug("Read sales data file",
		"file", path,
		"encoding", encoding,
		"lines", len(lines),
		"skipped", skipped)

	return lines, skipped, nil
}

// decode attempts each configured encoding in order and returns the first
// successful decode along with the encoding name.
func (r *Reader) decode(data []byte) (string, string, error) {
	for _, name := range r.encodings {
		switch strings.ToLower(name) {
		case "utf-8", "utf8":
			if utf8.Valid(data) {
				return string(data), "utf-8", nil
			}
		case "latin-1", "iso-8859-1":
			decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
			if err == nil {
				return string(decoded), "latin-1", nil
			}
		case "cp1252", "windows-1252":
			decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
			if err == nil {
				return string(decoded), "cp1252", nil
			}
		default:
			return "", "", fmt.Errorf("%w: unknown encoding %q", common.ErrInvalidConfig, name)
		}
	}
	return "", "", common.ErrEncoding
}

// splitLines drops the header row and blank lines, keeping original line
// numbers for diagnostics.
func splitLines(content string) ([]Line, int) {
	content = strings.TrimPrefix(content, "\uFEFF")

	raw := strings.Split(content, "\n")
	lines := make([]Line, 0, len(raw))
	skipped := 0
	header := true

	for i, l := range raw {
		l = strings.TrimRight(l, "\r")
		if strings.TrimSpace(l) == "" {
			skipped++
			continue
		}
		if header {
			header = false
			skipped++
			continue
		}
		lines = append(lines, Line{Text: l, Number: i + 1})
	}

	return lines, skipped
}
