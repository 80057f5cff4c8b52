// SPDX-License-Identifier: MIT

// Package input decodes assignment matrices from the formats the CLI and
// the HTTP API accept, and validates them at the boundary.
//
// Accepted documents:
//   - JSON:   {"objective": "max", "matrix": [[1, 2], [3, 4]]} or [[1, 2], [3, 4]]
//   - YAML:   the same shapes in YAML
//   - TOML:   objective = "max" / matrix = [[1, 2], [3, 4]]
//   - CSV:    one row per line, optional "#" comments
//   - inline: "1,2;3,4" (rows split by ";", cells by "," or spaces)
//
// Empty cells in CSV and inline input read as 0.
package input

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a document encoding.
type Format int

const (
	// FormatAuto sniffs the content (JSON, then TOML, then YAML, then CSV).
	FormatAuto Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
	FormatCSV
	FormatInline
)

var formatNames = map[Format]string{
	FormatAuto:   "auto",
	FormatJSON:   "json",
	FormatYAML:   "yaml",
	FormatTOML:   "toml",
	FormatCSV:    "csv",
	FormatInline: "inline",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}

	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a name ("json", "yml", ...) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "csv", "tsv", "txt":
		return FormatCSV, nil
	case "inline":
		return FormatInline, nil
	default:
		return FormatAuto, fmt.Errorf("%w: unknown format %q", ErrFormat, s)
	}
}

// FormatFromPath picks the Format from a file extension; unknown
// extensions fall back to FormatAuto.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return FormatAuto
	}

	return f
}

// Document is a decoded matrix file. Objective is empty when the file does
// not name one.
type Document struct {
	Objective string      `json:"objective,omitempty" yaml:"objective,omitempty" toml:"objective,omitempty"`
	Matrix    [][]float64 `json:"matrix" yaml:"matrix" toml:"matrix"`
}

// ReadFile decodes the file at path, choosing the format by extension.
// "-" reads standard input.
func ReadFile(path string) (Document, error) {
	if path == "-" {
		return Parse(os.Stdin, FormatAuto)
	}
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()

	doc, err := Parse(f, FormatFromPath(path))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse decodes r as format f. The matrix is not validated; see Validate.
func Parse(r io.Reader, f Format) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}

	switch f {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	case FormatCSV:
		return decodeCSV(data)
	case FormatInline:
		rows, err := ParseInline(string(data))
		return Document{Matrix: rows}, err
	default:
		return sniff(data)
	}
}

// sniff tries each structured format in turn.
func sniff(data []byte) (Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Document{}, fmt.Errorf("%w: empty document", ErrFormat)
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		if doc, err := decodeJSON(trimmed); err == nil {
			return doc, nil
		}
	}
	if doc, err := decodeTOML(trimmed); err == nil && len(doc.Matrix) > 0 {
		return doc, nil
	}
	if doc, err := decodeYAML(trimmed); err == nil && len(doc.Matrix) > 0 {
		return doc, nil
	}

	return decodeCSV(trimmed)
}

func decodeJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return Document{}, fmt.Errorf("%w: json: %v", ErrFormat, err)
	}

	return Document{Matrix: rows}, nil
}

func decodeYAML(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	var rows [][]float64
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return Document{}, fmt.Errorf("%w: yaml: %v", ErrFormat, err)
	}

	return Document{Matrix: rows}, nil
}

func decodeTOML(data []byte) (Document, error) {
	var doc Document
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return Document{}, fmt.Errorf("%w: toml: %v", ErrFormat, err)
	}

	return doc, nil
}

func decodeCSV(data []byte) (Document, error) {
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comment = '#'
	cr.FieldsPerRecord = -1 // squareness is Validate's job
	cr.TrimLeadingSpace = true

	var rows [][]float64
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Document{}, fmt.Errorf("%w: csv: %v", ErrFormat, err)
		}
		row, err := parseCells(rec, len(rows)+1)
		if err != nil {
			return Document{}, err
		}
		rows = append(rows, row)
	}

	return Document{Matrix: rows}, nil
}

// ParseInline reads "1,2;3,4" (or "1 2; 3 4") into rows.
func ParseInline(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmpty
	}
	parts := strings.Split(strings.TrimSuffix(s, ";"), ";")
	rows := make([][]float64, 0, len(parts))
	for i, p := range parts {
		var cells []string
		if strings.Contains(p, ",") {
			cells = strings.Split(p, ",")
		} else {
			cells = strings.Fields(p)
		}
		row, err := parseCells(cells, i+1)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseCells converts one row of text cells; row is 1-based for messages.
func parseCells(cells []string, row int) ([]float64, error) {
	out := make([]float64, len(cells))
	for j, c := range cells {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, fmt.Errorf("%w at position [%d, %d]: %q is not a number", ErrInvalidValue, row, j+1, c)
		}
		out[j] = v
	}

	return out, nil
}
