// SPDX-License-Identifier: MIT

// Package matrixio reads and writes matrices as small YAML or JSON documents:
//
//	rows: [[1, 2], [3, 4]]
//	{"rows": [[1, 2], [3, 4]]}
//
// JSON input may carry // and /* */ comments and trailing commas.
// A text layout identical to Matrix.String is available for output.
package matrixio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixplus/matrix"
)

// document is the on-disk shape shared by YAML and JSON.
type document struct {
	Rows [][]float64 `json:"rows" yaml:"rows,flow"`
}

// Decode reads one matrix document from r.
// Under FormatAuto, payloads starting with '{' or a comment are tried as JSON
// first and fall back to YAML; everything else is YAML.
func Decode(r io.Reader, opts ...Option) (*matrix.Matrix, error) {
	o := gatherOptions(opts...)
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return decodeBytes(raw, o.format)
}

// ReadFile decodes the document at path. Without WithFormat the extension decides.
func ReadFile(path string, opts ...Option) (*matrix.Matrix, error) {
	o := gatherOptions(opts...)
	if o.format == FormatAuto {
		o.format = FormatFromPath(path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return decodeBytes(raw, o.format)
}

func decodeBytes(raw []byte, f Format) (*matrix.Matrix, error) {
	var (
		doc document
		err error
	)
	switch f {
	case FormatJSON:
		err = decodeJSON(raw, &doc)
	case FormatYAML:
		err = decodeYAML(raw, &doc)
	case FormatAuto:
		if looksLikeJSON(raw) {
			if err = decodeJSON(raw, &doc); err != nil {
				doc = document{}
				err = decodeYAML(raw, &doc)
			}
		} else {
			err = decodeYAML(raw, &doc)
		}
	default:
		return nil, fmt.Errorf("%w: decode %s", ErrUnsupported, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(doc.Rows) == 0 {
		return nil, ErrEmptyDocument
	}

	m, err := matrix.FromRows(doc.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return m, nil
}

func decodeJSON(raw []byte, doc *document) error {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(raw)))
	dec.DisallowUnknownFields()

	return dec.Decode(doc)
}

func decodeYAML(raw []byte, doc *document) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && err != io.EOF {
		return err
	}

	return nil
}

func looksLikeJSON(raw []byte) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")

	return bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("/"))
}

// Encode writes m to w. FormatAuto encodes YAML.
func Encode(w io.Writer, m *matrix.Matrix, opts ...Option) error {
	if m == nil {
		return fmt.Errorf("%w: %w", ErrEncode, matrix.ErrNilMatrix)
	}
	o := gatherOptions(opts...)
	rows := roundRows(m.ToRows(), o.precision)

	switch o.format {
	case FormatAuto, FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Rows: rows}); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
	case FormatJSON:
		if err := json.NewEncoder(w).Encode(document{Rows: rows}); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
	case FormatText:
		if _, err := io.WriteString(w, formatText(rows, o.precision)); err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
	default:
		return fmt.Errorf("%w: encode %s", ErrUnsupported, o.format)
	}

	return nil
}

// formatText renders rows as "[a, b]\n" lines; digits < 0 uses the shortest form.
func formatText(rows [][]float64, digits int) string {
	var sb strings.Builder
	for _, row := range rows {
		sb.WriteByte('[')
		for j, v := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			if digits < 0 {
				sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
			} else {
				sb.WriteString(strconv.FormatFloat(v, 'f', digits, 64))
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// roundRows rounds finite values in place to digits decimals; digits < 0 is a no-op.
func roundRows(rows [][]float64, digits int) [][]float64 {
	if digits < 0 {
		return rows
	}
	pow := math.Pow10(digits)
	for _, row := range rows {
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			r := math.Round(v*pow) / pow
			if r == 0 {
				r = 0 // drop -0
			}
			row[j] = r
		}
	}

	return rows
}
