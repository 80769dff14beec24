// SPDX-License-Identifier: MIT

// Package matrixio: functional configuration for the document codec.
// This file defines:
//   - Format and its parsing helpers,
//   - Option / Options with documented defaults,
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper that resolves the effective configuration.
package matrixio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the wire representation of a matrix document.
type Format int

const (
	// FormatAuto lets Decode sniff the payload and ReadFile look at the extension.
	FormatAuto Format = iota
	// FormatYAML is a YAML mapping with a flow-style "rows" sequence.
	FormatYAML
	// FormatJSON is a JSON object; comments and trailing commas are accepted on input.
	FormatJSON
	// FormatText is the bracketed row layout used by Matrix.String. Encode only.
	FormatText
)

// String returns the lower-case name used by ParseFormat.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "auto"
	}
}

// ParseFormat maps a user-facing name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json", "jsonc":
		return FormatJSON, nil
	case "text", "txt":
		return FormatText, nil
	}

	return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath infers the format from a file extension; unknown extensions give FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json", ".jsonc":
		return FormatJSON
	case ".txt":
		return FormatText
	}

	return FormatAuto
}

// Defaults.
const (
	// DefaultFormat lets the codec decide.
	DefaultFormat = FormatAuto

	// DefaultPrecision keeps every digit; a value ≥ 0 rounds to that many decimals.
	DefaultPrecision = -1

	// MaxPrecision bounds WithPrecision; float64 carries ~17 significant digits.
	MaxPrecision = 17
)

const panicPrecisionInvalid = "matrixio: WithPrecision: digits must be in [-1, 17]"

// Option mutates codec options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	format    Format
	precision int
}

// WithFormat forces a format instead of sniffing or extension lookup.
func WithFormat(f Format) Option {
	return func(o *Options) { o.format = f }
}

// WithPrecision rounds every encoded value to digits decimals.
// A negative digits (-1) restores exact output. Panics outside [-1, MaxPrecision].
func WithPrecision(digits int) Option {
	if digits < -1 || digits > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = digits }
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{format: DefaultFormat, precision: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
