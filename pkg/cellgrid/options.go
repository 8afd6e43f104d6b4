// Package cellgrid is an in-memory tabular store backed by delimited
// text files. It loads rows of typed cells into a models.Sheet, lets
// callers filter, transform, and aggregate them, and serializes the
// result back out.
package cellgrid

import (
	"github.com/akettabi/cellgrid-go/pkg/cellgrid/output"
	"github.com/akettabi/cellgrid-go/pkg/cellgrid/parser"
)

// Options configures loading behavior.
type Options struct {
	// Separator is the field separator character. Zero means comma.
	Separator rune
	// Header specifies whether the first row holds column names.
	// If nil, defaults to true; when false, synthetic names
	// col0, col1, ... are generated.
	Header *bool
	// TrimFields specifies whether surrounding whitespace is trimmed
	// from every field. If nil, defaults to true.
	TrimFields *bool
}

// DefaultOptions returns default loading options.
func DefaultOptions() Options {
	return Options{}
}

// HasHeader returns whether the first row is treated as a header.
func (o Options) HasHeader() bool {
	if o.Header != nil {
		return *o.Header
	}
	return true
}

// ShouldTrim returns whether fields are whitespace-trimmed.
func (o Options) ShouldTrim() bool {
	if o.TrimFields != nil {
		return *o.TrimFields
	}
	return true
}

func (o Options) parserConfig() parser.Config {
	cfg := parser.DefaultConfig()
	if o.Separator != 0 {
		cfg.Separator = o.Separator
	}
	cfg.HasHeader = o.HasHeader()
	cfg.TrimFields = o.ShouldTrim()
	return cfg
}

// ExportOptions configures serialization behavior.
type ExportOptions struct {
	// Separator is the output field separator character. Zero means
	// comma.
	Separator rune
	// Header specifies whether a header line is written. If nil,
	// defaults to true.
	Header *bool
}

// WritesHeader returns whether a header line is written.
func (o ExportOptions) WritesHeader() bool {
	if o.Header != nil {
		return *o.Header
	}
	return true
}

func (o ExportOptions) outputConfig() output.Config {
	cfg := output.DefaultConfig()
	if o.Separator != 0 {
		cfg.Separator = o.Separator
	}
	cfg.WriteHeader = o.WritesHeader()
	return cfg
}
