package parser

import (
	"strconv"
	"strings"

	"github.com/akettabi/cellgrid-go/pkg/cellgrid/models"
)

// InferKind determines the cell kind of a raw field value, trying int,
// then float, then bool, falling through to text. Bool is recognized
// only for case-insensitive "true"/"false".
func InferKind(token string) models.Kind {
	if _, err := strconv.ParseInt(token, 10, 64); err == nil {
		return models.KindInt
	}
	if _, err := strconv.ParseFloat(token, 64); err == nil {
		return models.KindFloat
	}
	if isBoolToken(token) {
		return models.KindBool
	}
	return models.KindText
}

// ParseAs parses a raw field value against a fixed kind. Empty fields
// are always missing; a value that fails to parse against the kind
// becomes missing rather than failing the load.
func ParseAs(token string, kind models.Kind) models.Cell {
	if token == "" {
		return models.Missing()
	}
	switch kind {
	case models.KindInt:
		if i, err := strconv.ParseInt(token, 10, 64); err == nil {
			return models.Int(i)
		}
	case models.KindFloat:
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return models.Float(f)
		}
	case models.KindBool:
		if isBoolToken(token) {
			return models.Bool(strings.EqualFold(token, "true"))
		}
	case models.KindText:
		return models.Text(token)
	}
	return models.Missing()
}

// isBoolToken matches exactly "true" or "false", case-insensitively.
// strconv.ParseBool is deliberately not used: it also accepts "1",
// "t", and friends, which must stay ints and text.
func isBoolToken(token string) bool {
	return strings.EqualFold(token, "true") || strings.EqualFold(token, "false")
}
