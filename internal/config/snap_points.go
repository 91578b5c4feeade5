package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roamly/roamly/internal/errors"
)

// ParseSnapPoints reads a comma or space separated list of fractions such as
// "0.25, 0.5, 0.9". Range checks are left to Validate.
func ParseSnapPoints(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.ConfigInvalid("at least one snap point is required")
	}

	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.ConfigInvalid(fmt.Sprintf("snap point %q is not a number", f))
		}
		out = append(out, v)
	}
	return out, nil
}

// FormatSnapPoints is the inverse of ParseSnapPoints.
func FormatSnapPoints(fractions []float64) string {
	parts := make([]string, len(fractions))
	for i, f := range fractions {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
