package models

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxNumericInput bounds the text accepted by ParseOrZero.
const maxNumericInput = 64

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseOrZero parses user input for a numeric field.
// Like a browser number field it reads the longest leading numeric prefix
// ("12.5kg" is 12.5). Only decimal notation is read, so "0x10" is 0.
// Empty, overlong, non-numeric, non-finite and negative input all yield 0.
func ParseOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if len(s) > maxNumericInput {
		return 0
	}
	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return NonNegative(v)
}

// NonNegative maps negative, NaN and infinite values to 0.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
