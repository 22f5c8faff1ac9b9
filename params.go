package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// piExprRegex matches expressions like: pi, 2pi, 2*pi, pi/2, 3pi/4, 3*pi/4, -pi, -pi/2, -3*pi/4
var piExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*\*?\s*pi(?:\s*/\s*(\d+\.?\d*))?$`)

// sqrtExprRegex matches expressions like: 1/sqrt2, -1/sqrt(2), 3/sqrt(10), /sqrt2
var sqrtExprRegex = regexp.MustCompile(`^(-?)(\d*\.?\d*)\s*/\s*sqrt\s*\(?\s*(\d+\.?\d*)\s*\)?$`)

// parseParamExpr parses a single parameter expression, supporting plain numbers and pi expressions.
// Returns the parsed float64 value and true on success, or 0 and false on failure.
//
// Supported formats:
//   - Plain numbers: "1.5707", "3.14", "-0.5"
//   - Pi constant: "pi"
//   - Pi fractions: "pi/2", "pi/4", "pi/3"
//   - Coefficients: "2pi", "2*pi", "3pi/4", "3*pi/4"
//   - Negative: "-pi", "-pi/2", "-3*pi/4"
func parseParamExpr(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// Try plain number first
	if val, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0, false
		}
		return val, true
	}

	// Try pi expression
	s = strings.ToLower(s)
	if matches := piExprRegex.FindStringSubmatch(s); matches != nil {
		negative := matches[1] == "-"
		coeffStr := matches[2]
		denomStr := matches[3]

		coeff := 1.0
		if coeffStr != "" {
			var err error
			coeff, err = strconv.ParseFloat(coeffStr, 64)
			if err != nil {
				return 0, false
			}
		}

		result := coeff * math.Pi

		if denomStr != "" {
			denom, err := strconv.ParseFloat(denomStr, 64)
			if err != nil || denom == 0 {
				return 0, false
			}
			result /= denom
		}

		if negative {
			result = -result
		}
		return result, true
	}

	return 0, false
}

// parseRealExpr extends parseParamExpr with square-root fractions, the usual
// way of writing matrix entries such as 1/sqrt2.
func parseRealExpr(s string) (float64, bool) {
	if val, ok := parseParamExpr(s); ok {
		return val, true
	}
	s = strings.ToLower(strings.TrimSpace(s))
	matches := sqrtExprRegex.FindStringSubmatch(s)
	if matches == nil {
		return 0, false
	}
	coeff := 1.0
	if matches[2] != "" {
		var err error
		coeff, err = strconv.ParseFloat(matches[2], 64)
		if err != nil {
			return 0, false
		}
	}
	radicand, err := strconv.ParseFloat(matches[3], 64)
	if err != nil || radicand == 0 {
		return 0, false
	}
	result := coeff / math.Sqrt(radicand)
	if matches[1] == "-" {
		result = -result
	}
	return result, true
}

// parseComplexExpr parses a matrix entry: a sum of real and imaginary terms.
// The imaginary unit is written as a trailing i or j, or a leading i followed
// by * or /.
//
// Examples: "1", "-0.5", "i", "-i", "0.5+0.5i", "1/sqrt2 - 1/sqrt2 i", "i/sqrt2", "pi/4j"
func parseComplexExpr(s string) (complex128, bool) {
	s = strings.ToLower(strings.Join(strings.Fields(s), ""))
	if s == "" {
		return 0, false
	}
	var sum complex128
	for _, term := range splitTerms(s) {
		c, ok := parseComplexTerm(term)
		if !ok {
			return 0, false
		}
		sum += c
	}
	return sum, true
}

// splitTerms splits s before each top-level + or - that is not a leading
// sign, not an exponent sign and not inside parentheses.
func splitTerms(s string) []string {
	var terms []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '+', '-':
			if i == start || depth > 0 {
				continue
			}
			prev := s[i-1]
			if prev == '*' || prev == '/' {
				continue
			}
			if prev == 'e' && i >= 2 && s[i-2] >= '0' && s[i-2] <= '9' {
				continue
			}
			terms = append(terms, s[start:i])
			start = i
		}
	}
	return append(terms, s[start:])
}

func parseComplexTerm(term string) (complex128, bool) {
	sign := 1.0
	switch {
	case strings.HasPrefix(term, "+"):
		term = term[1:]
	case strings.HasPrefix(term, "-"):
		sign = -1
		term = term[1:]
	}
	if term == "" {
		return 0, false
	}

	// Leading unit: i, i*x, i/x
	if term[0] == 'i' || term[0] == 'j' {
		rest := term[1:]
		switch {
		case rest == "":
			return complex(0, sign), true
		case rest[0] == '*':
			v, ok := parseRealExpr(rest[1:])
			return complex(0, sign*v), ok
		case rest[0] == '/':
			v, ok := parseRealExpr("1" + rest)
			return complex(0, sign*v), ok
		}
		return 0, false
	}

	// Trailing unit: xi, x*i, xj. "pi" alone is real.
	last := term[len(term)-1]
	if (last == 'i' && !strings.HasSuffix(term, "pi")) || last == 'j' {
		body := strings.TrimSuffix(term[:len(term)-1], "*")
		if body == "" {
			return complex(0, sign), true
		}
		v, ok := parseRealExpr(body)
		return complex(0, sign*v), ok
	}

	v, ok := parseRealExpr(term)
	return complex(sign*v, 0), ok
}

// parseMatrixExpr parses "a, b; c, d" (rows separated by ';' or newlines)
// into rows of complex entries. The shape is not checked here.
func parseMatrixExpr(input string) ([][]any, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty matrix")
	}
	var rows [][]any
	for ri, line := range strings.FieldsFunc(input, func(r rune) bool { return r == ';' || r == '\n' }) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var row []any
		for ci, entry := range strings.Split(line, ",") {
			c, ok := parseComplexExpr(entry)
			if !ok {
				return nil, fmt.Errorf("row %d, column %d: cannot parse %q", ri+1, ci+1, strings.TrimSpace(entry))
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// formatParam formats a float64 parameter value, using pi notation when possible.
// Recognizes common pi fractions: pi, pi/2, pi/4, pi/3, pi/6, pi/8, 2pi, 3pi/4, etc.
func formatParam(val float64) string {
	// Table of recognized pi fractions: coefficient, denominator, display string
	type piForm struct {
		value   float64
		display string
	}
	piForms := []piForm{
		{2 * math.Pi, "2*pi"},
		{math.Pi, "pi"},
		{math.Pi / 2, "pi/2"},
		{math.Pi / 3, "pi/3"},
		{math.Pi / 4, "pi/4"},
		{math.Pi / 6, "pi/6"},
		{math.Pi / 8, "pi/8"},
		{3 * math.Pi / 4, "3*pi/4"},
		{3 * math.Pi / 2, "3*pi/2"},
		{2 * math.Pi / 3, "2*pi/3"},
	}

	for _, pf := range piForms {
		if math.Abs(val-pf.value) < 1e-10 {
			return pf.display
		}
		if math.Abs(val+pf.value) < 1e-10 {
			return "-" + pf.display
		}
	}

	return fmt.Sprintf("%g", val)
}

// formatAmplitude renders a complex amplitude with four decimals, dropping
// a zero imaginary or real part.
func formatAmplitude(c complex128) string {
	re, im := real(c), imag(c)
	const eps = 5e-5
	switch {
	case math.Abs(im) < eps && math.Abs(re) < eps:
		return "0"
	case math.Abs(im) < eps:
		return fmt.Sprintf("%.4f", re)
	case math.Abs(re) < eps:
		return fmt.Sprintf("%.4fi", im)
	case im < 0:
		return fmt.Sprintf("%.4f-%.4fi", re, -im)
	default:
		return fmt.Sprintf("%.4f+%.4fi", re, im)
	}
}

// parseParams parses a parameter string into float values.
// Returns nil if any part fails to parse.
func parseParams(input string) []float64 {
	var params []float64
	parts := strings.Split(input, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		val, ok := parseParamExpr(part)
		if !ok {
			return nil // validation failure
		}
		params = append(params, val)
	}
	return params
}
