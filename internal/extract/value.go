package extract

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"taxdoc/internal/domain"
)

// Shapes tried during coercion. Order matters: date before year before
// number, so that "2024" becomes the year string "2024" and never the
// currency amount 2024.00.
var (
	dateShapes = []*regexp.Regexp{
		regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{2,4}$`),
		regexp.MustCompile(`(?i)^(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]* \d{1,2},? \d{4}$`),
	}
	yearShape = regexp.MustCompile(`^\d{4}$`)
)

const (
	minPlausibleYear = 1900
	maxPlausibleYear = 2100
)

// coerceValue turns a captured string into a typed Value. Candidates are
// tested against date-shape, then year-shape, then numeric parsing; only if
// none apply is the value kept as trimmed text.
func coerceValue(raw string) domain.Value {
	s := strings.TrimSpace(raw)

	for _, shape := range dateShapes {
		if shape.MatchString(s) {
			return domain.DateValue(s)
		}
	}

	if yearShape.MatchString(s) {
		if y, err := strconv.Atoi(s); err == nil && y >= minPlausibleYear && y <= maxPlausibleYear {
			return domain.YearValue(s)
		}
	}

	numeric := strings.ReplaceAll(s, ",", "")
	if f, err := strconv.ParseFloat(numeric, 64); err == nil {
		return domain.NumberValue(round2(f))
	}

	return domain.TextValue(s)
}

// round2 rounds to two decimal places, half away from zero. Every numeric
// coercion in the pipeline goes through this.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
