package validate

import (
	"fmt"
	"strings"

	"taxdoc/internal/domain"
)

// Plausibility ceilings. An annual platform summary legitimately carries
// figures far beyond a weekly or monthly one, so the ceiling depends on the
// document's periodicity.
const (
	annualIncomeCeiling = 500000.0
	shortIncomeCeiling  = 20000.0

	annualDistanceCeiling = 120000.0
	shortDistanceCeiling  = 10000.0
)

var annualMarkers = []string{"annual", "year", "année", "annee", "annuel"}

// PeriodicityOf determines the reporting window of a platform summary from
// its period field. A period that parses as a bare year, or whose text
// mentions an annual marker, is annual; anything else, including a missing
// period, is treated as a short (weekly/monthly) window.
func PeriodicityOf(fields *domain.FieldMap) domain.Periodicity {
	v, ok := fields.Get(domain.FieldPeriod)
	if !ok {
		return domain.PeriodicityShort
	}
	if v.Kind == domain.ValueYear {
		return domain.PeriodicityAnnual
	}
	lower := strings.ToLower(v.Text)
	for _, marker := range annualMarkers {
		if strings.Contains(lower, marker) {
			return domain.PeriodicityAnnual
		}
	}
	return domain.PeriodicityShort
}

// RangeRules returns the periodicity-aware plausibility rules. Values above
// a ceiling are unusual rather than impossible, so these are warnings.
func RangeRules() []Rule {
	return []Rule{
		&rule{
			key: "rng.income_ceiling", name: "Range: Income Ceiling",
			ruleType: domain.ValidationRuleRange,
			severity: domain.ValidationSeverityWarning,
			applies:  func(t domain.DocumentType) bool { return t.IsPlatformSummary() },
			check: func(fields *domain.FieldMap, _ domain.DocumentType) []string {
				gross, ok := fields.Number(domain.FieldGrossIncome)
				if !ok {
					return nil
				}
				ceiling, window := incomeCeiling(PeriodicityOf(fields))
				if gross > ceiling {
					return []string{fmt.Sprintf("gross income %.2f exceeds plausible %s ceiling %.2f", gross, window, ceiling)}
				}
				return nil
			},
		},
		&rule{
			key: "rng.distance_ceiling", name: "Range: Distance Ceiling",
			ruleType: domain.ValidationRuleRange,
			severity: domain.ValidationSeverityWarning,
			applies:  func(t domain.DocumentType) bool { return t.IsPlatformSummary() },
			check: func(fields *domain.FieldMap, _ domain.DocumentType) []string {
				distance, ok := fields.Number(domain.FieldDistanceKM)
				if !ok {
					return nil
				}
				ceiling, window := distanceCeiling(PeriodicityOf(fields))
				if distance > ceiling {
					return []string{fmt.Sprintf("distance %.2f km exceeds plausible %s ceiling %.2f km", distance, window, ceiling)}
				}
				return nil
			},
		},
	}
}

func incomeCeiling(p domain.Periodicity) (float64, string) {
	if p == domain.PeriodicityAnnual {
		return annualIncomeCeiling, "annual"
	}
	return shortIncomeCeiling, "weekly/monthly"
}

func distanceCeiling(p domain.Periodicity) (float64, string) {
	if p == domain.PeriodicityAnnual {
		return annualDistanceCeiling, "annual"
	}
	return shortDistanceCeiling, "weekly/monthly"
}
