package validate

import (
	"fmt"

	"taxdoc/internal/domain"
)

// LogicalRules returns the rules that reject logically impossible values and
// flag suspicious-but-legitimate ones.
func LogicalRules() []Rule {
	return []Rule{
		&rule{
			key: "log.negative_amount", name: "Logical: Non-Negative Amounts",
			ruleType: domain.ValidationRuleLogical,
			severity: domain.ValidationSeverityError,
			applies:  func(domain.DocumentType) bool { return true },
			check: func(fields *domain.FieldMap, _ domain.DocumentType) []string {
				var msgs []string
				for _, name := range fields.Names() {
					if n, ok := fields.Number(name); ok && n < 0 {
						msgs = append(msgs, fmt.Sprintf("field %s has negative value %.2f", name, n))
					}
				}
				return msgs
			},
		},
		&rule{
			// A record where every monetary and distance field is zero is a
			// legitimate inactive period, not an invalid document, so this
			// is a warning only.
			key: "log.all_zero", name: "Logical: All-Zero Record",
			ruleType: domain.ValidationRuleLogical,
			severity: domain.ValidationSeverityWarning,
			applies:  func(t domain.DocumentType) bool { return t.IsPlatformSummary() },
			check: func(fields *domain.FieldMap, _ domain.DocumentType) []string {
				present := 0
				for _, name := range fields.Names() {
					n, ok := fields.Number(name)
					if !ok {
						continue
					}
					if n != 0 {
						return nil
					}
					present++
				}
				if present == 0 {
					return nil
				}
				return []string{"all monetary and distance fields are zero; either an inactive reporting period or a failed extraction"}
			},
		},
		&rule{
			key: "log.tax_year_window", name: "Logical: Tax Year Window",
			ruleType: domain.ValidationRuleLogical,
			severity: domain.ValidationSeverityWarning,
			applies:  func(domain.DocumentType) bool { return true },
			check:    checkYearWindow,
		},
	}
}

const (
	saneYearMin = 2020
	saneYearMax = 2030
)

// checkYearWindow flags year fields outside the sane window. Future or
// clearly wrong years surface for human review instead of rejecting the
// document.
func checkYearWindow(fields *domain.FieldMap, _ domain.DocumentType) []string {
	var msgs []string
	for _, name := range []string{domain.FieldTaxYear, domain.FieldPeriod} {
		v, ok := fields.Get(name)
		if !ok || v.Kind != domain.ValueYear {
			continue
		}
		year := 0
		fmt.Sscanf(v.Text, "%d", &year)
		if year < saneYearMin || year > saneYearMax {
			msgs = append(msgs, fmt.Sprintf("%s %s outside expected window %d-%d", name, v.Text, saneYearMin, saneYearMax))
		}
	}
	return msgs
}
