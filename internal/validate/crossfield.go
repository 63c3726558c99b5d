package validate

import (
	"fmt"

	"taxdoc/internal/domain"
)

// deductionsFraction is the share of income above which total source
// deductions are flagged as unusual.
const deductionsFraction = 0.5

// CrossFieldRules returns the rules relating different fields of the same
// document.
func CrossFieldRules() []Rule {
	return []Rule{
		&rule{
			key: "xf.net_exceeds_gross", name: "Cross-field: Net vs Gross",
			ruleType: domain.ValidationRuleCrossField,
			severity: domain.ValidationSeverityError,
			applies:  func(t domain.DocumentType) bool { return t.IsPlatformSummary() },
			check: func(fields *domain.FieldMap, _ domain.DocumentType) []string {
				gross, okGross := fields.Number(domain.FieldGrossIncome)
				net, okNet := fields.Number(domain.FieldNetIncome)
				if !okGross || !okNet || gross == 0 {
					return nil
				}
				if net > gross {
					return []string{fmt.Sprintf("net income %.2f exceeds gross income %.2f", net, gross)}
				}
				return nil
			},
		},
		&rule{
			// Deductions above half of income are unusual but not
			// impossible, so this stays a warning.
			key: "xf.deductions_fraction", name: "Cross-field: Deductions vs Income",
			ruleType: domain.ValidationRuleCrossField,
			severity: domain.ValidationSeverityWarning,
			applies:  func(t domain.DocumentType) bool { return t.IsSlip() },
			check: func(fields *domain.FieldMap, t domain.DocumentType) []string {
				income, ok := fields.Number(primaryAmountField(t))
				if !ok || income <= 0 {
					return nil
				}
				total := 0.0
				for _, name := range []string{
					domain.FieldIncomeTaxDeducted,
					domain.FieldQuebecTaxDeducted,
					domain.FieldCPPContributions,
					domain.FieldQPPContributions,
					domain.FieldEIPremiums,
					domain.FieldQPIPPremiums,
				} {
					if n, ok := fields.Number(name); ok {
						total += n
					}
				}
				if total > income*deductionsFraction {
					return []string{fmt.Sprintf("total deductions %.2f exceed half of income %.2f", total, income)}
				}
				return nil
			},
		},
		&rule{
			key: "xf.taxes_exceed_total", name: "Cross-field: Taxes vs Total",
			ruleType: domain.ValidationRuleCrossField,
			severity: domain.ValidationSeverityError,
			applies:  func(t domain.DocumentType) bool { return t.IsReceipt() },
			check: func(fields *domain.FieldMap, _ domain.DocumentType) []string {
				total, ok := fields.Number(domain.FieldTotalAmount)
				if !ok || total == 0 {
					return nil
				}
				taxes := 0.0
				for _, name := range []string{domain.FieldGSTAmount, domain.FieldQSTAmount} {
					if n, ok := fields.Number(name); ok {
						taxes += n
					}
				}
				if taxes == 0 {
					return nil
				}
				if taxes > total {
					return []string{fmt.Sprintf("sales taxes %.2f exceed receipt total %.2f", taxes, total)}
				}
				return nil
			},
		},
	}
}
