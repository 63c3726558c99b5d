package validate

import (
	"fmt"

	"taxdoc/internal/domain"
)

// primaryAmountField maps each document family to its required primary
// income/amount field. Unknown has none.
func primaryAmountField(t domain.DocumentType) string {
	switch t {
	case domain.DocTypeT4, domain.DocTypeReleve1:
		return domain.FieldEmploymentIncome
	case domain.DocTypeT4A:
		return domain.FieldSelfEmploymentIncome
	case domain.DocTypeReleve2:
		return domain.FieldOtherIncome
	case domain.DocTypeUberSummary, domain.DocTypeLyftSummary, domain.DocTypeEvaSummary:
		return domain.FieldGrossIncome
	case domain.DocTypeFuelReceipt, domain.DocTypeMaintenanceReceipt,
		domain.DocTypeInsuranceReceipt, domain.DocTypeParkingReceipt,
		domain.DocTypePhoneReceipt, domain.DocTypeMealReceipt:
		return domain.FieldTotalAmount
	}
	return ""
}

// RequiredRules returns the required-field rules. A missing primary amount
// is an error, never a warning.
func RequiredRules() []Rule {
	return []Rule{
		&rule{
			key: "req.primary_amount", name: "Required: Primary Amount",
			ruleType: domain.ValidationRuleRequired,
			severity: domain.ValidationSeverityError,
			applies:  func(t domain.DocumentType) bool { return primaryAmountField(t) != "" },
			check: func(fields *domain.FieldMap, t domain.DocumentType) []string {
				field := primaryAmountField(t)
				if _, ok := fields.Number(field); !ok {
					return []string{fmt.Sprintf("required field %s is missing", field)}
				}
				return nil
			},
		},
	}
}
