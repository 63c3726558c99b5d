package domain

// DocumentType is the closed set of document categories the pipeline
// recognizes. Adding a kind means adding a classification rule set and an
// extraction rule set; nothing else changes.
type DocumentType string

const (
	// Income slips
	DocTypeT4      DocumentType = "t4"
	DocTypeReleve1 DocumentType = "releve1"
	DocTypeT4A     DocumentType = "t4a"
	DocTypeReleve2 DocumentType = "releve2"

	// Platform income summaries
	DocTypeUberSummary DocumentType = "uber_summary"
	DocTypeLyftSummary DocumentType = "lyft_summary"
	DocTypeEvaSummary  DocumentType = "eva_summary"

	// Expense receipts
	DocTypeFuelReceipt        DocumentType = "fuel_receipt"
	DocTypeMaintenanceReceipt DocumentType = "maintenance_receipt"
	DocTypeInsuranceReceipt   DocumentType = "insurance_receipt"
	DocTypeParkingReceipt     DocumentType = "parking_receipt"
	DocTypePhoneReceipt       DocumentType = "phone_receipt"
	DocTypeMealReceipt        DocumentType = "meal_receipt"

	DocTypeUnknown DocumentType = "unknown"
)

// AllDocumentTypes lists every concrete type in its canonical order. The
// classifier iterates this order and resolves score ties in favor of the
// earlier entry, so the ordering here is part of the observable contract.
var AllDocumentTypes = []DocumentType{
	DocTypeT4,
	DocTypeReleve1,
	DocTypeT4A,
	DocTypeReleve2,
	DocTypeUberSummary,
	DocTypeLyftSummary,
	DocTypeEvaSummary,
	DocTypeFuelReceipt,
	DocTypeMaintenanceReceipt,
	DocTypeInsuranceReceipt,
	DocTypeParkingReceipt,
	DocTypePhoneReceipt,
	DocTypeMealReceipt,
}

// Valid reports whether t is a member of the closed enumeration,
// including Unknown.
func (t DocumentType) Valid() bool {
	if t == DocTypeUnknown {
		return true
	}
	for _, dt := range AllDocumentTypes {
		if t == dt {
			return true
		}
	}
	return false
}

// IsSlip reports whether t is an income slip (federal or Quebec).
func (t DocumentType) IsSlip() bool {
	switch t {
	case DocTypeT4, DocTypeReleve1, DocTypeT4A, DocTypeReleve2:
		return true
	}
	return false
}

// IsPlatformSummary reports whether t is a rideshare/taxi platform summary.
func (t DocumentType) IsPlatformSummary() bool {
	switch t {
	case DocTypeUberSummary, DocTypeLyftSummary, DocTypeEvaSummary:
		return true
	}
	return false
}

// IsReceipt reports whether t is an expense receipt.
func (t DocumentType) IsReceipt() bool {
	switch t {
	case DocTypeFuelReceipt, DocTypeMaintenanceReceipt, DocTypeInsuranceReceipt,
		DocTypeParkingReceipt, DocTypePhoneReceipt, DocTypeMealReceipt:
		return true
	}
	return false
}

// ValidationSeverity determines how a failed validation rule is reported.
type ValidationSeverity string

const (
	ValidationSeverityError   ValidationSeverity = "error"
	ValidationSeverityWarning ValidationSeverity = "warning"
)

// ValidationRuleType categorizes validation rules.
type ValidationRuleType string

const (
	ValidationRuleRequired   ValidationRuleType = "required"
	ValidationRuleCrossField ValidationRuleType = "cross_field"
	ValidationRuleLogical    ValidationRuleType = "logical"
	ValidationRuleRange      ValidationRuleType = "range"
)

// Periodicity is the reporting window a platform summary covers. It governs
// which plausibility ceilings the validator applies.
type Periodicity string

const (
	PeriodicityAnnual Periodicity = "annual"
	PeriodicityShort  Periodicity = "short"
)
