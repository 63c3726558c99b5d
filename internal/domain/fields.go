package domain

// Canonical field names produced by the extractor and consumed by the
// validator, tax calculation, and export layers. Field names are unique
// within a document type's rule table.
const (
	// Income slips
	FieldEmploymentIncome     = "employment_income"
	FieldSelfEmploymentIncome = "self_employment_income"
	FieldOtherIncome          = "other_income"
	FieldIncomeTaxDeducted    = "income_tax_deducted"
	FieldQuebecTaxDeducted    = "quebec_tax_deducted"
	FieldCPPContributions     = "cpp_contributions"
	FieldQPPContributions     = "qpp_contributions"
	FieldEIPremiums           = "ei_premiums"
	FieldQPIPPremiums         = "qpip_premiums"
	FieldEmployerName         = "employer_name"
	FieldPayerName            = "payer_name"
	FieldTaxYear              = "tax_year"

	// Platform summaries
	FieldGrossIncome    = "gross_income"
	FieldDeliveryIncome = "delivery_income"
	FieldNetIncome      = "net_income"
	FieldTips           = "tips"
	FieldServiceFee     = "service_fee"
	FieldGSTCollected   = "gst_collected"
	FieldDistanceKM     = "distance_km"
	FieldTripsCount     = "trips_count"
	FieldPeriod         = "period"

	// Receipts
	FieldTotalAmount   = "total_amount"
	FieldSubtotal      = "subtotal"
	FieldGSTAmount     = "gst_amount"
	FieldQSTAmount     = "qst_amount"
	FieldTipAmount     = "tip_amount"
	FieldDate          = "date"
	FieldLitres        = "litres"
	FieldPricePerLitre = "price_per_litre"
	FieldOdometer      = "odometer"
	FieldPolicyNumber  = "policy_number"
)
