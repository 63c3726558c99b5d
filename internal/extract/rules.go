package extract

import (
	"regexp"

	"taxdoc/internal/domain"
)

// Rule associates a field name with one or more alternative patterns. The
// alternatives cover formatting variants of the same field; the engine
// commits to the first pattern that matches and, within that match, the
// first non-empty capture group.
type Rule struct {
	Field    string
	Patterns []*regexp.Regexp
}

// amountPat captures a monetary or numeric amount. The currency symbol is
// optional and may carry the regional "CA" prefix; thousands separators are
// stripped during coercion.
const amountPat = `(?:(?:CA)?\$)?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`

const yearPat = `([0-9]{4})`

// periodWindowPat captures a reporting window ending in a 4-digit year. The
// textual prefix is optional so a bare year ("for the period 2024") still
// matches and coerces to a year value.
const periodWindowPat = `((?:[A-Za-z0-9][A-Za-z0-9 ,./-]*?)?[0-9]{4})`

// amt builds the common pattern "label: $1,234.56". label is a regex
// fragment.
func amt(label string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + label + `:?\s*` + amountPat)
}

func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

var slipYearPatterns = []*regexp.Regexp{
	re(`tax year:?\s*` + yearPat),
	re(`ann[ée]e d'imposition:?\s*` + yearPat),
	re(`for (?:the )?year:?\s*` + yearPat),
}

var datePatterns = []*regexp.Regexp{
	re(`(?:invoice |receipt |transaction )?date:?\s*([0-9]{4}-[0-9]{2}-[0-9]{2})`),
	re(`(?:invoice |receipt |transaction )?date:?\s*([0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`),
	regexp.MustCompile(`\b([0-9]{4}-[0-9]{2}-[0-9]{2})\b`),
}

// periodPatterns capture the reporting window of a platform summary. A bare
// year ("for the period 2024") coerces to a year value, which the validator
// reads as an annual period.
var periodPatterns = []*regexp.Regexp{
	re(`for the period:?\s+` + periodWindowPat),
	re(`p[ée]riode:?\s+` + periodWindowPat),
	re(`(weekly|monthly|annual) (?:tax )?summary`),
}

// distancePatterns accept the platform "online mileage N km" phrasing and
// the generic distance/kilometers phrasing, mapped to the same field.
var distancePatterns = []*regexp.Regexp{
	re(`online (?:mileage|miles|kilomet(?:er|re)s):?\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*km`),
	re(`(?:distance|kilomet(?:er|re)s)(?: (?:driven|travelled|parcourue))?:?\s*([0-9][0-9,]*(?:\.[0-9]+)?)`),
}

// ruleTables maps each document type to its extraction schema. Rule order
// fixes the field order of the resulting FieldMap. Types without an entry
// (Unknown) extract to an empty map.
var ruleTables = map[domain.DocumentType][]Rule{
	domain.DocTypeT4: {
		{Field: domain.FieldEmploymentIncome, Patterns: []*regexp.Regexp{
			amt(`employment income`),
			amt(`box 14[^0-9$]*`),
		}},
		{Field: domain.FieldIncomeTaxDeducted, Patterns: []*regexp.Regexp{
			amt(`income tax deducted`),
			amt(`box 22[^0-9$]*`),
		}},
		{Field: domain.FieldCPPContributions, Patterns: []*regexp.Regexp{
			amt(`cpp contributions`),
			amt(`box 16[^0-9$]*`),
		}},
		{Field: domain.FieldEIPremiums, Patterns: []*regexp.Regexp{
			amt(`ei premiums`),
			amt(`box 18[^0-9$]*`),
		}},
		{Field: domain.FieldTaxYear, Patterns: slipYearPatterns},
		{Field: domain.FieldEmployerName, Patterns: []*regexp.Regexp{
			re(`employer(?: name)?:?\s+([A-Za-z][A-Za-z&.'-]*(?: [A-Za-z][A-Za-z&.'-]*){0,2})`),
		}},
	},
	domain.DocTypeReleve1: {
		{Field: domain.FieldEmploymentIncome, Patterns: []*regexp.Regexp{
			amt(`revenus d'emploi`),
			amt(`case a[^0-9$]*`),
		}},
		{Field: domain.FieldQuebecTaxDeducted, Patterns: []*regexp.Regexp{
			amt(`imp[ôo]t du qu[ée]bec retenu`),
			amt(`case e[^0-9$]*`),
		}},
		{Field: domain.FieldQPPContributions, Patterns: []*regexp.Regexp{
			amt(`cotisation(?:s)? (?:au )?rrq`),
			amt(`case b[^0-9$]*`),
		}},
		{Field: domain.FieldQPIPPremiums, Patterns: []*regexp.Regexp{
			amt(`cotisation(?:s)? (?:au )?rqap`),
			amt(`case h[^0-9$]*`),
		}},
		{Field: domain.FieldTaxYear, Patterns: slipYearPatterns},
	},
	domain.DocTypeT4A: {
		{Field: domain.FieldSelfEmploymentIncome, Patterns: []*regexp.Regexp{
			amt(`self-employed commissions`),
			amt(`fees for services`),
			amt(`box 0?48[^0-9$]*`),
		}},
		{Field: domain.FieldIncomeTaxDeducted, Patterns: []*regexp.Regexp{
			amt(`income tax deducted`),
			amt(`box 0?22[^0-9$]*`),
		}},
		{Field: domain.FieldTaxYear, Patterns: slipYearPatterns},
		{Field: domain.FieldPayerName, Patterns: []*regexp.Regexp{
			re(`payer(?:'s name)?:?\s+([A-Za-z][A-Za-z&.'-]*(?: [A-Za-z][A-Za-z&.'-]*){0,2})`),
		}},
	},
	domain.DocTypeReleve2: {
		{Field: domain.FieldOtherIncome, Patterns: []*regexp.Regexp{
			amt(`autres revenus`),
			amt(`case c[^0-9$]*`),
		}},
		{Field: domain.FieldQuebecTaxDeducted, Patterns: []*regexp.Regexp{
			amt(`imp[ôo]t du qu[ée]bec retenu`),
			amt(`case j[^0-9$]*`),
		}},
		{Field: domain.FieldTaxYear, Patterns: slipYearPatterns},
	},
	domain.DocTypeUberSummary: {
		{Field: domain.FieldGrossIncome, Patterns: []*regexp.Regexp{
			amt(`gross (?:uber )?rides? fares?`),
			amt(`rides? (?:gross )?earnings`),
		}},
		{Field: domain.FieldDeliveryIncome, Patterns: []*regexp.Regexp{
			amt(`(?:uber )?eats (?:gross )?(?:earnings|fares?|income)`),
			amt(`delivery (?:earnings|income)`),
		}},
		{Field: domain.FieldTips, Patterns: []*regexp.Regexp{amt(`\btips\b`)}},
		{Field: domain.FieldNetIncome, Patterns: []*regexp.Regexp{
			amt(`net (?:payout|earnings|income)`),
		}},
		{Field: domain.FieldServiceFee, Patterns: []*regexp.Regexp{
			amt(`(?:uber )?service fee`),
		}},
		{Field: domain.FieldGSTCollected, Patterns: []*regexp.Regexp{
			amt(`(?:gst/hst|gst|hst) collected`),
		}},
		{Field: domain.FieldDistanceKM, Patterns: distancePatterns},
		{Field: domain.FieldTripsCount, Patterns: []*regexp.Regexp{
			re(`trips completed:?\s*([0-9][0-9,]*)`),
			re(`total trips:?\s*([0-9][0-9,]*)`),
		}},
		{Field: domain.FieldPeriod, Patterns: periodPatterns},
	},
	domain.DocTypeLyftSummary: {
		{Field: domain.FieldGrossIncome, Patterns: []*regexp.Regexp{
			amt(`(?:gross )?ride (?:earnings|payments)`),
		}},
		{Field: domain.FieldTips, Patterns: []*regexp.Regexp{amt(`\btips\b`)}},
		{Field: domain.FieldNetIncome, Patterns: []*regexp.Regexp{
			amt(`net (?:payout|earnings|income)`),
		}},
		{Field: domain.FieldServiceFee, Patterns: []*regexp.Regexp{
			amt(`(?:lyft )?(?:platform|service) fee`),
		}},
		{Field: domain.FieldGSTCollected, Patterns: []*regexp.Regexp{
			amt(`(?:gst/hst|gst|hst) collected`),
		}},
		{Field: domain.FieldDistanceKM, Patterns: distancePatterns},
		{Field: domain.FieldTripsCount, Patterns: []*regexp.Regexp{
			re(`rides completed:?\s*([0-9][0-9,]*)`),
			re(`total rides:?\s*([0-9][0-9,]*)`),
		}},
		{Field: domain.FieldPeriod, Patterns: periodPatterns},
	},
	domain.DocTypeEvaSummary: {
		{Field: domain.FieldGrossIncome, Patterns: []*regexp.Regexp{
			amt(`revenus de courses`),
			amt(`(?:gross )?ride (?:earnings|revenue)`),
		}},
		{Field: domain.FieldDeliveryIncome, Patterns: []*regexp.Regexp{
			amt(`revenus de livraison`),
			amt(`delivery (?:earnings|income)`),
		}},
		{Field: domain.FieldTips, Patterns: []*regexp.Regexp{
			amt(`pourboires`),
			amt(`\btips\b`),
		}},
		{Field: domain.FieldNetIncome, Patterns: []*regexp.Regexp{
			amt(`revenus nets`),
			amt(`net (?:payout|earnings|income)`),
		}},
		{Field: domain.FieldDistanceKM, Patterns: distancePatterns},
		{Field: domain.FieldPeriod, Patterns: periodPatterns},
	},
	domain.DocTypeFuelReceipt: {
		{Field: domain.FieldTotalAmount, Patterns: []*regexp.Regexp{
			amt(`(?:grand )?\btotal(?: amount| due)?\b`),
		}},
		{Field: domain.FieldGSTAmount, Patterns: []*regexp.Regexp{
			amt(`\b(?:tps/gst|gst|hst|tps)\b`),
		}},
		{Field: domain.FieldQSTAmount, Patterns: []*regexp.Regexp{
			amt(`\b(?:tvq/qst|qst|pst|tvq)\b`),
		}},
		{Field: domain.FieldLitres, Patterns: []*regexp.Regexp{
			re(`litres?:?\s*([0-9]+(?:\.[0-9]+)?)`),
			re(`([0-9]+(?:\.[0-9]+)?)\s*l(?:itres?)?\b`),
		}},
		{Field: domain.FieldPricePerLitre, Patterns: []*regexp.Regexp{
			amt(`(?:price per litre|prix au litre)`),
		}},
		{Field: domain.FieldDate, Patterns: datePatterns},
	},
	domain.DocTypeMaintenanceReceipt: {
		{Field: domain.FieldTotalAmount, Patterns: []*regexp.Regexp{
			amt(`(?:grand )?\btotal(?: amount| due)?\b`),
		}},
		{Field: domain.FieldGSTAmount, Patterns: []*regexp.Regexp{
			amt(`\b(?:tps/gst|gst|hst|tps)\b`),
		}},
		{Field: domain.FieldQSTAmount, Patterns: []*regexp.Regexp{
			amt(`\b(?:tvq/qst|qst|pst|tvq)\b`),
		}},
		{Field: domain.FieldOdometer, Patterns: []*regexp.Regexp{
			re(`odomet(?:er|re)(?: reading)?:?\s*([0-9][0-9,]*)`),
		}},
		{Field: domain.FieldDate, Patterns: datePatterns},
	},
	domain.DocTypeInsuranceReceipt: {
		{Field: domain.FieldTotalAmount, Patterns: []*regexp.Regexp{
			amt(`(?:grand )?\btotal(?: amount| due)?\b`),
			amt(`(?:annual |monthly )?premium`),
		}},
		{Field: domain.FieldPolicyNumber, Patterns: []*regexp.Regexp{
			re(`policy (?:no\.?|number):?\s*([A-Z0-9-]+)`),
		}},
		{Field: domain.FieldPeriod, Patterns: []*regexp.Regexp{
			re(`coverage period:?\s+` + periodWindowPat),
		}},
		{Field: domain.FieldDate, Patterns: datePatterns},
	},
	domain.DocTypeParkingReceipt: {
		{Field: domain.FieldTotalAmount, Patterns: []*regexp.Regexp{
			amt(`(?:grand )?\btotal(?: amount| due)?\b`),
		}},
		{Field: domain.FieldGSTAmount, Patterns: []*regexp.Regexp{
			amt(`\b(?:tps/gst|gst|hst|tps)\b`),
		}},
		{Field: domain.FieldDate, Patterns: datePatterns},
	},
	domain.DocTypePhoneReceipt: {
		{Field: domain.FieldTotalAmount, Patterns: []*regexp.Regexp{
			amt(`(?:\bamount due|\btotal(?: amount| due)?)\b`),
		}},
		{Field: domain.FieldPeriod, Patterns: []*regexp.Regexp{
			re(`billing period:?\s+` + periodWindowPat),
		}},
		{Field: domain.FieldDate, Patterns: datePatterns},
	},
	domain.DocTypeMealReceipt: {
		{Field: domain.FieldTotalAmount, Patterns: []*regexp.Regexp{
			amt(`(?:grand )?\btotal(?: amount| due)?\b`),
		}},
		{Field: domain.FieldSubtotal, Patterns: []*regexp.Regexp{
			amt(`\bsubtotal\b`),
		}},
		{Field: domain.FieldGSTAmount, Patterns: []*regexp.Regexp{
			amt(`\b(?:tps/gst|gst|hst|tps)\b`),
		}},
		{Field: domain.FieldQSTAmount, Patterns: []*regexp.Regexp{
			amt(`\b(?:tvq/qst|qst|pst|tvq)\b`),
		}},
		{Field: domain.FieldTipAmount, Patterns: []*regexp.Regexp{
			amt(`\b(?:tip|gratuity|pourboire)\b`),
		}},
		{Field: domain.FieldDate, Patterns: datePatterns},
	},
}
