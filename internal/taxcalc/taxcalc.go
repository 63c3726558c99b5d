// Package taxcalc estimates income tax from a validated field map. It
// consumes only numeric fields across the FieldMap boundary and never
// touches the pipeline internals. Bracket tables are data: updating a tax
// year means swapping tables, not logic.
package taxcalc

import (
	"fmt"

	"taxdoc/internal/domain"
)

// Province selects the provincial bracket table.
type Province string

const (
	ProvinceOntario Province = "ON"
	ProvinceQuebec  Province = "QC"
)

// Bracket is one marginal tax bracket. UpTo of 0 means no upper bound.
type Bracket struct {
	UpTo float64
	Rate float64
}

// 2024 federal brackets.
var federalBrackets = []Bracket{
	{UpTo: 55867, Rate: 0.15},
	{UpTo: 111733, Rate: 0.205},
	{UpTo: 173205, Rate: 0.26},
	{UpTo: 246752, Rate: 0.29},
	{UpTo: 0, Rate: 0.33},
}

// 2024 provincial brackets.
var provincialBrackets = map[Province][]Bracket{
	ProvinceOntario: {
		{UpTo: 51446, Rate: 0.0505},
		{UpTo: 102894, Rate: 0.0915},
		{UpTo: 150000, Rate: 0.1116},
		{UpTo: 220000, Rate: 0.1216},
		{UpTo: 0, Rate: 0.1316},
	},
	ProvinceQuebec: {
		{UpTo: 51780, Rate: 0.14},
		{UpTo: 103545, Rate: 0.19},
		{UpTo: 126000, Rate: 0.24},
		{UpTo: 0, Rate: 0.2575},
	},
}

// 2024 CPP/QPP self-employed parameters.
const (
	cppBasicExemption = 3500.0
	cppMaxEarnings    = 68500.0
	cppSelfRate       = 0.119
)

// Estimate is the result of one tax computation.
type Estimate struct {
	TaxableIncome   float64 `json:"taxable_income"`
	FederalTax      float64 `json:"federal_tax"`
	ProvincialTax   float64 `json:"provincial_tax"`
	CPPContribution float64 `json:"cpp_contribution"`
	TotalTax        float64 `json:"total_tax"`
}

// Compute estimates tax owing for the income in fields. Income is taken
// from the first present income field in priority order; expense receipts
// contribute nothing here and are expected to be aggregated by the caller.
func Compute(fields *domain.FieldMap, prov Province) (*Estimate, error) {
	brackets, ok := provincialBrackets[prov]
	if !ok {
		return nil, fmt.Errorf("taxcalc: unsupported province %q", prov)
	}

	income := incomeOf(fields)
	est := &Estimate{
		TaxableIncome:   income,
		FederalTax:      applyBrackets(income, federalBrackets),
		ProvincialTax:   applyBrackets(income, brackets),
		CPPContribution: selfEmployedCPP(income),
	}
	est.TotalTax = est.FederalTax + est.ProvincialTax + est.CPPContribution
	return est, nil
}

// incomeOf picks the taxable income figure from the field map.
func incomeOf(fields *domain.FieldMap) float64 {
	for _, name := range []string{
		domain.FieldGrossIncome,
		domain.FieldEmploymentIncome,
		domain.FieldSelfEmploymentIncome,
		domain.FieldOtherIncome,
	} {
		if n, ok := fields.Number(name); ok {
			return n
		}
	}
	return 0
}

func applyBrackets(income float64, brackets []Bracket) float64 {
	tax := 0.0
	lower := 0.0
	for _, b := range brackets {
		if b.UpTo == 0 || income <= b.UpTo {
			tax += (income - lower) * b.Rate
			return tax
		}
		tax += (b.UpTo - lower) * b.Rate
		lower = b.UpTo
	}
	return tax
}

func selfEmployedCPP(income float64) float64 {
	if income <= cppBasicExemption {
		return 0
	}
	pensionable := income
	if pensionable > cppMaxEarnings {
		pensionable = cppMaxEarnings
	}
	return (pensionable - cppBasicExemption) * cppSelfRate
}
