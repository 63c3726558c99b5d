package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdoc/internal/domain"
	"taxdoc/internal/extract"
)

func TestExtractT4(t *testing.T) {
	text := `T4 Statement of Remuneration Paid
Tax year: 2024
Employer: Metro Logistics Inc
Box 14 Employment income: CA$52,345.67
Box 22 Income tax deducted: $8,120.40
Box 16 Employee's CPP contributions: $3,123.45
Box 18 Employee's EI premiums: $952.74`

	fields, err := extract.Extract(text, domain.DocTypeT4)
	require.NoError(t, err)

	t.Run("amounts", func(t *testing.T) {
		n, ok := fields.Number(domain.FieldEmploymentIncome)
		assert.True(t, ok)
		assert.Equal(t, 52345.67, n)

		n, ok = fields.Number(domain.FieldIncomeTaxDeducted)
		assert.True(t, ok)
		assert.Equal(t, 8120.40, n)

		n, ok = fields.Number(domain.FieldCPPContributions)
		assert.True(t, ok)
		assert.Equal(t, 3123.45, n)

		n, ok = fields.Number(domain.FieldEIPremiums)
		assert.True(t, ok)
		assert.Equal(t, 952.74, n)
	})

	t.Run("tax year is a year, not an amount", func(t *testing.T) {
		v, ok := fields.Get(domain.FieldTaxYear)
		require.True(t, ok)
		assert.Equal(t, domain.ValueYear, v.Kind)
		assert.Equal(t, "2024", v.Text)
	})

	t.Run("employer name", func(t *testing.T) {
		s, ok := fields.Text(domain.FieldEmployerName)
		assert.True(t, ok)
		assert.Equal(t, "Metro Logistics Inc", s)
	})

	t.Run("field order follows the rule table", func(t *testing.T) {
		assert.Equal(t, []string{
			domain.FieldEmploymentIncome,
			domain.FieldIncomeTaxDeducted,
			domain.FieldCPPContributions,
			domain.FieldEIPremiums,
			domain.FieldTaxYear,
			domain.FieldEmployerName,
		}, fields.Names())
	})
}

func TestExtractT4BoxNumberFallback(t *testing.T) {
	// Box-number phrasing without the long field labels.
	text := "T4 2024 Box 14 52,000.00 Box 22 7,800.00"
	fields, err := extract.Extract(text, domain.DocTypeT4)
	require.NoError(t, err)

	n, ok := fields.Number(domain.FieldEmploymentIncome)
	assert.True(t, ok)
	assert.Equal(t, 52000.0, n)

	n, ok = fields.Number(domain.FieldIncomeTaxDeducted)
	assert.True(t, ok)
	assert.Equal(t, 7800.0, n)
}

func TestExtractUberSummary(t *testing.T) {
	text := `Uber Weekly Summary for the period Jan 1 - Jan 7, 2024.
Gross Uber rides fare: CA$1,500.00
Uber Eats earnings: CA$500.00
Tips: CA$120.50
Online kilometers: 420 km
Net payout: CA$1,800.00
GST/HST collected: CA$95.00
Trips completed: 87`

	fields, err := extract.Extract(text, domain.DocTypeUberSummary)
	require.NoError(t, err)

	t.Run("rides and delivery sections are summed into gross", func(t *testing.T) {
		gross, ok := fields.Number(domain.FieldGrossIncome)
		assert.True(t, ok)
		assert.Equal(t, 2000.0, gross)
	})

	t.Run("delivery stays retrievable on its own", func(t *testing.T) {
		delivery, ok := fields.Number(domain.FieldDeliveryIncome)
		assert.True(t, ok)
		assert.Equal(t, 500.0, delivery)
	})

	t.Run("platform phrasing for distance", func(t *testing.T) {
		km, ok := fields.Number(domain.FieldDistanceKM)
		assert.True(t, ok)
		assert.Equal(t, 420.0, km)
	})

	t.Run("remaining fields", func(t *testing.T) {
		tips, _ := fields.Number(domain.FieldTips)
		assert.Equal(t, 120.50, tips)

		net, _ := fields.Number(domain.FieldNetIncome)
		assert.Equal(t, 1800.0, net)

		gst, _ := fields.Number(domain.FieldGSTCollected)
		assert.Equal(t, 95.0, gst)

		trips, _ := fields.Number(domain.FieldTripsCount)
		assert.Equal(t, 87.0, trips)
	})

	t.Run("period captured as text", func(t *testing.T) {
		v, ok := fields.Get(domain.FieldPeriod)
		require.True(t, ok)
		assert.Equal(t, domain.ValueText, v.Kind)
		assert.Equal(t, "Jan 1 - Jan 7, 2024", v.Text)
	})
}

func TestExtractNoDeliverySection(t *testing.T) {
	// Without a delivery line the gross amount must stay untouched.
	text := "Uber Weekly Summary Gross rides fare: $1,250.00 Net payout: $1,000.00"
	fields, err := extract.Extract(text, domain.DocTypeUberSummary)
	require.NoError(t, err)

	gross, ok := fields.Number(domain.FieldGrossIncome)
	assert.True(t, ok)
	assert.Equal(t, 1250.0, gross)
	assert.False(t, fields.Has(domain.FieldDeliveryIncome))
}

func TestExtractBareYearPeriod(t *testing.T) {
	t.Run("year is never read as an amount", func(t *testing.T) {
		fields, err := extract.Extract("Tax summary for the period 2024", domain.DocTypeUberSummary)
		require.NoError(t, err)

		v, ok := fields.Get(domain.FieldPeriod)
		require.True(t, ok)
		assert.Equal(t, domain.ValueYear, v.Kind)
		assert.Equal(t, "2024", v.Text)

		for _, name := range fields.Names() {
			if n, ok := fields.Number(name); ok {
				assert.NotEqual(t, 2024.0, n, name)
			}
		}
	})

	t.Run("alongside amounts", func(t *testing.T) {
		fields, err := extract.Extract("Uber Annual Summary for the period 2024 Gross rides fare: $48,000.00", domain.DocTypeUberSummary)
		require.NoError(t, err)

		v, ok := fields.Get(domain.FieldPeriod)
		require.True(t, ok)
		assert.Equal(t, domain.ValueYear, v.Kind)

		gross, _ := fields.Number(domain.FieldGrossIncome)
		assert.Equal(t, 48000.0, gross)
	})
}

func TestExtractFuelReceipt(t *testing.T) {
	text := `Petro-Canada Self Serve Pump #4
Date: 2024-03-15
Litres: 45.230
Price per litre: $1.659
GST: $3.75
Total: $78.80`

	fields, err := extract.Extract(text, domain.DocTypeFuelReceipt)
	require.NoError(t, err)

	total, ok := fields.Number(domain.FieldTotalAmount)
	assert.True(t, ok)
	assert.Equal(t, 78.80, total)

	t.Run("values round to two decimals", func(t *testing.T) {
		litres, _ := fields.Number(domain.FieldLitres)
		assert.Equal(t, 45.23, litres)

		price, _ := fields.Number(domain.FieldPricePerLitre)
		assert.Equal(t, 1.66, price)
	})

	t.Run("date preserved verbatim", func(t *testing.T) {
		v, ok := fields.Get(domain.FieldDate)
		require.True(t, ok)
		assert.Equal(t, domain.ValueDate, v.Kind)
		assert.Equal(t, "2024-03-15", v.Text)
	})

	gst, _ := fields.Number(domain.FieldGSTAmount)
	assert.Equal(t, 3.75, gst)
}

func TestExtractMealReceipt(t *testing.T) {
	// Subtotal precedes Total; the total pattern must not match inside
	// "Subtotal".
	text := "Maple Diner Guests: 2 Subtotal: $42.00 GST: $2.10 QST: $4.19 Tip: $8.00 Total: $56.29 Date: 2024-05-02"
	fields, err := extract.Extract(text, domain.DocTypeMealReceipt)
	require.NoError(t, err)

	total, _ := fields.Number(domain.FieldTotalAmount)
	assert.Equal(t, 56.29, total)

	subtotal, _ := fields.Number(domain.FieldSubtotal)
	assert.Equal(t, 42.0, subtotal)

	qst, _ := fields.Number(domain.FieldQSTAmount)
	assert.Equal(t, 4.19, qst)

	tip, _ := fields.Number(domain.FieldTipAmount)
	assert.Equal(t, 8.0, tip)
}

func TestExtractReleve1(t *testing.T) {
	text := "Relevé 1 Année d'imposition: 2024 Revenus d'emploi: 48000.00 Impôt du Québec retenu: 7200.00"
	fields, err := extract.Extract(text, domain.DocTypeReleve1)
	require.NoError(t, err)

	income, ok := fields.Number(domain.FieldEmploymentIncome)
	assert.True(t, ok)
	assert.Equal(t, 48000.0, income)

	qcTax, ok := fields.Number(domain.FieldQuebecTaxDeducted)
	assert.True(t, ok)
	assert.Equal(t, 7200.0, qcTax)

	v, ok := fields.Get(domain.FieldTaxYear)
	require.True(t, ok)
	assert.Equal(t, domain.ValueYear, v.Kind)
}

func TestExtractMissingFieldsAreAbsent(t *testing.T) {
	fields, err := extract.Extract("T4 slip with no recognizable amounts", domain.DocTypeT4)
	require.NoError(t, err)
	assert.Equal(t, 0, fields.Len())
}

func TestExtractUnknownType(t *testing.T) {
	t.Run("unknown yields an empty map", func(t *testing.T) {
		fields, err := extract.Extract("anything at all", domain.DocTypeUnknown)
		require.NoError(t, err)
		assert.Equal(t, 0, fields.Len())
	})

	t.Run("type outside the enumeration fails", func(t *testing.T) {
		_, err := extract.Extract("anything", domain.DocumentType("bogus"))
		assert.ErrorIs(t, err, domain.ErrUnknownDocumentType)
	})
}

func TestCoercion(t *testing.T) {
	t.Run("comma separators stripped", func(t *testing.T) {
		fields, err := extract.Extract("Total: $152,345.67", domain.DocTypeParkingReceipt)
		require.NoError(t, err)
		n, ok := fields.Number(domain.FieldTotalAmount)
		assert.True(t, ok)
		assert.Equal(t, 152345.67, n)
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		fields, err := extract.Extract("Total: $45.999", domain.DocTypeParkingReceipt)
		require.NoError(t, err)
		n, _ := fields.Number(domain.FieldTotalAmount)
		assert.Equal(t, 46.0, n)
	})

	t.Run("ca dollar prefix accepted", func(t *testing.T) {
		fields, err := extract.Extract("Total: CA$12.00", domain.DocTypeParkingReceipt)
		require.NoError(t, err)
		n, _ := fields.Number(domain.FieldTotalAmount)
		assert.Equal(t, 12.0, n)
	})
}

func TestExtractFirstAlternativeWins(t *testing.T) {
	// Both the label phrasing and the box phrasing are present; the engine
	// must commit to the first alternative and ignore the second.
	text := "Employment income: 50,000.00 Box 14 60,000.00"
	fields, err := extract.Extract(text, domain.DocTypeT4)
	require.NoError(t, err)

	n, _ := fields.Number(domain.FieldEmploymentIncome)
	assert.Equal(t, 50000.0, n)
}
