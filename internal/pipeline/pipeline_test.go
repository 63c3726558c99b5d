package pipeline_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdoc/internal/domain"
	"taxdoc/internal/pipeline"
)

const t4Text = `T4 Statement of Remuneration Paid
Tax year: 2024
Employer: Metro Logistics Inc
Box 14 Employment income: CA$52,345.67
Box 22 Income tax deducted: $8,120.40
Box 16 Employee's CPP contributions: $3,123.45
Box 18 Employee's EI premiums: $952.74`

const uberText = `Uber Weekly Summary for the period Jan 1 - Jan 7, 2024.
Gross Uber rides fare: CA$1,500.00
Uber Eats earnings: CA$500.00
Tips: CA$120.50
Online kilometers: 420 km
Net payout: CA$1,800.00
GST/HST collected: CA$95.00
Trips completed: 87`

func TestProcessT4(t *testing.T) {
	p := pipeline.NewProcessor()

	doc, err := p.Process(pipeline.Input{Filename: "t4_2024.pdf", Text: t4Text})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, doc.ID)
	assert.Equal(t, "t4_2024.pdf", doc.Filename)
	assert.Equal(t, domain.DocTypeT4, doc.Classification.Type)
	assert.Equal(t, 100, doc.Classification.Confidence)

	income, ok := doc.Fields.Number(domain.FieldEmploymentIncome)
	assert.True(t, ok)
	assert.Equal(t, 52345.67, income)

	assert.True(t, doc.Validation.IsValid)
	assert.Equal(t, 100, doc.Validation.ConfidenceScore)
	assert.False(t, doc.ProcessedAt.IsZero())
}

func TestProcessUberSummary(t *testing.T) {
	p := pipeline.NewProcessor()

	doc, err := p.Process(pipeline.Input{Filename: "uber_week1.txt", Text: uberText})
	require.NoError(t, err)

	assert.Equal(t, domain.DocTypeUberSummary, doc.Classification.Type)

	gross, ok := doc.Fields.Number(domain.FieldGrossIncome)
	assert.True(t, ok)
	assert.Equal(t, 2000.0, gross, "rides and delivery sections summed")

	assert.True(t, doc.Validation.IsValid)
}

func TestProcessZeroActivitySummary(t *testing.T) {
	p := pipeline.NewProcessor()

	text := `Uber Weekly Summary
Gross rides fare: $0.00
Tips: $0.00
Net payout: $0.00
Online kilometers: 0 km`

	doc, err := p.Process(pipeline.Input{Filename: "uber_quiet_week.txt", Text: text})
	require.NoError(t, err)

	assert.Equal(t, domain.DocTypeUberSummary, doc.Classification.Type)

	for _, name := range doc.Fields.Names() {
		if n, ok := doc.Fields.Number(name); ok {
			assert.Equal(t, 0.0, n, name)
		}
	}

	assert.True(t, doc.Validation.IsValid, "an inactive week is not an invalid document")
	assert.Empty(t, doc.Validation.Errors)
	assert.Len(t, doc.Validation.Warnings, 1)
}

func TestProcessUnrecognizedText(t *testing.T) {
	p := pipeline.NewProcessor()

	doc, err := p.Process(pipeline.Input{Text: "lorem ipsum dolor sit amet"})
	require.NoError(t, err, "unrecognized text is a result, not a failure")

	assert.Equal(t, domain.DocTypeUnknown, doc.Classification.Type)
	assert.Equal(t, 0, doc.Classification.Confidence)
	assert.Equal(t, 0, doc.Fields.Len())
	assert.True(t, doc.Validation.IsValid)
}

func TestProcessedDocumentJSON(t *testing.T) {
	p := pipeline.NewProcessor()

	doc, err := p.Process(pipeline.Input{Filename: "t4.pdf", Text: t4Text})
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var restored domain.ProcessedDocument
	restored.Fields = domain.NewFieldMap()
	require.NoError(t, json.Unmarshal(data, &restored))

	assert.Equal(t, doc.ID, restored.ID)
	assert.Equal(t, doc.Classification, restored.Classification)
	assert.Equal(t, doc.Fields.Names(), restored.Fields.Names(), "field order survives serialization")
}

func TestProcessBatch(t *testing.T) {
	p := pipeline.NewProcessor()

	inputs := []pipeline.Input{
		{Filename: "t4.pdf", Text: t4Text},
		{Filename: "uber.txt", Text: uberText},
		{Filename: "noise.txt", Text: "lorem ipsum"},
	}

	docs, err := p.ProcessBatch(context.Background(), inputs, 2)
	require.NoError(t, err)
	require.Len(t, docs, 3)

	t.Run("results mirror input order", func(t *testing.T) {
		assert.Equal(t, "t4.pdf", docs[0].Filename)
		assert.Equal(t, domain.DocTypeT4, docs[0].Classification.Type)
		assert.Equal(t, "uber.txt", docs[1].Filename)
		assert.Equal(t, domain.DocTypeUberSummary, docs[1].Classification.Type)
		assert.Equal(t, domain.DocTypeUnknown, docs[2].Classification.Type)
	})

	t.Run("ids are distinct", func(t *testing.T) {
		assert.NotEqual(t, docs[0].ID, docs[1].ID)
	})
}

func TestProcessBatchCanceled(t *testing.T) {
	p := pipeline.NewProcessor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.ProcessBatch(ctx, []pipeline.Input{{Text: t4Text}}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProcessBatchEmpty(t *testing.T) {
	p := pipeline.NewProcessor()
	docs, err := p.ProcessBatch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
