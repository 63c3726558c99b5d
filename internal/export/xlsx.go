// Package export writes processed documents to an XLSX summary workbook.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"taxdoc/internal/domain"
)

const sheetName = "Documents"

var headers = []string{
	"Filename",
	"Document Type",
	"Classification Confidence",
	"Valid",
	"Validation Confidence",
	"Errors",
	"Warnings",
	"Employment Income",
	"Self-Employment Income",
	"Gross Income",
	"Net Income",
	"Income Tax Deducted",
	"Total Amount",
	"Tax Year",
	"Processed At",
}

// WriteXLSX writes one row per processed document to w as an XLSX workbook.
func WriteXLSX(w io.Writer, docs []domain.ProcessedDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := f.SetSheetName(sheet, sheetName); err != nil {
		return fmt.Errorf("export: renaming sheet: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return fmt.Errorf("export: writing header: %w", err)
		}
	}

	for i, doc := range docs {
		r := i + 2
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, r)
			_ = f.SetCellValue(sheetName, cell, value)
		}

		set(1, doc.Filename)
		set(2, string(doc.Classification.Type))
		set(3, doc.Classification.Confidence)
		set(4, doc.Validation.IsValid)
		set(5, doc.Validation.ConfidenceScore)
		set(6, strings.Join(doc.Validation.Errors, "; "))
		set(7, strings.Join(doc.Validation.Warnings, "; "))
		setNumber(set, 8, doc.Fields, domain.FieldEmploymentIncome)
		setNumber(set, 9, doc.Fields, domain.FieldSelfEmploymentIncome)
		setNumber(set, 10, doc.Fields, domain.FieldGrossIncome)
		setNumber(set, 11, doc.Fields, domain.FieldNetIncome)
		setNumber(set, 12, doc.Fields, domain.FieldIncomeTaxDeducted)
		setNumber(set, 13, doc.Fields, domain.FieldTotalAmount)
		setText(set, 14, doc.Fields, domain.FieldTaxYear)
		set(15, doc.ProcessedAt.Format("2006-01-02 15:04:05"))
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: writing workbook: %w", err)
	}
	return nil
}

func setNumber(set func(int, any), col int, fields *domain.FieldMap, name string) {
	if fields == nil {
		return
	}
	if n, ok := fields.Number(name); ok {
		set(col, n)
	}
}

func setText(set func(int, any), col int, fields *domain.FieldMap, name string) {
	if fields == nil {
		return
	}
	if v, ok := fields.Get(name); ok {
		set(col, v.String())
	}
}
