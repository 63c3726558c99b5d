// Package extract pulls typed fields out of classified document text using
// per-type declarative rule tables.
package extract

import (
	"fmt"

	"taxdoc/internal/domain"
	"taxdoc/internal/textnorm"
)

// Extract applies the rule table for t to text and returns the resulting
// field map. Types without a rule table (Unknown) yield an empty map. A type
// value outside the closed enumeration is a programming-contract violation
// and returns an error; malformed text never does.
func Extract(text string, t domain.DocumentType) (*domain.FieldMap, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("extract: %w: %q", domain.ErrUnknownDocumentType, t)
	}

	norm := textnorm.Normalize(text)
	fields := domain.NewFieldMap()

	for _, rule := range ruleTables[t] {
		for _, p := range rule.Patterns {
			m := p.FindStringSubmatch(norm)
			if m == nil {
				continue
			}
			// Committed to this match: take the first non-empty capture
			// group, or leave the field absent if every group is empty.
			if captured := firstNonEmptyGroup(m); captured != "" {
				fields.Set(rule.Field, coerceValue(captured))
			}
			break
		}
	}

	if t.IsPlatformSummary() {
		sumAlternateChannel(fields)
	}

	return fields, nil
}

func firstNonEmptyGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// sumAlternateChannel combines the two independently-located income
// sub-sections of a platform summary. When both the primary income field and
// the alternate-channel field were extracted, the primary is overwritten
// with their sum; the secondary stays retrievable under its own name. A
// single pattern cannot reliably sum two totals separated by arbitrary
// interleaving text, so locating and combining are deliberately split.
func sumAlternateChannel(fields *domain.FieldMap) {
	gross, okGross := fields.Number(domain.FieldGrossIncome)
	delivery, okDelivery := fields.Number(domain.FieldDeliveryIncome)
	if okGross && okDelivery {
		fields.Set(domain.FieldGrossIncome, domain.NumberValue(round2(gross+delivery)))
	}
}
