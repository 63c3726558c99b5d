package validate

import (
	"fmt"

	"taxdoc/internal/domain"
)

// Confidence penalties. Errors are weighted more heavily than warnings;
// the final score is clamped to [0, 100].
const (
	errorPenalty   = 25
	warningPenalty = 10
)

// Engine runs the applicable rules for a document type and aggregates the
// findings into a ValidationResult.
type Engine struct {
	registry *Registry
}

// NewEngine creates an Engine over a registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Default returns an Engine loaded with all built-in rules.
func Default() *Engine {
	reg := NewRegistry()
	for _, r := range AllBuiltinRules() {
		reg.Register(r)
	}
	return NewEngine(reg)
}

// Validate checks fields against the rules for t. Data-quality problems
// surface inside the result, never as an error; only a type outside the
// closed enumeration fails.
func (e *Engine) Validate(fields *domain.FieldMap, t domain.DocumentType) (*domain.ValidationResult, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("validate: %w: %q", domain.ErrUnknownDocumentType, t)
	}
	if fields == nil {
		fields = domain.NewFieldMap()
	}

	result := &domain.ValidationResult{
		IsValid:         true,
		Errors:          []string{},
		Warnings:        []string{},
		ConfidenceScore: 100,
	}

	for _, r := range e.registry.All() {
		if !r.AppliesTo(t) {
			continue
		}
		for _, msg := range r.Check(fields, t) {
			switch r.Severity() {
			case domain.ValidationSeverityError:
				result.Errors = append(result.Errors, msg)
				result.IsValid = false
				result.ConfidenceScore -= errorPenalty
			default:
				result.Warnings = append(result.Warnings, msg)
				result.ConfidenceScore -= warningPenalty
			}
		}
	}

	if result.ConfidenceScore < 0 {
		result.ConfidenceScore = 0
	}
	if result.ConfidenceScore > 100 {
		result.ConfidenceScore = 100
	}
	return result, nil
}
