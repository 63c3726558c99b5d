package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClassificationResult is the classifier's verdict for one document.
type ClassificationResult struct {
	Type       DocumentType `json:"type"`
	Confidence int          `json:"confidence"` // 0-100
}

// ValidationResult is the validator's verdict for one document. Errors force
// IsValid to false; warnings only lower the confidence score.
type ValidationResult struct {
	IsValid         bool     `json:"is_valid"`
	Errors          []string `json:"errors"`
	Warnings        []string `json:"warnings"`
	ConfidenceScore int      `json:"confidence_score"` // 0-100
}

// ProcessedDocument is the combined output of one pipeline invocation.
type ProcessedDocument struct {
	ID             uuid.UUID            `json:"id"`
	Filename       string               `json:"filename,omitempty"`
	Classification ClassificationResult `json:"classification"`
	Fields         *FieldMap            `json:"fields"`
	Validation     ValidationResult     `json:"validation"`
	ProcessedAt    time.Time            `json:"processed_at"`
}
