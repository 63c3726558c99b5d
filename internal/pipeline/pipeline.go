// Package pipeline chains the classifier, extractor, and validator into a
// single document-processing invocation. Every component is a pure function
// over immutable rule tables, so a Processor is safe for concurrent use.
package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"taxdoc/internal/classify"
	"taxdoc/internal/domain"
	"taxdoc/internal/extract"
	"taxdoc/internal/validate"
)

// Input is one document to process: already-extracted UTF-8 text plus an
// optional filename hint for classification tie-breaking.
type Input struct {
	Filename string `json:"filename"`
	Text     string `json:"text"`
}

// Processor runs the classify → extract → validate pipeline.
type Processor struct {
	engine *validate.Engine
}

// NewProcessor creates a Processor with the built-in validation rules.
func NewProcessor() *Processor {
	return &Processor{engine: validate.Default()}
}

// Process runs the full pipeline over one document. Unrecognized text
// classifies to Unknown and extracts to an empty field map; an error here
// indicates a programming bug, not a data-quality issue.
func (p *Processor) Process(in Input) (*domain.ProcessedDocument, error) {
	cls := classify.Classify(in.Text, in.Filename)

	fields, err := extract.Extract(in.Text, cls.Type)
	if err != nil {
		return nil, fmt.Errorf("pipeline: extracting fields: %w", err)
	}

	validation, err := p.engine.Validate(fields, cls.Type)
	if err != nil {
		return nil, fmt.Errorf("pipeline: validating fields: %w", err)
	}

	return &domain.ProcessedDocument{
		ID:             uuid.New(),
		Filename:       in.Filename,
		Classification: cls,
		Fields:         fields,
		Validation:     *validation,
		ProcessedAt:    time.Now().UTC(),
	}, nil
}
