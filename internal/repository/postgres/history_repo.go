package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taxdoc/internal/domain"
	"taxdoc/internal/port"
)

type historyRepo struct {
	db *sqlx.DB
}

// NewHistoryRepo creates a new PostgreSQL-backed ProcessingHistoryRepository.
func NewHistoryRepo(db *sqlx.DB) port.ProcessingHistoryRepository {
	return &historyRepo{db: db}
}

// historyRow is the flat database shape of a processed document. Extracted
// fields and validation messages are stored as JSONB.
type historyRow struct {
	ID                       uuid.UUID `db:"id"`
	Filename                 string    `db:"filename"`
	DocumentType             string    `db:"document_type"`
	ClassificationConfidence int       `db:"classification_confidence"`
	Fields                   []byte    `db:"fields"`
	IsValid                  bool      `db:"is_valid"`
	Errors                   []byte    `db:"errors"`
	Warnings                 []byte    `db:"warnings"`
	ValidationConfidence     int       `db:"validation_confidence"`
	CreatedAt                time.Time `db:"created_at"`
}

func toRow(doc *domain.ProcessedDocument) (*historyRow, error) {
	fieldsJSON, err := json.Marshal(doc.Fields)
	if err != nil {
		return nil, fmt.Errorf("marshaling fields: %w", err)
	}
	errsJSON, err := json.Marshal(doc.Validation.Errors)
	if err != nil {
		return nil, fmt.Errorf("marshaling errors: %w", err)
	}
	warnsJSON, err := json.Marshal(doc.Validation.Warnings)
	if err != nil {
		return nil, fmt.Errorf("marshaling warnings: %w", err)
	}
	return &historyRow{
		ID:                       doc.ID,
		Filename:                 doc.Filename,
		DocumentType:             string(doc.Classification.Type),
		ClassificationConfidence: doc.Classification.Confidence,
		Fields:                   fieldsJSON,
		IsValid:                  doc.Validation.IsValid,
		Errors:                   errsJSON,
		Warnings:                 warnsJSON,
		ValidationConfidence:     doc.Validation.ConfidenceScore,
		CreatedAt:                doc.ProcessedAt,
	}, nil
}

func (r *historyRow) toDomain() (*domain.ProcessedDocument, error) {
	fields := domain.NewFieldMap()
	if len(r.Fields) > 0 {
		if err := json.Unmarshal(r.Fields, fields); err != nil {
			return nil, fmt.Errorf("unmarshaling fields: %w", err)
		}
	}
	var errs, warns []string
	if len(r.Errors) > 0 {
		if err := json.Unmarshal(r.Errors, &errs); err != nil {
			return nil, fmt.Errorf("unmarshaling errors: %w", err)
		}
	}
	if len(r.Warnings) > 0 {
		if err := json.Unmarshal(r.Warnings, &warns); err != nil {
			return nil, fmt.Errorf("unmarshaling warnings: %w", err)
		}
	}
	return &domain.ProcessedDocument{
		ID:       r.ID,
		Filename: r.Filename,
		Classification: domain.ClassificationResult{
			Type:       domain.DocumentType(r.DocumentType),
			Confidence: r.ClassificationConfidence,
		},
		Fields: fields,
		Validation: domain.ValidationResult{
			IsValid:         r.IsValid,
			Errors:          errs,
			Warnings:        warns,
			ConfidenceScore: r.ValidationConfidence,
		},
		ProcessedAt: r.CreatedAt,
	}, nil
}

func (r *historyRepo) Create(ctx context.Context, doc *domain.ProcessedDocument) error {
	row, err := toRow(doc)
	if err != nil {
		return fmt.Errorf("historyRepo.Create: %w", err)
	}
	_, err = r.db.NamedExecContext(ctx,
		`INSERT INTO processing_history (
			id, filename, document_type, classification_confidence,
			fields, is_valid, errors, warnings, validation_confidence, created_at
		) VALUES (
			:id, :filename, :document_type, :classification_confidence,
			:fields, :is_valid, :errors, :warnings, :validation_confidence, :created_at
		)`, row)
	if err != nil {
		return fmt.Errorf("historyRepo.Create: %w", err)
	}
	return nil
}

func (r *historyRepo) List(ctx context.Context, limit, offset int) ([]domain.ProcessedDocument, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM processing_history"); err != nil {
		return nil, 0, fmt.Errorf("historyRepo.List count: %w", err)
	}

	var rows []historyRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM processing_history
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("historyRepo.List: %w", err)
	}

	docs := make([]domain.ProcessedDocument, 0, len(rows))
	for i := range rows {
		doc, err := rows[i].toDomain()
		if err != nil {
			return nil, 0, fmt.Errorf("historyRepo.List row %s: %w", rows[i].ID, err)
		}
		docs = append(docs, *doc)
	}
	return docs, total, nil
}

func (r *historyRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProcessedDocument, error) {
	var row historyRow
	err := r.db.GetContext(ctx, &row,
		"SELECT * FROM processing_history WHERE id = $1", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("historyRepo.GetByID: %w", err)
	}
	return row.toDomain()
}
