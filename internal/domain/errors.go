package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnknownDocumentType = errors.New("document type not in the closed enumeration")
	ErrEmptyText           = errors.New("document text is empty")
	ErrBatchTooLarge       = errors.New("batch exceeds maximum allowed size")
)
