package handler

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"taxdoc/internal/classify"
	"taxdoc/internal/domain"
	"taxdoc/internal/pipeline"
	"taxdoc/internal/port"
	"taxdoc/internal/taxcalc"
)

// DocumentHandler handles document processing endpoints.
type DocumentHandler struct {
	processor        *pipeline.Processor
	history          port.ProcessingHistoryRepository
	batchConcurrency int
	maxBatchSize     int
}

// NewDocumentHandler creates a new DocumentHandler. The history repository
// may be nil, in which case results are not persisted.
func NewDocumentHandler(processor *pipeline.Processor, history port.ProcessingHistoryRepository, batchConcurrency, maxBatchSize int) *DocumentHandler {
	return &DocumentHandler{
		processor:        processor,
		history:          history,
		batchConcurrency: batchConcurrency,
		maxBatchSize:     maxBatchSize,
	}
}

type processRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text" binding:"required"`
}

// Process handles POST /api/v1/documents/process
func (h *DocumentHandler) Process(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		HandleError(c, domain.ErrEmptyText)
		return
	}

	doc, err := h.processor.Process(pipeline.Input{Filename: req.Filename, Text: req.Text})
	if err != nil {
		HandleError(c, err)
		return
	}

	h.record(c, doc)
	RespondOK(c, doc)
}

// Classify handles POST /api/v1/documents/classify
func (h *DocumentHandler) Classify(c *gin.Context) {
	var req processRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		HandleError(c, domain.ErrEmptyText)
		return
	}

	RespondOK(c, classify.Classify(req.Text, req.Filename))
}

type batchRequest struct {
	Documents []processRequest `json:"documents" binding:"required"`
}

// Batch handles POST /api/v1/documents/batch
func (h *DocumentHandler) Batch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "documents array is required")
		return
	}
	if len(req.Documents) == 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "documents array is empty")
		return
	}
	if len(req.Documents) > h.maxBatchSize {
		HandleError(c, domain.ErrBatchTooLarge)
		return
	}

	inputs := make([]pipeline.Input, 0, len(req.Documents))
	for _, d := range req.Documents {
		inputs = append(inputs, pipeline.Input{Filename: d.Filename, Text: d.Text})
	}

	docs, err := h.processor.ProcessBatch(c.Request.Context(), inputs, h.batchConcurrency)
	if err != nil {
		HandleError(c, err)
		return
	}

	for _, doc := range docs {
		h.record(c, doc)
	}
	RespondOK(c, docs)
}

type estimateRequest struct {
	Filename string `json:"filename"`
	Text     string `json:"text" binding:"required"`
	Province string `json:"province"`
}

// Estimate handles POST /api/v1/documents/estimate
func (h *DocumentHandler) Estimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		HandleError(c, domain.ErrEmptyText)
		return
	}

	prov := taxcalc.Province(strings.ToUpper(req.Province))
	if prov == "" {
		prov = taxcalc.ProvinceOntario
	}

	doc, err := h.processor.Process(pipeline.Input{Filename: req.Filename, Text: req.Text})
	if err != nil {
		HandleError(c, err)
		return
	}

	est, err := taxcalc.Compute(doc.Fields, prov)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"document": doc, "estimate": est})
}

// History handles GET /api/v1/documents/history
func (h *DocumentHandler) History(c *gin.Context) {
	if h.history == nil {
		RespondError(c, http.StatusServiceUnavailable, "HISTORY_DISABLED", "processing history is not configured")
		return
	}

	offset, limit := parsePagination(c)
	docs, total, err := h.history.List(c.Request.Context(), limit, offset)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// HistoryByID handles GET /api/v1/documents/history/:id
func (h *DocumentHandler) HistoryByID(c *gin.Context) {
	if h.history == nil {
		RespondError(c, http.StatusServiceUnavailable, "HISTORY_DISABLED", "processing history is not configured")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.history.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// record persists a processed document when a history repository is
// configured. Persistence failures are logged, not surfaced; the processing
// result is still valid.
func (h *DocumentHandler) record(c *gin.Context, doc *domain.ProcessedDocument) {
	if h.history == nil {
		return
	}
	if err := h.history.Create(c.Request.Context(), doc); err != nil {
		log.Printf("[history] recording document %s: %v", doc.ID, err)
	}
}

// parsePagination extracts offset and limit from query params with defaults.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
