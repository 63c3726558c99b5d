package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdoc/internal/domain"
	"taxdoc/internal/handler"
	"taxdoc/internal/pipeline"
)

func newDocumentHandler() *handler.DocumentHandler {
	gin.SetMode(gin.TestMode)
	return handler.NewDocumentHandler(pipeline.NewProcessor(), nil, 4, 100)
}

func postJSON(t *testing.T, h gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/", bytes.NewReader(data))
	c.Request.Header.Set("Content-Type", "application/json")

	h(c)
	return w
}

const t4Text = "T4 Statement of Remuneration Paid Tax year: 2024 Employment income: CA$52,345.67"

func TestDocumentHandler_Process(t *testing.T) {
	h := newDocumentHandler()

	w := postJSON(t, h.Process, gin.H{"filename": "t4.pdf", "text": t4Text})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]interface{})
	cls := data["classification"].(map[string]interface{})
	assert.Equal(t, string(domain.DocTypeT4), cls["type"])
}

func TestDocumentHandler_Process_EmptyText(t *testing.T) {
	h := newDocumentHandler()

	t.Run("missing text field", func(t *testing.T) {
		w := postJSON(t, h.Process, gin.H{"filename": "t4.pdf"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("whitespace only", func(t *testing.T) {
		w := postJSON(t, h.Process, gin.H{"text": "   \n  "})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp handler.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "EMPTY_TEXT", resp.Error.Code)
	})
}

func TestDocumentHandler_Classify(t *testing.T) {
	h := newDocumentHandler()

	w := postJSON(t, h.Classify, gin.H{"text": t4Text})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, string(domain.DocTypeT4), data["type"])
}

func TestDocumentHandler_Batch(t *testing.T) {
	h := newDocumentHandler()

	t.Run("processes in input order", func(t *testing.T) {
		w := postJSON(t, h.Batch, gin.H{"documents": []gin.H{
			{"filename": "a.txt", "text": t4Text},
			{"filename": "b.txt", "text": "lorem ipsum"},
		}})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp handler.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		docs := resp.Data.([]interface{})
		require.Len(t, docs, 2)
		first := docs[0].(map[string]interface{})
		assert.Equal(t, "a.txt", first["filename"])
	})

	t.Run("empty batch rejected", func(t *testing.T) {
		w := postJSON(t, h.Batch, gin.H{"documents": []gin.H{}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized batch rejected", func(t *testing.T) {
		small := handler.NewDocumentHandler(pipeline.NewProcessor(), nil, 4, 1)
		w := postJSON(t, small.Batch, gin.H{"documents": []gin.H{
			{"text": "one"}, {"text": "two"},
		}})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp handler.APIResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "BATCH_TOO_LARGE", resp.Error.Code)
	})
}

func TestDocumentHandler_Estimate(t *testing.T) {
	h := newDocumentHandler()

	w := postJSON(t, h.Estimate, gin.H{"text": t4Text, "province": "on"})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]interface{})
	est := data["estimate"].(map[string]interface{})
	assert.Equal(t, 52345.67, est["taxable_income"])
}

func TestDocumentHandler_HistoryDisabled(t *testing.T) {
	h := newDocumentHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/history", http.NoBody)

	h.History(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestMapDomainError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrEmptyText, http.StatusBadRequest, "EMPTY_TEXT"},
		{domain.ErrUnknownDocumentType, http.StatusBadRequest, "UNKNOWN_DOCUMENT_TYPE"},
		{domain.ErrBatchTooLarge, http.StatusBadRequest, "BATCH_TOO_LARGE"},
		{assert.AnError, http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		status, code, _ := handler.MapDomainError(tc.err)
		assert.Equal(t, tc.status, status)
		assert.Equal(t, tc.code, code)
	}
}
