package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/adapters/secondary/config"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/parser"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/pdf"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/pptx"
	"github.com/slidesmith/slidesmith/internal/adapters/secondary/theme"
	"github.com/slidesmith/slidesmith/internal/domain/services"
)

const validDeck = `{
  "theme": {"primary_color": "#223344"},
  "slides": [
    {"slide_type": "title", "title": "API Test"},
    {"slide_type": "bullets", "heading": "Points", "bullets": ["one", "two"]},
    {"slide_type": "summary", "takeaways": ["done"]}
  ]
}`

func testHandler(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.GetDefaultConfig()
	generator := services.NewGeneratorService(
		parser.NewDeckParser(),
		theme.NewResolver(),
		services.NewLogger(false, "error"),
		pptx.NewRenderer(cfg.Generator.Creator),
		pdf.NewRenderer(cfg.Generator.Creator),
	)
	return NewServer(generator, cfg).setupRoutes()
}

func postGenerate(t *testing.T, handler http.Handler, format string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/generate/"+format, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleGenerate(t *testing.T) {
	handler := testHandler(t)

	t.Run("pptx", func(t *testing.T) {
		rec := postGenerate(t, handler, "pptx", generateRequest{Deck: validDeck, Title: "API Test"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "presentationml")
		assert.Equal(t, `attachment; filename="api-test.pptx"`, rec.Header().Get("Content-Disposition"))
		assert.NotEmpty(t, rec.Header().Get("X-Generation-ID"))
		assert.Empty(t, rec.Header().Get("X-Fallback-Slides"))
		// Zip magic.
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("PK")))
	})

	t.Run("pdf", func(t *testing.T) {
		rec := postGenerate(t, handler, "pdf", generateRequest{Deck: validDeck, Theme: "ocean"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")))
	})

	t.Run("fenced deck with damage still renders", func(t *testing.T) {
		damaged := "```json\n" + `{
  "theme": {},
  "slides": [
    {"slide_type": "title", "title": "Recovery"},
    {"slide_type": "quote", "quote": "it "just" works"},
    {"slide_type": "summary"}
  ]
}` + "\n```"
		rec := postGenerate(t, handler, "pdf", generateRequest{Deck: damaged})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown format is not routed", func(t *testing.T) {
		rec := postGenerate(t, handler, "docx", generateRequest{Deck: validDeck})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed deck yields 422", func(t *testing.T) {
		rec := postGenerate(t, handler, "pptx", generateRequest{Deck: "not json at all"})
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "malformed deck")
	})

	t.Run("missing deck yields 400", func(t *testing.T) {
		rec := postGenerate(t, handler, "pptx", generateRequest{Title: "no deck"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid body yields 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/generate/pptx", bytes.NewReader([]byte("{")))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GET not allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/generate/pptx", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestHandleThemes(t *testing.T) {
	handler := testHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/api/themes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Themes  []string `json:"themes"`
		Default string   `json:"default"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Themes, 11)
	assert.Equal(t, "auto", resp.Themes[0])
	assert.Equal(t, "auto", resp.Default)
}

func TestHandleHealth(t *testing.T) {
	handler := testHandler(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestFileName(t *testing.T) {
	tests := []struct {
		title string
		ext   string
		want  string
	}{
		{"API Test", "pptx", "api-test.pptx"},
		{"Q3 Review: Growth!", "pdf", "q3-review-growth.pdf"},
		{"___", "pptx", "presentation.pptx"},
		{"", "pdf", "presentation.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, fileName(tt.title, tt.ext))
		})
	}
}
