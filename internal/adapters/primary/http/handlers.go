package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// generateRequest is the JSON body of a generation call. Deck carries the
// raw model output verbatim, fences and all; the parser handles repair.
type generateRequest struct {
	Deck  string `json:"deck"`
	Title string `json:"title,omitempty"`
	Theme string `json:"theme,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleGenerate renders the posted deck in the format named by the route
// and streams the binary document back.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	format := mux.Vars(r)["format"]

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request body: %w", err))
		return
	}
	if strings.TrimSpace(req.Deck) == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("request is missing deck text"))
		return
	}

	title := req.Title
	if title == "" {
		title = s.config.Generator.DefaultTitle
	}
	theme := req.Theme
	if theme == "" {
		theme = s.config.Generator.DefaultTheme
	}

	result, err := s.generator.Generate(r.Context(), format, req.Deck, title, theme)
	if err != nil {
		var malformed *entities.MalformedDeckError
		if errors.As(err, &malformed) {
			s.writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	contentType, err := s.generator.ContentType(format)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fileName(title, format)))
	w.Header().Set("X-Generation-ID", uuid.New().String())
	if len(result.Fallbacks) > 0 {
		indices := make([]string, len(result.Fallbacks))
		for i, fb := range result.Fallbacks {
			indices[i] = strconv.Itoa(fb.Index + 1)
		}
		w.Header().Set("X-Fallback-Slides", strings.Join(indices, ","))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Document); err != nil {
		s.logger.Error("writing %s document: %v", format, err)
	}
}

// handleThemes lists every accepted theme selector.
func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"themes":  s.generator.ValidThemeSelectors(),
		"default": s.config.Generator.DefaultTheme,
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encoding JSON response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed: %v", err)
	} else {
		s.logger.Warn("request rejected: %v", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// fileName derives a safe download name from the deck title.
func fileName(title, ext string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ', r == '-', r == '_':
			return '-'
		default:
			return -1
		}
	}, strings.TrimSpace(title))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "presentation"
	}
	return slug + "." + ext
}
