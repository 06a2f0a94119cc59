package ports

import (
	"context"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// SlideFallback records one slide the renderer had to substitute with its
// generic bulleted rendering.
type SlideFallback struct {
	Index  int
	Type   entities.SlideType
	Reason string
}

// RenderResult is a completed document plus per-slide fallback notes.
type RenderResult struct {
	Document  []byte
	Fallbacks []SlideFallback
}

// DeckRenderer renders a full deck with a resolved theme and a per-slide
// template plan into one binary document. A failing slide never fails the
// document: it is rendered with the generic fallback and recorded.
type DeckRenderer interface {
	Render(ctx context.Context, deck *entities.Deck, theme entities.ResolvedTheme, plan []entities.TemplateID, title string) (*RenderResult, error)

	// Format returns the output format identifier ("pptx" or "pdf").
	Format() string

	// ContentType returns the MIME type of the produced document.
	ContentType() string
}
