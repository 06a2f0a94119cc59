// Package pptx renders decks into the editable presentation format by
// composing themed shape primitives. It shares slide semantics with the
// page renderer through the entity extraction helpers but owns its own
// drawing primitives: the two formats have incompatible positioning models.
package pptx

import (
	"bytes"
	"context"
	"fmt"

	gopresentation "github.com/VantageDataChat/GoPPT"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/ports"
)

type buildFunc func(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme, tmpl entities.TemplateID) error

// Renderer builds shape-composed presentations.
type Renderer struct {
	creator string
	build   buildFunc // replaceable seam for failure-path tests
}

// NewRenderer creates a shape renderer; creator is the application name
// stamped into document properties.
func NewRenderer(creator string) *Renderer {
	r := &Renderer{creator: creator}
	r.build = r.buildSlide
	return r
}

// Format implements ports.DeckRenderer.
func (r *Renderer) Format() string { return "pptx" }

// ContentType implements ports.DeckRenderer.
func (r *Renderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
}

// Render builds the full document. A builder failure on one slide is caught
// at the slide boundary and replaced with the generic fallback rendering;
// the rest of the deck still renders.
func (r *Renderer) Render(ctx context.Context, deck *entities.Deck, theme entities.ResolvedTheme, plan []entities.TemplateID, title string) (*ports.RenderResult, error) {
	if deck == nil || len(deck.Slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	p := gopresentation.New()
	p.GetLayout().SetLayout(gopresentation.LayoutScreen16x9)
	props := p.GetDocumentProperties()
	props.Title = title
	props.Creator = r.creator
	props.LastModifiedBy = r.creator

	var fallbacks []ports.SlideFallback
	for i := range deck.Slides {
		sl := &deck.Slides[i]
		tmpl := entities.TemplateBandList
		if i < len(plan) {
			tmpl = plan[i]
		}

		var slide *gopresentation.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		slide.SetName(fmt.Sprintf("Slide %d (%s)", i+1, sl.Type))

		if err := r.safeBuild(slide, sl, theme, tmpl); err != nil {
			r.buildFallback(slide, sl, theme)
			fallbacks = append(fallbacks, ports.SlideFallback{Index: i, Type: sl.Type, Reason: err.Error()})
		}
		if line := sl.SupportLine(); line != "" {
			slide.SetNotes(line)
		}
	}

	var buf bytes.Buffer
	if err := p.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serializing presentation: %w", err)
	}
	return &ports.RenderResult{Document: buf.Bytes(), Fallbacks: fallbacks}, nil
}

// safeBuild runs one builder, converting a panic into an error so a single
// malformed slide cannot abort the document.
func (r *Renderer) safeBuild(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme, tmpl entities.TemplateID) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("slide builder panicked: %v", rec)
		}
	}()
	return r.build(slide, sl, theme, tmpl)
}
