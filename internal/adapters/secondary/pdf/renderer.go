package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/ports"
)

type layoutFunc func(c *canvas, sl *entities.Slide, tmpl entities.TemplateID) error

// Renderer builds fixed-page documents.
type Renderer struct {
	creator string
	layout  layoutFunc // replaceable seam for failure-path tests
}

// NewRenderer creates a page renderer; creator is the application name
// stamped into document metadata.
func NewRenderer(creator string) *Renderer {
	r := &Renderer{creator: creator}
	r.layout = r.layoutPage
	return r
}

// Format implements ports.DeckRenderer.
func (r *Renderer) Format() string { return "pdf" }

// ContentType implements ports.DeckRenderer.
func (r *Renderer) ContentType() string { return "application/pdf" }

// Render builds the full document, one page per slide. A layout failure on
// one page is caught at the page boundary and replaced with the generic
// fallback rendering; the rest of the deck still renders.
func (r *Renderer) Render(ctx context.Context, deck *entities.Deck, theme entities.ResolvedTheme, plan []entities.TemplateID, title string) (*ports.RenderResult, error) {
	if deck == nil || len(deck.Slides) == 0 {
		return nil, fmt.Errorf("deck has no slides")
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: pageW, Ht: pageH},
	})
	doc.SetTitle(title, true)
	doc.SetCreator(r.creator, true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)

	c := &canvas{
		doc:   doc,
		tr:    doc.UnicodeTranslatorFromDescriptor(""),
		theme: theme,
	}

	var fallbacks []ports.SlideFallback
	for i := range deck.Slides {
		sl := &deck.Slides[i]
		tmpl := entities.TemplateBandList
		if i < len(plan) {
			tmpl = plan[i]
		}

		doc.AddPage()
		if err := r.safeLayout(c, sl, tmpl); err != nil {
			r.layoutFallback(c, sl)
			fallbacks = append(fallbacks, ports.SlideFallback{Index: i, Type: sl.Type, Reason: err.Error()})
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("serializing document: %w", err)
	}
	return &ports.RenderResult{Document: buf.Bytes(), Fallbacks: fallbacks}, nil
}

// safeLayout runs one layout, converting a panic into an error so a single
// malformed slide cannot abort the document.
func (r *Renderer) safeLayout(c *canvas, sl *entities.Slide, tmpl entities.TemplateID) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page layout panicked: %v", rec)
		}
	}()
	if err := r.layout(c, sl, tmpl); err != nil {
		return err
	}
	// gofpdf reports drawing errors lazily and they are sticky; capture at
	// the page boundary and clear so the fallback can still draw.
	if doerr := c.doc.Error(); doerr != nil {
		c.doc.ClearError()
		return doerr
	}
	return nil
}
