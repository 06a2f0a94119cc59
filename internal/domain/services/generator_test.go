package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/ports"
)

type stubParser struct {
	deck *entities.Deck
	err  error
}

func (p *stubParser) Parse(raw string) (*entities.Deck, error) {
	return p.deck, p.err
}

type stubResolver struct{}

func (stubResolver) Resolve(selector string, author entities.AuthorTheme) entities.ResolvedTheme {
	return entities.ResolvedTheme{Name: selector}
}

func (stubResolver) Selectors() []string { return []string{"auto", "midnight"} }

type stubRenderer struct {
	format    string
	result    *ports.RenderResult
	err       error
	lastPlan  []entities.TemplateID
	lastTheme entities.ResolvedTheme
	lastTitle string
}

func (r *stubRenderer) Render(ctx context.Context, deck *entities.Deck, theme entities.ResolvedTheme, plan []entities.TemplateID, title string) (*ports.RenderResult, error) {
	r.lastPlan = plan
	r.lastTheme = theme
	r.lastTitle = title
	return r.result, r.err
}

func (r *stubRenderer) Format() string      { return r.format }
func (r *stubRenderer) ContentType() string { return "application/x-" + r.format }

func twoSlideDeck() *entities.Deck {
	return &entities.Deck{Slides: []entities.Slide{
		{Type: entities.SlideTypeTitle},
		{Type: entities.SlideTypeSummary},
	}}
}

func TestGeneratorService_Generate(t *testing.T) {
	t.Run("happy path wires parse, resolve, plan, render", func(t *testing.T) {
		renderer := &stubRenderer{
			format: "pptx",
			result: &ports.RenderResult{Document: []byte("doc")},
		}
		svc := NewGeneratorService(&stubParser{deck: twoSlideDeck()}, stubResolver{}, nil, renderer)

		result, err := svc.GeneratePPTX(context.Background(), "raw", "My Talk", "midnight")
		require.NoError(t, err)
		assert.Equal(t, []byte("doc"), result.Document)
		assert.Equal(t, "My Talk", renderer.lastTitle)
		assert.Equal(t, "midnight", renderer.lastTheme.Name)
		require.Len(t, renderer.lastPlan, 2)
		assert.Equal(t, entities.TemplateHero, renderer.lastPlan[0])
		assert.Equal(t, entities.TemplateClosing, renderer.lastPlan[1])
	})

	t.Run("unknown format", func(t *testing.T) {
		svc := NewGeneratorService(&stubParser{deck: twoSlideDeck()}, stubResolver{}, nil)
		_, err := svc.Generate(context.Background(), "docx", "raw", "t", "auto")
		assert.ErrorContains(t, err, "unknown output format")
	})

	t.Run("parser error passes through untouched", func(t *testing.T) {
		parseErr := entities.NewMalformedDeckError("deck text is not valid JSON", errors.New("boom"))
		renderer := &stubRenderer{format: "pdf", result: &ports.RenderResult{Document: []byte("x")}}
		svc := NewGeneratorService(&stubParser{err: parseErr}, stubResolver{}, nil, renderer)

		_, err := svc.GeneratePDF(context.Background(), "raw", "t", "auto")
		var malformed *entities.MalformedDeckError
		assert.ErrorAs(t, err, &malformed)
	})

	t.Run("renderer error is wrapped with format", func(t *testing.T) {
		renderer := &stubRenderer{format: "pptx", err: errors.New("broken")}
		svc := NewGeneratorService(&stubParser{deck: twoSlideDeck()}, stubResolver{}, nil, renderer)

		_, err := svc.GeneratePPTX(context.Background(), "raw", "t", "auto")
		assert.ErrorContains(t, err, "rendering pptx document")
	})

	t.Run("empty document rejected", func(t *testing.T) {
		renderer := &stubRenderer{format: "pptx", result: &ports.RenderResult{}}
		svc := NewGeneratorService(&stubParser{deck: twoSlideDeck()}, stubResolver{}, nil, renderer)

		_, err := svc.GeneratePPTX(context.Background(), "raw", "t", "auto")
		assert.ErrorContains(t, err, "empty document")
	})

	t.Run("fallbacks do not fail the pass", func(t *testing.T) {
		renderer := &stubRenderer{
			format: "pdf",
			result: &ports.RenderResult{
				Document:  []byte("doc"),
				Fallbacks: []ports.SlideFallback{{Index: 1, Type: entities.SlideTypeQuote, Reason: "x"}},
			},
		}
		svc := NewGeneratorService(&stubParser{deck: twoSlideDeck()}, stubResolver{}, nil, renderer)

		result, err := svc.GeneratePDF(context.Background(), "raw", "t", "auto")
		require.NoError(t, err)
		assert.Len(t, result.Fallbacks, 1)
	})
}

func TestGeneratorService_ContentType(t *testing.T) {
	svc := NewGeneratorService(&stubParser{}, stubResolver{}, nil,
		&stubRenderer{format: "pptx"}, &stubRenderer{format: "pdf"})

	ct, err := svc.ContentType("pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/x-pdf", ct)

	_, err = svc.ContentType("html")
	assert.Error(t, err)
}

func TestGeneratorService_ValidThemeSelectors(t *testing.T) {
	svc := NewGeneratorService(&stubParser{}, stubResolver{}, nil)
	assert.Equal(t, []string{"auto", "midnight"}, svc.ValidThemeSelectors())
}
