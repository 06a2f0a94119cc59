package pdf

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/adapters/secondary/theme"
	"github.com/slidesmith/slidesmith/internal/domain/entities"
	"github.com/slidesmith/slidesmith/internal/domain/services"
)

func sampleDeck() *entities.Deck {
	deck := &entities.Deck{
		Slides: []entities.Slide{
			{Type: entities.SlideTypeTitle, Title: "Launch Plan", Subtitle: "Q3 review"},
			{Type: entities.SlideTypeBullets, Heading: "Goals", Bullets: []string{"grow", "retain", "expand"}},
			{Type: entities.SlideTypeQuote, Quote: "Make it simple", Attribution: "Someone"},
			{Type: entities.SlideTypeTwoColumn, Topic: "Tradeoffs", LeftTitle: "Pros", RightTitle: "Cons",
				LeftItems: []string{"fast"}, RightItems: []string{"risky"}},
			{Type: entities.SlideTypeStatistics, Heading: "Numbers",
				Stats: []entities.StatPair{{Value: "3x", Label: "faster"}, {Value: "42%"}}},
			{Type: entities.SlideTypeTable, Heading: "Matrix",
				TableHeaders: []string{"A", "B"}, TableRows: [][]string{{"1", "2"}, {"3", "4"}}},
			{Type: entities.SlideTypeImagePlaceholder, Heading: "Diagram",
				ImageDescription: "system overview", ImageCaption: "fig 1"},
			{Type: entities.SlideTypeSectionDivider, Heading: "Part Two"},
			{Type: entities.SlideTypeSummary, Heading: "Recap",
				Takeaways: []string{"ship"}, CallToAction: "Go build"},
		},
	}
	deck.Theme.FillDefaults()
	return deck
}

func TestRenderer_Render(t *testing.T) {
	t.Run("produces a document with one page per slide", func(t *testing.T) {
		deck := sampleDeck()
		r := NewRenderer("test-suite")
		resolved := theme.NewResolver().Resolve("midnight", deck.Theme)
		plan := services.NewLayoutDispatcher().Plan(deck)

		result, err := r.Render(context.Background(), deck, resolved, plan, "Launch Plan")
		require.NoError(t, err)
		require.Empty(t, result.Fallbacks)
		assert.True(t, bytes.HasPrefix(result.Document, []byte("%PDF-")))
		// One /Type /Pages tree entry lists every page.
		assert.Equal(t, len(deck.Slides), bytes.Count(result.Document, []byte("/Type /Page\n")))
	})

	t.Run("unicode content survives translation", func(t *testing.T) {
		deck := &entities.Deck{Slides: []entities.Slide{
			{Type: entities.SlideTypeTitle, Title: "Résumé — naïve"},
			{Type: entities.SlideTypeQuote, Quote: "“curly” quotes", Attribution: "Müller"},
			{Type: entities.SlideTypeSummary, Takeaways: []string{"café", "über"}},
		}}
		deck.Theme.FillDefaults()
		r := NewRenderer("test-suite")
		resolved := theme.NewResolver().Resolve("auto", deck.Theme)
		plan := services.NewLayoutDispatcher().Plan(deck)

		result, err := r.Render(context.Background(), deck, resolved, plan, "t")
		require.NoError(t, err)
		assert.Empty(t, result.Fallbacks)
	})

	t.Run("every theme preset renders", func(t *testing.T) {
		deck := sampleDeck()
		r := NewRenderer("test-suite")
		resolver := theme.NewResolver()
		plan := services.NewLayoutDispatcher().Plan(deck)
		for _, selector := range resolver.Selectors() {
			result, err := r.Render(context.Background(), deck, resolver.Resolve(selector, deck.Theme), plan, "t")
			require.NoError(t, err, selector)
			assert.Empty(t, result.Fallbacks, selector)
		}
	})

	t.Run("empty deck rejected", func(t *testing.T) {
		r := NewRenderer("test-suite")
		_, err := r.Render(context.Background(), nil, entities.ResolvedTheme{}, nil, "t")
		assert.Error(t, err)

		_, err = r.Render(context.Background(), &entities.Deck{}, entities.ResolvedTheme{}, nil, "t")
		assert.Error(t, err)
	})

	t.Run("layout failure falls back per page", func(t *testing.T) {
		deck := sampleDeck()
		r := NewRenderer("test-suite")
		r.layout = func(c *canvas, sl *entities.Slide, tmpl entities.TemplateID) error {
			if sl.Type == entities.SlideTypeStatistics {
				return errors.New("forced failure")
			}
			return r.layoutPage(c, sl, tmpl)
		}
		resolved := theme.NewResolver().Resolve("ocean", deck.Theme)
		plan := services.NewLayoutDispatcher().Plan(deck)

		result, err := r.Render(context.Background(), deck, resolved, plan, "t")
		require.NoError(t, err)
		require.Len(t, result.Fallbacks, 1)
		assert.Equal(t, 4, result.Fallbacks[0].Index)
		assert.Equal(t, entities.SlideTypeStatistics, result.Fallbacks[0].Type)
		assert.True(t, bytes.HasPrefix(result.Document, []byte("%PDF-")))
	})

	t.Run("layout panic is contained", func(t *testing.T) {
		deck := sampleDeck()
		r := NewRenderer("test-suite")
		r.layout = func(c *canvas, sl *entities.Slide, tmpl entities.TemplateID) error {
			if sl.Type == entities.SlideTypeTwoColumn {
				panic("layout exploded")
			}
			return r.layoutPage(c, sl, tmpl)
		}
		resolved := theme.NewResolver().Resolve("slate", deck.Theme)
		plan := services.NewLayoutDispatcher().Plan(deck)

		result, err := r.Render(context.Background(), deck, resolved, plan, "t")
		require.NoError(t, err)
		require.Len(t, result.Fallbacks, 1)
		assert.Contains(t, result.Fallbacks[0].Reason, "layout exploded")
	})
}

func TestRenderer_Format(t *testing.T) {
	r := NewRenderer("x")
	assert.Equal(t, "pdf", r.Format())
	assert.Equal(t, "application/pdf", r.ContentType())
}
