package builders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

func TestDeckBuilder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		deck := NewDeckBuilder().Build()
		assert.Empty(t, deck.Slides)
		assert.Equal(t, entities.DefaultPrimary, deck.Theme.Primary)
	})

	t.Run("custom theme and slides", func(t *testing.T) {
		deck := NewDeckBuilder().
			WithTheme(entities.AuthorTheme{Primary: "#123456"}).
			WithTitleSlide("T", "S").
			WithBulletSlide("H", "a", "b").
			WithSummarySlide("R", "x").
			Build()

		assert.Equal(t, "#123456", deck.Theme.Primary)
		require.Len(t, deck.Slides, 3)
		assert.Equal(t, entities.SlideTypeTitle, deck.Slides[0].Type)
		assert.Equal(t, []string{"a", "b"}, deck.Slides[1].Bullets)
		assert.Equal(t, entities.SlideTypeSummary, deck.Slides[2].Type)
	})

	t.Run("minimal deck helper", func(t *testing.T) {
		deck := MinimalDeck()
		require.Len(t, deck.Slides, 1)
		assert.Equal(t, "Minimal", deck.Slides[0].Title)
	})

	t.Run("full deck covers every slide type", func(t *testing.T) {
		deck := FullDeck()
		seen := map[entities.SlideType]bool{}
		for _, sl := range deck.Slides {
			seen[sl.Type] = true
		}
		for _, st := range entities.SlideTypes() {
			assert.True(t, seen[st], string(st))
		}
	})

	t.Run("large deck helper", func(t *testing.T) {
		deck := LargeDeck(50)
		assert.Len(t, deck.Slides, 52)
	})
}
