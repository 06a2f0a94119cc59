package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

func deckOf(types ...entities.SlideType) *entities.Deck {
	slides := make([]entities.Slide, len(types))
	for i, st := range types {
		slides[i] = entities.Slide{Type: st}
	}
	return &entities.Deck{Slides: slides}
}

func TestLayoutDispatcher_Plan(t *testing.T) {
	d := NewLayoutDispatcher()

	t.Run("bookends are fixed", func(t *testing.T) {
		plan := d.Plan(deckOf(
			entities.SlideTypeTitle,
			entities.SlideTypeBullets,
			entities.SlideTypeSummary,
		))
		require.Len(t, plan, 3)
		assert.Equal(t, entities.TemplateHero, plan[0])
		assert.Equal(t, entities.TemplateClosing, plan[2])
	})

	t.Run("first slide is hero regardless of type", func(t *testing.T) {
		plan := d.Plan(deckOf(entities.SlideTypeQuote, entities.SlideTypeBullets, entities.SlideTypeBullets))
		assert.Equal(t, entities.TemplateHero, plan[0])
	})

	t.Run("single slide deck is hero", func(t *testing.T) {
		plan := d.Plan(deckOf(entities.SlideTypeBullets))
		assert.Equal(t, []entities.TemplateID{entities.TemplateHero}, plan)
	})

	t.Run("type-fixed templates", func(t *testing.T) {
		plan := d.Plan(deckOf(
			entities.SlideTypeTitle,
			entities.SlideTypeSectionDivider,
			entities.SlideTypeTwoColumn,
			entities.SlideTypeStatistics,
			entities.SlideTypeSummary,
		))
		assert.Equal(t, entities.TemplateDivider, plan[1])
		assert.Equal(t, entities.TemplateComparison, plan[2])
		assert.Equal(t, entities.TemplateStatColumns, plan[3])
	})

	t.Run("adjacent quotes alternate variants", func(t *testing.T) {
		plan := d.Plan(deckOf(
			entities.SlideTypeTitle,
			entities.SlideTypeQuote,
			entities.SlideTypeQuote,
			entities.SlideTypeQuote,
			entities.SlideTypeSummary,
		))
		assert.Equal(t, entities.TemplateQuoteClassic, plan[1])
		assert.Equal(t, entities.TemplateQuoteMinimal, plan[2])
		assert.Equal(t, entities.TemplateQuoteClassic, plan[3])
	})

	t.Run("general slides cycle the rotation", func(t *testing.T) {
		plan := d.Plan(deckOf(
			entities.SlideTypeTitle,
			entities.SlideTypeBullets,
			entities.SlideTypeTable,
			entities.SlideTypeImagePlaceholder,
			entities.SlideTypeBullets,
			entities.SlideTypeSummary,
		))
		rotation := entities.GeneralRotation()
		assert.Equal(t, rotation[0], plan[1])
		assert.Equal(t, rotation[1], plan[2])
		assert.Equal(t, rotation[2], plan[3])
		assert.Equal(t, rotation[0], plan[4])
	})

	t.Run("fixed types advance the rotation counter", func(t *testing.T) {
		// A divider between two bullets slides still moves the cycle along.
		plan := d.Plan(deckOf(
			entities.SlideTypeTitle,
			entities.SlideTypeBullets,
			entities.SlideTypeSectionDivider,
			entities.SlideTypeBullets,
			entities.SlideTypeSummary,
		))
		rotation := entities.GeneralRotation()
		assert.Equal(t, rotation[0], plan[1])
		assert.Equal(t, rotation[2], plan[3])
	})

	t.Run("plan is deterministic", func(t *testing.T) {
		deck := deckOf(
			entities.SlideTypeTitle,
			entities.SlideTypeQuote,
			entities.SlideTypeBullets,
			entities.SlideTypeSummary,
		)
		assert.Equal(t, d.Plan(deck), d.Plan(deck))
	})
}
