// Package builders provides fluent helpers for constructing deck entities
// in tests.
package builders

import (
	"fmt"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// DeckBuilder helps build Deck entities for testing.
type DeckBuilder struct {
	deck *entities.Deck
}

// NewDeckBuilder creates a new deck builder with a backfilled default theme
// and no slides.
func NewDeckBuilder() *DeckBuilder {
	deck := &entities.Deck{}
	deck.Theme.FillDefaults()
	return &DeckBuilder{deck: deck}
}

// WithTheme replaces the author theme.
func (b *DeckBuilder) WithTheme(theme entities.AuthorTheme) *DeckBuilder {
	b.deck.Theme = theme
	return b
}

// WithSlide appends one slide.
func (b *DeckBuilder) WithSlide(slide entities.Slide) *DeckBuilder {
	b.deck.Slides = append(b.deck.Slides, slide)
	return b
}

// WithTitleSlide appends a title slide.
func (b *DeckBuilder) WithTitleSlide(title, subtitle string) *DeckBuilder {
	return b.WithSlide(entities.Slide{
		Type:     entities.SlideTypeTitle,
		Title:    title,
		Subtitle: subtitle,
	})
}

// WithBulletSlide appends a bullets slide.
func (b *DeckBuilder) WithBulletSlide(heading string, bullets ...string) *DeckBuilder {
	return b.WithSlide(entities.Slide{
		Type:    entities.SlideTypeBullets,
		Heading: heading,
		Bullets: bullets,
	})
}

// WithSummarySlide appends a summary slide.
func (b *DeckBuilder) WithSummarySlide(heading string, takeaways ...string) *DeckBuilder {
	return b.WithSlide(entities.Slide{
		Type:      entities.SlideTypeSummary,
		Heading:   heading,
		Takeaways: takeaways,
	})
}

// Build returns the constructed deck.
func (b *DeckBuilder) Build() *entities.Deck {
	return b.deck
}

// MinimalDeck returns the smallest valid deck: a single title slide.
func MinimalDeck() *entities.Deck {
	return NewDeckBuilder().WithTitleSlide("Minimal", "").Build()
}

// FullDeck returns a deck exercising every slide type in order.
func FullDeck() *entities.Deck {
	b := NewDeckBuilder().WithTitleSlide("Full Deck", "every slide type")
	b.WithSlide(entities.Slide{Type: entities.SlideTypeSectionDivider, Heading: "Part One"})
	b.WithBulletSlide("Points", "one", "two", "three")
	b.WithSlide(entities.Slide{Type: entities.SlideTypeQuote, Quote: "Keep it simple", Attribution: "Anon"})
	b.WithSlide(entities.Slide{
		Type: entities.SlideTypeTwoColumn, Topic: "Tradeoffs",
		LeftTitle: "Pros", LeftItems: []string{"fast"},
		RightTitle: "Cons", RightItems: []string{"risky"},
	})
	b.WithSlide(entities.Slide{
		Type: entities.SlideTypeStatistics, Heading: "Numbers",
		Stats: []entities.StatPair{{Value: "3x", Label: "faster"}, {Value: "42%", Label: "less churn"}},
	})
	b.WithSlide(entities.Slide{
		Type: entities.SlideTypeTable, Heading: "Matrix",
		TableHeaders: []string{"A", "B"},
		TableRows:    [][]string{{"1", "2"}, {"3", "4"}},
	})
	b.WithSlide(entities.Slide{
		Type: entities.SlideTypeImagePlaceholder, Heading: "Diagram",
		ImageDescription: "system overview", ImageCaption: "fig 1",
	})
	return b.WithSummarySlide("Recap", "ship it").Build()
}

// LargeDeck returns a deck with n generated bullet slides between the
// bookends, for sizing and concurrency tests.
func LargeDeck(n int) *entities.Deck {
	b := NewDeckBuilder().WithTitleSlide("Large Deck", "")
	for i := 0; i < n; i++ {
		b.WithBulletSlide(fmt.Sprintf("Section %d", i+1), "alpha", "beta", "gamma")
	}
	return b.WithSummarySlide("Recap", "done").Build()
}
