package services

import "github.com/slidesmith/slidesmith/internal/domain/entities"

// LayoutDispatcher assigns a visual template to each slide. Bookend slides
// and structurally constrained types get fixed templates; everything else
// round-robins through the general rotation so consecutive content slides
// never look identical.
type LayoutDispatcher struct {
	rotation []entities.TemplateID
}

// NewLayoutDispatcher creates a dispatcher with the standard rotation.
func NewLayoutDispatcher() *LayoutDispatcher {
	return &LayoutDispatcher{rotation: entities.GeneralRotation()}
}

// AssignTemplate picks the template for one slide. counter is the running
// occurrence count of non-bookend slides seen so far; the returned counter
// feeds the next call. Rules apply in order: bookends, then type-fixed
// templates, then the rotation.
func (d *LayoutDispatcher) AssignTemplate(index int, slide *entities.Slide, total int, counter int) (entities.TemplateID, int) {
	if index == 0 {
		return entities.TemplateHero, counter
	}
	if index == total-1 {
		return entities.TemplateClosing, counter
	}

	next := counter + 1
	switch slide.Type {
	case entities.SlideTypeSectionDivider:
		return entities.TemplateDivider, next
	case entities.SlideTypeQuote:
		if counter%2 == 0 {
			return entities.TemplateQuoteClassic, next
		}
		return entities.TemplateQuoteMinimal, next
	case entities.SlideTypeTwoColumn:
		return entities.TemplateComparison, next
	case entities.SlideTypeStatistics:
		return entities.TemplateStatColumns, next
	}
	return d.rotation[counter%len(d.rotation)], next
}

// Plan computes the full slide-index to template mapping for one deck.
// The plan is transient: computed once per render pass and never reused.
func (d *LayoutDispatcher) Plan(deck *entities.Deck) []entities.TemplateID {
	plan := make([]entities.TemplateID, len(deck.Slides))
	counter := 0
	for i := range deck.Slides {
		plan[i], counter = d.AssignTemplate(i, &deck.Slides[i], len(deck.Slides), counter)
	}
	return plan
}
