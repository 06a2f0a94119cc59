package entities

// TemplateID names one concrete visual arrangement for a slide. The same ten
// ids drive both output formats; each renderer owns its own drawing of them.
type TemplateID string

const (
	TemplateHero         TemplateID = "hero"
	TemplateClosing      TemplateID = "closing"
	TemplateDivider      TemplateID = "divider"
	TemplateQuoteClassic TemplateID = "quote_classic"
	TemplateQuoteMinimal TemplateID = "quote_minimal"
	TemplateComparison   TemplateID = "comparison"
	TemplateStatColumns  TemplateID = "stat_columns"
	TemplateCardList     TemplateID = "card_list"
	TemplateAccentList   TemplateID = "accent_list"
	TemplateBandList     TemplateID = "band_list"
)

// GeneralRotation is the ordered cycle of general-purpose templates assigned
// to slides without a structurally fixed template.
func GeneralRotation() []TemplateID {
	return []TemplateID{TemplateCardList, TemplateAccentList, TemplateBandList}
}
