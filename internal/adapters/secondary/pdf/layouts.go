package pdf

import (
	"fmt"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// layoutPage dispatches one slide to the layout for its assigned template.
// Layouts read slide data only through the extraction helpers so both output
// formats agree on slide semantics.
func (r *Renderer) layoutPage(c *canvas, sl *entities.Slide, tmpl entities.TemplateID) error {
	switch tmpl {
	case entities.TemplateHero:
		return r.layoutHero(c, sl)
	case entities.TemplateClosing:
		return r.layoutClosing(c, sl)
	case entities.TemplateDivider:
		return r.layoutDivider(c, sl)
	case entities.TemplateQuoteClassic:
		return r.layoutQuoteClassic(c, sl)
	case entities.TemplateQuoteMinimal:
		return r.layoutQuoteMinimal(c, sl)
	case entities.TemplateComparison:
		return r.layoutComparison(c, sl)
	case entities.TemplateStatColumns:
		return r.layoutStatColumns(c, sl)
	case entities.TemplateCardList, entities.TemplateAccentList, entities.TemplateBandList:
		switch sl.Type {
		case entities.SlideTypeTable:
			return r.layoutTable(c, sl, tmpl)
		case entities.SlideTypeImagePlaceholder:
			return r.layoutImagePlaceholder(c, sl, tmpl)
		default:
			return r.layoutList(c, sl, tmpl)
		}
	default:
		return fmt.Errorf("no layout for template %q", tmpl)
	}
}

// layoutHero renders the opening page: full dark surface, oversized centered
// title, supporting line, and a short accent rule.
func (r *Renderer) layoutHero(c *canvas, sl *entities.Slide) error {
	c.fillPage(c.theme.DarkBackground)
	c.icon(pageW/2, 38, 8, sl, c.theme.Accent)

	if title := sl.DisplayTitle(); title != "" {
		c.centered(64, 26, title, c.headingFont(), "B", 44, c.theme.LightText)
	}
	c.rect(pageW/2-28, 106, 56, 1.8, c.theme.Accent)
	if line := sl.SupportLine(); line != "" {
		c.centered(115, 14, line, c.bodyFont(), "", 20, c.theme.Secondary)
	}
	return nil
}

// layoutClosing renders the final page: dark surface, heading, the takeaway
// list centered, and the call-to-action in accent color.
func (r *Renderer) layoutClosing(c *canvas, sl *entities.Slide) error {
	c.fillPage(c.theme.DarkBackground)

	if title := sl.DisplayTitle(); title != "" {
		c.centered(24, 18, title, c.headingFont(), "B", 34, c.theme.LightText)
	}
	c.rect(pageW/2-28, 51, 56, 1.5, c.theme.Accent)

	y := 66.0
	for _, item := range capped(sl.Items(), 6) {
		c.centered(y, 11, item, c.bodyFont(), "", 18, c.theme.LightText)
		y += 13.5
	}
	if cta := sl.SupportLine(); cta != "" {
		c.centered(157, 12, cta, c.bodyFont(), "B", 20, c.theme.Accent)
	}
	return nil
}

// layoutDivider renders the section break: centered marker and title flanked
// by thin rules on the dark surface.
func (r *Renderer) layoutDivider(c *canvas, sl *entities.Slide) error {
	c.fillPage(c.theme.DarkBackground)

	c.icon(pageW/2, 60, 7, sl, c.theme.Accent)
	if title := sl.DisplayTitle(); title != "" {
		c.centered(78, 20, title, c.headingFont(), "B", 34, c.theme.LightText)
	}
	c.rect(61, 117, 86, 1, c.theme.Secondary)
	c.rect(pageW-147, 117, 86, 1, c.theme.Secondary)

	if line := sl.SupportLine(); line != "" {
		c.centered(124, 11, line, c.bodyFont(), "I", 16, c.theme.MutedText)
	}
	return nil
}

// layoutQuoteClassic renders a quote on a white card over the dark surface,
// attribution bottom-right.
func (r *Renderer) layoutQuoteClassic(c *canvas, sl *entities.Slide) error {
	c.fillPage(c.theme.DarkBackground)
	c.card(37, 34, pageW-74, 116)

	quote := sl.Quote
	if quote == "" {
		quote = sl.SupportLine()
	}
	if quote != "" {
		c.multiText(54, 56, pageW-108, "“"+quote+"”", c.headingFont(), "I", 24, c.theme.DarkText, "C")
	}
	if sl.Attribution != "" {
		c.text(54, 124, pageW-108, 10, "— "+sl.Attribution, c.bodyFont(), "", 15, c.theme.MutedText, "R")
	}
	return nil
}

// layoutQuoteMinimal renders the alternate quote arrangement: an oversized
// quote mark and left-aligned text straight on the dark surface.
func (r *Renderer) layoutQuoteMinimal(c *canvas, sl *entities.Slide) error {
	c.fillPage(c.theme.DarkBackground)

	c.text(24, 10, 52, 44, "“", c.headingFont(), "B", 96, c.theme.Accent, "L")

	quote := sl.Quote
	if quote == "" {
		quote = sl.SupportLine()
	}
	if quote != "" {
		c.multiText(32, 62, pageW-64, quote, c.headingFont(), "I", 28, c.theme.LightText, "L")
	}
	if sl.Attribution != "" {
		c.text(32, 140, pageW-64, 10, "— "+sl.Attribution, c.bodyFont(), "", 16, c.theme.Secondary, "L")
	}
	return nil
}

// layoutComparison renders two parallel cards with independent column titles
// and item lists.
func (r *Renderer) layoutComparison(c *canvas, sl *entities.Slide) error {
	c.fillPage(c.theme.LightBackground)
	c.headerBand(sl.DisplayTitle())

	colW := (contentW - 13) / 2
	r.comparisonColumn(c, marginX, colW, sl.LeftTitle, sl.LeftItems)
	r.comparisonColumn(c, marginX+colW+13, colW, sl.RightTitle, sl.RightItems)
	return nil
}

func (r *Renderer) comparisonColumn(c *canvas, x, w float64, title string, items []string) {
	c.card(x, contentTop, w, 121)
	if title != "" {
		c.text(x+8, contentTop+6, w-16, 10, title, c.headingFont(), "B", 18, c.theme.Primary, "C")
	}
	if vs := capped(items, 6); len(vs) > 0 {
		c.bullets(x+9, contentTop+26, w-18, 3.5, vs, 14, c.theme.DarkText, c.theme.Accent)
	}
}

// layoutStatColumns renders the statistics page as filled columns, one per
// stat pair, value over label. Column text color follows the luminance of
// the column fill so light author palettes stay legible.
func (r *Renderer) layoutStatColumns(c *canvas, sl *entities.Slide) error {
	c.fillPage(c.theme.LightBackground)
	c.headerBand(sl.DisplayTitle())

	stats := sl.Stats
	if len(stats) > 4 {
		stats = stats[:4]
	}
	if len(stats) == 0 {
		// Statistics slide without stat pairs degrades to its generic list.
		return r.layoutList(c, sl, entities.TemplateBandList)
	}

	gap := 11.0
	colW := (contentW - gap*float64(len(stats)-1)) / float64(len(stats))
	fills := []string{c.theme.Primary, c.theme.Secondary}
	for i, st := range stats {
		x := marginX + float64(i)*(colW+gap)
		fill := fills[i%len(fills)]
		c.setFill(fill)
		c.doc.RoundedRect(x, contentTop+8, colW, 99, 3, "1234", "F")

		textHex := c.textOn(fill)
		c.text(x+4, contentTop+33, colW-8, 18, st.Value, c.headingFont(), "B", 34, textHex, "C")
		if st.Label != "" {
			c.multiText(x+4, contentTop+66, colW-8, st.Label, c.bodyFont(), "", 14, textHex, "C")
		}
	}
	return nil
}

// layoutTable renders tabular slides as a drawn grid; the rotation template
// varies header treatment so consecutive tables differ.
func (r *Renderer) layoutTable(c *canvas, sl *entities.Slide, tmpl entities.TemplateID) error {
	c.fillPage(c.theme.LightBackground)
	c.headerBand(sl.DisplayTitle())

	cols := len(sl.TableHeaders)
	for _, row := range sl.TableRows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 || len(sl.TableRows) == 0 && len(sl.TableHeaders) == 0 {
		return r.layoutList(c, sl, tmpl)
	}

	headerFill := c.theme.Primary
	if tmpl == entities.TemplateAccentList {
		headerFill = c.theme.Secondary
	}

	colW := contentW / float64(cols)
	rowH := 13.0
	y := contentTop + 5
	c.setDraw(entities.Lighten(c.theme.MutedText, 0.5))
	c.doc.SetLineWidth(0.25)

	if len(sl.TableHeaders) > 0 {
		c.rect(marginX, y, contentW, rowH, headerFill)
		for i := 0; i < cols; i++ {
			text := ""
			if i < len(sl.TableHeaders) {
				text = sl.TableHeaders[i]
			}
			c.text(marginX+float64(i)*colW+3, y, colW-6, rowH, text, c.bodyFont(), "B", 13, c.textOn(headerFill), "L")
		}
		y += rowH
	}
	for ri, row := range sl.TableRows {
		if y+rowH > pageH-14 {
			break
		}
		if tmpl == entities.TemplateCardList && ri%2 == 1 {
			c.rect(marginX, y, contentW, rowH, entities.Lighten(c.theme.LightBackground, 0.4))
		}
		for i := 0; i < cols; i++ {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			c.text(marginX+float64(i)*colW+3, y, colW-6, rowH, text, c.bodyFont(), "", 12, c.theme.DarkText, "L")
		}
		c.doc.Line(marginX, y+rowH, marginX+contentW, y+rowH)
		y += rowH
	}
	return nil
}

// layoutImagePlaceholder renders the reserved-image page: a dashed frame with
// the marker, description, and caption.
func (r *Renderer) layoutImagePlaceholder(c *canvas, sl *entities.Slide, tmpl entities.TemplateID) error {
	c.fillPage(c.theme.LightBackground)
	c.headerBand(sl.DisplayTitle())

	frameX, frameW := marginX+41.0, contentW-82.0
	if tmpl == entities.TemplateAccentList {
		frameX, frameW = marginX, contentW*0.55
	}
	c.setFill(entities.Lighten(c.theme.LightBackground, 0.35))
	c.setDraw(c.theme.MutedText)
	c.doc.SetLineWidth(0.5)
	c.doc.SetDashPattern([]float64{2.5, 2}, 0)
	c.doc.RoundedRect(frameX, contentTop+4, frameW, 86, 3, "1234", "FD")
	c.doc.SetDashPattern([]float64{}, 0)

	c.icon(frameX+frameW/2, contentTop+36, 9, sl, c.theme.MutedText)
	if sl.ImageDescription != "" {
		c.multiText(frameX+8, contentTop+58, frameW-16, sl.ImageDescription, c.bodyFont(), "I", 13, c.theme.MutedText, "C")
	}
	if sl.ImageCaption != "" {
		c.centered(contentTop+96, 9, sl.ImageCaption, c.bodyFont(), "", 14, c.theme.DarkText)
	}
	return nil
}

// layoutList renders general list content in the rotation variant assigned by
// the dispatcher: card grid, accent-bar rows, or plain banded bullets.
func (r *Renderer) layoutList(c *canvas, sl *entities.Slide, tmpl entities.TemplateID) error {
	c.fillPage(c.theme.LightBackground)
	c.headerBand(sl.DisplayTitle())
	items := sl.Items()

	switch tmpl {
	case entities.TemplateCardList:
		items = capped(items, 6)
		cardW := (contentW - 10) / 2
		for i, item := range items {
			x := marginX + float64(i%2)*(cardW+10)
			y := contentTop + float64(i/2)*41
			c.card(x, y, cardW, 36)
			c.multiText(x+8, y+9, cardW-16, item, c.bodyFont(), "", 14, c.theme.DarkText, "L")
		}
	case entities.TemplateAccentList:
		items = capped(items, 7)
		for i, item := range items {
			y := contentTop + 4 + float64(i)*17.3
			c.accentBar(marginX, y, 10.7)
			c.text(marginX+8, y-1, contentW-8, 13, item, c.bodyFont(), "", 16, c.theme.DarkText, "L")
		}
	default: // band_list
		if len(items) > 0 {
			c.bullets(marginX+4, contentTop+5, contentW-8, 4.5, capped(items, 8), 16, c.theme.DarkText, c.theme.Accent)
		}
		if line := sl.SupportLine(); line != "" {
			c.text(marginX, 166, contentW, 9, line, c.bodyFont(), "I", 13, c.theme.MutedText, "L")
		}
	}
	return nil
}

// layoutFallback is the generic single-column bulleted rendering substituted
// when a specific layout fails. It first repaints the page so the failed
// attempt never shows through.
func (r *Renderer) layoutFallback(c *canvas, sl *entities.Slide) {
	c.fillPage(c.theme.LightBackground)

	title := sl.DisplayTitle()
	if title == "" {
		title = string(sl.Type)
	}
	c.headerBand(title)

	lines := sl.FieldDump()
	if len(lines) == 0 {
		lines = []string{"(no slide content)"}
	}
	c.bullets(marginX+4, contentTop+5, contentW-8, 3.5, capped(lines, 10), 14, c.theme.DarkText, c.theme.MutedText)
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
