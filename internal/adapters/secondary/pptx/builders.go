package pptx

import (
	"fmt"

	gopresentation "github.com/VantageDataChat/GoPPT"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// buildSlide dispatches one slide to the builder for its assigned template.
// Builders read slide data only through the extraction helpers so both output
// formats agree on slide semantics.
func (r *Renderer) buildSlide(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme, tmpl entities.TemplateID) error {
	switch tmpl {
	case entities.TemplateHero:
		return r.buildHero(slide, sl, theme)
	case entities.TemplateClosing:
		return r.buildClosing(slide, sl, theme)
	case entities.TemplateDivider:
		return r.buildDivider(slide, sl, theme)
	case entities.TemplateQuoteClassic:
		return r.buildQuoteClassic(slide, sl, theme)
	case entities.TemplateQuoteMinimal:
		return r.buildQuoteMinimal(slide, sl, theme)
	case entities.TemplateComparison:
		return r.buildComparison(slide, sl, theme)
	case entities.TemplateStatColumns:
		return r.buildStatColumns(slide, sl, theme)
	case entities.TemplateCardList, entities.TemplateAccentList, entities.TemplateBandList:
		switch sl.Type {
		case entities.SlideTypeTable:
			return r.buildTable(slide, sl, theme, tmpl)
		case entities.SlideTypeImagePlaceholder:
			return r.buildImagePlaceholder(slide, sl, theme, tmpl)
		default:
			return r.buildList(slide, sl, theme, tmpl)
		}
	default:
		return fmt.Errorf("no builder for template %q", tmpl)
	}
}

// buildHero renders the opening slide: full dark surface, oversized centered
// title, supporting line, and a short accent rule.
func (r *Renderer) buildHero(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme) error {
	slide.SetBackground(solidFill(theme.DarkBackground))
	centeredText(slide, 1.05, 0.9, sl.Glyph(), theme.BodyFont, 44, theme.Accent, false, false)

	if title := sl.DisplayTitle(); title != "" {
		centeredText(slide, 2.25, 1.7, title, theme.HeadingFont, 44, theme.LightText, true, false)
	}
	addRect(slide, pageW/2-1.1, 4.15, 2.2, 0.07, theme.Accent)
	if line := sl.SupportLine(); line != "" {
		centeredText(slide, 4.5, 0.9, line, theme.BodyFont, 20, theme.Secondary, false, false)
	}
	return nil
}

// buildClosing renders the final slide: dark surface, heading, the takeaway
// list centered, and the call-to-action in accent color.
func (r *Renderer) buildClosing(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme) error {
	slide.SetBackground(solidFill(theme.DarkBackground))

	if title := sl.DisplayTitle(); title != "" {
		centeredText(slide, 0.85, 1.1, title, theme.HeadingFont, 34, theme.LightText, true, false)
	}
	addRect(slide, pageW/2-1.1, 2.0, 2.2, 0.06, theme.Accent)

	if items := sl.Items(); len(items) > 0 {
		rt := textBox(slide, 2.4, 2.5, pageW-4.8, 3.2)
		rt.SetTextAnchor(gopresentation.TextAnchorMiddle)
		addPlainLines(rt, capped(items, 6), theme.BodyFont, 18, theme.LightText, true)
	}
	if cta := sl.SupportLine(); cta != "" {
		centeredText(slide, 6.1, 0.8, cta, theme.BodyFont, 20, theme.Accent, true, false)
	}
	return nil
}

// buildDivider renders the section break: centered glyph and title flanked by
// thin rules on the dark surface.
func (r *Renderer) buildDivider(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme) error {
	slide.SetBackground(solidFill(theme.DarkBackground))

	centeredText(slide, 2.0, 0.9, sl.Glyph(), theme.BodyFont, 40, theme.Accent, false, false)
	if title := sl.DisplayTitle(); title != "" {
		centeredText(slide, 3.05, 1.3, title, theme.HeadingFont, 34, theme.LightText, true, false)
	}
	addRect(slide, 2.4, 4.6, 3.4, 0.04, theme.Secondary)
	addRect(slide, pageW-5.8, 4.6, 3.4, 0.04, theme.Secondary)

	if line := sl.SupportLine(); line != "" {
		centeredText(slide, 4.85, 0.8, line, theme.BodyFont, 16, theme.MutedText, false, true)
	}
	return nil
}

// buildQuoteClassic renders a quote on a white card panel over the dark
// surface, attribution bottom-right.
func (r *Renderer) buildQuoteClassic(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme) error {
	slide.SetBackground(solidFill(theme.DarkBackground))
	addCardPanel(slide, 1.45, 1.35, pageW-2.9, 4.55, theme)

	quote := sl.Quote
	if quote == "" {
		quote = sl.SupportLine()
	}
	if quote != "" {
		rt := textBox(slide, 2.1, 1.95, pageW-4.2, 2.75)
		rt.SetTextAnchor(gopresentation.TextAnchorMiddle)
		para := rt.GetActiveParagraph()
		para.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
		runStyle(para.CreateTextRun("“"+quote+"”"), theme.HeadingFont, 24, theme.DarkText, false, true)
	}
	if sl.Attribution != "" {
		rt := textBox(slide, 2.1, 4.75, pageW-4.2, 0.7)
		para := rt.GetActiveParagraph()
		para.GetAlignment().SetHorizontal(gopresentation.HorizontalRight)
		runStyle(para.CreateTextRun("— "+sl.Attribution), theme.BodyFont, 15, theme.MutedText, false, false)
	}
	return nil
}

// buildQuoteMinimal renders the alternate quote arrangement: an oversized
// quote glyph and left-aligned text straight on the dark surface.
func (r *Renderer) buildQuoteMinimal(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme) error {
	slide.SetBackground(solidFill(theme.DarkBackground))

	rt := textBox(slide, 0.95, 0.45, 2.0, 1.7)
	runStyle(rt.CreateTextRun("❝"), theme.HeadingFont, 96, theme.Accent, false, false)

	quote := sl.Quote
	if quote == "" {
		quote = sl.SupportLine()
	}
	if quote != "" {
		body := textBox(slide, 1.25, 2.3, pageW-2.5, 2.9)
		body.SetTextAnchor(gopresentation.TextAnchorMiddle)
		runStyle(body.CreateTextRun(quote), theme.HeadingFont, 28, theme.LightText, false, true)
	}
	if sl.Attribution != "" {
		attr := textBox(slide, 1.25, 5.45, pageW-2.5, 0.7)
		runStyle(attr.CreateTextRun("— "+sl.Attribution), theme.BodyFont, 16, theme.Secondary, false, false)
	}
	return nil
}

// buildComparison renders two parallel card panels with independent column
// titles and item lists.
func (r *Renderer) buildComparison(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme) error {
	slide.SetBackground(solidFill(theme.LightBackground))
	addHeaderBand(slide, sl.DisplayTitle(), theme)

	colW := (contentW - 0.5) / 2
	r.comparisonColumn(slide, marginX, colW, sl.LeftTitle, sl.LeftItems, theme)
	r.comparisonColumn(slide, marginX+colW+0.5, colW, sl.RightTitle, sl.RightItems, theme)
	return nil
}

func (r *Renderer) comparisonColumn(slide *gopresentation.Slide, x, w float64, title string, items []string, theme entities.ResolvedTheme) {
	addCardPanel(slide, x, contentTop, w, 4.75, theme)
	if title != "" {
		rt := textBox(slide, x+0.3, contentTop+0.25, w-0.6, 0.6)
		para := rt.GetActiveParagraph()
		para.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
		runStyle(para.CreateTextRun(title), theme.HeadingFont, 18, theme.Primary, true, false)
	}
	if vs := capped(items, 6); len(vs) > 0 {
		rt := textBox(slide, x+0.35, contentTop+1.0, w-0.7, 3.5)
		addBulletedLines(rt, vs, theme.BodyFont, 14, theme.DarkText, theme.Accent)
	}
}

// buildStatColumns renders the statistics slide as filled columns, one per
// stat pair, value over label.
func (r *Renderer) buildStatColumns(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme) error {
	slide.SetBackground(solidFill(theme.LightBackground))
	addHeaderBand(slide, sl.DisplayTitle(), theme)

	stats := sl.Stats
	if len(stats) > 4 {
		stats = stats[:4]
	}
	if len(stats) == 0 {
		// Statistics slide without stat pairs degrades to its generic list.
		return r.buildList(slide, sl, theme, entities.TemplateBandList)
	}

	gap := 0.45
	colW := (contentW - gap*float64(len(stats)-1)) / float64(len(stats))
	fills := []string{theme.Primary, theme.Secondary}
	for i, st := range stats {
		x := marginX + float64(i)*(colW+gap)
		col := slide.CreateAutoShape()
		col.SetAutoShapeType(gopresentation.AutoShapeRoundedRect)
		col.SetPosition(gopresentation.Inch(x), gopresentation.Inch(contentTop+0.3))
		col.SetSize(gopresentation.Inch(colW), gopresentation.Inch(3.9))
		col.GetFill().SetSolid(argb(fills[i%len(fills)]))

		value := textBox(slide, x+0.15, contentTop+1.15, colW-0.3, 1.3)
		vp := value.GetActiveParagraph()
		vp.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
		runStyle(vp.CreateTextRun(st.Value), theme.HeadingFont, 34, theme.LightText, true, false)

		if st.Label != "" {
			label := textBox(slide, x+0.15, contentTop+2.55, colW-0.3, 1.1)
			lp := label.GetActiveParagraph()
			lp.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
			runStyle(lp.CreateTextRun(st.Label), theme.BodyFont, 14, theme.LightText, false, false)
		}
	}
	return nil
}

// buildTable renders tabular slides; the rotation template varies header
// treatment so consecutive tables differ.
func (r *Renderer) buildTable(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme, tmpl entities.TemplateID) error {
	slide.SetBackground(solidFill(theme.LightBackground))
	addHeaderBand(slide, sl.DisplayTitle(), theme)

	cols := len(sl.TableHeaders)
	for _, row := range sl.TableRows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return r.buildList(slide, sl, theme, tmpl)
	}
	rows := len(sl.TableRows)
	hasHeader := len(sl.TableHeaders) > 0
	if hasHeader {
		rows++
	}
	if rows == 0 {
		return r.buildList(slide, sl, theme, tmpl)
	}

	headerFill := theme.Primary
	if tmpl == entities.TemplateAccentList {
		headerFill = theme.Secondary
	}

	table := slide.CreateTableShape(rows, cols)
	table.SetPosition(gopresentation.Inch(marginX), gopresentation.Inch(contentTop+0.2))
	table.SetSize(gopresentation.Inch(contentW), gopresentation.Inch(0.5*float64(rows)))

	rowIdx := 0
	if hasHeader {
		for c := 0; c < cols; c++ {
			cell := table.GetCell(0, c)
			cell.GetFill().SetSolid(argb(headerFill))
			text := ""
			if c < len(sl.TableHeaders) {
				text = sl.TableHeaders[c]
			}
			runStyle(cell.GetParagraphs()[0].CreateTextRun(text), theme.BodyFont, 13, theme.LightText, true, false)
		}
		rowIdx = 1
	}
	for _, row := range sl.TableRows {
		if rowIdx >= rows {
			break
		}
		for c := 0; c < cols; c++ {
			cell := table.GetCell(rowIdx, c)
			text := ""
			if c < len(row) {
				text = row[c]
			}
			if tmpl == entities.TemplateCardList && rowIdx%2 == 0 {
				cell.GetFill().SetSolid(argb(entities.Lighten(theme.LightBackground, 0.4)))
			}
			runStyle(cell.GetParagraphs()[0].CreateTextRun(text), theme.BodyFont, 12, theme.DarkText, false, false)
		}
		rowIdx++
	}
	return nil
}

// buildImagePlaceholder renders the reserved-image slide: a dashed frame with
// the glyph, description, and caption.
func (r *Renderer) buildImagePlaceholder(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme, tmpl entities.TemplateID) error {
	slide.SetBackground(solidFill(theme.LightBackground))
	addHeaderBand(slide, sl.DisplayTitle(), theme)

	frameX, frameW := marginX+1.6, contentW-3.2
	if tmpl == entities.TemplateAccentList {
		frameX, frameW = marginX, contentW*0.55
	}
	frame := slide.CreateAutoShape()
	frame.SetAutoShapeType(gopresentation.AutoShapeRoundedRect)
	frame.SetPosition(gopresentation.Inch(frameX), gopresentation.Inch(contentTop+0.15))
	frame.SetSize(gopresentation.Inch(frameW), gopresentation.Inch(3.4))
	frame.GetFill().SetSolid(argb(entities.Lighten(theme.LightBackground, 0.35)))
	frame.SetBorder(&gopresentation.Border{
		Style: gopresentation.BorderDash,
		Width: int(gopresentation.Point(1.5)),
		Color: argb(theme.MutedText),
	})

	glyph := textBox(slide, frameX, contentTop+1.2, frameW, 1.2)
	gp := glyph.GetActiveParagraph()
	gp.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
	runStyle(gp.CreateTextRun(sl.Glyph()), theme.BodyFont, 40, theme.MutedText, false, false)

	if sl.ImageDescription != "" {
		desc := textBox(slide, frameX+0.3, contentTop+2.35, frameW-0.6, 0.9)
		dp := desc.GetActiveParagraph()
		dp.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
		runStyle(dp.CreateTextRun(sl.ImageDescription), theme.BodyFont, 13, theme.MutedText, false, true)
	}
	if sl.ImageCaption != "" {
		cap := textBox(slide, marginX, contentTop+3.75, contentW, 0.6)
		cp := cap.GetActiveParagraph()
		cp.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
		runStyle(cp.CreateTextRun(sl.ImageCaption), theme.BodyFont, 14, theme.DarkText, false, false)
	}
	return nil
}

// buildList renders general list content in the rotation variant assigned by
// the dispatcher: card grid, accent-bar rows, or plain banded bullets.
func (r *Renderer) buildList(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme, tmpl entities.TemplateID) error {
	slide.SetBackground(solidFill(theme.LightBackground))
	addHeaderBand(slide, sl.DisplayTitle(), theme)
	items := sl.Items()

	switch tmpl {
	case entities.TemplateCardList:
		items = capped(items, 6)
		cardW := (contentW - 0.4) / 2
		for i, item := range items {
			x := marginX + float64(i%2)*(cardW+0.4)
			y := contentTop + float64(i/2)*1.62
			addCardPanel(slide, x, y, cardW, 1.42, theme)
			rt := textBox(slide, x+0.3, y+0.22, cardW-0.6, 1.05)
			rt.SetTextAnchor(gopresentation.TextAnchorMiddle)
			runStyle(rt.CreateTextRun(item), theme.BodyFont, 14, theme.DarkText, false, false)
		}
	case entities.TemplateAccentList:
		items = capped(items, 7)
		for i, item := range items {
			y := contentTop + 0.15 + float64(i)*0.68
			addAccentBar(slide, marginX, y, 0.42, theme.Accent)
			rt := textBox(slide, marginX+0.3, y-0.05, contentW-0.3, 0.6)
			runStyle(rt.CreateTextRun(item), theme.BodyFont, 16, theme.DarkText, false, false)
		}
	default: // band_list
		if len(items) > 0 {
			rt := textBox(slide, marginX+0.15, contentTop+0.2, contentW-0.3, 4.4)
			addBulletedLines(rt, capped(items, 8), theme.BodyFont, 16, theme.DarkText, theme.Accent)
		}
		if line := sl.SupportLine(); line != "" {
			foot := textBox(slide, marginX, 6.55, contentW, 0.55)
			runStyle(foot.CreateTextRun(line), theme.BodyFont, 13, theme.MutedText, false, true)
		}
	}
	return nil
}

// buildFallback is the generic single-column bulleted rendering substituted
// when a specific builder fails. It first masks any partial shapes with a
// full-bleed panel so the failed attempt never shows through.
func (r *Renderer) buildFallback(slide *gopresentation.Slide, sl *entities.Slide, theme entities.ResolvedTheme) {
	addRect(slide, 0, 0, pageW, pageH, theme.LightBackground)

	title := sl.DisplayTitle()
	if title == "" {
		title = string(sl.Type)
	}
	addHeaderBand(slide, title, theme)

	lines := sl.FieldDump()
	if len(lines) == 0 {
		lines = []string{"(no slide content)"}
	}
	rt := textBox(slide, marginX+0.15, contentTop+0.2, contentW-0.3, 4.6)
	addBulletedLines(rt, capped(lines, 10), theme.BodyFont, 14, theme.DarkText, theme.MutedText)
}

func capped(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
