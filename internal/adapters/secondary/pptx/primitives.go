package pptx

import (
	gopresentation "github.com/VantageDataChat/GoPPT"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// Canvas geometry in inches for the 16:9 slide surface.
const (
	pageW      = 13.333
	pageH      = 7.5
	marginX    = 0.85
	contentW   = pageW - 2*marginX
	contentTop = 1.85
)

func argb(hex string) gopresentation.Color {
	return gopresentation.NewColor(hex)
}

func solidFill(hex string) *gopresentation.Fill {
	return gopresentation.NewFill().SetSolid(argb(hex))
}

// textBox creates a positioned rich text shape; coordinates in inches.
func textBox(slide *gopresentation.Slide, x, y, w, h float64) *gopresentation.RichTextShape {
	rt := slide.CreateRichTextShape()
	rt.SetPosition(gopresentation.Inch(x), gopresentation.Inch(y))
	rt.SetSize(gopresentation.Inch(w), gopresentation.Inch(h))
	rt.SetWordWrap(true)
	return rt
}

// runStyle applies font styling to a text run.
func runStyle(tr *gopresentation.TextRun, name string, size int, hex string, bold, italic bool) {
	tr.GetFont().SetName(name).SetSize(size).SetColor(argb(hex)).SetBold(bold).SetItalic(italic)
}

// addRect draws a plain filled rectangle; coordinates in inches.
func addRect(slide *gopresentation.Slide, x, y, w, h float64, hex string) *gopresentation.AutoShape {
	rect := slide.CreateAutoShape()
	rect.SetAutoShapeType(gopresentation.AutoShapeRectangle)
	rect.SetPosition(gopresentation.Inch(x), gopresentation.Inch(y))
	rect.SetSize(gopresentation.Inch(w), gopresentation.Inch(h))
	rect.GetFill().SetSolid(argb(hex))
	return rect
}

// addCardPanel draws the shared card primitive: a rounded white panel with a
// soft drop shadow, a hairline border, and a colored strip along its top edge.
func addCardPanel(slide *gopresentation.Slide, x, y, w, h float64, theme entities.ResolvedTheme) {
	card := slide.CreateAutoShape()
	card.SetAutoShapeType(gopresentation.AutoShapeRoundedRect)
	card.SetPosition(gopresentation.Inch(x), gopresentation.Inch(y))
	card.SetSize(gopresentation.Inch(w), gopresentation.Inch(h))
	card.GetFill().SetSolid(argb(theme.CardBackground))
	card.SetBorder(&gopresentation.Border{
		Style: gopresentation.BorderSolid,
		Width: int(gopresentation.Point(1)),
		Color: argb(entities.Lighten(theme.MutedText, 0.6)),
	})
	shadow := gopresentation.NewShadow().SetVisible(true).SetDirection(90).SetDistance(3)
	shadow.BlurRadius = 4
	card.SetShadow(shadow)

	addRect(slide, x+0.08, y, w-0.16, 0.07, theme.CardBorder)
}

// addAccentBar draws the thin vertical accent primitive.
func addAccentBar(slide *gopresentation.Slide, x, y, h float64, hex string) {
	addRect(slide, x, y, 0.08, h, hex)
}

// addHeaderBand draws the shared header primitive: the slide heading across
// the top of a light slide with a short colored underline.
func addHeaderBand(slide *gopresentation.Slide, title string, theme entities.ResolvedTheme) {
	if title == "" {
		return
	}
	rt := textBox(slide, marginX, 0.5, contentW, 0.95)
	runStyle(rt.CreateTextRun(title), theme.HeadingFont, 28, theme.Primary, true, false)
	addRect(slide, marginX, 1.42, 2.1, 0.06, theme.Accent)
}

// addBulletedLines fills a text box with one bulleted paragraph per item.
func addBulletedLines(rt *gopresentation.RichTextShape, items []string, font string, size int, textHex, bulletHex string) {
	for i, item := range items {
		para := rt.GetActiveParagraph()
		if i > 0 {
			para = rt.CreateParagraph()
		}
		bullet := gopresentation.NewBullet()
		bullet.SetCharBullet("•", font)
		bullet.SetColor(argb(bulletHex))
		para.SetBullet(bullet)
		para.SetSpaceAfter(8)
		runStyle(para.CreateTextRun(item), font, size, textHex, false, false)
	}
}

// addPlainLines fills a text box with one unbulleted paragraph per item.
func addPlainLines(rt *gopresentation.RichTextShape, items []string, font string, size int, hex string, center bool) {
	for i, item := range items {
		para := rt.GetActiveParagraph()
		if i > 0 {
			para = rt.CreateParagraph()
		}
		if center {
			para.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
		}
		para.SetSpaceAfter(8)
		runStyle(para.CreateTextRun(item), font, size, hex, false, false)
	}
}

// centeredText draws a single centered text line in its own box.
func centeredText(slide *gopresentation.Slide, y, h float64, text, font string, size int, hex string, bold, italic bool) *gopresentation.RichTextShape {
	rt := textBox(slide, marginX, y, contentW, h)
	rt.SetTextAnchor(gopresentation.TextAnchorMiddle)
	para := rt.GetActiveParagraph()
	para.GetAlignment().SetHorizontal(gopresentation.HorizontalCenter)
	runStyle(para.CreateTextRun(text), font, size, hex, bold, italic)
	return rt
}
