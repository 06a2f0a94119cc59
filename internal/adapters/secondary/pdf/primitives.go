// Package pdf renders decks into fixed pages drawn with absolute
// coordinates. It mirrors the template vocabulary of the shape renderer
// but owns its own drawing code: pages have no shape tree to compose,
// only ink placed at positions.
package pdf

import (
	"strings"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// Page geometry in millimeters for the 16:9 page surface.
const (
	pageW      = 338.667
	pageH      = 190.5
	marginX    = 21.6
	contentW   = pageW - 2*marginX
	contentTop = 47.0
)

// canvas bundles one document with its text translator and palette so the
// layout routines stay free of per-call plumbing. One canvas exists per
// render call; the renderer itself holds no mutable state.
type canvas struct {
	doc   *gofpdf.Fpdf
	tr    func(string) string
	theme entities.ResolvedTheme
}

// The core PDF fonts are the only ones available without embedding, so the
// palette font names map onto their closest core family.
func coreFont(name string) string {
	switch strings.ToLower(name) {
	case "georgia", "times new roman", "palatino", "garamond":
		return "Times"
	default:
		return "Helvetica"
	}
}

func (c *canvas) headingFont() string { return coreFont(c.theme.HeadingFont) }
func (c *canvas) bodyFont() string    { return coreFont(c.theme.BodyFont) }

func (c *canvas) setFill(hex string) {
	rgb := entities.ParseHex(hex)
	c.doc.SetFillColor(int(rgb.R), int(rgb.G), int(rgb.B))
}

func (c *canvas) setDraw(hex string) {
	rgb := entities.ParseHex(hex)
	c.doc.SetDrawColor(int(rgb.R), int(rgb.G), int(rgb.B))
}

func (c *canvas) setText(hex string) {
	rgb := entities.ParseHex(hex)
	c.doc.SetTextColor(int(rgb.R), int(rgb.G), int(rgb.B))
}

// fillPage floods the whole page with one color.
func (c *canvas) fillPage(hex string) {
	c.setFill(hex)
	c.doc.Rect(0, 0, pageW, pageH, "F")
}

func (c *canvas) rect(x, y, w, h float64, hex string) {
	c.setFill(hex)
	c.doc.Rect(x, y, w, h, "F")
}

// card draws the shared card primitive: a rounded panel with a hairline
// border and a colored strip along its top edge.
func (c *canvas) card(x, y, w, h float64) {
	c.setFill(c.theme.CardBackground)
	c.setDraw(entities.Lighten(c.theme.MutedText, 0.6))
	c.doc.SetLineWidth(0.3)
	c.doc.RoundedRect(x, y, w, h, 2.5, "1234", "FD")
	c.rect(x+2, y, w-4, 1.8, c.theme.CardBorder)
}

// accentBar draws the thin vertical accent primitive.
func (c *canvas) accentBar(x, y, h float64) {
	c.rect(x, y, 2, h, c.theme.Accent)
}

// headerBand draws the slide heading across the top of a light page with a
// short colored underline.
func (c *canvas) headerBand(title string) {
	if title == "" {
		return
	}
	c.text(marginX, 12.5, contentW, 24, title, c.headingFont(), "B", 28, c.theme.Primary, "L")
	c.rect(marginX, 36, 53, 1.5, c.theme.Accent)
}

// text draws one line clipped to a box; align is "L", "C", or "R".
func (c *canvas) text(x, y, w, h float64, s, font, style string, size float64, hex, align string) {
	c.setText(hex)
	c.doc.SetFont(font, style, size)
	c.doc.SetXY(x, y)
	c.doc.CellFormat(w, h, c.tr(s), "", 0, align, false, 0, "")
}

// multiText draws wrapped text in a box and returns nothing; long content
// is clipped at the page edge by the caller's box height.
func (c *canvas) multiText(x, y, w float64, s, font, style string, size float64, hex, align string) {
	c.setText(hex)
	c.doc.SetFont(font, style, size)
	c.doc.SetXY(x, y)
	c.doc.MultiCell(w, size*0.55, c.tr(s), "", align, false)
}

// bullets draws one bulleted wrapped line per item.
func (c *canvas) bullets(x, y, w, lineGap float64, items []string, size float64, textHex, bulletHex string) {
	cy := y
	for _, item := range items {
		c.text(x, cy, 6, size*0.55, "•", c.bodyFont(), "B", size, bulletHex, "L")
		c.setText(textHex)
		c.doc.SetFont(c.bodyFont(), "", size)
		c.doc.SetXY(x+6, cy)
		c.doc.MultiCell(w-6, size*0.55, c.tr(item), "", "L", false)
		cy = c.doc.GetY() + lineGap
	}
}

// centered draws one centered line across the content width.
func (c *canvas) centered(y, h float64, s, font, style string, size float64, hex string) {
	c.text(marginX, y, contentW, h, s, font, style, size, hex, "C")
}

// textOn picks the palette text color that reads against a filled surface.
func (c *canvas) textOn(fillHex string) string {
	if entities.RelativeLuminance(fillHex) < 0.45 {
		return c.theme.LightText
	}
	return c.theme.DarkText
}

// icon draws the slide's marker centered at (cx, cy) inside radius r. A
// per-slide override glyph is drawn as text when it survives translation to
// the core font encoding; otherwise each slide type gets a small geometric
// mark, since the default glyph set is outside that encoding.
func (c *canvas) icon(cx, cy, r float64, sl *entities.Slide, hex string) {
	if g := strings.TrimSpace(sl.Icon); g != "" {
		if t := c.tr(g); t != "" && t != "?" {
			c.text(cx-r, cy-r, 2*r, 2*r, t, c.headingFont(), "B", r*4, hex, "C")
			return
		}
	}

	c.setFill(hex)
	c.setDraw(hex)
	c.doc.SetLineWidth(r / 5)
	switch sl.Type {
	case entities.SlideTypeTitle:
		c.doc.Polygon([]gofpdf.PointType{
			{X: cx, Y: cy - r}, {X: cx + r, Y: cy}, {X: cx, Y: cy + r}, {X: cx - r, Y: cy},
		}, "F")
	case entities.SlideTypeSectionDivider:
		c.doc.Polygon([]gofpdf.PointType{
			{X: cx - r/2, Y: cy - r}, {X: cx + r/2, Y: cy}, {X: cx - r/2, Y: cy + r},
		}, "F")
	case entities.SlideTypeQuote:
		c.text(cx-r, cy-r, 2*r, 2*r, "“", c.headingFont(), "B", r*5, hex, "C")
	case entities.SlideTypeTwoColumn:
		c.doc.Rect(cx-r, cy-r/2, r*0.8, r, "F")
		c.doc.Rect(cx+r*0.2, cy-r/2, r*0.8, r, "F")
	case entities.SlideTypeStatistics:
		c.doc.Rect(cx-r, cy-r*0.2, r*0.5, r*1.2, "F")
		c.doc.Rect(cx-r*0.25, cy-r*0.7, r*0.5, r*1.7, "F")
		c.doc.Rect(cx+r*0.5, cy-r*1.0, r*0.5, r*2.0, "F")
	case entities.SlideTypeTable:
		c.doc.Rect(cx-r, cy-r*0.7, 2*r, r*1.4, "D")
		c.doc.Line(cx-r, cy, cx+r, cy)
		c.doc.Line(cx, cy-r*0.7, cx, cy+r*0.7)
	case entities.SlideTypeImagePlaceholder:
		c.doc.Rect(cx-r, cy-r*0.7, 2*r, r*1.4, "D")
		c.doc.Line(cx-r, cy+r*0.7, cx, cy-r*0.3)
		c.doc.Line(cx, cy-r*0.3, cx+r, cy+r*0.7)
	case entities.SlideTypeSummary:
		c.doc.Line(cx-r*0.8, cy, cx-r*0.2, cy+r*0.6)
		c.doc.Line(cx-r*0.2, cy+r*0.6, cx+r*0.9, cy-r*0.7)
	default:
		c.doc.Circle(cx, cy, r*0.7, "F")
	}
}
