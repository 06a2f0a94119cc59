package entities

import "strings"

// AuthorTheme is the 5-color palette embedded in the raw deck text.
// It is the parser's output and never reaches a renderer directly.
type AuthorTheme struct {
	Primary    string `json:"primary_color"`
	Secondary  string `json:"secondary_color"`
	Accent     string `json:"accent_color"`
	Background string `json:"background_color"`
	Text       string `json:"text_color"`
}

// Default colors backfilled for author-theme fields the deck omits.
const (
	DefaultPrimary    = "#1f3a5f"
	DefaultSecondary  = "#4f6d8f"
	DefaultAccent     = "#e8a033"
	DefaultBackground = "#f5f4f0"
	DefaultText       = "#20242b"
)

// FillDefaults replaces every missing color field with its fixed default.
// Schema drift in individual colors is forgiven; only the theme object
// itself is required upstream.
func (t *AuthorTheme) FillDefaults() {
	if strings.TrimSpace(t.Primary) == "" {
		t.Primary = DefaultPrimary
	}
	if strings.TrimSpace(t.Secondary) == "" {
		t.Secondary = DefaultSecondary
	}
	if strings.TrimSpace(t.Accent) == "" {
		t.Accent = DefaultAccent
	}
	if strings.TrimSpace(t.Background) == "" {
		t.Background = DefaultBackground
	}
	if strings.TrimSpace(t.Text) == "" {
		t.Text = DefaultText
	}
}

// ResolvedTheme is the complete operational palette a render pass draws
// from: ten color fields plus the font pair. Once resolved it is immutable
// and shared read-only across all slides of one pass.
type ResolvedTheme struct {
	Name string

	Primary         string
	Secondary       string
	Accent          string
	DarkBackground  string
	LightBackground string
	CardBackground  string
	DarkText        string
	LightText       string
	MutedText       string
	CardBorder      string

	HeadingFont string
	BodyFont    string
}

// DarkBackgroundFor reports whether the given slide type renders on the dark
// background surface. The set is fixed for preset and derived themes alike.
func (t ResolvedTheme) DarkBackgroundFor(st SlideType) bool {
	switch st {
	case SlideTypeTitle, SlideTypeSectionDivider, SlideTypeQuote, SlideTypeSummary:
		return true
	}
	return false
}

// Colors returns all ten palette fields, used by completeness checks.
func (t ResolvedTheme) Colors() []string {
	return []string{
		t.Primary, t.Secondary, t.Accent,
		t.DarkBackground, t.LightBackground, t.CardBackground,
		t.DarkText, t.LightText, t.MutedText, t.CardBorder,
	}
}
