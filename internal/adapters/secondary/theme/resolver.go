package theme

import "github.com/slidesmith/slidesmith/internal/domain/entities"

// SelectorAuto derives the palette from the deck's own author theme instead
// of a catalog preset. Unrecognized selectors resolve the same way.
const SelectorAuto = "auto"

// Resolver produces render-ready palettes from a preset catalog or by
// deriving one from an author theme. The catalog is read-only after
// construction, so one resolver serves concurrent render passes.
type Resolver struct {
	catalog map[string]entities.ResolvedTheme
	order   []string
}

// NewResolver creates a resolver over the built-in ten-preset catalog.
func NewResolver() *Resolver {
	return NewResolverWithCatalog(presets, presetOrder)
}

// NewResolverWithCatalog creates a resolver over an injected catalog,
// used by tests that need a deterministic reduced catalog.
func NewResolverWithCatalog(catalog map[string]entities.ResolvedTheme, order []string) *Resolver {
	return &Resolver{catalog: catalog, order: order}
}

// Resolve implements ports.ThemeResolver. Named presets return verbatim;
// "auto" and anything unrecognized derive from the author theme.
func (r *Resolver) Resolve(selector string, author entities.AuthorTheme) entities.ResolvedTheme {
	if preset, ok := r.catalog[selector]; ok {
		return preset
	}
	return derive(author)
}

// Selectors lists every valid selector, "auto" first then catalog order.
func (r *Resolver) Selectors() []string {
	out := make([]string, 0, len(r.order)+1)
	out = append(out, SelectorAuto)
	out = append(out, r.order...)
	return out
}

// derive expands the 5-field author palette into the 10-field operational
// one. The dark background is the darkest of the five author colors, so the
// derived dark surface stays dark even when the author's "primary" is light.
// No minimum-contrast check is applied to the result; a very low-contrast
// author palette produces a valid but low-contrast document.
func derive(author entities.AuthorTheme) entities.ResolvedTheme {
	author.FillDefaults()
	return entities.ResolvedTheme{
		Name:      SelectorAuto,
		Primary:   author.Primary,
		Secondary: author.Secondary,
		Accent:    author.Accent,
		DarkBackground: entities.PickDarkest([]string{
			author.Primary, author.Secondary, author.Accent, author.Background, author.Text,
		}),
		LightBackground: author.Background,
		CardBackground:  "#ffffff",
		DarkText:        author.Text,
		LightText:       entities.Lighten(author.Background, 0.95),
		MutedText:       author.Secondary,
		CardBorder:      author.Accent,
		HeadingFont:     "Georgia",
		BodyFont:        "Calibri",
	}
}
