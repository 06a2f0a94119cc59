package ports

import "github.com/slidesmith/slidesmith/internal/domain/entities"

// ThemeResolver produces a complete operational palette from a selector and
// the deck's own partial theme. Unknown selectors resolve like "auto".
type ThemeResolver interface {
	Resolve(selector string, author entities.AuthorTheme) entities.ResolvedTheme

	// Selectors lists every valid theme selector, "auto" first.
	Selectors() []string
}
