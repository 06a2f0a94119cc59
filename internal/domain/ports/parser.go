package ports

import "github.com/slidesmith/slidesmith/internal/domain/entities"

// DeckParser turns raw, possibly malformed deck text into a validated deck.
// Implementations must return *entities.MalformedDeckError for input that
// cannot be decoded or that lacks a theme object or a non-empty slide list.
type DeckParser interface {
	Parse(raw string) (*entities.Deck, error)
}
