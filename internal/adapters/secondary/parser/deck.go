package parser

import (
	"encoding/json"
	"strings"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// DeckParser decodes raw AI-authored deck text into a validated deck,
// tolerating the malformations the upstream generator is known to produce:
// markdown code fences around the payload and unescaped quote characters
// inside string values.
type DeckParser struct {
	flattener *TextFlattener
}

// NewDeckParser creates a parser with the standard text flattener.
func NewDeckParser() *DeckParser {
	return &DeckParser{flattener: NewTextFlattener()}
}

// rawDeck mirrors entities.Deck but keeps the theme as a pointer so a
// missing theme object is distinguishable from an empty one.
type rawDeck struct {
	Theme  *entities.AuthorTheme `json:"theme"`
	Slides []entities.Slide      `json:"slides"`
}

// Parse implements ports.DeckParser.
func (p *DeckParser) Parse(raw string) (*entities.Deck, error) {
	text := stripCodeFence(strings.TrimSpace(raw))

	var decoded rawDeck
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		// One repair pass for unescaped quotes, then retry. If the repaired
		// text still fails, surface the original diagnostic, not the
		// repair attempt's.
		repaired := repairUnescapedQuotes(text)
		if retryErr := json.Unmarshal([]byte(repaired), &decoded); retryErr != nil {
			return nil, entities.NewMalformedDeckError("deck text is not valid JSON", err)
		}
	}

	if decoded.Theme == nil {
		return nil, entities.NewMalformedDeckError("deck has no theme object", nil)
	}
	if len(decoded.Slides) == 0 {
		return nil, entities.NewMalformedDeckError("deck has no slides", nil)
	}

	deck := &entities.Deck{Theme: *decoded.Theme, Slides: decoded.Slides}
	deck.Theme.FillDefaults()
	for i := range deck.Slides {
		p.flattener.FlattenSlide(&deck.Slides[i])
	}
	return deck, nil
}

// stripCodeFence removes a surrounding markdown code fence, keeping only the
// inner text. Content without a fence passes through unchanged.
func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	body := text
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		body = body[idx+1:] // drop the opening fence line, including any language tag
	} else {
		return text
	}
	if idx := strings.LastIndex(body, "```"); idx >= 0 {
		body = body[:idx]
	}
	return strings.TrimSpace(body)
}

// repairUnescapedQuotes runs a character-level pass over JSON-ish text,
// escaping quote characters that appear inside string values. A quote found
// while inside a string counts as the real closing quote only when the next
// significant character is a structural delimiter; otherwise it belongs to
// the string content and gets escaped.
func repairUnescapedQuotes(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 16)

	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
		c := text[i]

		if escaped {
			b.WriteByte(c)
			escaped = false
			continue
		}
		if inString && c == '\\' {
			b.WriteByte(c)
			escaped = true
			continue
		}
		if c != '"' {
			b.WriteByte(c)
			continue
		}

		if !inString {
			inString = true
			b.WriteByte(c)
			continue
		}
		if isClosingQuote(text, i+1) {
			inString = false
			b.WriteByte(c)
		} else {
			b.WriteString(`\"`)
		}
	}
	return b.String()
}

// isClosingQuote looks ahead past whitespace from pos and reports whether
// the next significant character is a structural delimiter or end-of-input.
func isClosingQuote(text string, pos int) bool {
	for i := pos; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\r', '\n':
			continue
		case ':', ',', ']', '}':
			return true
		default:
			return false
		}
	}
	return true
}
