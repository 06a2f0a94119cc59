package parser

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

// TextFlattener normalizes AI-authored text fields to plain text. The
// upstream generator is asked for plain strings but still leaks markdown
// emphasis and the occasional HTML tag; both renderers draw raw glyphs, so
// markup has to be flattened before it reaches them.
type TextFlattener struct {
	md       goldmark.Markdown
	sanitize *bluemonday.Policy
}

// NewTextFlattener creates a flattener with the default markdown converter
// and a strip-everything sanitizer.
func NewTextFlattener() *TextFlattener {
	return &TextFlattener{
		md:       goldmark.New(),
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Flatten converts markdown remnants to plain text: render to HTML, strip
// every tag, unescape entities. Text without markup passes through with
// whitespace trimmed only.
func (f *TextFlattener) Flatten(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if !strings.ContainsAny(trimmed, "*_`[<~") {
		return trimmed
	}

	var buf bytes.Buffer
	if err := f.md.Convert([]byte(trimmed), &buf); err != nil {
		return trimmed
	}
	plain := f.sanitize.Sanitize(buf.String())
	plain = html.UnescapeString(plain)
	return strings.TrimSpace(strings.Join(strings.Fields(plain), " "))
}

// FlattenSlide applies Flatten to every text-bearing field of a slide.
func (f *TextFlattener) FlattenSlide(s *entities.Slide) {
	s.Title = f.Flatten(s.Title)
	s.Heading = f.Flatten(s.Heading)
	s.Topic = f.Flatten(s.Topic)
	s.Subtitle = f.Flatten(s.Subtitle)
	s.Quote = f.Flatten(s.Quote)
	s.Attribution = f.Flatten(s.Attribution)
	s.LeftTitle = f.Flatten(s.LeftTitle)
	s.RightTitle = f.Flatten(s.RightTitle)
	s.ImageCaption = f.Flatten(s.ImageCaption)
	s.ImageDescription = f.Flatten(s.ImageDescription)
	s.CallToAction = f.Flatten(s.CallToAction)

	f.flattenList(s.Bullets)
	f.flattenList(s.Takeaways)
	f.flattenList(s.LeftItems)
	f.flattenList(s.RightItems)
	f.flattenList(s.TableHeaders)
	for i := range s.TableRows {
		f.flattenList(s.TableRows[i])
	}
	for i := range s.Stats {
		s.Stats[i].Value = f.Flatten(s.Stats[i].Value)
		s.Stats[i].Label = f.Flatten(s.Stats[i].Label)
	}
}

func (f *TextFlattener) flattenList(items []string) {
	for i := range items {
		items[i] = f.Flatten(items[i])
	}
}
