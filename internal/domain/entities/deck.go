package entities

import (
	"encoding/json"
	"strings"
)

// SlideType is the closed enumeration of semantic slide categories the
// upstream content generator may emit.
type SlideType string

const (
	SlideTypeTitle            SlideType = "title"
	SlideTypeSectionDivider   SlideType = "section_divider"
	SlideTypeBullets          SlideType = "bullets"
	SlideTypeQuote            SlideType = "quote"
	SlideTypeTwoColumn        SlideType = "two_column"
	SlideTypeStatistics       SlideType = "statistics"
	SlideTypeTable            SlideType = "table"
	SlideTypeImagePlaceholder SlideType = "image_placeholder"
	SlideTypeSummary          SlideType = "summary"
)

// SlideTypes lists every valid slide type in declaration order.
func SlideTypes() []SlideType {
	return []SlideType{
		SlideTypeTitle, SlideTypeSectionDivider, SlideTypeBullets,
		SlideTypeQuote, SlideTypeTwoColumn, SlideTypeStatistics,
		SlideTypeTable, SlideTypeImagePlaceholder, SlideTypeSummary,
	}
}

// StatPair is one numeric statistic with its caption. The upstream generator
// usually emits {"value":..,"label":..} objects but occasionally plain
// strings; both decode.
type StatPair struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// UnmarshalJSON accepts either an object or a bare string.
func (sp *StatPair) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		sp.Value = s
		sp.Label = ""
		return nil
	}
	type alias StatPair
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*sp = StatPair(a)
	return nil
}

// Slide is one element of a deck: a required type plus an open bag of
// type-specific fields. No field beyond Type is required; extraction helpers
// degrade to empty values instead of failing.
type Slide struct {
	Type SlideType `json:"slide_type"`

	Title    string `json:"title,omitempty"`
	Heading  string `json:"heading,omitempty"`
	Topic    string `json:"topic,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`

	Bullets   []string   `json:"bullets,omitempty"`
	Takeaways []string   `json:"takeaways,omitempty"`
	Stats     []StatPair `json:"stats,omitempty"`

	Quote       string `json:"quote,omitempty"`
	Attribution string `json:"attribution,omitempty"`

	LeftTitle  string   `json:"left_title,omitempty"`
	RightTitle string   `json:"right_title,omitempty"`
	LeftItems  []string `json:"left_items,omitempty"`
	RightItems []string `json:"right_items,omitempty"`

	TableHeaders []string   `json:"table_headers,omitempty"`
	TableRows    [][]string `json:"table_rows,omitempty"`

	ImageCaption     string `json:"image_caption,omitempty"`
	ImageDescription string `json:"image_description,omitempty"`

	CallToAction string `json:"call_to_action,omitempty"`
	Icon         string `json:"icon,omitempty"`
}

// Deck is the parsed, validated root unit: a partial author theme plus an
// ordered, non-empty slide list.
type Deck struct {
	Theme  AuthorTheme `json:"theme"`
	Slides []Slide     `json:"slides"`
}

// SlideCount returns the number of slides.
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// defaultGlyphs maps each slide type to its fallback icon glyph.
var defaultGlyphs = map[SlideType]string{
	SlideTypeTitle:            "◆",
	SlideTypeSectionDivider:   "❯",
	SlideTypeBullets:          "●",
	SlideTypeQuote:            "❝",
	SlideTypeTwoColumn:        "⇄",
	SlideTypeStatistics:       "◩",
	SlideTypeTable:            "▦",
	SlideTypeImagePlaceholder: "▣",
	SlideTypeSummary:          "✓",
}

// DisplayTitle returns the slide's heading text: the first non-empty of
// title, heading, and topic.
func (s *Slide) DisplayTitle() string {
	for _, v := range []string{s.Title, s.Heading, s.Topic} {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// SupportLine returns the slide's secondary line: the first non-empty of
// subtitle, quote, attribution, and call-to-action.
func (s *Slide) SupportLine() string {
	for _, v := range []string{s.Subtitle, s.Quote, s.Attribution, s.CallToAction} {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// Items flattens the slide's list content into plain strings, whichever list
// family the slide carries: bullets, takeaways, stat pairs, both comparison
// columns, table rows, or the image description pair.
func (s *Slide) Items() []string {
	if len(s.Bullets) > 0 {
		return compactStrings(s.Bullets)
	}
	if len(s.Takeaways) > 0 {
		return compactStrings(s.Takeaways)
	}
	if len(s.Stats) > 0 {
		items := make([]string, 0, len(s.Stats))
		for _, st := range s.Stats {
			switch {
			case st.Value != "" && st.Label != "":
				items = append(items, st.Value+" — "+st.Label)
			case st.Value != "":
				items = append(items, st.Value)
			case st.Label != "":
				items = append(items, st.Label)
			}
		}
		return items
	}
	if len(s.LeftItems) > 0 || len(s.RightItems) > 0 {
		return compactStrings(append(append([]string{}, s.LeftItems...), s.RightItems...))
	}
	if len(s.TableRows) > 0 {
		items := make([]string, 0, len(s.TableRows))
		for _, row := range s.TableRows {
			if joined := strings.TrimSpace(strings.Join(row, " | ")); joined != "" {
				items = append(items, joined)
			}
		}
		return items
	}
	var items []string
	for _, v := range []string{s.ImageDescription, s.ImageCaption} {
		if t := strings.TrimSpace(v); t != "" {
			items = append(items, t)
		}
	}
	return items
}

// Glyph returns the slide's icon glyph: the per-slide override when present,
// otherwise the fixed default for the slide type.
func (s *Slide) Glyph() string {
	if g := strings.TrimSpace(s.Icon); g != "" {
		return g
	}
	if g, ok := defaultGlyphs[s.Type]; ok {
		return g
	}
	return defaultGlyphs[SlideTypeBullets]
}

// FieldDump lists every populated field as "name: value" lines, used by the
// generic fallback rendering when a specific template builder fails.
func (s *Slide) FieldDump() []string {
	var lines []string
	add := func(name, value string) {
		if t := strings.TrimSpace(value); t != "" {
			lines = append(lines, name+": "+t)
		}
	}
	addList := func(name string, values []string) {
		if vs := compactStrings(values); len(vs) > 0 {
			lines = append(lines, name+": "+strings.Join(vs, "; "))
		}
	}
	add("title", s.Title)
	add("heading", s.Heading)
	add("topic", s.Topic)
	add("subtitle", s.Subtitle)
	addList("bullets", s.Bullets)
	addList("takeaways", s.Takeaways)
	for _, st := range s.Stats {
		add("stat", strings.TrimSpace(st.Value+" "+st.Label))
	}
	add("quote", s.Quote)
	add("attribution", s.Attribution)
	add("left", s.LeftTitle)
	addList("left items", s.LeftItems)
	add("right", s.RightTitle)
	addList("right items", s.RightItems)
	addList("table headers", s.TableHeaders)
	for _, row := range s.TableRows {
		addList("row", row)
	}
	add("image", s.ImageDescription)
	add("caption", s.ImageCaption)
	add("call to action", s.CallToAction)
	return lines
}

func compactStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}
