package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

func TestTextFlattener_Flatten(t *testing.T) {
	f := NewTextFlattener()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Quarterly results", "Quarterly results"},
		{"whitespace trimmed", "  padded  ", "padded"},
		{"empty", "", ""},
		{"bold stripped", "**Revenue** doubled", "Revenue doubled"},
		{"emphasis stripped", "a *very* good year", "a very good year"},
		{"inline code stripped", "run `make all` first", "run make all first"},
		{"link reduced to text", "see [the docs](https://example.com)", "see the docs"},
		{"html tag stripped", "totally <b>fine</b>", "totally fine"},
		{"entities unescaped", "R&D <em>spend</em>", "R&D spend"},
		{"percent survives", "grew 40% YoY", "grew 40% YoY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Flatten(tt.input))
		})
	}
}

func TestTextFlattener_FlattenSlide(t *testing.T) {
	f := NewTextFlattener()
	sl := entities.Slide{
		Type:      entities.SlideTypeTwoColumn,
		Title:     "**Plan**",
		LeftTitle: "*Before*",
		LeftItems: []string{"`old` flow"},
		RightItems: []string{
			"new flow",
		},
		TableRows: [][]string{{"**cell**"}},
		Stats:     []entities.StatPair{{Value: "**3x**", Label: "_speed_"}},
	}

	f.FlattenSlide(&sl)

	assert.Equal(t, "Plan", sl.Title)
	assert.Equal(t, "Before", sl.LeftTitle)
	assert.Equal(t, []string{"old flow"}, sl.LeftItems)
	assert.Equal(t, []string{"new flow"}, sl.RightItems)
	assert.Equal(t, "cell", sl.TableRows[0][0])
	assert.Equal(t, "3x", sl.Stats[0].Value)
	assert.Equal(t, "speed", sl.Stats[0].Label)
}
