package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slidesmith/slidesmith/internal/domain/entities"
)

func TestResolver_Selectors(t *testing.T) {
	r := NewResolver()
	selectors := r.Selectors()

	require.Len(t, selectors, 11)
	assert.Equal(t, SelectorAuto, selectors[0])
	assert.Equal(t, []string{
		"auto", "midnight", "ocean", "forest", "sunset", "slate",
		"coral", "amber", "orchid", "mono", "glacier",
	}, selectors)
}

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()

	t.Run("preset returns verbatim", func(t *testing.T) {
		got := r.Resolve("midnight", entities.AuthorTheme{Primary: "#ff0000"})
		assert.Equal(t, presets["midnight"], got)
	})

	t.Run("author theme ignored for presets", func(t *testing.T) {
		a := r.Resolve("ocean", entities.AuthorTheme{Primary: "#111111"})
		b := r.Resolve("ocean", entities.AuthorTheme{Primary: "#eeeeee"})
		assert.Equal(t, a, b)
	})

	t.Run("auto derives from author theme", func(t *testing.T) {
		got := r.Resolve(SelectorAuto, entities.AuthorTheme{
			Primary:    "#d05030",
			Secondary:  "#777777",
			Accent:     "#f0c040",
			Background: "#fff8f0",
			Text:       "#101418",
		})
		assert.Equal(t, SelectorAuto, got.Name)
		assert.Equal(t, "#d05030", got.Primary)
		assert.Equal(t, "#777777", got.Secondary)
		assert.Equal(t, "#f0c040", got.Accent)
		// Darkest of the five author colors.
		assert.Equal(t, "#101418", got.DarkBackground)
		assert.Equal(t, "#fff8f0", got.LightBackground)
		assert.Equal(t, "#ffffff", got.CardBackground)
		assert.Equal(t, "#101418", got.DarkText)
		assert.Equal(t, "#777777", got.MutedText)
		assert.Equal(t, "#f0c040", got.CardBorder)
	})

	t.Run("unrecognized selector derives like auto", func(t *testing.T) {
		author := entities.AuthorTheme{Primary: "#223344"}
		assert.Equal(t, r.Resolve(SelectorAuto, author), r.Resolve("no-such-theme", author))
	})

	t.Run("empty author theme derives from defaults", func(t *testing.T) {
		got := r.Resolve(SelectorAuto, entities.AuthorTheme{})
		assert.Equal(t, entities.DefaultPrimary, got.Primary)
		// Default text is the darkest default color.
		assert.Equal(t, entities.DefaultText, got.DarkBackground)
		for _, c := range got.Colors() {
			assert.NotEmpty(t, c)
		}
	})

	t.Run("dark background stays dark for light-primary palettes", func(t *testing.T) {
		got := r.Resolve(SelectorAuto, entities.AuthorTheme{
			Primary:    "#f0e8d8",
			Secondary:  "#e0d8c8",
			Accent:     "#d8c8a8",
			Background: "#fffdf8",
			Text:       "#2a2620",
		})
		assert.Equal(t, "#2a2620", got.DarkBackground)
		assert.Less(t, entities.RelativeLuminance(got.DarkBackground), 0.2)
	})
}

func TestPresets_Complete(t *testing.T) {
	require.Len(t, presets, 10)
	for _, name := range presetOrder {
		p, ok := presets[name]
		require.True(t, ok, "preset %q missing from catalog", name)
		assert.Equal(t, name, p.Name)
		for i, c := range p.Colors() {
			assert.NotEmpty(t, c, "preset %q color %d", name, i)
			assert.NotEqual(t, entities.RGB{}, entities.ParseHex(c),
				"preset %q color %d must parse", name, i)
		}
		assert.NotEmpty(t, p.HeadingFont, name)
		assert.NotEmpty(t, p.BodyFont, name)

		// Each preset's dark surface must actually read as dark and the
		// light surface as light.
		assert.Less(t, entities.RelativeLuminance(p.DarkBackground), 0.25, name)
		assert.Greater(t, entities.RelativeLuminance(p.LightBackground), 0.5, name)
	}
}
