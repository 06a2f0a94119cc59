package theme

import "github.com/slidesmith/slidesmith/internal/domain/entities"

// presetOrder fixes the listing order of the built-in catalog.
var presetOrder = []string{
	"midnight", "ocean", "forest", "sunset", "slate",
	"coral", "amber", "orchid", "mono", "glacier",
}

// presets is the built-in catalog of ten complete palettes. Presets are
// static data: they resolve verbatim, never derived.
var presets = map[string]entities.ResolvedTheme{
	"midnight": {
		Name:            "midnight",
		Primary:         "#4c6ef5",
		Secondary:       "#748ffc",
		Accent:          "#fab005",
		DarkBackground:  "#10131c",
		LightBackground: "#f4f5fb",
		CardBackground:  "#ffffff",
		DarkText:        "#1b1e28",
		LightText:       "#eef0fa",
		MutedText:       "#7a819b",
		CardBorder:      "#4c6ef5",
		HeadingFont:     "Georgia",
		BodyFont:        "Calibri",
	},
	"ocean": {
		Name:            "ocean",
		Primary:         "#0b7285",
		Secondary:       "#15aabf",
		Accent:          "#ff922b",
		DarkBackground:  "#083344",
		LightBackground: "#f0f9fa",
		CardBackground:  "#ffffff",
		DarkText:        "#0c2d38",
		LightText:       "#e6f7f9",
		MutedText:       "#5f8a94",
		CardBorder:      "#15aabf",
		HeadingFont:     "Trebuchet MS",
		BodyFont:        "Calibri",
	},
	"forest": {
		Name:            "forest",
		Primary:         "#2b8a3e",
		Secondary:       "#51cf66",
		Accent:          "#e8590c",
		DarkBackground:  "#12291a",
		LightBackground: "#f3f9f1",
		CardBackground:  "#ffffff",
		DarkText:        "#1c2b20",
		LightText:       "#ebf7ec",
		MutedText:       "#6e8a74",
		CardBorder:      "#2b8a3e",
		HeadingFont:     "Georgia",
		BodyFont:        "Verdana",
	},
	"sunset": {
		Name:            "sunset",
		Primary:         "#e8590c",
		Secondary:       "#f76707",
		Accent:          "#862e9c",
		DarkBackground:  "#2b1220",
		LightBackground: "#fdf4ee",
		CardBackground:  "#ffffff",
		DarkText:        "#33212a",
		LightText:       "#fbeee4",
		MutedText:       "#a0766a",
		CardBorder:      "#f76707",
		HeadingFont:     "Trebuchet MS",
		BodyFont:        "Calibri",
	},
	"slate": {
		Name:            "slate",
		Primary:         "#37474f",
		Secondary:       "#607d8b",
		Accent:          "#00acc1",
		DarkBackground:  "#1c262b",
		LightBackground: "#f4f6f7",
		CardBackground:  "#ffffff",
		DarkText:        "#22303a",
		LightText:       "#e9eef1",
		MutedText:       "#7d8e96",
		CardBorder:      "#00acc1",
		HeadingFont:     "Arial",
		BodyFont:        "Arial",
	},
	"coral": {
		Name:            "coral",
		Primary:         "#e64980",
		Secondary:       "#f783ac",
		Accent:          "#1098ad",
		DarkBackground:  "#2a1020",
		LightBackground: "#fdf2f6",
		CardBackground:  "#ffffff",
		DarkText:        "#321c27",
		LightText:       "#fbe9f0",
		MutedText:       "#a87b8d",
		CardBorder:      "#e64980",
		HeadingFont:     "Georgia",
		BodyFont:        "Calibri",
	},
	"amber": {
		Name:            "amber",
		Primary:         "#e67700",
		Secondary:       "#f59f00",
		Accent:          "#364fc7",
		DarkBackground:  "#2b2009",
		LightBackground: "#fdf8ed",
		CardBackground:  "#ffffff",
		DarkText:        "#2e2612",
		LightText:       "#faf2df",
		MutedText:       "#9c8a66",
		CardBorder:      "#f59f00",
		HeadingFont:     "Trebuchet MS",
		BodyFont:        "Verdana",
	},
	"orchid": {
		Name:            "orchid",
		Primary:         "#7048e8",
		Secondary:       "#9775fa",
		Accent:          "#0ca678",
		DarkBackground:  "#1a1030",
		LightBackground: "#f6f3fc",
		CardBackground:  "#ffffff",
		DarkText:        "#241a39",
		LightText:       "#f0eafa",
		MutedText:       "#8d7fae",
		CardBorder:      "#7048e8",
		HeadingFont:     "Georgia",
		BodyFont:        "Calibri",
	},
	"mono": {
		Name:            "mono",
		Primary:         "#212529",
		Secondary:       "#495057",
		Accent:          "#868e96",
		DarkBackground:  "#121417",
		LightBackground: "#f8f9fa",
		CardBackground:  "#ffffff",
		DarkText:        "#1a1d20",
		LightText:       "#f1f3f5",
		MutedText:       "#767d85",
		CardBorder:      "#495057",
		HeadingFont:     "Arial",
		BodyFont:        "Arial",
	},
	"glacier": {
		Name:            "glacier",
		Primary:         "#1864ab",
		Secondary:       "#4dabf7",
		Accent:          "#e8590c",
		DarkBackground:  "#0d1b2a",
		LightBackground: "#f1f7fd",
		CardBackground:  "#ffffff",
		DarkText:        "#14283a",
		LightText:       "#e8f1fa",
		MutedText:       "#6d88a3",
		CardBorder:      "#4dabf7",
		HeadingFont:     "Trebuchet MS",
		BodyFont:        "Calibri",
	},
}
