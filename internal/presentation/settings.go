// Package presentation holds the display settings of the editing surface.
//
// These values only flow into rendering; the editing core never reads them.
package presentation

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Defaults for a fresh editor.
const (
	DefaultFontSize        = 16
	DefaultFontColor       = "#000000"
	DefaultBackgroundColor = "#ffffff"
	DefaultFontFamily      = "Arial"
)

// FontFamilies is the fixed list of selectable font families.
var FontFamilies = []string{
	"Arial",
	"Helvetica",
	"Times New Roman",
	"Courier New",
	"Verdana",
	"Georgia",
	"Tahoma",
	"Trebuchet MS",
	"Impact",
	"Comic Sans MS",
	"Arial Black",
	"Arial Narrow",
	"Lucida Console",
	"Lucida Sans Unicode",
	"Palatino Linotype",
	"Garamond",
	"Book Antiqua",
	"Copperplate",
	"Franklin Gothic Medium",
	"Century Gothic",
	"Cambria",
	"Rockwell",
	"Segoe UI",
	"Optima",
	"Geneva",
	"MS Sans Serif",
	"MS Serif",
	"Palatino",
	"Symbol",
	"Roboto",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Raleway",
	"Source Sans Pro",
	"Ubuntu",
	"Oswald",
	"PT Sans",
	"Noto Sans",
}

// Settings are the four presentation values of the editing surface.
type Settings struct {
	FontSize        int    `toml:"font_size"` // px, always >= 1
	FontColor       string `toml:"font_color"`
	BackgroundColor string `toml:"background_color"`
	FontFamily      string `toml:"font_family"`
}

// Default returns the settings of a fresh editor.
func Default() Settings {
	return Settings{
		FontSize:        DefaultFontSize,
		FontColor:       DefaultFontColor,
		BackgroundColor: DefaultBackgroundColor,
		FontFamily:      DefaultFontFamily,
	}
}

// IsFontFamily reports whether name is in FontFamilies (case-insensitive).
func IsFontFamily(name string) bool {
	return fontFamilyIndex(name) >= 0
}

func fontFamilyIndex(name string) int {
	for i, f := range FontFamilies {
		if strings.EqualFold(f, name) {
			return i
		}
	}
	return -1
}

// NextFontFamily returns the family after current in FontFamilies, wrapping
// around. Unknown families restart at the first entry.
func NextFontFamily(current string) string {
	i := fontFamilyIndex(current)
	return FontFamilies[(i+1)%len(FontFamilies)]
}

// ParseColor parses a hex color such as "#1e90ff" or "#fff".
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if len(s) == 4 && s[0] == '#' {
		s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Normalize returns a copy with every invalid value replaced by its default.
// Colors are rewritten in lower-case #rrggbb form and font families in their
// canonical spelling.
func (s Settings) Normalize() Settings {
	def := Default()
	if s.FontSize < 1 {
		s.FontSize = def.FontSize
	}
	if c, err := ParseColor(s.FontColor); err == nil {
		s.FontColor = c.Hex()
	} else {
		s.FontColor = def.FontColor
	}
	if c, err := ParseColor(s.BackgroundColor); err == nil {
		s.BackgroundColor = c.Hex()
	} else {
		s.BackgroundColor = def.BackgroundColor
	}
	if i := fontFamilyIndex(s.FontFamily); i >= 0 {
		s.FontFamily = FontFamilies[i]
	} else {
		s.FontFamily = def.FontFamily
	}
	return s
}

// WithFontSize returns a copy with the font size set, clamped to at least 1.
func (s Settings) WithFontSize(size int) Settings {
	if size < 1 {
		size = 1
	}
	s.FontSize = size
	return s
}

func toTcell(hex, fallback string) tcell.Color {
	c, err := ParseColor(hex)
	if err != nil {
		c, _ = ParseColor(fallback)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// TextStyle is the tcell style of the editing surface.
func (s Settings) TextStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcell(s.FontColor, DefaultFontColor)).
		Background(toTcell(s.BackgroundColor, DefaultBackgroundColor))
}

// ChromeStyle is the tcell style for the toolbar and status line: the text
// colors inverted, so chrome stays readable with any palette.
func (s Settings) ChromeStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(toTcell(s.BackgroundColor, DefaultBackgroundColor)).
		Background(toTcell(s.FontColor, DefaultFontColor))
}

// String renders a one-line summary for the toolbar.
func (s Settings) String() string {
	return fmt.Sprintf("%s %dpx %s on %s", s.FontFamily, s.FontSize, s.FontColor, s.BackgroundColor)
}
