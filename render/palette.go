package render

import (
	"fmt"
	"image/color"
)

// PaletteNames are the CSS names of the delta colors, in order.
var PaletteNames = [...]string{
	"blue", "red", "green", "orange", "black", "purple", "cyan", "magenta", "yellow", "brown",
	"lime", "teal", "pink", "lavender", "maroon", "olive", "navy", "aquamarine", "gold", "coral",
}

// Palette holds the delta colors; delta k is drawn in Palette[k%len(Palette)].
var Palette = [len(PaletteNames)]color.RGBA{
	{0x00, 0x00, 0xff, 0xff}, // blue
	{0xff, 0x00, 0x00, 0xff}, // red
	{0x00, 0x80, 0x00, 0xff}, // green
	{0xff, 0xa5, 0x00, 0xff}, // orange
	{0x00, 0x00, 0x00, 0xff}, // black
	{0x80, 0x00, 0x80, 0xff}, // purple
	{0x00, 0xff, 0xff, 0xff}, // cyan
	{0xff, 0x00, 0xff, 0xff}, // magenta
	{0xff, 0xff, 0x00, 0xff}, // yellow
	{0xa5, 0x2a, 0x2a, 0xff}, // brown
	{0x00, 0xff, 0x00, 0xff}, // lime
	{0x00, 0x80, 0x80, 0xff}, // teal
	{0xff, 0xc0, 0xcb, 0xff}, // pink
	{0xe6, 0xe6, 0xfa, 0xff}, // lavender
	{0x80, 0x00, 0x00, 0xff}, // maroon
	{0x80, 0x80, 0x00, 0xff}, // olive
	{0x00, 0x00, 0x80, 0xff}, // navy
	{0x7f, 0xff, 0xd4, 0xff}, // aquamarine
	{0xff, 0xd7, 0x00, 0xff}, // gold
	{0xff, 0x7f, 0x50, 0xff}, // coral
}

// DeltaColor is the color of delta k.
func DeltaColor(k int) color.RGBA {
	return Palette[k%len(Palette)]
}

// HexColor returns c as "#rrggbb" plus its opacity in [0, 1].
func HexColor(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 0xff
}

// CSSColor formats c for a CSS fillStyle or strokeStyle.
func CSSColor(c color.Color) string {
	hex, a := HexColor(c)
	if a == 1 {
		return hex
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgba(%d,%d,%d,%.3g)", n.R, n.G, n.B, a)
}
