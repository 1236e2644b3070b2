package state

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
)

// ParseColor interprets a CSS color string the way a canvas strokeStyle does:
// names, #rgb, #rrggbb and rgb(r, g, b). ok is false for anything else.
func ParseColor(value string) (color.Color, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	// Spaces are only allowed between the parentheses of a functional form.
	if i := strings.IndexByte(v, '('); i >= 0 {
		v = v[:i] + strings.Join(strings.Fields(v[i:]), "")
	}
	if v == "" || strings.HasPrefix(v, "url") {
		return nil, false
	}
	c, err := oksvg.ParseSVGColor(v)
	if err != nil || c == nil {
		return nil, false
	}
	return c, true
}

// FormatColor renders c the way a browser reports a computed background
// color, e.g. "rgb(255, 0, 0)".
func FormatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("rgb(%d, %d, %d)", n.R, n.G, n.B)
}
