package style

import "strings"

// Palette lists the colors allowed for borders, in lookup order.
var Palette = []string{
	"#000000", "#FFFFFF",
	"#FF0000", "#00FF00", "#0000FF",
	"#FFFF00", "#00FFFF", "#FF00FF",
	"#C0C0C0", "#808080", "#800000", "#808000",
	"#008000", "#800080", "#008080", "#000080",
}

var paletteRGB = func() []rgb {
	out := make([]rgb, len(Palette))
	for i, hex := range Palette {
		out[i], _ = parseHex(hex[1:])
	}
	return out
}()

// SnapToPalette returns the palette color nearest to hex ("#RRGGBB") by
// squared RGB distance. The first entry wins ties. Unparseable input maps
// to black.
func SnapToPalette(hex string) string {
	for _, p := range Palette {
		if strings.EqualFold(p, hex) {
			return p
		}
	}

	c, ok := parseHex(strings.TrimPrefix(hex, "#"))
	if !ok {
		return Palette[0]
	}

	best, bestDist := 0, -1
	for i, p := range paletteRGB {
		dr, dg, db := c.r-p.r, c.g-p.g, c.b-p.b
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return Palette[best]
}
