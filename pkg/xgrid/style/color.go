// Package style turns workbook cell styling into deduplicated widget style
// records.
package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/source"
)

// rgb is a color with 8-bit channels.
type rgb struct {
	r, g, b int
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

// themeBaseColors is the base color of each theme slot.
var themeBaseColors = map[source.ThemeSlot]rgb{
	source.ThemeText1:             {0, 0, 0},
	source.ThemeText2:             {255, 255, 255},
	source.ThemeBackground1:       {255, 255, 255},
	source.ThemeBackground2:       {0, 0, 0},
	source.ThemeAccent1:           {0, 112, 192},
	source.ThemeAccent2:           {237, 125, 49},
	source.ThemeAccent3:           {255, 192, 0},
	source.ThemeAccent4:           {117, 189, 66},
	source.ThemeAccent5:           {91, 155, 213},
	source.ThemeAccent6:           {255, 0, 0},
	source.ThemeHyperlink:         {5, 99, 193},
	source.ThemeFollowedHyperlink: {149, 79, 114},
}

// ResolveColor returns c as "#RRGGBB", or "" when c is unset, fully
// transparent, malformed, or refers to an unknown theme slot.
func ResolveColor(c source.Color) string {
	if c.Theme != nil {
		base, ok := themeBaseColors[*c.Theme]
		if !ok {
			return ""
		}
		return applyTint(base, c.Tint).hex()
	}
	if c.RGB == "" {
		return ""
	}

	hex := strings.TrimPrefix(strings.TrimSpace(c.RGB), "#")
	switch len(hex) {
	case 8:
		if strings.EqualFold(hex[:2], "00") {
			return ""
		}
		hex = hex[2:]
	case 6:
	default:
		return ""
	}
	v, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return v.hex()
}

// applyTint lightens (tint > 0) or darkens (tint < 0) base.
func applyTint(base rgb, tint float64) rgb {
	tint = math.Max(-1, math.Min(1, tint))
	return rgb{
		r: tintChannel(base.r, tint),
		g: tintChannel(base.g, tint),
		b: tintChannel(base.b, tint),
	}
}

func tintChannel(c int, tint float64) int {
	v := float64(c)
	if tint < 0 {
		v *= 1 + tint
	} else {
		v += (255 - v) * tint
	}
	return int(math.Round(v))
}

// parseHex parses "RRGGBB" (no prefix).
func parseHex(hex string) (rgb, bool) {
	if len(hex) != 6 {
		return rgb{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{int(n >> 16 & 0xFF), int(n >> 8 & 0xFF), int(n & 0xFF)}, true
}
