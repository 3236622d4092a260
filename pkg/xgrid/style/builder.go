package style

import (
	"math"
	"strings"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/source"
)

const defaultBorderColor = "#000000"

// Build extracts the widget style record of one cell.
func Build(cs source.CellStyle) models.Style {
	var st models.Style

	st.BgColor = ResolveColor(cs.Fill)
	st.Color = ResolveColor(cs.Font.Color)

	font := models.Font{
		Name:      cs.Font.Name,
		Bold:      cs.Font.Bold,
		Italic:    cs.Font.Italic,
		Underline: cs.Font.Underline,
	}
	if cs.Font.Size > 0 {
		font.Size = int(math.Round(cs.Font.Size))
	}
	if font != (models.Font{}) {
		st.Font = &font
	}

	switch h := strings.ToLower(cs.Horizontal); h {
	case "left", "center", "right":
		st.Align = h
	}
	st.VAlign = verticalAlign(cs.Vertical)

	border := models.Border{
		Top:    borderSide(cs.Top),
		Bottom: borderSide(cs.Bottom),
		Left:   borderSide(cs.Left),
		Right:  borderSide(cs.Right),
	}
	if !border.Empty() {
		st.Border = &border
	}

	return st
}

func verticalAlign(v string) string {
	switch strings.ToLower(v) {
	case "top":
		return "top"
	case "bottom":
		return "bottom"
	}
	return "middle"
}

// borderSide maps one border line to [kind, ARGB], or nil when absent.
func borderSide(line source.BorderLine) *models.BorderSide {
	var kind string
	switch line.Kind {
	case source.BorderNone:
		return nil
	case source.BorderMedium:
		kind = "medium"
	case source.BorderThick:
		kind = "thick"
	default:
		kind = "thin"
	}

	hex := ResolveColor(line.Color)
	if hex == "" {
		hex = defaultBorderColor
	}
	hex = SnapToPalette(hex)

	return &models.BorderSide{kind, "FF" + strings.ToUpper(strings.TrimPrefix(hex, "#"))}
}
