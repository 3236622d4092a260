package source

import (
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

// excelBorderKinds maps excelize border style numbers to border kinds.
var excelBorderKinds = map[int]BorderKind{
	0:  BorderNone,
	1:  BorderThin,
	2:  BorderMedium,
	3:  BorderDashed,
	4:  BorderDotted,
	5:  BorderThick,
	6:  BorderDouble,
	7:  BorderHair,
	8:  BorderMediumDashed,
	9:  BorderDashDot,
	10: BorderMediumDashDot,
	11: BorderDashDotDot,
	12: BorderMediumDashDotDot,
	13: BorderSlantDashDot,
}

// ExcelBorderStyle returns the excelize style number of a border kind, or
// 0 for unknown kinds.
func ExcelBorderStyle(kind BorderKind) int {
	for n, k := range excelBorderKinds {
		if k == kind && kind != BorderNone {
			return n
		}
	}
	return 0
}

func convertStyle(st *excelize.Style) CellStyle {
	var cs CellStyle

	if (st.Fill.Pattern > 0 || st.Fill.Type == "gradient") && len(st.Fill.Color) > 0 {
		cs.Fill = RGBColor(st.Fill.Color[0])
	}

	if fnt := st.Font; fnt != nil {
		cs.Font = Font{
			Name:      fnt.Family,
			Size:      fnt.Size,
			Bold:      fnt.Bold,
			Italic:    fnt.Italic,
			Underline: fnt.Underline != "" && fnt.Underline != "none",
		}
		switch {
		case fnt.ColorTheme != nil:
			cs.Font.Color = ThemeColor(ThemeSlot(*fnt.ColorTheme), fnt.ColorTint)
		case fnt.Color != "":
			cs.Font.Color = RGBColor(fnt.Color)
		case fnt.ColorIndexed > 0 && fnt.ColorIndexed < len(excelize.IndexedColorMapping):
			cs.Font.Color = RGBColor(excelize.IndexedColorMapping[fnt.ColorIndexed])
		}
	}

	if al := st.Alignment; al != nil {
		cs.Horizontal = al.Horizontal
		cs.Vertical = al.Vertical
	}

	for _, b := range st.Border {
		line := BorderLine{Kind: excelBorderKinds[b.Style]}
		if b.Color != "" {
			line.Color = RGBColor(b.Color)
		}
		switch b.Type {
		case "top":
			cs.Top = line
		case "bottom":
			cs.Bottom = line
		case "left":
			cs.Left = line
		case "right":
			cs.Right = line
		}
	}

	return cs
}

// Built-in number formats that carry a calendar date. Time-only formats
// (18-21, 45-47) are left out so time-of-day values stay numeric.
var builtinDateFormats = map[int]bool{
	14: true, 15: true, 16: true, 17: true, 22: true,
}

var (
	quotedSection  = regexp.MustCompile(`"[^"]*"|\[[^\]]*\]|\\.|am/pm|a/p`)
	dateFormatCode = regexp.MustCompile(`[yd]|m+/|/m+`)
)

func isDateNumFmt(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		code := quotedSection.ReplaceAllString(strings.ToLower(*custom), "")
		return dateFormatCode.MatchString(code)
	}
	return builtinDateFormats[numFmt]
}
