package source

// ThemeSlot indexes the workbook theme color scheme (ECMA-376 order).
type ThemeSlot int

// Theme color slots.
const (
	ThemeBackground1 ThemeSlot = iota
	ThemeText1
	ThemeBackground2
	ThemeText2
	ThemeAccent1
	ThemeAccent2
	ThemeAccent3
	ThemeAccent4
	ThemeAccent5
	ThemeAccent6
	ThemeHyperlink
	ThemeFollowedHyperlink
)

// Color references either a direct RGB value or a theme slot with a tint.
// The zero value means no color.
type Color struct {
	// RGB is "RRGGBB" or "AARRGGBB", with or without a leading '#'.
	RGB string
	// Theme is set for theme-relative colors.
	Theme *ThemeSlot
	// Tint lightens (> 0) or darkens (< 0) a theme color, in [-1, 1].
	Tint float64
}

// RGBColor returns a direct color.
func RGBColor(hex string) Color {
	return Color{RGB: hex}
}

// ThemeColor returns a theme-relative color.
func ThemeColor(slot ThemeSlot, tint float64) Color {
	return Color{Theme: &slot, Tint: tint}
}

// IsZero reports whether no color is set.
func (c Color) IsZero() bool {
	return c.RGB == "" && c.Theme == nil
}

// BorderKind is the line style of a border side.
type BorderKind string

// Border kinds as named in SpreadsheetML.
const (
	BorderNone             BorderKind = ""
	BorderThin             BorderKind = "thin"
	BorderMedium           BorderKind = "medium"
	BorderDashed           BorderKind = "dashed"
	BorderDotted           BorderKind = "dotted"
	BorderThick            BorderKind = "thick"
	BorderDouble           BorderKind = "double"
	BorderHair             BorderKind = "hair"
	BorderMediumDashed     BorderKind = "mediumDashed"
	BorderDashDot          BorderKind = "dashDot"
	BorderMediumDashDot    BorderKind = "mediumDashDot"
	BorderDashDotDot       BorderKind = "dashDotDot"
	BorderMediumDashDotDot BorderKind = "mediumDashDotDot"
	BorderSlantDashDot     BorderKind = "slantDashDot"
)

// BorderLine is one side of a cell border.
type BorderLine struct {
	Kind  BorderKind
	Color Color
}

// Font holds font attributes.
type Font struct {
	Name      string
	Size      float64
	Bold      bool
	Italic    bool
	Underline bool
	Color     Color
}

// CellStyle holds the styling attributes the converter understands.
type CellStyle struct {
	Fill Color
	Font Font
	// Horizontal is the SpreadsheetML horizontal alignment (left, center,
	// right, general, justify, fill, ...), "" when unset.
	Horizontal string
	// Vertical is the SpreadsheetML vertical alignment (top, center,
	// bottom, justify, distributed), "" when unset.
	Vertical string
	Top      BorderLine
	Bottom   BorderLine
	Left     BorderLine
	Right    BorderLine
}
