package models

// BorderSide is a border definition: [kind, ARGB hex], e.g. ["thin", "FF000000"].
type BorderSide [2]string

// Kind returns the border kind (thin, medium, thick).
func (b BorderSide) Kind() string { return b[0] }

// Color returns the ARGB hex color.
func (b BorderSide) Color() string { return b[1] }

// Border groups the four border sides. Absent sides are nil.
type Border struct {
	Top    *BorderSide `json:"top,omitempty"`
	Left   *BorderSide `json:"left,omitempty"`
	Right  *BorderSide `json:"right,omitempty"`
	Bottom *BorderSide `json:"bottom,omitempty"`
}

// Empty reports whether no side is set.
func (b *Border) Empty() bool {
	return b == nil || (b.Top == nil && b.Left == nil && b.Right == nil && b.Bottom == nil)
}

// Equal compares two borders structurally.
func (b *Border) Equal(o *Border) bool {
	if b.Empty() || o.Empty() {
		return b.Empty() && o.Empty()
	}
	return sideEqual(b.Top, o.Top) && sideEqual(b.Left, o.Left) &&
		sideEqual(b.Right, o.Right) && sideEqual(b.Bottom, o.Bottom)
}

func sideEqual(a, b *BorderSide) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Font holds font attributes. Zero values are omitted on the wire.
type Font struct {
	Name      string `json:"fontName,omitempty"`
	Bold      bool   `json:"bold,omitempty"`
	Italic    bool   `json:"italic,omitempty"`
	Underline bool   `json:"underline,omitempty"`
	Size      int    `json:"size,omitempty"`
}

// Empty reports whether no attribute is set.
func (f *Font) Empty() bool {
	return f == nil || *f == Font{}
}

// Equal compares two fonts structurally.
func (f *Font) Equal(o *Font) bool {
	if f.Empty() || o.Empty() {
		return f.Empty() && o.Empty()
	}
	return *f == *o
}

// Style is the visual style record of a cell. The zero value is the empty
// style reserved at index 0 of every sheet's style table.
type Style struct {
	// BgColor is the background color as #RRGGBB.
	BgColor string `json:"bgcolor,omitempty"`
	// Color is the font color as #RRGGBB.
	Color string `json:"color,omitempty"`
	Font  *Font  `json:"font,omitempty"`
	// Align is left, center or right.
	Align string `json:"align,omitempty"`
	// VAlign is top, middle or bottom.
	VAlign string  `json:"valign,omitempty"`
	Border *Border `json:"border,omitempty"`
}

// Equal compares two styles field by field. Nil and empty sub-records are
// considered equal.
func (s Style) Equal(o Style) bool {
	return s.BgColor == o.BgColor &&
		s.Color == o.Color &&
		s.Align == o.Align &&
		s.VAlign == o.VAlign &&
		s.Font.Equal(o.Font) &&
		s.Border.Equal(o.Border)
}

// IsEmpty reports whether the style carries no attribute.
func (s Style) IsEmpty() bool {
	return s.Equal(Style{})
}
