package parser

import (
	"strings"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
)

// ResolveOverlays picks the overlay list for a sheet. An entry keyed by the
// sheet name wins. Otherwise, when the map holds exactly one entry and the
// workbook has exactly one sheet, that entry applies regardless of its key.
// The second return value reports whether the fallback was used.
func ResolveOverlays(overlays map[string][]models.Overlay, sheetName string, sheetCount int) ([]models.Overlay, bool) {
	if list, ok := overlays[sheetName]; ok {
		return list, false
	}
	if len(overlays) == 1 && sheetCount == 1 {
		for _, list := range overlays {
			return list, true
		}
	}
	return nil, false
}

// overlayIndex looks up overlays by position and by address. Positional
// matches take precedence; within each key the first entry wins.
type overlayIndex struct {
	byPos  map[[2]int]*models.Overlay
	byAddr map[string]*models.Overlay
}

func newOverlayIndex(list []models.Overlay) *overlayIndex {
	idx := &overlayIndex{
		byPos:  make(map[[2]int]*models.Overlay, len(list)),
		byAddr: make(map[string]*models.Overlay, len(list)),
	}
	for i := range list {
		o := &list[i]
		if o.HasPosition() {
			key := [2]int{o.Row, o.Col}
			if _, ok := idx.byPos[key]; !ok {
				idx.byPos[key] = o
			}
		}
		if o.Address != "" {
			key := strings.ToUpper(o.Address)
			if _, ok := idx.byAddr[key]; !ok {
				idx.byAddr[key] = o
			}
		}
	}
	return idx
}

// lookup returns the overlay for the 1-based cell (row, col) at addr.
func (idx *overlayIndex) lookup(row, col int, addr string) *models.Overlay {
	if o, ok := idx.byPos[[2]int{row, col}]; ok {
		return o
	}
	return idx.byAddr[addr]
}

func (idx *overlayIndex) empty() bool {
	return len(idx.byPos) == 0 && len(idx.byAddr) == 0
}
