// Package overlay loads per-sheet overlay values from YAML files.
//
// A file maps sheet names to lists of entries. Each entry targets a cell
// either by A1 address or by 1-based row and column:
//
//	sheets:
//	  Sheet1:
//	    - address: D7
//	      value: "=SUM(D1:D6)"
//	    - row: 3
//	      col: 2
//	      value: "999"
//	      editable: false
package overlay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"gopkg.in/yaml.v3"
)

// File is the document layout of an overlay file.
type File struct {
	Sheets map[string][]Entry `yaml:"sheets"`
}

// Entry is one overlay value. Editable defaults to true.
type Entry struct {
	Address  string `yaml:"address" validate:"required_without=Row"`
	Row      int    `yaml:"row" validate:"required_without=Address,required_with=Col,gte=0"`
	Col      int    `yaml:"col" validate:"required_with=Row,gte=0"`
	Value    string `yaml:"value"`
	Editable *bool  `yaml:"editable"`
}

// ErrTargetMismatch is returned when an entry names both an address and a
// row/col pair that point at different cells.
var ErrTargetMismatch = errors.New("address and row/col target different cells")

// ValidationError reports an invalid overlay entry.
type ValidationError struct {
	Sheet string
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("overlay %s[%d]: %v", e.Sheet, e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads an overlay file from path.
func Load(path string) (map[string][]models.Overlay, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads an overlay document from r.
func Parse(r io.Reader) (map[string][]models.Overlay, error) {
	var doc File
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string][]models.Overlay{}, nil
		}
		return nil, fmt.Errorf("failed to parse overlay file: %w", err)
	}
	return doc.Overlays()
}

// Overlays validates the document and converts it to overlay lists keyed
// by sheet name.
func (doc *File) Overlays() (map[string][]models.Overlay, error) {
	names := make([]string, 0, len(doc.Sheets))
	for name := range doc.Sheets {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make(map[string][]models.Overlay, len(doc.Sheets))
	for _, name := range names {
		entries := doc.Sheets[name]
		list := make([]models.Overlay, 0, len(entries))
		for i, e := range entries {
			o, err := e.overlay()
			if err != nil {
				return nil, &ValidationError{Sheet: name, Index: i, Err: err}
			}
			list = append(list, o)
		}
		result[name] = list
	}
	return result, nil
}

func (e Entry) overlay() (models.Overlay, error) {
	if err := validate.Struct(e); err != nil {
		return models.Overlay{}, err
	}

	editable := true
	if e.Editable != nil {
		editable = *e.Editable
	}

	if e.Row > 0 {
		o, err := models.NewOverlayAt(e.Row, e.Col, e.Value, editable)
		if err != nil {
			return models.Overlay{}, err
		}
		if e.Address != "" {
			addr, err := models.NewOverlay(e.Address, e.Value, editable)
			if err != nil {
				return models.Overlay{}, err
			}
			if addr.Row != e.Row || addr.Col != e.Col {
				return models.Overlay{}, fmt.Errorf("%w: %s is not row %d col %d",
					ErrTargetMismatch, addr.Address, e.Row, e.Col)
			}
		}
		return o, nil
	}

	return models.NewOverlay(e.Address, e.Value, editable)
}
