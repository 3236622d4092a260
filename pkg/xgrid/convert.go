package xgrid

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/parser"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/source"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Convert converts the workbook at path into the widget grid model.
func Convert(path string, opts Options) (*models.WorkbookView, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	wb, err := source.Open(path, opts.logger())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer wb.Close()

	return convertView(wb, opts)
}

// ConvertReader converts a workbook read from r.
func ConvertReader(r io.Reader, opts Options) (*models.WorkbookView, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	wb, err := source.OpenReader(r, opts.logger())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer wb.Close()

	return convertView(wb, opts)
}

func convertView(wb source.Workbook, opts Options) (*models.WorkbookView, error) {
	sheets, err := ConvertWorkbook(wb, opts)
	if err != nil {
		return nil, err
	}
	return models.NewWorkbookView(sheets), nil
}

// ConvertWorkbook converts every sheet of wb, keeping workbook order.
func ConvertWorkbook(wb source.Workbook, opts Options) ([]models.ViewSheet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	sheets, err := wb.Sheets()
	if err != nil {
		return nil, NewConversionError("", "read", err)
	}

	result := make([]models.ViewSheet, len(sheets))
	transformer := parser.NewTransformer(log)

	if !opts.Parallel || len(sheets) < 2 {
		for i, ws := range sheets {
			vs, err := convertSheet(transformer, ws, len(sheets), opts, log)
			if err != nil {
				return nil, err
			}
			result[i] = *vs
		}
		return result, nil
	}

	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, ws := range sheets {
		g.Go(func() error {
			vs, err := convertSheet(transformer, ws, len(sheets), opts, log)
			if err != nil {
				return err
			}
			result[i] = *vs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// convertSheet transforms one sheet and applies auto-merge. A panic while
// processing the sheet is reported as a ConversionError.
func convertSheet(t *parser.Transformer, ws source.Sheet, sheetCount int, opts Options, log *zap.Logger) (vs *models.ViewSheet, err error) {
	name := ws.Name()
	component := "transform"

	defer func() {
		if r := recover(); r != nil {
			vs = nil
			err = NewConversionError(name, component, fmt.Errorf("%v", r))
		}
	}()

	overlays, fallback := parser.ResolveOverlays(opts.Overlays, name, sheetCount)
	if fallback {
		log.Debug("applying the only overlay list to the only sheet",
			zap.String("sheet", name))
	}

	vs = t.Transform(ws, overlays)

	if opts.ShouldAutoMerge() {
		component = "merge"
		parser.AutoMerge(vs, opts.MergeColumns, log)
	}

	return vs, nil
}
