// Package xgrid converts xlsx workbooks into the JSON grid model of a
// browser spreadsheet widget and back.
package xgrid

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
	"go.uber.org/zap"
)

// Options configures conversion behavior.
type Options struct {
	// Overlays maps sheet names to values written over template cells.
	Overlays map[string][]models.Overlay
	// MergeColumns lists 0-based columns whose vertical runs of identical
	// text are merged. Empty disables auto-merge.
	MergeColumns []int `validate:"dive,gte=0"`
	// Parallel converts sheets concurrently.
	Parallel bool
	// Logger receives debug and warning output. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the options for invalid values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// ShouldAutoMerge reports whether auto-merge is enabled.
func (o Options) ShouldAutoMerge() bool {
	return len(o.MergeColumns) > 0
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
