package overlay

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ukaji3/xgrid-go/pkg/xgrid/address"
	"github.com/ukaji3/xgrid-go/pkg/xgrid/models"
)

const sample = `
sheets:
  Sheet1:
    - address: d7
      value: "=SUM(D1:D6)"
    - row: 3
      col: 2
      value: "999"
      editable: false
  Summary:
    - address: A1
      value: "total"
      editable: true
`

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	expected := map[string][]models.Overlay{
		"Sheet1": {
			{Address: "D7", Row: 7, Col: 4, Value: "=SUM(D1:D6)", Editable: true},
			{Address: "B3", Row: 3, Col: 2, Value: "999", Editable: false},
		},
		"Summary": {
			{Address: "A1", Row: 1, Col: 1, Value: "total", Editable: true},
		},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Parse() = %+v, expected %+v", got, expected)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatalf("failed to write overlay file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got["Sheet1"]) != 2 || len(got["Summary"]) != 1 {
		t.Errorf("unexpected overlays: %+v", got)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse(strings.NewReader(""))
	if err != nil || len(got) != 0 {
		t.Errorf("expected empty overlays, got %v (%v)", got, err)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no target", "sheets:\n  S:\n    - value: x\n"},
		{"row without col", "sheets:\n  S:\n    - row: 2\n      value: x\n"},
		{"col without row", "sheets:\n  S:\n    - address: A1\n      col: 2\n"},
		{"negative row", "sheets:\n  S:\n    - row: -1\n      col: 2\n"},
		{"bad address", "sheets:\n  S:\n    - address: 1A\n"},
		{"mismatched address", "sheets:\n  S:\n    - row: 5\n      col: 1\n      address: D7\n"},
	}

	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.input))
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Errorf("%s: expected ValidationError, got %v", tt.name, err)
			continue
		}
		if verr.Sheet != "S" || verr.Index != 0 {
			t.Errorf("%s: unexpected location %s[%d]", tt.name, verr.Sheet, verr.Index)
		}
	}

	_, err := Parse(strings.NewReader("sheets:\n  S:\n    - row: 5\n      col: 1\n      address: D7\n"))
	if !errors.Is(err, ErrTargetMismatch) {
		t.Errorf("expected ErrTargetMismatch, got %v", err)
	}
	got, err := Parse(strings.NewReader("sheets:\n  S:\n    - row: 7\n      col: 4\n      address: d7\n"))
	if err != nil || len(got["S"]) != 1 || got["S"][0].Address != "D7" {
		t.Errorf("expected agreeing address and row/col to load, got %v (%v)", got, err)
	}

	var ferr *address.FormatError
	_, err = Parse(strings.NewReader("sheets:\n  S:\n    - address: \"A1:B2\"\n"))
	if !errors.As(err, &ferr) {
		t.Errorf("expected FormatError, got %v", err)
	}

	if _, err := Parse(strings.NewReader("sheets: [1, 2")); err == nil {
		t.Error("expected YAML syntax error")
	}
}
