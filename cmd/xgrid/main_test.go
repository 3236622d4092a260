package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	outputPath, pretty, overlayPath, mergeCols, sheetsDir, parallel, verbose = "", false, "", nil, "", false, false

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeWorkbook(t *testing.T, dir string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	f.SetCellStr("Sheet1", "A1", "East")
	f.SetCellStr("Sheet1", "A2", "East")
	f.SetCellStr("Sheet1", "B1", "template")

	path := filepath.Join(dir, "in.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	return path
}

func TestConvertAndExport(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir)

	overlayFile := filepath.Join(dir, "overlay.yaml")
	yamlDoc := "sheets:\n  Sheet1:\n    - address: B1\n      value: \"filled\"\n      editable: false\n"
	if err := os.WriteFile(overlayFile, []byte(yamlDoc), 0644); err != nil {
		t.Fatalf("failed to write overlay: %v", err)
	}

	jsonPath := filepath.Join(dir, "out.json")
	if _, err := runCLI(t, "convert", input, "-o", jsonPath, "--merge-cols", "0", "--overlay", overlayFile); err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	text := string(data)
	for _, want := range []string{`"merges":["A1:A2"]`, `"text":"filled"`, `"rowLen":4`} {
		if !strings.Contains(text, want) {
			t.Errorf("expected output to contain %s, got %s", want, text)
		}
	}

	xlsxPath := filepath.Join(dir, "back.xlsx")
	if _, err := runCLI(t, "export", jsonPath, "-o", xlsxPath); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		t.Fatalf("failed to open exported workbook: %v", err)
	}
	defer f.Close()
	if v, _ := f.GetCellValue("Sheet1", "B1"); v != "filled" {
		t.Errorf("expected B1 = filled, got %q", v)
	}
}

func TestConvertToStdoutAndSheetsDir(t *testing.T) {
	dir := t.TempDir()
	input := writeWorkbook(t, dir)

	out, err := runCLI(t, "convert", input, "--pretty")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.Contains(out, "\"config\": {") {
		t.Errorf("expected pretty JSON on stdout, got %s", out)
	}

	sheets := filepath.Join(dir, "sheets")
	out, err = runCLI(t, "convert", input, "--sheets-dir", sheets, "--parallel")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if out != "" {
		t.Errorf("expected no stdout output with --sheets-dir, got %s", out)
	}
	if _, err := os.Stat(filepath.Join(sheets, "Sheet1.json")); err != nil {
		t.Errorf("expected per-sheet file: %v", err)
	}
}

func TestCLIErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, "convert", filepath.Join(dir, "missing.xlsx")); err == nil {
		t.Error("expected error for missing input")
	}
	if _, err := runCLI(t, "convert", writeWorkbook(t, dir), "--merge-cols", "-1"); err == nil {
		t.Error("expected error for negative merge column")
	}
	if _, err := runCLI(t, "export", filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error without --output")
	}
}
