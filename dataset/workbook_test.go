package dataset

import (
	"path/filepath"
	"testing"

	. "github.com/fulldump/biff"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows ...[]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row %d: %v", i, err)
		}
	}

	filename := filepath.Join(t.TempDir(), "schemes.xlsx")
	if err := f.SaveAs(filename); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	return filename
}

func TestLoad_Workbook(t *testing.T) {

	filename := writeWorkbook(t,
		[]any{"code", "name", "nav"},
		[]any{120828, "Quant Small Cap", 245.5},
		[]any{119063, "Nippon India Small Cap"},
		[]any{125497, "SBI Small Cap", 150.25},
	)

	rows, err := Load(filename, 2)

	AssertNil(err)
	AssertEqualJson(rows, []map[string]any{
		{"code": 120828, "name": "Quant Small Cap", "nav": 245.5},
		{"code": 119063, "name": "Nippon India Small Cap", "nav": ""},
	})
}

func TestLoad_WorkbookExtraCells(t *testing.T) {

	filename := writeWorkbook(t,
		[]any{"code"},
		[]any{1, "orphan"},
	)

	rows, err := Load(filename, DefaultLimit)

	AssertNil(err)
	AssertEqual(rows[0].Columns(), []string{"code", "Unnamed: 1"})
}

func TestLoad_WorkbookEmpty(t *testing.T) {

	filename := writeWorkbook(t)

	_, err := Load(filename, DefaultLimit)

	AssertEqual(err, ErrNoColumns)
}

func TestLoad_WorkbookCorrupted(t *testing.T) {

	filename := writeFile(t, "broken.xlsx", "this is not a zip archive")

	rows, err := Load(filename, DefaultLimit)

	AssertNil(rows)
	AssertNotNil(err)
}
