package service

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows ...[]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

func TestReadXLSXRows(t *testing.T) {
	data := workbookBytes(t,
		[]interface{}{"code", "name", "lastName", "dni"},
		[]interface{}{"B-001", "Ana", "Flores", "71234567"},
		[]interface{}{"B-002", "José", "Huamán", "72345678"},
	)

	records, err := readXLSXRows(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("readXLSXRows: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d rows, want 3", len(records))
	}
	if records[0][0] != "code" || records[1][0] != "B-001" || records[2][3] != "72345678" {
		t.Fatalf("grid misread: %v", records)
	}

	reqs, errs := ParseImportRows(records)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(reqs) != 2 || reqs[0].Code != "B-001" || reqs[1].LastName != "Huamán" {
		t.Fatalf("workbook rows misparsed: %+v", reqs)
	}
}

func TestImportXLSXReportsBadRowsWithoutWriting(t *testing.T) {
	// every data row is invalid, so no DB write is attempted
	data := workbookBytes(t,
		[]interface{}{"code", "name", "lastName", "dni"},
		[]interface{}{"B-001", "", "Flores", "71234567"},
	)

	report, err := ImportXLSX(nil, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ImportXLSX: %v", err)
	}
	if report.Imported != 0 || report.Skipped != 1 || len(report.Errors) != 1 {
		t.Fatalf("report = %+v, want 0 imported, 1 skipped", report)
	}
}

func TestImportXLSXRejectsGarbage(t *testing.T) {
	if _, err := ImportXLSX(nil, bytes.NewReader([]byte("not a workbook"))); err == nil {
		t.Fatal("garbage input must fail, not import")
	}
}
