package service_test

import (
	"strings"
	"testing"

	"yachaywasi_backend/internals/features/beneficiaries/service"
)

func rows(lines ...string) [][]string {
	var out [][]string
	for _, l := range lines {
		out = append(out, strings.Split(l, ","))
	}
	return out
}

func TestParseImportRows(t *testing.T) {
	reqs, errs := service.ParseImportRows(rows(
		"code,name,lastName,dni,institution,hoursAsesoria,isWhatsApp",
		"B-001,Ana,Flores,71234567,IE 1234,4,sí",
		"B-002,José,Huamán,72345678,,,",
	))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(reqs) != 2 {
		t.Fatalf("got %d rows, want 2", len(reqs))
	}

	first := reqs[0]
	if first.Code != "B-001" || first.Name != "Ana" || first.LastName != "Flores" || first.DNI != "71234567" {
		t.Errorf("required fields wrong: %+v", first)
	}
	if first.Institution == nil || *first.Institution != "IE 1234" {
		t.Errorf("institution = %v, want IE 1234", first.Institution)
	}
	if first.HoursAsesoria == nil || *first.HoursAsesoria != 4 {
		t.Errorf("hoursAsesoria = %v, want 4", first.HoursAsesoria)
	}
	if !first.IsWhatsApp {
		t.Error("isWhatsApp not parsed from 'sí'")
	}

	second := reqs[1]
	if second.Institution != nil {
		t.Errorf("empty institution should stay nil, got %v", *second.Institution)
	}
	if second.HoursAsesoria != nil {
		t.Error("empty hoursAsesoria should stay nil")
	}
}

func TestParseImportRowsColumnOrderFree(t *testing.T) {
	reqs, errs := service.ParseImportRows(rows(
		"dni,lastName,code,name",
		"71234567,Flores,B-001,Ana",
	))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if reqs[0].Code != "B-001" || reqs[0].DNI != "71234567" {
		t.Errorf("reordered columns misread: %+v", reqs[0])
	}
}

func TestParseImportRowsMissingRequiredColumn(t *testing.T) {
	reqs, errs := service.ParseImportRows(rows(
		"code,name,lastName",
		"B-001,Ana,Flores",
	))
	if len(reqs) != 0 {
		t.Fatalf("rows parsed despite missing dni column: %v", reqs)
	}
	if len(errs) != 1 || !strings.Contains(errs[0], "dni") {
		t.Fatalf("want one error naming dni, got %v", errs)
	}
}

func TestParseImportRowsBadRowsReportedGoodRowsKept(t *testing.T) {
	reqs, errs := service.ParseImportRows(rows(
		"code,name,lastName,dni,hoursAsesoria",
		"B-001,Ana,Flores,71234567,4",
		"B-002,,Huamán,72345678,",
		"B-003,José,Huamán,72345678,abc",
		"B-004,Rosa,Ccopa,73456789,",
	))
	if len(reqs) != 2 {
		t.Fatalf("got %d good rows, want 2 (errors: %v)", len(reqs), errs)
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if !strings.Contains(errs[0], "fila 3") {
		t.Errorf("first error should name row 3: %q", errs[0])
	}
	if !strings.Contains(errs[1], "fila 4") {
		t.Errorf("second error should name row 4: %q", errs[1])
	}
}

func TestParseImportRowsEmptyFile(t *testing.T) {
	reqs, errs := service.ParseImportRows(nil)
	if len(reqs) != 0 || len(errs) != 1 {
		t.Fatalf("empty input: reqs=%v errs=%v", reqs, errs)
	}
}
