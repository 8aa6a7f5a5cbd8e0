package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/beneficiaries/dto"
)

/* ===============================
   Bulk import (upload-excel)
=================================*/

// The console uploads the enrollment workbook (xlsx) or its CSV export.
// The header row names the columns (same keys as the JSON payload);
// column order is free, unknown columns are ignored.

var requiredImportColumns = []string{"code", "name", "lastName", "dni"}

// ParseImportRows turns raw CSV records into create requests. The first
// record is the header. Bad rows are reported, not fatal: the good rows
// still import.
func ParseImportRows(records [][]string) ([]dto.CreateBeneficiaryRequest, []string) {
	if len(records) == 0 {
		return nil, []string{"archivo vacío"}
	}

	header := map[string]int{}
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}
	for _, col := range requiredImportColumns {
		if _, ok := header[col]; !ok {
			return nil, []string{fmt.Sprintf("falta la columna obligatoria %q", col)}
		}
	}

	cell := func(row []string, col string) string {
		i, ok := header[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	optional := func(row []string, col string) *string {
		if v := cell(row, col); v != "" {
			return &v
		}
		return nil
	}

	var (
		reqs   []dto.CreateBeneficiaryRequest
		errs   []string
		rowNum = 1
	)
	for _, row := range records[1:] {
		rowNum++

		req := dto.CreateBeneficiaryRequest{
			Code:     cell(row, "code"),
			Name:     cell(row, "name"),
			LastName: cell(row, "lastName"),
			DNI:      cell(row, "dni"),
		}
		if req.Code == "" || req.Name == "" || req.LastName == "" || req.DNI == "" {
			errs = append(errs, fmt.Sprintf("fila %d: code, name, lastName y dni son obligatorios", rowNum))
			continue
		}

		req.Degree = optional(row, "degree")
		req.Institution = optional(row, "institution")
		req.ModalityStudent = optional(row, "modalityStudent")
		req.BirthDate = optional(row, "birthDate")
		req.Gender = optional(row, "gender")
		req.Parentesco = optional(row, "parentesco")
		req.NameRepresentative = optional(row, "nameRepresentative")
		req.LastNameRepresentative = optional(row, "lastNameRepresentative")
		req.LearningLevel = optional(row, "learningLevel")
		req.PhoneNumberMain = optional(row, "phoneNumberMain")
		req.AdditionalNotes = optional(row, "additionalNotes")

		if v := cell(row, "hoursAsesoria"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Sprintf("fila %d: hoursAsesoria inválido: %q", rowNum, v))
				continue
			}
			req.HoursAsesoria = &n
		}
		if v := cell(row, "isWhatsApp"); v != "" {
			req.IsWhatsApp = parseBool(v)
		}
		if v := cell(row, "isAddGroupWspp"); v != "" {
			req.IsAddGroupWspp = parseBool(v)
		}
		if v := cell(row, "isAddEquipment"); v != "" {
			req.IsAddEquipment = parseBool(v)
		}

		reqs = append(reqs, req)
	}
	return reqs, errs
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "sí", "si", "yes":
		return true
	}
	return false
}

// ImportXLSX reads the first sheet of the uploaded workbook and creates
// one beneficiary per valid row.
func ImportXLSX(db *gorm.DB, r io.Reader) (dto.ImportReport, error) {
	records, err := readXLSXRows(r)
	if err != nil {
		return dto.ImportReport{}, err
	}
	return importRows(db, records), nil
}

// ImportCSV handles the same sheet exported as CSV.
func ImportCSV(db *gorm.DB, r io.Reader) (dto.ImportReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return dto.ImportReport{}, err
	}
	return importRows(db, records), nil
}

func readXLSXRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetRows(f.GetSheetName(0))
}

// importRows ingests parsed records. Duplicate codes are skipped and
// reported alongside the parse errors.
func importRows(db *gorm.DB, records [][]string) dto.ImportReport {
	reqs, errs := ParseImportRows(records)
	report := dto.ImportReport{Errors: errs}

	for _, req := range reqs {
		if _, err := Create(db, req); err != nil {
			msg := "error al crear"
			if errors.Is(err, ErrDuplicateCode) {
				msg = "código duplicado"
			}
			report.Errors = append(report.Errors, fmt.Sprintf("código %s: %s", req.Code, msg))
			continue
		}
		report.Imported++
	}
	report.Skipped = len(report.Errors)
	return report
}
