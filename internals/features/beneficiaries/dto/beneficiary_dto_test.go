package dto_test

import (
	"testing"

	"yachaywasi_backend/internals/features/beneficiaries/dto"
	"yachaywasi_backend/internals/features/beneficiaries/model"
)

func strptr(s string) *string { return &s }

func TestCreateToModel(t *testing.T) {
	req := dto.CreateBeneficiaryRequest{
		Code:     "B-010",
		Name:     "Ana",
		LastName: "Flores",
		DNI:      "71234567",
		BirthDate: strptr("2012-05-20"),
		BeneficiaryLanguage: []dto.LanguageInput{
			{Language: "Quechua"},
			{Language: "Otro", CustomLanguageName: strptr("Shipibo")},
		},
		Schedules: []dto.ScheduleInput{
			{DayOfWeek: "Monday", PeriodTime: "8-10"},
		},
	}

	b := req.ToModel()
	if b.EnrollmentStatus != model.EnrollmentPending {
		t.Errorf("new beneficiary status = %q, want %q", b.EnrollmentStatus, model.EnrollmentPending)
	}
	if b.BirthDate == nil {
		t.Fatal("birth date not parsed")
	}
	if len(b.BeneficiaryLanguage) != 2 {
		t.Fatalf("got %d languages, want 2", len(b.BeneficiaryLanguage))
	}
	if b.BeneficiaryLanguage[1].CustomLanguageName == nil || *b.BeneficiaryLanguage[1].CustomLanguageName != "Shipibo" {
		t.Errorf("custom language lost: %+v", b.BeneficiaryLanguage[1])
	}
	if len(b.Schedules) != 1 || b.Schedules[0].DayOfWeek != "Monday" {
		t.Errorf("schedule mapping wrong: %+v", b.Schedules)
	}
}

func TestUpdateFlattensOnlySetFields(t *testing.T) {
	wspp := true
	hours := 6
	req := dto.UpdateBeneficiaryRequest{
		Name:             strptr("Rosa"),
		IsAddGroupWspp:   &wspp,
		HoursAsesoria:    &hours,
		EnrollmentStatus: strptr(model.EnrollmentEnrolled),
	}

	got := req.Updates()
	if len(got) != 4 {
		t.Fatalf("Updates() has %d entries, want 4: %v", len(got), got)
	}
	if got["name"] != "Rosa" {
		t.Errorf("name = %v", got["name"])
	}
	if got["is_add_group_wspp"] != true {
		t.Errorf("is_add_group_wspp = %v", got["is_add_group_wspp"])
	}
	if got["hours_asesoria"] != 6 {
		t.Errorf("hours_asesoria = %v", got["hours_asesoria"])
	}
	if got["enrollment_status"] != model.EnrollmentEnrolled {
		t.Errorf("enrollment_status = %v", got["enrollment_status"])
	}
}

func TestUpdateEmptyRequest(t *testing.T) {
	if got := (dto.UpdateBeneficiaryRequest{}).Updates(); len(got) != 0 {
		t.Fatalf("empty request produced updates: %v", got)
	}
}

func TestValidEnrollmentStatus(t *testing.T) {
	for _, s := range model.EnrollmentStatusValues {
		if !model.ValidEnrollmentStatus(s) {
			t.Errorf("ValidEnrollmentStatus(%q) = false", s)
		}
	}
	if model.ValidEnrollmentStatus("Rechazado") {
		t.Error("unknown status accepted")
	}
}
