package model_test

import (
	"testing"
	"time"

	"yachaywasi_backend/internals/features/volunteers/model"
)

func sampleVolunteer() model.VolunteerModel {
	university := "UNMSM"
	quechua := "Intermedio"
	return model.VolunteerModel{
		ID:                 7,
		Name:               "María",
		LastName:           "Quispe",
		Email:              "maria.quispe@example.com",
		PhoneNumber:        "987654321",
		NumIdentification:  "45678912",
		TypeVolunteer:      model.TypeStaff,
		StatusVolunteer:    model.StatusPending,
		WasVoluntary:       true,
		DatePostulation:    time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC),
		HowDidYouFindUs:    "Instagram",
		IDPostulationArea:  3,
		QuechuaLevel:       &quechua,
		ProgramsUniversity: &university,
	}
}

func TestSearchValues(t *testing.T) {
	v := sampleVolunteer()
	got := v.SearchValues()
	want := []string{"María", "Quispe", "maria.quispe@example.com", "987654321", "45678912"}
	if len(got) != len(want) {
		t.Fatalf("SearchValues returned %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SearchValues[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilterValue(t *testing.T) {
	v := sampleVolunteer()

	tests := []struct {
		field  string
		want   string
		wantOK bool
	}{
		{"typeVolunteer", "STAFF", true},
		{"status", "PENDING", true},
		{"area", "3", true},
		{"university", "UNMSM", true},
		{"year", "2025", true},
		{"month", "3", true},
		{"wasVoluntary", "true", true},
		{"quechuaLevel", "Intermedio", true},
		{"howDidYouFindUs", "Instagram", true},
		{"schoolGrades", "", false},
		{"unknown", "", false},
	}
	for _, tt := range tests {
		got, ok := v.FilterValue(tt.field)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FilterValue(%q) = (%q, %v), want (%q, %v)", tt.field, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFilterValueUnsetOptionals(t *testing.T) {
	v := model.VolunteerModel{TypeVolunteer: model.TypeAdviser, StatusVolunteer: model.StatusApproved}

	for _, field := range []string{"university", "quechuaLevel", "schoolGrades", "howDidYouFindUs", "year", "month"} {
		if _, ok := v.FilterValue(field); ok {
			t.Errorf("FilterValue(%q) on unset field reported ok=true", field)
		}
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{model.StatusPending, model.StatusApproved, model.StatusRejected} {
		if !model.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "pending", "DELETED"} {
		if model.ValidStatus(s) {
			t.Errorf("ValidStatus(%q) = true", s)
		}
	}
}
