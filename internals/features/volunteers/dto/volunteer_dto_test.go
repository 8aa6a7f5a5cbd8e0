package dto_test

import (
	"testing"
	"time"

	"yachaywasi_backend/internals/features/volunteers/dto"
	"yachaywasi_backend/internals/features/volunteers/model"
)

func strptr(s string) *string { return &s }

func TestUpdatesOnlySetFields(t *testing.T) {
	status := true
	req := dto.UpdateVolunteerRequest{
		Name:         strptr("Rosa"),
		QuechuaLevel: strptr("Avanzado"),
		WasVoluntary: &status,
	}

	got := req.Updates()
	if len(got) != 3 {
		t.Fatalf("Updates() has %d entries, want 3: %v", len(got), got)
	}
	if got["name"] != "Rosa" {
		t.Errorf("name = %v, want Rosa", got["name"])
	}
	if got["quechua_level"] != "Avanzado" {
		t.Errorf("quechua_level = %v, want Avanzado", got["quechua_level"])
	}
	if got["was_voluntary"] != true {
		t.Errorf("was_voluntary = %v, want true", got["was_voluntary"])
	}
}

func TestUpdatesEmptyRequest(t *testing.T) {
	if got := (dto.UpdateVolunteerRequest{}).Updates(); len(got) != 0 {
		t.Fatalf("empty request produced updates: %v", got)
	}
}

func TestToModelDefaults(t *testing.T) {
	req := dto.CreateVolunteerRequest{
		Name:               "Luis",
		LastName:           "Mamani",
		Email:              "luis@example.com",
		BirthDate:          "2001-07-15",
		PhoneNumber:        "912345678",
		TypeIdentification: "DNI",
		NumIdentification:  "71234567",
		TypeVolunteer:      model.TypeAdviser,
		IDPostulationArea:  8,
		Schedules: []dto.ScheduleInput{
			{DayOfWeek: "Monday", PeriodTime: "8-10"},
			{DayOfWeek: "Friday", PeriodTime3: "18-20"},
		},
	}

	v := req.ToModel()
	if v.StatusVolunteer != model.StatusPending {
		t.Errorf("new postulant status = %q, want %q", v.StatusVolunteer, model.StatusPending)
	}
	if v.DatePostulation.IsZero() {
		t.Error("DatePostulation not stamped")
	}
	if time.Since(v.DatePostulation) > time.Minute {
		t.Errorf("DatePostulation too old: %v", v.DatePostulation)
	}
	if len(v.Schedules) != 2 {
		t.Fatalf("got %d schedules, want 2", len(v.Schedules))
	}
	if v.Schedules[1].DayOfWeek != "Friday" || v.Schedules[1].PeriodTime3 != "18-20" {
		t.Errorf("schedule mapping wrong: %+v", v.Schedules[1])
	}
	if time.Time(v.BirthDate).Year() != 2001 {
		t.Errorf("birth date year = %d, want 2001", time.Time(v.BirthDate).Year())
	}
}
