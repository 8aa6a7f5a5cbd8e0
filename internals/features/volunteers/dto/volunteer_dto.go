package dto

import (
	"time"

	"gorm.io/datatypes"

	"yachaywasi_backend/internals/features/volunteers/model"
)

/* ===============================
   Requests
=================================*/

type ScheduleInput struct {
	DayOfWeek   string `json:"dayOfWeek" validate:"required"`
	PeriodTime  string `json:"period_time"`
	PeriodTime2 string `json:"period_time2"`
	PeriodTime3 string `json:"period_time3"`
}

// CreateVolunteerRequest is the postulation form payload.
type CreateVolunteerRequest struct {
	Name               string  `json:"name" validate:"required,max=100"`
	LastName           string  `json:"lastName" validate:"required,max=100"`
	Email              string  `json:"email" validate:"required,email"`
	BirthDate          string  `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	PhoneNumber        string  `json:"phoneNumber" validate:"required,max=20"`
	TypeIdentification string  `json:"typeIdentification" validate:"required"`
	NumIdentification  string  `json:"numIdentification" validate:"required,max=20"`
	TypeVolunteer      string  `json:"typeVolunteer" validate:"required,oneof=STAFF ADVISER"`
	WasVoluntary       bool    `json:"wasVoluntary"`
	CvURL              string  `json:"cvUrl" validate:"omitempty,url"`
	VideoURL           string  `json:"videoUrl" validate:"omitempty,url"`
	VolunteerMotivation string `json:"volunteerMotivation"`
	HowDidYouFindUs    string  `json:"howDidYouFindUs"`
	IDPostulationArea  uint    `json:"idPostulationArea" validate:"required"`
	AdvisoryCapacity   *int    `json:"advisoryCapacity"`
	SchoolGrades       *string `json:"schoolGrades"`
	CallingPlan        *bool   `json:"callingPlan"`
	QuechuaLevel       *string `json:"quechuaLevel"`
	ProgramsUniversity *string `json:"programsUniversity"`

	Schedules []ScheduleInput `json:"schedules" validate:"dive"`
}

// UpdateVolunteerRequest: every field optional, shallow merge, patch wins.
type UpdateVolunteerRequest struct {
	Name               *string `json:"name" validate:"omitempty,max=100"`
	LastName           *string `json:"lastName" validate:"omitempty,max=100"`
	Email              *string `json:"email" validate:"omitempty,email"`
	PhoneNumber        *string `json:"phoneNumber" validate:"omitempty,max=20"`
	TypeIdentification *string `json:"typeIdentification"`
	NumIdentification  *string `json:"numIdentification" validate:"omitempty,max=20"`
	TypeVolunteer      *string `json:"typeVolunteer" validate:"omitempty,oneof=STAFF ADVISER"`
	WasVoluntary       *bool   `json:"wasVoluntary"`
	CvURL              *string `json:"cvUrl" validate:"omitempty,url"`
	VideoURL           *string `json:"videoUrl" validate:"omitempty,url"`
	VolunteerMotivation *string `json:"volunteerMotivation"`
	HowDidYouFindUs    *string `json:"howDidYouFindUs"`
	IDPostulationArea  *uint   `json:"idPostulationArea"`
	AdvisoryCapacity   *int    `json:"advisoryCapacity"`
	SchoolGrades       *string `json:"schoolGrades"`
	CallingPlan        *bool   `json:"callingPlan"`
	QuechuaLevel       *string `json:"quechuaLevel"`
	ProgramsUniversity *string `json:"programsUniversity"`
}

// Updates flattens the set fields into a column map for GORM.
func (r UpdateVolunteerRequest) Updates() map[string]any {
	out := map[string]any{}
	if r.Name != nil {
		out["name"] = *r.Name
	}
	if r.LastName != nil {
		out["last_name"] = *r.LastName
	}
	if r.Email != nil {
		out["email"] = *r.Email
	}
	if r.PhoneNumber != nil {
		out["phone_number"] = *r.PhoneNumber
	}
	if r.TypeIdentification != nil {
		out["type_identification"] = *r.TypeIdentification
	}
	if r.NumIdentification != nil {
		out["num_identification"] = *r.NumIdentification
	}
	if r.TypeVolunteer != nil {
		out["type_volunteer"] = *r.TypeVolunteer
	}
	if r.WasVoluntary != nil {
		out["was_voluntary"] = *r.WasVoluntary
	}
	if r.CvURL != nil {
		out["cv_url"] = *r.CvURL
	}
	if r.VideoURL != nil {
		out["video_url"] = *r.VideoURL
	}
	if r.VolunteerMotivation != nil {
		out["volunteer_motivation"] = *r.VolunteerMotivation
	}
	if r.HowDidYouFindUs != nil {
		out["how_did_you_find_us"] = *r.HowDidYouFindUs
	}
	if r.IDPostulationArea != nil {
		out["id_postulation_area"] = *r.IDPostulationArea
	}
	if r.AdvisoryCapacity != nil {
		out["advisory_capacity"] = *r.AdvisoryCapacity
	}
	if r.SchoolGrades != nil {
		out["school_grades"] = *r.SchoolGrades
	}
	if r.CallingPlan != nil {
		out["calling_plan"] = *r.CallingPlan
	}
	if r.QuechuaLevel != nil {
		out["quechua_level"] = *r.QuechuaLevel
	}
	if r.ProgramsUniversity != nil {
		out["programs_university"] = *r.ProgramsUniversity
	}
	return out
}

func (r CreateVolunteerRequest) ToModel() model.VolunteerModel {
	v := model.VolunteerModel{
		Name:                r.Name,
		LastName:            r.LastName,
		Email:               r.Email,
		PhoneNumber:         r.PhoneNumber,
		TypeIdentification:  r.TypeIdentification,
		NumIdentification:   r.NumIdentification,
		TypeVolunteer:       r.TypeVolunteer,
		StatusVolunteer:     model.StatusPending,
		WasVoluntary:        r.WasVoluntary,
		CvURL:               r.CvURL,
		VideoURL:            r.VideoURL,
		DatePostulation:     time.Now().UTC(),
		VolunteerMotivation: r.VolunteerMotivation,
		HowDidYouFindUs:     r.HowDidYouFindUs,
		IDPostulationArea:   r.IDPostulationArea,
		AdvisoryCapacity:    r.AdvisoryCapacity,
		SchoolGrades:        r.SchoolGrades,
		CallingPlan:         r.CallingPlan,
		QuechuaLevel:        r.QuechuaLevel,
		ProgramsUniversity:  r.ProgramsUniversity,
	}
	if r.BirthDate != "" {
		if t, err := time.Parse("2006-01-02", r.BirthDate); err == nil {
			v.BirthDate = datatypes.Date(t)
		}
	}
	for _, s := range r.Schedules {
		v.Schedules = append(v.Schedules, model.VolunteerSchedule{
			DayOfWeek:   s.DayOfWeek,
			PeriodTime:  s.PeriodTime,
			PeriodTime2: s.PeriodTime2,
			PeriodTime3: s.PeriodTime3,
		})
	}
	return v
}

/* ===============================
   Responses (console contract)
=================================*/

// ListResponse matches the console's ApiResponse shape.
type ListResponse struct {
	Data       []model.VolunteerModel `json:"data"`
	Total      int                    `json:"total"`
	Page       int                    `json:"page"`
	Limit      int                    `json:"limit"`
	TotalPages int                    `json:"totalPages"`
}

// StatsResponse feeds the dashboard cards and charts.
type StatsResponse struct {
	Total             int            `json:"total"`
	CountsByStatus    map[string]int `json:"countsByStatus"`
	CountsByType      map[string]int `json:"countsByType"`
	CountsByArea      map[string]int `json:"countsByArea"`
	CountsByUniversity map[string]int `json:"countsByUniversity"`
	Year              int            `json:"year"`
	CountsByMonth     [12]int        `json:"countsByMonth"`
}
