package model

import (
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===============================
   Enums
=================================*/

const (
	TypeStaff   = "STAFF"
	TypeAdviser = "ADVISER"

	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

/* ===============================
   Model
=================================*/

// VolunteerModel is a postulant: someone who applied to volunteer and is
// waiting for (or already got) an approve/reject decision.
type VolunteerModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name               string         `gorm:"size:100;not null" json:"name"`
	LastName           string         `gorm:"size:100;not null" json:"lastName"`
	Email              string         `gorm:"size:255;not null;index" json:"email"`
	BirthDate          datatypes.Date `json:"birthDate"`
	PhoneNumber        string         `gorm:"size:20;not null" json:"phoneNumber"`
	TypeIdentification string         `gorm:"size:20;not null" json:"typeIdentification"`
	NumIdentification  string         `gorm:"size:20;not null;index" json:"numIdentification"`

	TypeVolunteer   string `gorm:"type:varchar(10);not null;index" json:"typeVolunteer"`
	StatusVolunteer string `gorm:"type:varchar(10);not null;default:'PENDING';index" json:"statusVolunteer"`

	WasVoluntary        bool      `gorm:"not null;default:false" json:"wasVoluntary"`
	IsVoluntary         bool      `gorm:"not null;default:false" json:"isVoluntary"`
	CvURL               string    `gorm:"column:cv_url;type:text" json:"cvUrl"`
	VideoURL            string    `gorm:"column:video_url;type:text" json:"videoUrl"`
	DatePostulation     time.Time `gorm:"type:timestamptz;not null" json:"datePostulation"`
	VolunteerMotivation string    `gorm:"type:text" json:"volunteerMotivation"`
	HowDidYouFindUs     string    `gorm:"size:100" json:"howDidYouFindUs"`

	IDPostulationArea  uint    `gorm:"column:id_postulation_area;not null;index" json:"idPostulationArea"`
	AdvisoryCapacity   *int    `json:"advisoryCapacity,omitempty"`
	SchoolGrades       *string `gorm:"size:100" json:"schoolGrades,omitempty"`
	CallingPlan        *bool   `json:"callingPlan,omitempty"`
	QuechuaLevel       *string `gorm:"size:50" json:"quechuaLevel,omitempty"`
	ProgramsUniversity *string `gorm:"size:100" json:"programsUniversity,omitempty"`

	Schedules []VolunteerSchedule `gorm:"foreignKey:VolunteerID;constraint:OnDelete:CASCADE" json:"schedules"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (VolunteerModel) TableName() string {
	return "volunteers"
}

// VolunteerSchedule is one availability row: a day of the week with up
// to three day-part slots. At most one row per (volunteer, day).
type VolunteerSchedule struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	VolunteerID uint   `gorm:"not null;uniqueIndex:uq_volunteer_day" json:"-"`
	DayOfWeek   string `gorm:"size:20;not null;uniqueIndex:uq_volunteer_day" json:"dayOfWeek"`
	PeriodTime  string `gorm:"size:50" json:"period_time"`
	PeriodTime2 string `gorm:"size:50" json:"period_time2"`
	PeriodTime3 string `gorm:"size:50" json:"period_time3"`
}

func (VolunteerSchedule) TableName() string {
	return "volunteer_schedules"
}

/* ===============================
   listkit integration
=================================*/

// SearchValues feeds the free-text predicate: same five fields the
// console searched across.
func (v VolunteerModel) SearchValues() []string {
	return []string{v.Name, v.LastName, v.Email, v.PhoneNumber, v.NumIdentification}
}

// FilterValue resolves the console's named filters. Optional fields
// report ok=false when unset so an active filter excludes the record.
func (v VolunteerModel) FilterValue(field string) (string, bool) {
	switch field {
	case "typeVolunteer":
		return v.TypeVolunteer, true
	case "status":
		return v.StatusVolunteer, true
	case "area":
		return strconv.FormatUint(uint64(v.IDPostulationArea), 10), true
	case "university":
		if v.ProgramsUniversity == nil {
			return "", false
		}
		return *v.ProgramsUniversity, true
	case "year":
		if v.DatePostulation.IsZero() {
			return "", false
		}
		return strconv.Itoa(v.DatePostulation.Year()), true
	case "month":
		if v.DatePostulation.IsZero() {
			return "", false
		}
		return strconv.Itoa(int(v.DatePostulation.Month())), true
	case "wasVoluntary":
		return strconv.FormatBool(v.WasVoluntary), true
	case "quechuaLevel":
		if v.QuechuaLevel == nil {
			return "", false
		}
		return *v.QuechuaLevel, true
	case "howDidYouFindUs":
		if v.HowDidYouFindUs == "" {
			return "", false
		}
		return v.HowDidYouFindUs, true
	case "schoolGrades":
		if v.SchoolGrades == nil {
			return "", false
		}
		return *v.SchoolGrades, true
	default:
		return "", false
	}
}
