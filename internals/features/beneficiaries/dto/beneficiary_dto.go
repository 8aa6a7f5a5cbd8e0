package dto

import (
	"time"

	"gorm.io/datatypes"

	"yachaywasi_backend/internals/features/beneficiaries/model"
)

/* ===============================
   Requests
=================================*/

type LanguageInput struct {
	Language           string  `json:"language" validate:"required"`
	CustomLanguageName *string `json:"customLanguageName"`
}

type PreferredCourseInput struct {
	Name             string  `json:"name" validate:"required"`
	CustomCourseName *string `json:"customCourseName"`
}

type ScheduleInput struct {
	DayOfWeek   string `json:"dayOfWeek" validate:"required"`
	PeriodTime  string `json:"period_time"`
	PeriodTime2 string `json:"period_time2"`
	PeriodTime3 string `json:"period_time3"`
}

// CreateBeneficiaryRequest is the intake form payload. Child catalogs
// (communication preferences, adviser areas) arrive as id lists.
type CreateBeneficiaryRequest struct {
	Code        string  `json:"code" validate:"required,max=30"`
	Degree      *string `json:"degree"`
	Name        string  `json:"name" validate:"required,max=100"`
	LastName    string  `json:"lastName" validate:"required,max=100"`
	DNI         string  `json:"dni" validate:"required,max=20"`
	Institution *string `json:"institution"`

	ModalityStudent *string `json:"modalityStudent"`
	BirthDate       *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Gender          *string `json:"gender"`
	Parentesco      *string `json:"parentesco"`

	NameRepresentative     *string `json:"nameRepresentative"`
	LastNameRepresentative *string `json:"lastNameRepresentative"`

	IsAddGroupWspp bool `json:"isAddGroupWspp"`
	IsAddEquipment bool `json:"isAddEquipment"`

	LearningLevel        *string `json:"learningLevel"`
	HoursAsesoria        *int    `json:"hoursAsesoria"`
	CoursePriorityReason *string `json:"coursePriorityReason"`

	PhoneNumberMain      *string `json:"phoneNumberMain" validate:"omitempty,max=20"`
	CellphoneObservation *string `json:"cellphoneObservation"`
	IsWhatsApp           bool    `json:"isWhatsApp"`
	CallSignalIssue      *string `json:"callSignalIssue"`

	FullNameContactEmergency     *string `json:"fullNameContactEmergency"`
	PhoneNumberContactEmergency  *string `json:"phoneNumberContactEmergency" validate:"omitempty,max=20"`
	FullNameContactEmergency2    *string `json:"fullNameContactEmergency2"`
	PhoneNumberContactEmergency2 *string `json:"phoneNumberContactEmergency2" validate:"omitempty,max=20"`

	AllpaAdvisoryConsent bool `json:"allpaAdvisoryConsent"`
	AllpaImageConsent    bool `json:"allpaImageConsent"`
	RuruAdvisoryConsent  bool `json:"ruruAdvisoryConsent"`

	AdditionalNotes *string `json:"additionalNotes"`

	FirstWorkshopChoice  *string `json:"firstWorkshopChoice"`
	SecondWorkshopChoice *string `json:"secondWorkshopChoice"`
	ThirdWorkshopChoice  *string `json:"thirdWorkshopChoice"`
	FirstCourseChoice    *string `json:"firstCourseChoice"`
	SecondCourseChoice   *string `json:"secondCourseChoice"`

	UserID *uint `json:"userId"`

	BeneficiaryLanguage         []LanguageInput        `json:"beneficiaryLanguage" validate:"dive"`
	BeneficiaryPreferredCourses []PreferredCourseInput `json:"beneficiaryPreferredCourses" validate:"dive"`
	Schedules                   []ScheduleInput        `json:"schedules" validate:"dive"`
	CommunicationPreferences    []uint                 `json:"communicationPreferences"`
	AreaAdvisers                []uint                 `json:"areaAdvisers"`
}

func (r CreateBeneficiaryRequest) ToModel() model.BeneficiaryModel {
	b := model.BeneficiaryModel{
		Code:                         r.Code,
		Degree:                       r.Degree,
		Name:                         r.Name,
		LastName:                     r.LastName,
		DNI:                          r.DNI,
		Institution:                  r.Institution,
		ModalityStudent:              r.ModalityStudent,
		Gender:                       r.Gender,
		Parentesco:                   r.Parentesco,
		NameRepresentative:           r.NameRepresentative,
		LastNameRepresentative:       r.LastNameRepresentative,
		IsAddGroupWspp:               r.IsAddGroupWspp,
		IsAddEquipment:               r.IsAddEquipment,
		LearningLevel:                r.LearningLevel,
		HoursAsesoria:                r.HoursAsesoria,
		CoursePriorityReason:         r.CoursePriorityReason,
		PhoneNumberMain:              r.PhoneNumberMain,
		CellphoneObservation:         r.CellphoneObservation,
		IsWhatsApp:                   r.IsWhatsApp,
		CallSignalIssue:              r.CallSignalIssue,
		FullNameContactEmergency:     r.FullNameContactEmergency,
		PhoneNumberContactEmergency:  r.PhoneNumberContactEmergency,
		FullNameContactEmergency2:    r.FullNameContactEmergency2,
		PhoneNumberContactEmergency2: r.PhoneNumberContactEmergency2,
		AllpaAdvisoryConsent:         r.AllpaAdvisoryConsent,
		AllpaImageConsent:            r.AllpaImageConsent,
		RuruAdvisoryConsent:          r.RuruAdvisoryConsent,
		AdditionalNotes:              r.AdditionalNotes,
		FirstWorkshopChoice:          r.FirstWorkshopChoice,
		SecondWorkshopChoice:         r.SecondWorkshopChoice,
		ThirdWorkshopChoice:          r.ThirdWorkshopChoice,
		FirstCourseChoice:            r.FirstCourseChoice,
		SecondCourseChoice:           r.SecondCourseChoice,
		EnrollmentStatus:             model.EnrollmentPending,
		UserID:                       r.UserID,
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		if t, err := time.Parse("2006-01-02", *r.BirthDate); err == nil {
			d := datatypes.Date(t)
			b.BirthDate = &d
		}
	}
	for _, l := range r.BeneficiaryLanguage {
		b.BeneficiaryLanguage = append(b.BeneficiaryLanguage, model.BeneficiaryLanguage{
			Language:           l.Language,
			CustomLanguageName: l.CustomLanguageName,
		})
	}
	for _, c := range r.BeneficiaryPreferredCourses {
		b.BeneficiaryPreferredCourses = append(b.BeneficiaryPreferredCourses, model.BeneficiaryPreferredCourse{
			Name:             c.Name,
			CustomCourseName: c.CustomCourseName,
		})
	}
	for _, s := range r.Schedules {
		b.Schedules = append(b.Schedules, model.BeneficiarySchedule{
			DayOfWeek:   s.DayOfWeek,
			PeriodTime:  s.PeriodTime,
			PeriodTime2: s.PeriodTime2,
			PeriodTime3: s.PeriodTime3,
		})
	}
	return b
}

// UpdateBeneficiaryRequest: every field optional, shallow merge, patch
// wins. Child collections replace wholesale when present (nil = keep).
type UpdateBeneficiaryRequest struct {
	Code        *string `json:"code" validate:"omitempty,max=30"`
	Degree      *string `json:"degree"`
	Name        *string `json:"name" validate:"omitempty,max=100"`
	LastName    *string `json:"lastName" validate:"omitempty,max=100"`
	DNI         *string `json:"dni" validate:"omitempty,max=20"`
	Institution *string `json:"institution"`

	ModalityStudent *string `json:"modalityStudent"`
	BirthDate       *string `json:"birthDate" validate:"omitempty,datetime=2006-01-02"`
	Gender          *string `json:"gender"`
	Parentesco      *string `json:"parentesco"`

	NameRepresentative     *string `json:"nameRepresentative"`
	LastNameRepresentative *string `json:"lastNameRepresentative"`

	IsAddGroupWspp *bool `json:"isAddGroupWspp"`
	IsAddEquipment *bool `json:"isAddEquipment"`

	LearningLevel        *string `json:"learningLevel"`
	HoursAsesoria        *int    `json:"hoursAsesoria"`
	CoursePriorityReason *string `json:"coursePriorityReason"`

	PhoneNumberMain      *string `json:"phoneNumberMain" validate:"omitempty,max=20"`
	CellphoneObservation *string `json:"cellphoneObservation"`
	IsWhatsApp           *bool   `json:"isWhatsApp"`
	CallSignalIssue      *string `json:"callSignalIssue"`

	FullNameContactEmergency     *string `json:"fullNameContactEmergency"`
	PhoneNumberContactEmergency  *string `json:"phoneNumberContactEmergency" validate:"omitempty,max=20"`
	FullNameContactEmergency2    *string `json:"fullNameContactEmergency2"`
	PhoneNumberContactEmergency2 *string `json:"phoneNumberContactEmergency2" validate:"omitempty,max=20"`

	AllpaAdvisoryConsent *bool `json:"allpaAdvisoryConsent"`
	AllpaImageConsent    *bool `json:"allpaImageConsent"`
	RuruAdvisoryConsent  *bool `json:"ruruAdvisoryConsent"`

	AdditionalNotes *string `json:"additionalNotes"`

	FirstWorkshopChoice  *string `json:"firstWorkshopChoice"`
	SecondWorkshopChoice *string `json:"secondWorkshopChoice"`
	ThirdWorkshopChoice  *string `json:"thirdWorkshopChoice"`
	FirstCourseChoice    *string `json:"firstCourseChoice"`
	SecondCourseChoice   *string `json:"secondCourseChoice"`

	EnrollmentStatus *string `json:"enrollmentStatus" validate:"omitempty,oneof=Pending Inscrito 'No Aceptado'"`
	UserID           *uint   `json:"userId"`

	BeneficiaryLanguage         []LanguageInput        `json:"beneficiaryLanguage" validate:"omitempty,dive"`
	BeneficiaryPreferredCourses []PreferredCourseInput `json:"beneficiaryPreferredCourses" validate:"omitempty,dive"`
	Schedules                   []ScheduleInput        `json:"schedules" validate:"omitempty,dive"`
	CommunicationPreferences    []uint                 `json:"communicationPreferences"`
	AreaAdvisers                []uint                 `json:"areaAdvisers"`
}

// Updates flattens the set scalar fields into a column map for GORM.
func (r UpdateBeneficiaryRequest) Updates() map[string]any {
	out := map[string]any{}
	set := func(col string, v any) { out[col] = v }

	if r.Code != nil {
		set("code", *r.Code)
	}
	if r.Degree != nil {
		set("degree", *r.Degree)
	}
	if r.Name != nil {
		set("name", *r.Name)
	}
	if r.LastName != nil {
		set("last_name", *r.LastName)
	}
	if r.DNI != nil {
		set("dni", *r.DNI)
	}
	if r.Institution != nil {
		set("institution", *r.Institution)
	}
	if r.ModalityStudent != nil {
		set("modality_student", *r.ModalityStudent)
	}
	if r.BirthDate != nil {
		if t, err := time.Parse("2006-01-02", *r.BirthDate); err == nil {
			set("birth_date", datatypes.Date(t))
		}
	}
	if r.Gender != nil {
		set("gender", *r.Gender)
	}
	if r.Parentesco != nil {
		set("parentesco", *r.Parentesco)
	}
	if r.NameRepresentative != nil {
		set("name_representative", *r.NameRepresentative)
	}
	if r.LastNameRepresentative != nil {
		set("last_name_representative", *r.LastNameRepresentative)
	}
	if r.IsAddGroupWspp != nil {
		set("is_add_group_wspp", *r.IsAddGroupWspp)
	}
	if r.IsAddEquipment != nil {
		set("is_add_equipment", *r.IsAddEquipment)
	}
	if r.LearningLevel != nil {
		set("learning_level", *r.LearningLevel)
	}
	if r.HoursAsesoria != nil {
		set("hours_asesoria", *r.HoursAsesoria)
	}
	if r.CoursePriorityReason != nil {
		set("course_priority_reason", *r.CoursePriorityReason)
	}
	if r.PhoneNumberMain != nil {
		set("phone_number_main", *r.PhoneNumberMain)
	}
	if r.CellphoneObservation != nil {
		set("cellphone_observation", *r.CellphoneObservation)
	}
	if r.IsWhatsApp != nil {
		set("is_whats_app", *r.IsWhatsApp)
	}
	if r.CallSignalIssue != nil {
		set("call_signal_issue", *r.CallSignalIssue)
	}
	if r.FullNameContactEmergency != nil {
		set("full_name_contact_emergency", *r.FullNameContactEmergency)
	}
	if r.PhoneNumberContactEmergency != nil {
		set("phone_number_contact_emergency", *r.PhoneNumberContactEmergency)
	}
	if r.FullNameContactEmergency2 != nil {
		set("full_name_contact_emergency2", *r.FullNameContactEmergency2)
	}
	if r.PhoneNumberContactEmergency2 != nil {
		set("phone_number_contact_emergency2", *r.PhoneNumberContactEmergency2)
	}
	if r.AllpaAdvisoryConsent != nil {
		set("allpa_advisory_consent", *r.AllpaAdvisoryConsent)
	}
	if r.AllpaImageConsent != nil {
		set("allpa_image_consent", *r.AllpaImageConsent)
	}
	if r.RuruAdvisoryConsent != nil {
		set("ruru_advisory_consent", *r.RuruAdvisoryConsent)
	}
	if r.AdditionalNotes != nil {
		set("additional_notes", *r.AdditionalNotes)
	}
	if r.FirstWorkshopChoice != nil {
		set("first_workshop_choice", *r.FirstWorkshopChoice)
	}
	if r.SecondWorkshopChoice != nil {
		set("second_workshop_choice", *r.SecondWorkshopChoice)
	}
	if r.ThirdWorkshopChoice != nil {
		set("third_workshop_choice", *r.ThirdWorkshopChoice)
	}
	if r.FirstCourseChoice != nil {
		set("first_course_choice", *r.FirstCourseChoice)
	}
	if r.SecondCourseChoice != nil {
		set("second_course_choice", *r.SecondCourseChoice)
	}
	if r.EnrollmentStatus != nil {
		set("enrollment_status", *r.EnrollmentStatus)
	}
	if r.UserID != nil {
		set("user_id", *r.UserID)
	}
	return out
}

/* ===============================
   Responses (console contract)
=================================*/

type ListResponse struct {
	Data       []model.BeneficiaryModel `json:"data"`
	Total      int                      `json:"total"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalPages int                      `json:"totalPages"`
}

type EnumRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// EnumsResponse feeds every select in the intake form in one request.
type EnumsResponse struct {
	ModalityStudent          []string  `json:"modalityStudent"`
	Gender                   []string  `json:"gender"`
	Parentesco               []string  `json:"parentesco"`
	LearningLevel            []string  `json:"learningLevel"`
	CoursePriorityReason     []string  `json:"coursePriorityReason"`
	CallSignalIssue          []string  `json:"callSignalIssue"`
	WorkshopPreference       []string  `json:"workshopPreference"`
	Course                   []string  `json:"course"`
	Languages                []string  `json:"languages"`
	PreferredCourses         []string  `json:"preferredCourses"`
	DaysOfWeek               []string  `json:"daysOfWeek"`
	EnrollmentStatus         []string  `json:"enrollmentStatus"`
	AreaAdvisers             []EnumRef `json:"areaAdvisers"`
	CommunicationPreferences []EnumRef `json:"communicationPreferences"`
}

// ImportReport summarizes a bulk upload: how many rows landed and which
// ones were skipped, with the reason per row.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
