package model

import (
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	areaModel "yachaywasi_backend/internals/features/areas/model"
)

/* ===============================
   Enum catalogs
=================================*/

// The intake form is Spanish-first; values are stored verbatim so the
// console can render them without a translation layer.

const (
	EnrollmentPending     = "Pending"
	EnrollmentEnrolled    = "Inscrito"
	EnrollmentNotAccepted = "No Aceptado"
)

var (
	ModalityStudentValues = []string{"Renovación", "Nuevo Estudiante"}

	GenderValues = []string{"Masculino", "Femenino"}

	ParentescoValues = []string{
		"Mamá", "Papá", "Nana", "Niño", "Tía", "Tío",
		"Hermano", "Hermana", "Abuelo", "Abuela",
	}

	LearningLevelValues = []string{"No tan bien", "Mas o menos", "Bien", "Muy bien"}

	CoursePriorityReasonValues = []string{
		"Son los cursos en los que el estudiante presenta más dificultades",
		"Son cursos 'prioritarios' o básicos a reforzar",
		"Los cursos son de interés para el estudiante",
	}

	CallSignalIssueValues = []string{
		"Señal baja debido a situaciones externas: lluvias, cortes de luz repentinos, etc.",
		"Señal baja cotidianamente: regularmente no se escucha las llamadas, a veces se corta, no entra la llamada, etc.",
		"No tiene problemas con la señal.",
	}

	WorkshopPreferenceValues = []string{
		"Cuenta cuentos (sin internet)",
		"Dibujo y Pintura (con internet)",
		"Música (con internet)",
		"Oratoria (sin internet)",
		"Teatro (con internet)",
		"Danza (con internet)",
	}

	CourseValues = []string{"Matemática", "Comunicación", "Inglés"}

	LanguageValues = []string{"Español", "Quechua", "Aymara", "Otro"}

	PreferredCourseValues = []string{
		"Matemáticas", "Ciencias", "Comunicación", "Inglés",
		"Historia", "Geografía", "Otros",
	}

	DaysOfWeek = []string{
		"Monday", "Tuesday", "Wednesday", "Thursday",
		"Friday", "Saturday", "Sunday",
	}

	EnrollmentStatusValues = []string{
		EnrollmentPending, EnrollmentEnrolled, EnrollmentNotAccepted,
	}
)

/* ===============================
   Model
=================================*/

// BeneficiaryModel is a program participant. "Deleted" is a soft delete:
// default queries skip rows with deleted_at set, restore clears it.
type BeneficiaryModel struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code        string  `gorm:"size:30;not null;uniqueIndex" json:"code"`
	Degree      *string `gorm:"size:50" json:"degree"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	LastName    string  `gorm:"size:100;not null" json:"lastName"`
	DNI         string  `gorm:"column:dni;size:20;not null;index" json:"dni"`
	Institution *string `gorm:"size:150" json:"institution"`

	ModalityStudent *string         `gorm:"size:30" json:"modalityStudent"`
	BirthDate       *datatypes.Date `json:"birthDate"`
	Gender          *string         `gorm:"size:20" json:"gender"`
	Parentesco      *string         `gorm:"size:20" json:"parentesco"`

	NameRepresentative     *string `gorm:"size:100" json:"nameRepresentative"`
	LastNameRepresentative *string `gorm:"size:100" json:"lastNameRepresentative"`

	IsAddGroupWspp bool `gorm:"not null;default:false" json:"isAddGroupWspp"`
	IsAddEquipment bool `gorm:"not null;default:false" json:"isAddEquipment"`

	LearningLevel        *string `gorm:"size:30" json:"learningLevel"`
	HoursAsesoria        *int    `json:"hoursAsesoria"`
	CoursePriorityReason *string `gorm:"type:text" json:"coursePriorityReason"`

	PhoneNumberMain      *string `gorm:"size:20" json:"phoneNumberMain"`
	CellphoneObservation *string `gorm:"type:text" json:"cellphoneObservation"`
	IsWhatsApp           bool    `gorm:"not null;default:false" json:"isWhatsApp"`
	CallSignalIssue      *string `gorm:"type:text" json:"callSignalIssue"`

	FullNameContactEmergency     *string `gorm:"size:150" json:"fullNameContactEmergency"`
	PhoneNumberContactEmergency  *string `gorm:"size:20" json:"phoneNumberContactEmergency"`
	FullNameContactEmergency2    *string `gorm:"size:150" json:"fullNameContactEmergency2"`
	PhoneNumberContactEmergency2 *string `gorm:"size:20" json:"phoneNumberContactEmergency2"`

	AllpaAdvisoryConsent bool `gorm:"not null;default:false" json:"allpaAdvisoryConsent"`
	AllpaImageConsent    bool `gorm:"not null;default:false" json:"allpaImageConsent"`
	RuruAdvisoryConsent  bool `gorm:"not null;default:false" json:"ruruAdvisoryConsent"`

	AdditionalNotes *string `gorm:"type:text" json:"additionalNotes"`

	FirstWorkshopChoice  *string `gorm:"size:60" json:"firstWorkshopChoice"`
	SecondWorkshopChoice *string `gorm:"size:60" json:"secondWorkshopChoice"`
	ThirdWorkshopChoice  *string `gorm:"size:60" json:"thirdWorkshopChoice"`
	FirstCourseChoice    *string `gorm:"size:30" json:"firstCourseChoice"`
	SecondCourseChoice   *string `gorm:"size:30" json:"secondCourseChoice"`

	EnrollmentStatus string `gorm:"size:20;not null;default:'Pending';index" json:"enrollmentStatus"`

	UserID *uint `json:"userId"`

	BeneficiaryLanguage         []BeneficiaryLanguage        `gorm:"foreignKey:BeneficiaryID;constraint:OnDelete:CASCADE" json:"beneficiaryLanguage"`
	BeneficiaryPreferredCourses []BeneficiaryPreferredCourse `gorm:"foreignKey:BeneficiaryID;constraint:OnDelete:CASCADE" json:"beneficiaryPreferredCourses"`
	Schedules                   []BeneficiarySchedule        `gorm:"foreignKey:BeneficiaryID;constraint:OnDelete:CASCADE" json:"schedules"`
	CommunicationPreferences    []CommunicationPreference    `gorm:"many2many:beneficiary_communication_preferences" json:"communicationPreferences"`
	AreaAdvisers                []areaModel.AreaModel        `gorm:"many2many:beneficiary_area_advisers" json:"areaAdvisers"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

func (BeneficiaryModel) TableName() string {
	return "beneficiaries"
}

type BeneficiaryLanguage struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	BeneficiaryID      uint      `gorm:"not null;index" json:"beneficiaryId"`
	Language           string    `gorm:"size:30;not null" json:"language"`
	CustomLanguageName *string   `gorm:"size:60" json:"customLanguageName"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (BeneficiaryLanguage) TableName() string {
	return "beneficiary_languages"
}

type BeneficiaryPreferredCourse struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	BeneficiaryID    uint      `gorm:"not null;index" json:"beneficiaryId"`
	Name             string    `gorm:"size:30;not null" json:"name"`
	CustomCourseName *string   `gorm:"size:60" json:"customCourseName"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (BeneficiaryPreferredCourse) TableName() string {
	return "beneficiary_preferred_courses"
}

// BeneficiarySchedule is one availability row, same 7×3 grid the
// volunteer side uses. At most one row per (beneficiary, day).
type BeneficiarySchedule struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	BeneficiaryID uint      `gorm:"not null;uniqueIndex:uq_beneficiary_day" json:"beneficiaryId"`
	DayOfWeek     string    `gorm:"size:20;not null;uniqueIndex:uq_beneficiary_day" json:"dayOfWeek"`
	PeriodTime    string    `gorm:"size:50" json:"period_time"`
	PeriodTime2   string    `gorm:"size:50" json:"period_time2"`
	PeriodTime3   string    `gorm:"size:50" json:"period_time3"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (BeneficiarySchedule) TableName() string {
	return "beneficiary_schedules"
}

// CommunicationPreference is a small lookup (how the family wants to be
// reached), referenced by id from the intake form.
type CommunicationPreference struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:60;not null;unique" json:"name"`
}

func (CommunicationPreference) TableName() string {
	return "communication_preferences"
}

var DefaultCommunicationPreferences = []CommunicationPreference{
	{ID: 1, Name: "Llamada telefónica"},
	{ID: 2, Name: "WhatsApp"},
	{ID: 3, Name: "Mensaje de texto"},
	{ID: 4, Name: "Correo electrónico"},
}

// SeedCommunicationPreferences inserts the default catalog, skipping
// rows that exist.
func SeedCommunicationPreferences(db *gorm.DB) {
	for _, pref := range DefaultCommunicationPreferences {
		if err := db.Where("id = ?", pref.ID).FirstOrCreate(&CommunicationPreference{}, pref).Error; err != nil {
			log.Printf("[seed] communication preference %d: %v", pref.ID, err)
		}
	}
}

// ValidEnrollmentStatus reports whether s is a known enrollment status.
func ValidEnrollmentStatus(s string) bool {
	for _, v := range EnrollmentStatusValues {
		if v == s {
			return true
		}
	}
	return false
}
