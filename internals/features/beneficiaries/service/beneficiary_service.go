package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	areaModel "yachaywasi_backend/internals/features/areas/model"
	"yachaywasi_backend/internals/features/beneficiaries/dto"
	"yachaywasi_backend/internals/features/beneficiaries/model"
	repo "yachaywasi_backend/internals/features/beneficiaries/repository"
	"yachaywasi_backend/internals/listkit"
)

var (
	ErrNotFound      = errors.New("beneficiary not found")
	ErrDuplicateCode = errors.New("beneficiary code already in use")
)

/* ===============================
   List & detail
=================================*/

func List(db *gorm.DB, search, status string, page, perPage int) (dto.ListResponse, error) {
	// count first, then clamp through the same calculator the volunteer
	// list uses so both pagers agree on edge behavior
	total, err := repo.CountPage(db, search, status)
	if err != nil {
		return dto.ListResponse{}, err
	}

	pg := listkit.Paginate(int(total), page, perPage)
	rows, err := repo.FindPage(db, search, status, pg.Start, perPage)
	if err != nil {
		return dto.ListResponse{}, err
	}

	return dto.ListResponse{
		Data:       rows,
		Total:      int(total),
		Page:       pg.Page,
		Limit:      perPage,
		TotalPages: pg.TotalPages,
	}, nil
}

func Get(db *gorm.DB, id uint) (*model.BeneficiaryModel, error) {
	b, err := repo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

/* ===============================
   Mutations
=================================*/

func Create(db *gorm.DB, req dto.CreateBeneficiaryRequest) (*model.BeneficiaryModel, error) {
	b := req.ToModel()

	prefs, err := repo.FindCommunicationPreferences(db, req.CommunicationPreferences)
	if err != nil {
		return nil, err
	}
	b.CommunicationPreferences = prefs

	areas, err := repo.FindAreas(db, req.AreaAdvisers)
	if err != nil {
		return nil, err
	}
	b.AreaAdvisers = areas

	if err := repo.Create(db, &b); err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateCode
		}
		return nil, err
	}
	return repo.FindByID(db, b.ID)
}

func Update(db *gorm.DB, id uint, req dto.UpdateBeneficiaryRequest) (*model.BeneficiaryModel, error) {
	b, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if updates := req.Updates(); len(updates) > 0 {
			if err := repo.UpdateFields(tx, id, updates); err != nil {
				if isDuplicate(err) {
					return ErrDuplicateCode
				}
				return err
			}
		}

		// nil slice = field absent = keep; empty slice = clear
		if req.BeneficiaryLanguage != nil {
			rows := make([]model.BeneficiaryLanguage, 0, len(req.BeneficiaryLanguage))
			for _, l := range req.BeneficiaryLanguage {
				rows = append(rows, model.BeneficiaryLanguage{
					Language:           l.Language,
					CustomLanguageName: l.CustomLanguageName,
				})
			}
			if err := repo.ReplaceLanguages(tx, id, rows); err != nil {
				return err
			}
		}
		if req.BeneficiaryPreferredCourses != nil {
			rows := make([]model.BeneficiaryPreferredCourse, 0, len(req.BeneficiaryPreferredCourses))
			for _, c := range req.BeneficiaryPreferredCourses {
				rows = append(rows, model.BeneficiaryPreferredCourse{
					Name:             c.Name,
					CustomCourseName: c.CustomCourseName,
				})
			}
			if err := repo.ReplacePreferredCourses(tx, id, rows); err != nil {
				return err
			}
		}
		if req.Schedules != nil {
			rows := make([]model.BeneficiarySchedule, 0, len(req.Schedules))
			for _, s := range req.Schedules {
				rows = append(rows, model.BeneficiarySchedule{
					DayOfWeek:   s.DayOfWeek,
					PeriodTime:  s.PeriodTime,
					PeriodTime2: s.PeriodTime2,
					PeriodTime3: s.PeriodTime3,
				})
			}
			if err := repo.ReplaceSchedules(tx, id, rows); err != nil {
				return err
			}
		}
		if req.CommunicationPreferences != nil {
			prefs, err := repo.FindCommunicationPreferences(tx, req.CommunicationPreferences)
			if err != nil {
				return err
			}
			if err := repo.ReplaceCommunicationPreferences(tx, b, prefs); err != nil {
				return err
			}
		}
		if req.AreaAdvisers != nil {
			areas, err := repo.FindAreas(tx, req.AreaAdvisers)
			if err != nil {
				return err
			}
			if err := repo.ReplaceAreaAdvisers(tx, b, areas); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repo.FindByID(db, id)
}

func SoftDelete(db *gorm.DB, id uint) error {
	if _, err := Get(db, id); err != nil {
		return err
	}
	return repo.SoftDelete(db, id)
}

func Restore(db *gorm.DB, id uint) error {
	if _, err := Get(db, id); err != nil {
		return err
	}
	return repo.Restore(db, id)
}

/* ===============================
   Enums
=================================*/

// Enums bundles every catalog the intake form renders. Static lists
// come from the model, the two id-backed catalogs from the DB.
func Enums(db *gorm.DB) (dto.EnumsResponse, error) {
	res := dto.EnumsResponse{
		ModalityStudent:      model.ModalityStudentValues,
		Gender:               model.GenderValues,
		Parentesco:           model.ParentescoValues,
		LearningLevel:        model.LearningLevelValues,
		CoursePriorityReason: model.CoursePriorityReasonValues,
		CallSignalIssue:      model.CallSignalIssueValues,
		WorkshopPreference:   model.WorkshopPreferenceValues,
		Course:               model.CourseValues,
		Languages:            model.LanguageValues,
		PreferredCourses:     model.PreferredCourseValues,
		DaysOfWeek:           model.DaysOfWeek,
		EnrollmentStatus:     model.EnrollmentStatusValues,
	}

	var areas []areaModel.AreaModel
	if err := db.Where("is_active = ?", true).Order("id ASC").Find(&areas).Error; err != nil {
		return res, err
	}
	for _, a := range areas {
		res.AreaAdvisers = append(res.AreaAdvisers, dto.EnumRef{ID: a.ID, Name: a.Name})
	}

	var prefs []model.CommunicationPreference
	if err := db.Order("id ASC").Find(&prefs).Error; err != nil {
		return res, err
	}
	for _, p := range prefs {
		res.CommunicationPreferences = append(res.CommunicationPreferences, dto.EnumRef{ID: p.ID, Name: p.Name})
	}
	return res, nil
}

func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
