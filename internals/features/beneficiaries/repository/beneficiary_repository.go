package repository

import (
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	areaModel "yachaywasi_backend/internals/features/areas/model"
	"yachaywasi_backend/internals/features/beneficiaries/model"
)

func withPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("BeneficiaryLanguage").
		Preload("BeneficiaryPreferredCourses").
		Preload("Schedules").
		Preload("CommunicationPreferences").
		Preload("AreaAdvisers")
}

// scopeFor applies the list scope. Soft-deleted rows are excluded
// unless status asks for them: "deleted" lists only trashed rows,
// "all" lifts the scope entirely, any other value filters by
// enrollment status over active rows.
func scopeFor(db *gorm.DB, search, status string) *gorm.DB {
	q := db.Model(&model.BeneficiaryModel{})

	switch status {
	case "", "active":
		// default scope already excludes deleted_at
	case "deleted":
		q = q.Unscoped().Where("deleted_at IS NOT NULL")
	case "all":
		q = q.Unscoped()
	default:
		q = q.Where("enrollment_status = ?", status)
	}

	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		q = q.Where(
			"name ILIKE ? OR last_name ILIKE ? OR dni ILIKE ? OR code ILIKE ?",
			like, like, like, like,
		)
	}
	return q
}

func CountPage(db *gorm.DB, search, status string) (int64, error) {
	var total int64
	err := scopeFor(db, search, status).Count(&total).Error
	return total, err
}

func FindPage(db *gorm.DB, search, status string, offset, limit int) ([]model.BeneficiaryModel, error) {
	var rows []model.BeneficiaryModel
	err := withPreloads(scopeFor(db, search, status)).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// FindByID looks past the soft-delete scope so a trashed record's
// detail page still renders (the restore button lives there).
func FindByID(db *gorm.DB, id uint) (*model.BeneficiaryModel, error) {
	var b model.BeneficiaryModel
	if err := withPreloads(db.Unscoped()).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func Create(db *gorm.DB, b *model.BeneficiaryModel) error {
	return db.Create(b).Error
}

func UpdateFields(db *gorm.DB, id uint, updates map[string]any) error {
	return db.Model(&model.BeneficiaryModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func SoftDelete(db *gorm.DB, id uint) error {
	return db.Delete(&model.BeneficiaryModel{}, id).Error
}

func Restore(db *gorm.DB, id uint) error {
	return db.Unscoped().
		Model(&model.BeneficiaryModel{}).
		Where("id = ?", id).
		Update("deleted_at", nil).Error
}

func FindCommunicationPreferences(db *gorm.DB, ids []uint) ([]model.CommunicationPreference, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var prefs []model.CommunicationPreference
	err := db.Where("id = ANY(?)", pq.Array(ids)).Find(&prefs).Error
	return prefs, err
}

func FindAreas(db *gorm.DB, ids []uint) ([]areaModel.AreaModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var areas []areaModel.AreaModel
	err := db.Where("id = ANY(?)", pq.Array(ids)).Find(&areas).Error
	return areas, err
}

func ReplaceLanguages(db *gorm.DB, id uint, rows []model.BeneficiaryLanguage) error {
	if err := db.Where("beneficiary_id = ?", id).Delete(&model.BeneficiaryLanguage{}).Error; err != nil {
		return err
	}
	for i := range rows {
		rows[i].BeneficiaryID = id
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}

func ReplacePreferredCourses(db *gorm.DB, id uint, rows []model.BeneficiaryPreferredCourse) error {
	if err := db.Where("beneficiary_id = ?", id).Delete(&model.BeneficiaryPreferredCourse{}).Error; err != nil {
		return err
	}
	for i := range rows {
		rows[i].BeneficiaryID = id
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}

func ReplaceSchedules(db *gorm.DB, id uint, rows []model.BeneficiarySchedule) error {
	if err := db.Where("beneficiary_id = ?", id).Delete(&model.BeneficiarySchedule{}).Error; err != nil {
		return err
	}
	for i := range rows {
		rows[i].BeneficiaryID = id
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Create(&rows).Error
}

func ReplaceCommunicationPreferences(db *gorm.DB, b *model.BeneficiaryModel, prefs []model.CommunicationPreference) error {
	return db.Model(b).Association("CommunicationPreferences").Replace(prefs)
}

func ReplaceAreaAdvisers(db *gorm.DB, b *model.BeneficiaryModel, areas []areaModel.AreaModel) error {
	return db.Model(b).Association("AreaAdvisers").Replace(areas)
}
