package repository

import (
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/volunteers/model"
)

func FindAll(db *gorm.DB) ([]model.VolunteerModel, error) {
	var volunteers []model.VolunteerModel
	err := db.Preload("Schedules").Order("id ASC").Find(&volunteers).Error
	return volunteers, err
}

func FindByID(db *gorm.DB, id uint) (*model.VolunteerModel, error) {
	var v model.VolunteerModel
	if err := db.Preload("Schedules").First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func Create(db *gorm.DB, v *model.VolunteerModel) error {
	return db.Create(v).Error
}

func UpdateFields(db *gorm.DB, id uint, updates map[string]any) error {
	return db.Model(&model.VolunteerModel{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func UpdateStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&model.VolunteerModel{}).
		Where("id = ?", id).
		Update("status_volunteer", status).Error
}

// Delete soft-deletes; the record drops out of every default query.
func Delete(db *gorm.DB, id uint) error {
	return db.Delete(&model.VolunteerModel{}, id).Error
}
