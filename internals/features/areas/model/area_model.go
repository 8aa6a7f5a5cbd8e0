package model

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// AreaModel is the organizational-unit lookup. The console duplicated
// this id→name map in four pages; this table is its only owner now.
type AreaModel struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null;unique" json:"name"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AreaModel) TableName() string {
	return "areas"
}

// DefaultAreas mirrors the fixed catalog the console rendered.
var DefaultAreas = []AreaModel{
	{ID: 1, Name: "Talento & Desarrollo Organizacional", IsActive: true},
	{ID: 2, Name: "Cultura & Comunicación Interna", IsActive: true},
	{ID: 3, Name: "Imagen Institucional & Relaciones Públicas", IsActive: true},
	{ID: 4, Name: "Alianzas Organizacionales", IsActive: true},
	{ID: 5, Name: "Convenios & Patrocinios Estratégicos", IsActive: true},
	{ID: 6, Name: "Marketing & Contenidos", IsActive: true},
	{ID: 7, Name: "Arte & Cultura", IsActive: true},
	{ID: 8, Name: "Asesoría a Colegios Nacionales", IsActive: true},
	{ID: 9, Name: "Bienestar Psicológicos", IsActive: true},
	{ID: 10, Name: "Gestión de Comunidades", IsActive: true},
	{ID: 11, Name: "Innovación & Calidad", IsActive: true},
}

// SeedAreas inserts the default catalog, skipping rows that exist.
func SeedAreas(db *gorm.DB) {
	for _, area := range DefaultAreas {
		if err := db.Where("id = ?", area.ID).FirstOrCreate(&AreaModel{}, area).Error; err != nil {
			log.Printf("[seed] area %d: %v", area.ID, err)
		}
	}
}

// NameByID resolves an area name, "" when unknown.
func NameByID(areas []AreaModel, id uint) string {
	for _, a := range areas {
		if a.ID == id {
			return a.Name
		}
	}
	return ""
}
