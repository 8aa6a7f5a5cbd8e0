package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/areas/model"
	helpers "yachaywasi_backend/internals/helpers"
)

type AreaController struct {
	DB *gorm.DB
}

func NewAreaController(db *gorm.DB) *AreaController {
	return &AreaController{DB: db}
}

// GET /api/areas
// The console reads response.data.areaStaff.
func (ac *AreaController) GetAreas(c *fiber.Ctx) error {
	var areas []model.AreaModel
	if err := ac.DB.Order("id ASC").Find(&areas).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener las áreas")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"areaStaff": areas,
	})
}
