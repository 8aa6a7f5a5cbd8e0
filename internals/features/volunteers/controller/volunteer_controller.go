package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/volunteers/dto"
	"yachaywasi_backend/internals/features/volunteers/model"
	"yachaywasi_backend/internals/features/volunteers/service"
	helpers "yachaywasi_backend/internals/helpers"
	"yachaywasi_backend/internals/listkit"
)

type VolunteerController struct {
	DB *gorm.DB
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{DB: db}
}

var validate = validator.New()

// the named filters every list page used, in one place
var filterParams = []string{
	"typeVolunteer", "area", "status", "university", "year", "month",
	"wasVoluntary", "quechuaLevel", "howDidYouFindUs", "schoolGrades",
}

func queryFromCtx(c *fiber.Ctx) listkit.Query {
	fields := map[string]string{}
	for _, p := range filterParams {
		if v := strings.TrimSpace(c.Query(p)); v != "" {
			fields[p] = v
		}
	}
	return listkit.Query{
		Text:   c.Query("search"),
		Fields: fields,
	}
}

// GET /api/volunteer
func (vc *VolunteerController) GetVolunteers(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 1000)
	q := queryFromCtx(c)

	res, err := service.List(vc.DB, q, paging.Page, paging.PerPage)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los postulantes")
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// GET /api/volunteer/stats
func (vc *VolunteerController) GetStats(c *fiber.Ctx) error {
	year, _ := strconv.Atoi(c.Query("year"))
	stats, err := service.Stats(vc.DB, year)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudieron calcular las estadísticas")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}

// GET /api/volunteer/profile-volunteer/:id
func (vc *VolunteerController) GetProfile(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	v, err := service.GetProfile(vc.DB, id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(v)
}

// POST /api/volunteer
func (vc *VolunteerController) Create(c *fiber.Ctx) error {
	var req dto.CreateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	v := req.ToModel()
	if err := service.Create(vc.DB, &v); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo registrar la postulación")
	}
	return helpers.JsonCreated(c, "Postulación registrada", v)
}

// POST /api/volunteer/:id/approve
func (vc *VolunteerController) Approve(c *fiber.Ctx) error {
	return vc.transition(c, model.StatusApproved)
}

// POST /api/volunteer/:id/reject
func (vc *VolunteerController) Reject(c *fiber.Ctx) error {
	return vc.transition(c, model.StatusRejected)
}

func (vc *VolunteerController) transition(c *fiber.Ctx, status string) error {
	id, err := parseID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	v, err := service.Transition(vc.DB, id, status)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(v)
}

// PUT /api/volunteer/:id
func (vc *VolunteerController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateVolunteerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	v, err := service.Update(vc.DB, id, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(v)
}

// DELETE /api/volunteer/:id
// Answers 202: the console's delete path checks for it.
func (vc *VolunteerController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := service.Delete(vc.DB, id); err != nil {
		return mapServiceError(c, err)
	}
	return helpers.JsonAccepted(c, "Postulante eliminado", nil)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return helpers.JsonError(c, fiber.StatusNotFound, "Postulante no encontrado")
	case errors.Is(err, service.ErrAlreadyInStatus):
		return helpers.JsonError(c, fiber.StatusConflict, "El postulante ya se encuentra en ese estado")
	default:
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error interno")
	}
}
