package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/beneficiaries/dto"
	"yachaywasi_backend/internals/features/beneficiaries/service"
	helpers "yachaywasi_backend/internals/helpers"
)

type BeneficiaryController struct {
	DB *gorm.DB
}

func NewBeneficiaryController(db *gorm.DB) *BeneficiaryController {
	return &BeneficiaryController{DB: db}
}

var validate = validator.New()

// GET /api/beneficiary/page
func (bc *BeneficiaryController) GetPage(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 10, 1000)

	res, err := service.List(bc.DB, c.Query("search"), c.Query("status"), paging.Page, paging.PerPage)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los beneficiarios")
	}
	return c.Status(fiber.StatusOK).JSON(res)
}

// GET /api/beneficiary/find-one/:id
func (bc *BeneficiaryController) FindOne(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	b, err := service.Get(bc.DB, id)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(b)
}

// POST /api/beneficiary
func (bc *BeneficiaryController) Create(c *fiber.Ctx) error {
	var req dto.CreateBeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	b, err := service.Create(bc.DB, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(b)
}

// PATCH /api/beneficiary/update/:id
func (bc *BeneficiaryController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req dto.UpdateBeneficiaryRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	b, err := service.Update(bc.DB, id, req)
	if err != nil {
		return mapServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(b)
}

// DELETE /api/beneficiary/soft-delete/:id
func (bc *BeneficiaryController) SoftDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := service.SoftDelete(bc.DB, id); err != nil {
		return mapServiceError(c, err)
	}
	return helpers.JsonOK(c, "Beneficiario desactivado", nil)
}

// PATCH /api/beneficiary/restore/:id
func (bc *BeneficiaryController) Restore(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := service.Restore(bc.DB, id); err != nil {
		return mapServiceError(c, err)
	}
	return helpers.JsonOK(c, "Beneficiario restaurado", nil)
}

// GET /api/beneficiary/enums
func (bc *BeneficiaryController) GetEnums(c *fiber.Ctx) error {
	enums, err := service.Enums(bc.DB)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudieron obtener los catálogos")
	}
	return c.Status(fiber.StatusOK).JSON(enums)
}

// POST /api/beneficiary/upload-excel
func (bc *BeneficiaryController) UploadExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Se requiere un archivo en el campo 'file'")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No se pudo leer el archivo")
	}
	defer f.Close()

	var report dto.ImportReport
	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		report, err = service.ImportCSV(bc.DB, f)
	} else {
		report, err = service.ImportXLSX(bc.DB, f)
	}
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, "El archivo no es un Excel o CSV válido")
	}
	return helpers.JsonOK(c, "Importación completada", report)
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
		return helpers.JsonError(c, fiber.StatusNotFound, "Beneficiario no encontrado")
	case errors.Is(err, service.ErrDuplicateCode):
		return helpers.JsonError(c, fiber.StatusConflict, "El código ya está registrado")
	default:
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error interno")
	}
}
