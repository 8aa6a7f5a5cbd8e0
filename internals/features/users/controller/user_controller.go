package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/users/dto"
	"yachaywasi_backend/internals/features/users/model"
	helpers "yachaywasi_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

func (uc *UserController) currentUser(c *fiber.Ctx) (*model.UserModel, error) {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}
	var user model.UserModel
	if err := uc.DB.First(&user, "id = ?", userUUID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Usuario no encontrado")
	}
	return &user, nil
}

// GET /api/user/profile
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(dto.ToProfileResponse(*user))
}

// PUT /api/user/profile
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	user, err := uc.currentUser(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		updates["email"] = strings.TrimSpace(strings.ToLower(*req.Email))
	}
	if len(updates) == 0 {
		return c.Status(fiber.StatusOK).JSON(dto.ToProfileResponse(*user))
	}

	if err := uc.DB.Model(user).Updates(updates).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "El email ya está en uso")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar el perfil")
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToProfileResponse(*user))
}
