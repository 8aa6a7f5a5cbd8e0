package service

import (
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/users/dto"
	"yachaywasi_backend/internals/features/users/model"
	authRepo "yachaywasi_backend/internals/features/users/repository"
	helpers "yachaywasi_backend/internals/helpers"
	authMw "yachaywasi_backend/internals/middlewares/auth"
)

var validate = validator.New()

/* ==========================
   LOGIN  (POST /api/auth/login)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email o contraseña incorrectos")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Tu cuenta ha sido desactivada. Contacta al administrador.")
	}
	if err := CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email o contraseña incorrectos")
	}

	access, refresh, err := IssueTokenPair(db, c, *user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión")
	}

	// top-level shape: the console stores these three keys verbatim
	return c.Status(fiber.StatusOK).JSON(dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(*user),
	})
}

/* ==========================
   REGISTER  (POST /api/auth/register)
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	passwordHash, err := HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	role := input.Role
	if role == "" {
		role = "admin"
	}
	user := model.UserModel{
		Name:     input.Name,
		Email:    input.Email,
		Password: passwordHash,
		Role:     role,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate key") || strings.Contains(low, "unique") {
			return helpers.JsonError(c, fiber.StatusBadRequest, "El email ya está registrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registro exitoso", dto.ToUserResponse(user))
}

/* ==========================
   LOGOUT  (POST /api/auth/logout)
========================== */

// Logout blacklists the presented access token until its natural expiry
// and revokes every live refresh token of the user.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, err := authMw.ExtractBearerToken(c)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	expiredAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, perr := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		secret, serr := getJWTSecret()
		if serr != nil {
			return nil, serr
		}
		return []byte(secret), nil
	}); perr == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}

	if err := db.Create(&model.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}).Error; err != nil {
		low := strings.ToLower(err.Error())
		if !strings.Contains(low, "duplicate key") && !strings.Contains(low, "unique") {
			log.Printf("[logout] blacklist insert failed: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo cerrar sesión")
		}
	}

	if userIDStr, ok := c.Locals("user_id").(string); ok {
		if user, uerr := findUserByIDString(db, userIDStr); uerr == nil {
			if rerr := authRepo.RevokeRefreshTokensForUser(db, user.ID); rerr != nil {
				log.Printf("[logout] revoke refresh tokens failed: %v", rerr)
			}
		}
	}

	return helpers.JsonOK(c, "Sesión cerrada", nil)
}

func findUserByIDString(db *gorm.DB, id string) (*model.UserModel, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return authRepo.FindUserByID(db, parsed)
}
