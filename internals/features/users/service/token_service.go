package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/configs"
	"yachaywasi_backend/internals/features/users/dto"
	"yachaywasi_backend/internals/features/users/model"
	authRepo "yachaywasi_backend/internals/features/users/repository"
	helpers "yachaywasi_backend/internals/helpers"
)

/* ==========================
   Const & helpers
========================== */

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_SECRET"))
	}
	if secret == "" {
		return "", errors.New("JWT_SECRET is not set")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		secret = strings.TrimSpace(os.Getenv("JWT_REFRESH_SECRET"))
	}
	if secret == "" {
		return "", errors.New("JWT_REFRESH_SECRET is not set")
	}
	return secret, nil
}

// ComputeRefreshHash hashes a refresh token for storage/lookup; the
// plaintext never touches the DB.
func ComputeRefreshHash(token, secret string) []byte {
	m := hmac.New(sha256.New, []byte(secret))
	_, _ = m.Write([]byte(token))
	return m.Sum(nil)
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

/* ==========================
   Token issuance
========================== */

func buildAccessClaims(user model.UserModel, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"typ":   "access",
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTLDefault).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
}

// IssueTokenPair signs a fresh access/refresh pair and persists the
// refresh hash with client metadata.
func IssueTokenPair(db *gorm.DB, c *fiber.Ctx, user model.UserModel) (access string, refresh string, err error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return "", "", err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return "", "", err
	}

	now := nowUTC()

	access, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now)).SignedString([]byte(jwtSecret))
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(user.ID, now)).SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}

	rt := &model.RefreshToken{
		UserID:    user.ID,
		TokenHash: ComputeRefreshHash(refresh, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
		UserAgent: strptr(string(c.Request().Header.UserAgent())),
		IP:        strptr(c.IP()),
	}
	if err := authRepo.StoreRefreshToken(db, rt); err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

/* ==========================
   REFRESH  (POST /api/auth/refresh)
========================== */

// RefreshToken rotates the pair: the presented refresh token is revoked
// and a new access+refresh pair is issued. Single retry on the client,
// forced logout when this fails.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.RefreshRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	raw := strings.TrimSpace(input.RefreshToken)
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token requerido")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	hash := ComputeRefreshHash(raw, refreshSecret)
	stored, err := authRepo.FindRefreshTokenByHash(db, hash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconocido")
	}
	if nowUTC().After(stored.ExpiresAt) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token expirado")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	// ROTATE atomically: revocation and issuance share one transaction,
	// so a failed issuance rolls the revocation back and the presented
	// token stays usable for a retry
	var access, refresh string
	if txErr := db.Transaction(func(tx *gorm.DB) error {
		if err := authRepo.RevokeRefreshTokenByHash(tx, hash); err != nil {
			return err
		}
		var issueErr error
		access, refresh, issueErr = IssueTokenPair(tx, c, *user)
		return issueErr
	}); txErr != nil {
		log.Printf("[refresh] rotation failed: %v", txErr)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	return c.Status(fiber.StatusOK).JSON(dto.RefreshResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	})
}
