package service

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/resend/resend-go/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/configs"
	"yachaywasi_backend/internals/features/users/dto"
	"yachaywasi_backend/internals/features/users/model"
	authRepo "yachaywasi_backend/internals/features/users/repository"
	helpers "yachaywasi_backend/internals/helpers"
)

const resetTokenTTL = 30 * time.Minute

/* ==========================
   Password hashing
========================== */

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}

/* ==========================
   SEND RESET MAIL  (POST /api/user/send-reset-password)
========================== */

// SendResetPassword always answers 200 so the endpoint cannot be used
// to enumerate registered emails.
func SendResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.SendResetPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	user, err := authRepo.FindUserByEmail(db, input.Email)
	if err != nil || !user.IsActive {
		return helpers.JsonOK(c, "Si el correo existe, se envió un enlace de restablecimiento", nil)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar el token")
	}
	token := hex.EncodeToString(raw)

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	prt := &model.PasswordResetToken{
		UserID:    user.ID,
		TokenHash: ComputeRefreshHash(token, refreshSecret),
		ExpiresAt: time.Now().UTC().Add(resetTokenTTL),
	}
	if err := authRepo.StorePasswordResetToken(db, prt); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo guardar el token")
	}

	if err := sendResetMail(user.Email, user.Name, token); err != nil {
		log.Printf("[reset-password] mail send failed: %v", err)
	}

	return helpers.JsonOK(c, "Si el correo existe, se envió un enlace de restablecimiento", nil)
}

func sendResetMail(email, name, token string) error {
	if configs.ResendAPIKey == "" {
		log.Println("⚠️ RESEND_API_KEY empty, skipping reset mail for", email)
		return nil
	}
	client := resend.NewClient(configs.ResendAPIKey)
	link := configs.ConsoleBaseURL + "/reset-password?token=" + token

	_, err := client.Emails.Send(&resend.SendEmailRequest{
		From:    configs.MailFrom,
		To:      []string{email},
		Subject: "Restablece tu contraseña",
		Html: "<p>Hola " + name + ",</p>" +
			"<p>Recibimos una solicitud para restablecer tu contraseña. " +
			"El enlace vence en 30 minutos.</p>" +
			"<p><a href=\"" + link + "\">Restablecer contraseña</a></p>" +
			"<p>Si no solicitaste este cambio, ignora este correo.</p>",
	})
	return err
}

/* ==========================
   RESET  (POST /api/user/reset-password)
========================== */

func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.ResetPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(input); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	hash := ComputeRefreshHash(strings.TrimSpace(input.Token), refreshSecret)
	prt, err := authRepo.FindPasswordResetTokenByHash(db, hash)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Token inválido o ya utilizado")
	}
	if time.Now().UTC().After(prt.ExpiresAt) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "El token ha expirado")
	}

	passwordHash, err := HashPassword(input.NewPassword)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	if err := authRepo.UpdatePassword(db, prt.UserID, passwordHash); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "No se pudo actualizar la contraseña")
	}
	if err := authRepo.MarkPasswordResetTokenUsed(db, prt.ID); err != nil {
		log.Printf("[reset-password] mark used failed: %v", err)
	}
	// every session dies with the old password
	if err := authRepo.RevokeRefreshTokensForUser(db, prt.UserID); err != nil {
		log.Printf("[reset-password] revoke sessions failed: %v", err)
	}

	return helpers.JsonOK(c, "Contraseña actualizada", nil)
}
