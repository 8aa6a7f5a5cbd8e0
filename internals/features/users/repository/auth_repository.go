package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yachaywasi_backend/internals/features/users/model"
)

func CreateUser(db *gorm.DB, user *model.UserModel) error {
	return db.Create(user).Error
}

func FindUserByEmail(db *gorm.DB, email string) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	var user model.UserModel
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func UpdatePassword(db *gorm.DB, userID uuid.UUID, passwordHash string) error {
	return db.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password", passwordHash).Error
}

/* ===============================
   Refresh tokens
=================================*/

func StoreRefreshToken(db *gorm.DB, rt *model.RefreshToken) error {
	return db.Create(rt).Error
}

func FindRefreshTokenByHash(db *gorm.DB, hash []byte) (*model.RefreshToken, error) {
	var rt model.RefreshToken
	if err := db.First(&rt, "token_hash = ? AND revoked_at IS NULL", hash).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func RevokeRefreshTokenByHash(db *gorm.DB, hash []byte) error {
	now := time.Now().UTC()
	return db.Model(&model.RefreshToken{}).
		Where("token_hash = ? AND revoked_at IS NULL", hash).
		Update("revoked_at", now).Error
}

func RevokeRefreshTokensForUser(db *gorm.DB, userID uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&model.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", now).Error
}

/* ===============================
   Password reset tokens
=================================*/

func StorePasswordResetToken(db *gorm.DB, prt *model.PasswordResetToken) error {
	return db.Create(prt).Error
}

func FindPasswordResetTokenByHash(db *gorm.DB, hash []byte) (*model.PasswordResetToken, error) {
	var prt model.PasswordResetToken
	if err := db.First(&prt, "token_hash = ? AND used_at IS NULL", hash).Error; err != nil {
		return nil, err
	}
	return &prt, nil
}

func MarkPasswordResetTokenUsed(db *gorm.DB, id uuid.UUID) error {
	now := time.Now().UTC()
	return db.Model(&model.PasswordResetToken{}).
		Where("id = ?", id).
		Update("used_at", now).Error
}
