package repository

import (
	"time"

	"nunis-api/entity"

	"gorm.io/gorm"
)

type ResetRepository struct{ DB *gorm.DB }

func NewResetRepository(db *gorm.DB) *ResetRepository { return &ResetRepository{DB: db} }

func (r *ResetRepository) Create(pr *entity.PasswordReset) error {
	return r.DB.Create(pr).Error
}

// FindValid returns the newest unused, unexpired OTP entry for the email.
func (r *ResetRepository) FindValid(email, otp string, now time.Time) (*entity.PasswordReset, error) {
	var pr entity.PasswordReset
	err := r.DB.Where("email = ? AND otp = ? AND used = ? AND expires_at > ?", email, otp, false, now).
		Order("created_at DESC").
		First(&pr).Error
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *ResetRepository) MarkUsed(id uint) error {
	return r.DB.Model(&entity.PasswordReset{}).Where("id = ?", id).Update("used", true).Error
}

// InvalidateForEmail burns older codes when a new one is issued.
func (r *ResetRepository) InvalidateForEmail(email string) error {
	return r.DB.Model(&entity.PasswordReset{}).Where("email = ?", email).Update("used", true).Error
}
