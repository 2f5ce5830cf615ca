package services

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"nunis-api/entity"
	"nunis-api/repository"
	"nunis-api/utils"

	"gorm.io/gorm"
)

type UserService struct {
	Repo *repository.UserRepository

	// S3 target for profile pictures; empty bucket keeps base64 in the DB
	S3Bucket string
	S3Region string
}

func NewUserService(repo *repository.UserRepository, s3Bucket, s3Region string) *UserService {
	return &UserService{Repo: repo, S3Bucket: s3Bucket, S3Region: s3Region}
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Repo.List()
}

func (s *UserService) GetByEmail(email string) (*entity.User, error) {
	return s.Repo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
}

func (s *UserService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *UserService) UpdateStatus(email string, status int) error {
	if status != 0 && status != 1 {
		return errors.New("invalid status")
	}
	affected, err := s.Repo.UpdateStatusByEmail(strings.ToLower(strings.TrimSpace(email)), status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

type UpdateProfileIn struct {
	Email   string `json:"email" binding:"required,email"`
	Nama    string `json:"nama"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func (s *UserService) UpdateProfile(in *UpdateProfileIn) (*entity.User, error) {
	user, err := s.Repo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	updates := map[string]any{}
	if in.Nama != "" {
		updates["nama"] = strings.TrimSpace(in.Nama)
	}
	if in.Address != "" {
		updates["address"] = strings.TrimSpace(in.Address)
	}
	if in.Phone != "" {
		updates["phone"] = strings.TrimSpace(in.Phone)
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(user.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(user.ID)
}

// UploadProfilePicture accepts a base64 image. With an S3 bucket configured
// the decoded bytes go there and only the URL is stored; otherwise the
// base64 string is kept in the pictures column.
func (s *UserService) UploadProfilePicture(email, b64 string) (*entity.User, error) {
	if len(b64) > 10*1024*1024 {
		return nil, errors.New("file too large")
	}
	user, err := s.Repo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	raw := b64
	if i := strings.Index(raw, ","); i >= 0 && strings.HasPrefix(raw, "data:image/") {
		raw = raw[i+1:]
	}

	if s.S3Bucket != "" {
		data, err := base64.StdEncoding.DecodeString(raw)
		if err != nil {
			return nil, errors.New("invalid image data")
		}
		key := fmt.Sprintf("profiles/%d-%d.png", user.ID, time.Now().UnixNano())
		url, err := utils.UploadToS3(s.S3Bucket, s.S3Region, key, data)
		if err != nil {
			return nil, err
		}
		if err := s.Repo.Update(user.ID, map[string]any{"picture_url": url, "pictures": ""}); err != nil {
			return nil, err
		}
	} else {
		if _, err := base64.StdEncoding.DecodeString(raw); err != nil {
			return nil, errors.New("invalid image data")
		}
		if err := s.Repo.Update(user.ID, map[string]any{"pictures": raw}); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(user.ID)
}
