package services

import (
	"strings"

	"nunis-api/entity"
	"nunis-api/repository"

	"gorm.io/gorm"
)

type ContactService struct {
	Repo *repository.ContactRepository
}

func NewContactService(repo *repository.ContactRepository) *ContactService {
	return &ContactService{Repo: repo}
}

type ContactIn struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
	Rating  int    `json:"rating" binding:"min=0,max=5"`
}

func (s *ContactService) Create(in *ContactIn) (*entity.Contact, error) {
	msg := &entity.Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Message: strings.TrimSpace(in.Message),
		Rating:  in.Rating,
	}
	if err := s.Repo.Create(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *ContactService) List() ([]entity.Contact, error) {
	return s.Repo.List()
}

func (s *ContactService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
