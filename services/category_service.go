package services

import (
	"strings"

	"nunis-api/entity"
	"nunis-api/repository"

	"gorm.io/gorm"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

type CategoryIn struct {
	Name        string `json:"name" binding:"required"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}

func (s *CategoryService) Create(in *CategoryIn) (*entity.Category, error) {
	cat := &entity.Category{
		Name:        strings.TrimSpace(in.Name),
		Icon:        in.Icon,
		Description: in.Description,
	}
	if err := s.Repo.Create(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

type CategoryEditIn struct {
	ID          uint   `json:"id" binding:"required"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

func (s *CategoryService) Update(in *CategoryEditIn) (*entity.Category, error) {
	updates := map[string]any{}
	if in.Name != "" {
		updates["name"] = strings.TrimSpace(in.Name)
	}
	if in.Icon != "" {
		updates["icon"] = in.Icon
	}
	if in.Description != "" {
		updates["description"] = in.Description
	}
	if len(updates) > 0 {
		if err := s.Repo.Update(in.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.Repo.FindByID(in.ID)
}

func (s *CategoryService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *CategoryService) MenuItems(id uint) (*entity.Category, []entity.Menu, error) {
	cat, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, nil, err
	}
	menus, err := s.Repo.MenuItems(id)
	if err != nil {
		return nil, nil, err
	}
	return cat, menus, nil
}
