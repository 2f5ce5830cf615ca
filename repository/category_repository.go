package repository

import (
	"nunis-api/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var cats []entity.Category
	err := r.DB.Order("name").Find(&cats).Error
	return cats, err
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.First(&cat, id).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Category{}, id)
	return res.RowsAffected, res.Error
}

func (r *CategoryRepository) MenuItems(categoryID uint) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("category_id = ?", categoryID).Order("name").Find(&menus).Error
	return menus, err
}
