package repository

import (
	"nunis-api/entity"

	"gorm.io/gorm"
)

type ContactRepository struct{ DB *gorm.DB }

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(c *entity.Contact) error {
	return r.DB.Create(c).Error
}

func (r *ContactRepository) List() ([]entity.Contact, error) {
	var msgs []entity.Contact
	err := r.DB.Order("created_at DESC").Find(&msgs).Error
	return msgs, err
}

func (r *ContactRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.Contact{}, id)
	return res.RowsAffected, res.Error
}
