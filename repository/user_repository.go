package repository

import (
	"nunis-api/entity"

	"gorm.io/gorm"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) UpdateStatusByEmail(email string, status int) (int64, error) {
	res := r.DB.Model(&entity.User{}).Where("email = ?", email).Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *UserRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.User{}, id)
	return res.RowsAffected, res.Error
}

// CountCustomers counts every registered customer account, active or not.
func (r *UserRepository) CountCustomers() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("role = ?", "customer").Count(&count).Error
	return count, err
}
