package repository

import (
	"time"

	"nunis-api/entity"

	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) ListAll() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Preload("Category").Order("name").Find(&menus).Error
	return menus, err
}

// ListActive returns only items the storefront may sell.
func (r *MenuRepository) ListActive() ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("status_active = ?", 1).Order("name").Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByKode(kodeMenu string) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.Where("kode_menu = ?", kodeMenu).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) FindByKodes(kodes []string) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Where("kode_menu IN ?", kodes).Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) Create(m *entity.Menu) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) UpdateByKode(kodeMenu string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Menu{}).Where("kode_menu = ?", kodeMenu).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *MenuRepository) DeleteByKode(kodeMenu string) (int64, error) {
	res := r.DB.Where("kode_menu = ?", kodeMenu).Delete(&entity.Menu{})
	return res.RowsAffected, res.Error
}

// BestSeller is a menu ranked by quantity sold inside a date range.
type BestSeller struct {
	KodeMenu    string `json:"kode_menu"`
	Name        string `json:"name"`
	TotalJumlah int    `json:"total_jumlah"`
	TotalOmzet  int64  `json:"total_omzet"`
}

func (r *MenuRepository) BestSellers(start, end time.Time, limit int) ([]BestSeller, error) {
	if limit <= 0 {
		limit = 5
	}
	var rows []BestSeller
	err := r.DB.Model(&entity.TransactionDetail{}).
		Select("transaction_details.kode_menu, transaction_details.name, SUM(transaction_details.jumlah) AS total_jumlah, SUM(transaction_details.total) AS total_omzet").
		Joins("JOIN transactions ON transactions.faktur = transaction_details.faktur").
		Where("transactions.tanggal BETWEEN ? AND ?", start, end).
		Where("transactions.status <> ?", entity.StatusPesananDibatalkan).
		Group("transaction_details.kode_menu, transaction_details.name").
		Order("total_jumlah DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
