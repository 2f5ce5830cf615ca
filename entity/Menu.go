package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	KodeMenu    string `gorm:"uniqueIndex;not null" json:"kode_menu"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Image       string `gorm:"type:text" json:"image"` // base64 image
	Price       int64  `json:"price"`

	// persen and rupiah are kept mutually consistent, see cart.DiskonRupiah
	DiskonPersen float64 `json:"diskon_persen"`
	DiskonRupiah int64   `json:"diskon_rupiah"`

	StatusActive int `gorm:"default:1" json:"statusActive"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"-"` // preload only when needed

	Details []TransactionDetail `gorm:"foreignKey:KodeMenu;references:KodeMenu" json:"-"`
}
