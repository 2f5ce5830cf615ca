package entity

import (
	"gorm.io/gorm"
)

// TransactionDetail is a per-line snapshot; prices are captured at checkout
// and never re-read from the catalog.
type TransactionDetail struct {
	gorm.Model
	Faktur   string `gorm:"index;not null" json:"faktur"`
	KodeMenu string `gorm:"index" json:"kode_menu"`
	Name     string `json:"name"`

	Jumlah   int   `json:"jumlah"`
	SubTotal int64 `json:"subtotal"` // unit price x jumlah, before diskon
	Total    int64 `json:"total"`    // after diskon

	DiskonPersenItem float64 `json:"diskon_persen_item"`
	DiskonRupiahItem int64   `json:"diskon_rupiah_item"`
}
