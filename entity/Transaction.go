package entity

import (
	"time"

	"gorm.io/gorm"
)

// Transaction lifecycle, mirrored by the admin status dropdown.
const (
	StatusMenungguKonfirmasi = 0
	StatusPesananDiterima    = 1
	StatusSedangDiproses     = 2
	StatusPesananSiap        = 3
	StatusPesananSelesai     = 4
	StatusPesananDibatalkan  = 5
)

type Transaction struct {
	gorm.Model
	Faktur string `gorm:"uniqueIndex;not null" json:"faktur"`

	UserID uint `json:"id_user"`
	User   User `json:"user"`

	NoTelepon string `json:"no_telepon"`
	Alamat    string `json:"alamat"`

	SubTotal     int64   `json:"sub_total"`
	Total        int64   `json:"total"`
	DiskonPersen float64 `json:"diskon_persen"`
	DiskonRupiah int64   `json:"diskon_rupiah"`

	Tanggal time.Time `json:"tanggal"`
	Notes   string    `json:"notes"`
	Status  int       `gorm:"default:0" json:"status"`

	Details []TransactionDetail `gorm:"foreignKey:Faktur;references:Faktur;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"detail_penjualan"`
}
