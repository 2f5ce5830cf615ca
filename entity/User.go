package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Nama       string `json:"nama"`
	Email      string `gorm:"uniqueIndex;not null" json:"email"`
	Password   string `json:"-"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Pictures   string `gorm:"type:text" json:"pictures"` // base64; empty when S3 URL is used
	PictureURL string `json:"picture_url"`

	Role   string `gorm:"not null;default:customer" json:"role"`
	Status int    `gorm:"default:1" json:"status"` // 1 active, 0 blocked

	Transactions []Transaction `json:"-"`
}
