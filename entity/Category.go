package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Icon        string `gorm:"type:text" json:"icon"` // base64 image
	Description string `json:"description"`

	Menus []Menu `json:"-"`
}
