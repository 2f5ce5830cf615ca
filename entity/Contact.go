package entity

import (
	"gorm.io/gorm"
)

// Contact holds review/feedback messages from the contact form.
type Contact struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Rating  int    `json:"rating"`
}
