package controllers

import (
	"errors"
	"strconv"

	"nunis-api/pkg/resp"
	"nunis-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactController struct{ Service *services.ContactService }

func NewContactController(s *services.ContactService) *ContactController {
	return &ContactController{Service: s}
}

// POST /contact
func (cc *ContactController) Create(c *gin.Context) {
	var req services.ContactIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	contact, err := cc.Service.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, contact)
}

// GET /contact
func (cc *ContactController) List(c *gin.Context) {
	contacts, err := cc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, contacts)
}

// DELETE /contact/:id
func (cc *ContactController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := cc.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "contact not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
