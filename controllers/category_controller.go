package controllers

import (
	"errors"
	"strconv"

	"nunis-api/pkg/resp"
	"nunis-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryController struct{ Service *services.CategoryService }

func NewCategoryController(s *services.CategoryService) *CategoryController {
	return &CategoryController{Service: s}
}

// GET /categories
func (cc *CategoryController) List(c *gin.Context) {
	cats, err := cc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cats)
}

// POST /categoriesAdd
func (cc *CategoryController) Create(c *gin.Context) {
	var req services.CategoryIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := cc.Service.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cat)
}

// PUT /editcategories
func (cc *CategoryController) Update(c *gin.Context) {
	var req services.CategoryEditIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cat, err := cc.Service.Update(&req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /categories/:id
func (cc *CategoryController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := cc.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// GET /categories/:id/menu-items
func (cc *CategoryController) MenuItems(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	cat, menus, err := cc.Service.MenuItems(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"category": cat, "menu_items": menus})
}
