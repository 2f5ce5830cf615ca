package controllers

import (
	"errors"
	"strconv"
	"time"

	"nunis-api/pkg/resp"
	"nunis-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Service *services.MenuService }

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /menu-items (public, active only)
func (mc *MenuController) ListActive(c *gin.Context) {
	menus, err := mc.Service.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /allmenu (admin, includes inactive)
func (mc *MenuController) ListAll(c *gin.Context) {
	menus, err := mc.Service.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// POST /addmenuitems
func (mc *MenuController) Create(c *gin.Context) {
	var req services.MenuIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := mc.Service.Create(&req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, menu)
}

// PUT /editmenu
func (mc *MenuController) Update(c *gin.Context) {
	var req services.MenuEditIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := mc.Service.Update(&req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /menu-items/:kode_menu
func (mc *MenuController) Delete(c *gin.Context) {
	kode := c.Param("kode_menu")
	if err := mc.Service.Delete(kode); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": kode})
}

// GET /menu-terlaris?start=2025-01-01&end=2025-01-31&limit=5
func (mc *MenuController) BestSellers(c *gin.Context) {
	now := time.Now()
	start := now.AddDate(0, -1, 0)
	end := now
	if v := c.Query("start"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "invalid start date")
			return
		}
		start = t
	}
	if v := c.Query("end"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			resp.BadRequest(c, "invalid end date")
			return
		}
		// include the whole end day
		end = t.AddDate(0, 0, 1)
	}

	limit := 5
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			resp.BadRequest(c, "invalid limit")
			return
		}
		limit = n
	}

	best, err := mc.Service.BestSellers(start, end, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, best)
}
