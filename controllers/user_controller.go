package controllers

import (
	"errors"
	"strconv"

	"nunis-api/pkg/resp"
	"nunis-api/services"
	"nunis-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct{ Service *services.UserService }

func NewUserController(s *services.UserService) *UserController {
	return &UserController{Service: s}
}

// GET /getUser
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Service.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /user/:email
func (uc *UserController) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	// customers may only read their own profile
	if utils.CurrentRole(c) != "admin" {
		user, err := uc.Service.GetByEmail(email)
		if err != nil || user.ID != utils.CurrentUserID(c) {
			resp.Forbidden(c, "forbidden")
			return
		}
		resp.OK(c, user)
		return
	}

	user, err := uc.Service.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

// DELETE /deleteuser/:id
func (uc *UserController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := uc.Service.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

type UpdateStatusRequest struct {
	Status *int `json:"status" binding:"required"`
}

// PATCH /update-user-status/:email
func (uc *UserController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := uc.Service.UpdateStatus(c.Param("email"), *req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"email": c.Param("email"), "status": *req.Status})
}

// PUT /update-user-profile
func (uc *UserController) UpdateProfile(c *gin.Context) {
	var req services.UpdateProfileIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.Service.UpdateProfile(&req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

type UploadPictureRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Picture string `json:"picture" binding:"required"`
}

// POST /upload-profile-picture
func (uc *UserController) UploadPicture(c *gin.Context) {
	var req UploadPictureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := uc.Service.UploadProfilePicture(req.Email, req.Picture)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, user)
}
