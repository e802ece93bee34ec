package controller

import (
	"errors"
	"net/http"

	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Service *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Service: svc}
}

// @Summary List all users (passwords omitted)
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/user [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.Service.GetUsers()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	if len(users) == 0 {
		util.NotFound(ctx, "No users found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"users": users})
}

// @Summary Update the signed-in user's profile
// @Tags users
// @Accept json
// @Produce json
// @Param body body service.UpdateProfileReq true "profile changes"
// @Success 200 {object} util.Response
// @Router /api/user/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateProfileReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.Service.UpdateProfile(user.UserID, req)
	if errors.Is(err, util.ErrInvalidCredentials) {
		util.Error(ctx, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"user": updated})
}
