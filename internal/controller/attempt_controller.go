package controller

import (
	"net/http"

	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	Service *service.AttemptService
}

func NewAttemptController(svc *service.AttemptService) *AttemptController {
	return &AttemptController{Service: svc}
}

// @Summary Submit and score an exam attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param body body service.SubmitAttemptReq true "test id and answers"
// @Success 201 {object} map[string]interface{}
// @Router /attempt/save [post]
func (c *AttemptController) SaveAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SubmitAttemptReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "test_id and answers are required."})
		return
	}

	attempt, err := c.Service.SubmitAttempt(user.UserID, req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Attempt saved successfully.",
		"attempt": attempt,
	})
}

// @Summary List the signed-in user's attempts, newest first
// @Tags attempts
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /attempt/get-all-attempts [get]
func (c *AttemptController) GetMyAttempts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.Service.GetAttemptsForUser(user.UserID)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// @Summary Fetch one attempt by id
// @Tags attempts
// @Produce json
// @Param id path string true "attempt id"
// @Success 200 {object} map[string]interface{}
// @Router /attempt/{id} [get]
func (c *AttemptController) GetAttemptByID(ctx *gin.Context) {
	attempt, err := c.Service.GetAttemptByID(ctx.Param("id"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"attempt": attempt})
}
