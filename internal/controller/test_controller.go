package controller

import (
	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	Service *service.TestService
}

func NewTestController(svc *service.TestService) *TestController {
	return &TestController{Service: svc}
}

// @Summary List all tests with their creators
// @Tags tests
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/tests [get]
func (c *TestController) GetTests(ctx *gin.Context) {
	tests, err := c.Service.GetTests()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"tests": tests})
}

// @Summary Create a new test
// @Tags tests
// @Accept json
// @Produce json
// @Param body body service.TestReq true "test fields"
// @Success 201 {object} util.Response
// @Router /api/tests [post]
func (c *TestController) CreateTest(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.Service.CreateTest(user.UserID, req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, "Test created successfully", gin.H{"test": test})
}

// @Summary Fetch one test
// @Tags tests
// @Produce json
// @Param id path string true "test id"
// @Success 200 {object} util.Response
// @Router /api/tests/{id} [get]
func (c *TestController) GetTestByID(ctx *gin.Context) {
	test, err := c.Service.GetTestByID(ctx.Param("id"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"test": test})
}

// @Summary Update a test
// @Tags tests
// @Accept json
// @Produce json
// @Param id path string true "test id"
// @Param body body service.TestReq true "test fields"
// @Success 200 {object} util.Response
// @Router /api/tests/{id} [put]
func (c *TestController) UpdateTest(ctx *gin.Context) {
	var req service.TestReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	test, err := c.Service.UpdateTest(ctx.Param("id"), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"test": test})
}

// @Summary Delete a test and its questions
// @Tags tests
// @Produce json
// @Param id path string true "test id"
// @Success 200 {object} util.Response
// @Router /api/tests/{id} [delete]
func (c *TestController) DeleteTest(ctx *gin.Context) {
	if err := c.Service.DeleteTest(ctx.Param("id")); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"deleted": ctx.Param("id")})
}
