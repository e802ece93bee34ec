package controller

import (
	"net/http"

	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

// @Summary List questions, optionally filtered by test
// @Tags questions
// @Produce json
// @Param testId query string false "test id"
// @Success 200 {object} map[string]interface{}
// @Router /api/questions [get]
func (c *QuestionController) GetQuestions(ctx *gin.Context) {
	questions, err := c.Service.GetQuestions(ctx.Query("testId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": questions,
		"message":   "Questions retrieved successfully",
	})
}

// @Summary Add a question to a test
// @Tags questions
// @Accept json
// @Produce json
// @Param testId path string true "test id"
// @Param body body service.QuestionReq true "question fields"
// @Success 201 {object} util.Response
// @Router /api/questions/{testId} [post]
func (c *QuestionController) AddQuestion(ctx *gin.Context) {
	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.AddQuestion(ctx.Param("testId"), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, "Question added successfully", gin.H{"question": question})
}

// @Summary Update a question within a test
// @Tags questions
// @Accept json
// @Produce json
// @Param testId path string true "test id"
// @Param questionId path string true "question id"
// @Param body body service.QuestionReq true "question fields"
// @Success 200 {object} util.Response
// @Router /api/questions/{testId}/questions/{questionId} [put]
func (c *QuestionController) UpdateQuestion(ctx *gin.Context) {
	var req service.QuestionReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question, err := c.Service.UpdateQuestion(ctx.Param("testId"), ctx.Param("questionId"), req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"question": question})
}

// @Summary Delete a question from a test
// @Tags questions
// @Produce json
// @Param testId path string true "test id"
// @Param questionId path string true "question id"
// @Success 200 {object} util.Response
// @Router /api/questions/{testId}/questions/{questionId} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	if err := c.Service.DeleteQuestion(ctx.Param("testId"), ctx.Param("questionId")); err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Question deleted successfully"})
}
