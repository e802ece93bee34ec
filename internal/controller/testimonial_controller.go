package controller

import (
	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestimonialController struct {
	Service *service.TestimonialService
}

func NewTestimonialController(svc *service.TestimonialService) *TestimonialController {
	return &TestimonialController{Service: svc}
}

// @Summary Submit a testimonial
// @Tags testimonials
// @Accept json
// @Produce json
// @Param body body service.TestimonialReq true "content and rating"
// @Success 201 {object} util.Response
// @Router /api/testimonials [post]
func (c *TestimonialController) SubmitTestimonial(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TestimonialReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	testimonial, err := c.Service.SubmitTestimonial(user.UserID, req)
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Created(ctx, "Testimonial submitted successfully", gin.H{"testimonial": testimonial})
}

// @Summary List testimonials with their authors
// @Tags testimonials
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/testimonials [get]
func (c *TestimonialController) GetTestimonials(ctx *gin.Context) {
	testimonials, err := c.Service.GetTestimonials()
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"testimonials": testimonials})
}
