package controller

import (
	"net/http"

	"maths_point_backend/internal/service"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LeaderboardController struct {
	Service *service.LeaderboardService
}

func NewLeaderboardController(svc *service.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{Service: svc}
}

// @Summary Ranked results for one exam
// @Tags leaderboard
// @Produce json
// @Param examId path string true "exam id"
// @Success 200 {object} map[string]interface{}
// @Router /api/leaderboard/{examId} [get]
func (c *LeaderboardController) GetLeaderboard(ctx *gin.Context) {
	entries, err := c.Service.GetLeaderboard(ctx.Param("examId"))
	if err != nil {
		util.FromError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}
