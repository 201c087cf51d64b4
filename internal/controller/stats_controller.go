package controller

import (
	"nextlevel_lms/internal/middleware"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// Global godoc
// @Summary 平台统计
// @Tags 统计
// @Produce  json
// @Success 200 {object} util.Response{data=model.GlobalStats}
// @Router /api/stats [get]
func (c *StatsController) Global(ctx *gin.Context) {
	util.Success(ctx, c.StatsService.Global())
}

// Mine godoc
// @Summary 我的学习统计
// @Tags 统计
// @Produce  json
// @Security SessionAuth
// @Success 200 {object} util.Response{data=model.UserStats}
// @Failure 401 {object} util.Response
// @Router /api/stats/me [get]
func (c *StatsController) Mine(ctx *gin.Context) {
	user := middleware.CurrentUser(ctx)
	if user == nil {
		util.HandleError(ctx, util.ErrNotAuthenticated)
		return
	}
	util.Success(ctx, c.StatsService.User(user.ID))
}
