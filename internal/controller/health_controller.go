package controller

import (
	"net/http"
	"nextlevel_lms/internal/storage"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Medium storage.Medium
}

func NewHealthController(medium storage.Medium) *HealthController {
	return &HealthController{Medium: medium}
}

// @Summary 健康检查
// @Description 检查服务状态
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if _, _, err := c.Medium.GetItem(ctx.Request.Context(), util.KeyData); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Storage unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"storage": storage.DriverOf(c.Medium),
		},
	})
}
