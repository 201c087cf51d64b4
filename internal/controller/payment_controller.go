package controller

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	HistoryService *service.PaymentHistoryService
}

func NewPaymentController(historyService *service.PaymentHistoryService) *PaymentController {
	return &PaymentController{HistoryService: historyService}
}

// List returns the payment log, or only ?method= payments.
// @Summary 支付记录
// @Tags 支付
// @Produce  json
// @Security SessionAuth
// @Param   method query string false "pago-movil|visa|paypal|transferencia"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/payments [get]
func (c *PaymentController) List(ctx *gin.Context) {
	if method := ctx.Query("method"); method != "" {
		m := model.PaymentMethod(method)
		if !m.Valid() {
			util.HandleError(ctx, util.ErrInvalidPaymentMethod)
			return
		}
		util.Success(ctx, c.HistoryService.ByMethod(m))
		return
	}

	last, _ := c.HistoryService.Last()
	util.Success(ctx, gin.H{
		"payments": c.HistoryService.History(),
		"last":     last,
	})
}

// Statistics godoc
// @Summary 支付统计
// @Tags 支付
// @Produce  json
// @Security SessionAuth
// @Success 200 {object} util.Response{data=model.PaymentStatistics}
// @Router /api/payments/stats [get]
func (c *PaymentController) Statistics(ctx *gin.Context) {
	util.Success(ctx, c.HistoryService.Statistics())
}

// Clear godoc
// @Summary 清空支付记录
// @Tags 支付
// @Produce  json
// @Security SessionAuth
// @Success 200 {object} util.Response
// @Router /api/payments [delete]
func (c *PaymentController) Clear(ctx *gin.Context) {
	c.HistoryService.Clear()
	util.Success(ctx, nil)
}
