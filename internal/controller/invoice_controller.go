package controller

import (
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	InvoiceService *service.InvoiceService
}

func NewInvoiceController(invoiceService *service.InvoiceService) *InvoiceController {
	return &InvoiceController{InvoiceService: invoiceService}
}

// List godoc
// @Summary 发票列表
// @Tags 发票
// @Produce  json
// @Security SessionAuth
// @Success 200 {object} util.Response{data=[]model.Invoice}
// @Router /api/invoices [get]
func (c *InvoiceController) List(ctx *gin.Context) {
	util.Success(ctx, c.InvoiceService.List())
}

// Get godoc
// @Summary 发票详情
// @Tags 发票
// @Produce  json
// @Security SessionAuth
// @Param   id path string true "invoice id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/invoices/{id} [get]
func (c *InvoiceController) Get(ctx *gin.Context) {
	invoice, err := c.InvoiceService.Get(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"invoice":       invoice,
		"formattedDate": service.FormatInvoiceDate(invoice.Date),
	})
}

// GetByNumber godoc
// @Summary 按编号查询发票
// @Tags 发票
// @Produce  json
// @Security SessionAuth
// @Param   number path string true "invoice number"
// @Success 200 {object} util.Response{data=model.Invoice}
// @Failure 404 {object} util.Response
// @Router /api/invoice-numbers/{number} [get]
func (c *InvoiceController) GetByNumber(ctx *gin.Context) {
	invoice, err := c.InvoiceService.GetByNumber(ctx.Param("number"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, invoice)
}

// Delete godoc
// @Summary 删除发票
// @Tags 发票
// @Produce  json
// @Security SessionAuth
// @Param   id path string true "invoice id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/invoices/{id} [delete]
func (c *InvoiceController) Delete(ctx *gin.Context) {
	if err := c.InvoiceService.Delete(ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
