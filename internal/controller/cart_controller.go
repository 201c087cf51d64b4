package controller

import (
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
}

func NewCartController(cartService *service.CartService, checkoutService *service.CheckoutService) *CartController {
	return &CartController{
		CartService:     cartService,
		CheckoutService: checkoutService,
	}
}

type CartItemRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	PlanID   string `json:"planId"`
}

// GetCart godoc
// @Summary 获取购物车
// @Tags 购物车
// @Produce  json
// @Success 200 {object} util.Response{data=service.CartView}
// @Router /api/cart [get]
func (c *CartController) GetCart(ctx *gin.Context) {
	util.Success(ctx, c.CartService.View())
}

// AddItem godoc
// @Summary 加入购物车
// @Description 同一课程同一方案重复加入不会新增
// @Tags 购物车
// @Accept  json
// @Produce  json
// @Param   body body CartItemRequest true "course and plan"
// @Success 200 {object} util.Response{data=service.CartView}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/cart [post]
func (c *CartController) AddItem(ctx *gin.Context) {
	var req CartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	view, err := c.CartService.Add(req.CourseID, req.PlanID)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// RemoveItem drops ?courseId=&planId= from the cart; without courseId the cart is emptied.
// @Summary 移出购物车
// @Tags 购物车
// @Produce  json
// @Param   courseId query string false "course id"
// @Param   planId query string false "plan id"
// @Success 200 {object} util.Response{data=service.CartView}
// @Router /api/cart [delete]
func (c *CartController) RemoveItem(ctx *gin.Context) {
	courseID := ctx.Query("courseId")
	if courseID == "" {
		c.CartService.Clear()
		util.Success(ctx, c.CartService.View())
		return
	}
	util.Success(ctx, c.CartService.Remove(courseID, ctx.Query("planId")))
}

// Checkout godoc
// @Summary 结算
// @Tags 购物车
// @Accept  json
// @Produce  json
// @Param   body body service.CheckoutRequest true "payment method and form"
// @Success 201 {object} util.Response{data=service.CheckoutResult}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Security SessionAuth
// @Router /api/checkout [post]
func (c *CartController) Checkout(ctx *gin.Context) {
	var req service.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.CheckoutService.Checkout(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, result)
}
