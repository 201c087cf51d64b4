package controller

import (
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// Register godoc
// @Summary 注册新用户
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.RegisterRequest true "registration data"
// @Success 201 {object} util.Response{data=model.PublicUser}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, user.Public())
}

// Login godoc
// @Summary 登录
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.LoginRequest true "credentials"
// @Success 200 {object} util.Response{data=model.PublicUser}
// @Failure 401 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Login(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// Logout godoc
// @Summary 退出登录
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=service.Session}
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.AuthService.Logout()
	util.Success(ctx, c.AuthService.Snapshot())
}

// Session godoc
// @Summary 当前会话
// @Description 返回 isAuthenticated/currentUser/isLoading
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response{data=service.Session}
// @Router /api/session [get]
func (c *AuthController) Session(ctx *gin.Context) {
	util.Success(ctx, c.AuthService.Snapshot())
}
