package controller

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type EnrollmentController struct {
	EnrollmentService *service.EnrollmentService
}

func NewEnrollmentController(enrollmentService *service.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{EnrollmentService: enrollmentService}
}

type EnrollRequest struct {
	CourseID       string `json:"courseId" binding:"required"`
	CourseTitle    string `json:"courseTitle" binding:"required"`
	CourseCategory string `json:"courseCategory"`
}

type ProgressRequest struct {
	Progress int                    `json:"progress"`
	Status   model.EnrollmentStatus `json:"status"`
}

type QuizRequest struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// List returns the current user's enrollments, narrowed by ?status= when given.
// @Summary 我的课程
// @Tags 学习
// @Produce  json
// @Security SessionAuth
// @Param   status query string false "all|not_started|in_progress|completed"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/enrollments [get]
func (c *EnrollmentController) List(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"enrollments": c.EnrollmentService.FilterByStatus(ctx.DefaultQuery("status", "all")),
		"stats":       c.EnrollmentService.MyStats(),
	})
}

// Enroll godoc
// @Summary 报名课程
// @Description 已报名时返回已有记录
// @Tags 学习
// @Accept  json
// @Produce  json
// @Security SessionAuth
// @Param   body body EnrollRequest true "course"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Router /api/enrollments [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	var req EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.Enroll(req.CourseID, req.CourseTitle, req.CourseCategory)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// UpdateProgress godoc
// @Summary 更新学习进度
// @Tags 学习
// @Accept  json
// @Produce  json
// @Security SessionAuth
// @Param   id path string true "enrollment id"
// @Param   body body ProgressRequest true "progress and status"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/enrollments/{id}/progress [put]
func (c *EnrollmentController) UpdateProgress(ctx *gin.Context) {
	var req ProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	enrollment, err := c.EnrollmentService.UpdateProgress(ctx.Param("id"), req.Progress, req.Status)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// SubmitQuiz godoc
// @Summary 提交测验
// @Description 得分不低于70分即完成课程
// @Tags 学习
// @Accept  json
// @Produce  json
// @Security SessionAuth
// @Param   id path string true "course id"
// @Param   body body QuizRequest true "answers"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/quiz [post]
func (c *EnrollmentController) SubmitQuiz(ctx *gin.Context) {
	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.EnrollmentService.SubmitQuiz(ctx.Param("id"), req.Correct, req.Total)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
