package controller

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	ReviewService  *service.ReviewService
	CommentService *service.CommentService
	StatsService   *service.StatsService
}

func NewReviewController(reviewService *service.ReviewService, commentService *service.CommentService, statsService *service.StatsService) *ReviewController {
	return &ReviewController{
		ReviewService:  reviewService,
		CommentService: commentService,
		StatsService:   statsService,
	}
}

type CommentRequest struct {
	Content string `json:"content"`
}

// ListReviews accepts ?sort=recent|rating|helpful and ?filter=all|verified|1..5.
// @Summary 课程评价列表
// @Tags 评价
// @Produce  json
// @Param   id path string true "course id"
// @Param   sort query string false "recent|rating|helpful"
// @Param   filter query string false "all|verified|1..5"
// @Success 200 {object} util.Response{data=[]model.Review}
// @Router /api/courses/{id}/reviews [get]
func (c *ReviewController) ListReviews(ctx *gin.Context) {
	sortBy := model.ReviewSort(ctx.DefaultQuery("sort", string(model.SortRecent)))
	util.Success(ctx, c.ReviewService.List(ctx.Param("id"), sortBy, ctx.DefaultQuery("filter", "all")))
}

// CreateReview godoc
// @Summary 发表评价
// @Tags 评价
// @Accept  json
// @Produce  json
// @Security SessionAuth
// @Param   id path string true "course id"
// @Param   body body service.ReviewRequest true "rating and comment"
// @Success 201 {object} util.Response{data=model.Review}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/courses/{id}/reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	var req service.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, err := c.ReviewService.Submit(ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, review)
}

// UpdateReview godoc
// @Summary 修改评价
// @Description 只能修改自己的评价
// @Tags 评价
// @Accept  json
// @Produce  json
// @Security SessionAuth
// @Param   id path string true "review id"
// @Param   body body service.ReviewRequest true "rating and comment"
// @Success 200 {object} util.Response{data=model.Review}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reviews/{id} [put]
func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	var req service.ReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, err := c.ReviewService.Edit(ctx.Param("id"), req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, review)
}

// DeleteReview godoc
// @Summary 删除评价
// @Description 只能删除自己的评价
// @Tags 评价
// @Produce  json
// @Security SessionAuth
// @Param   id path string true "review id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	if err := c.ReviewService.Delete(ctx.Param("id")); err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// MarkHelpful godoc
// @Summary 评价有用
// @Tags 评价
// @Produce  json
// @Param   id path string true "review id"
// @Success 200 {object} util.Response{data=model.Review}
// @Failure 404 {object} util.Response
// @Router /api/reviews/{id}/helpful [post]
func (c *ReviewController) MarkHelpful(ctx *gin.Context) {
	review, err := c.ReviewService.MarkHelpful(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, review)
}

// Rating godoc
// @Summary 课程评分
// @Tags 评价
// @Produce  json
// @Param   id path string true "course id"
// @Success 200 {object} util.Response{data=model.CourseRatingSummary}
// @Router /api/courses/{id}/rating [get]
func (c *ReviewController) Rating(ctx *gin.Context) {
	util.Success(ctx, c.StatsService.CourseRating(ctx.Param("id")))
}

// ListComments godoc
// @Summary 课程评论列表
// @Tags 评论
// @Produce  json
// @Param   id path string true "course id"
// @Success 200 {object} util.Response{data=[]model.CourseComment}
// @Router /api/courses/{id}/comments [get]
func (c *ReviewController) ListComments(ctx *gin.Context) {
	util.Success(ctx, c.CommentService.ForCourse(ctx.Param("id")))
}

// CreateComment godoc
// @Summary 发表评论
// @Tags 评论
// @Accept  json
// @Produce  json
// @Security SessionAuth
// @Param   id path string true "course id"
// @Param   body body CommentRequest true "content"
// @Success 201 {object} util.Response{data=model.CourseComment}
// @Failure 400 {object} util.Response
// @Router /api/courses/{id}/comments [post]
func (c *ReviewController) CreateComment(ctx *gin.Context) {
	var req CommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	comment, err := c.CommentService.Create(ctx.Param("id"), req.Content)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}
