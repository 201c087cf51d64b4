package controller

import (
	"nextlevel_lms/internal/catalog"
	"nextlevel_lms/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Catalog *catalog.Catalog
}

func NewCatalogController(cat *catalog.Catalog) *CatalogController {
	return &CatalogController{Catalog: cat}
}

// ListCourses lists the catalog, or one category with ?category=&limit=.
// @Summary 课程列表
// @Tags 课程
// @Produce  json
// @Param   category query string false "category id"
// @Param   limit query int false "max courses"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	category := ctx.Query("category")
	if category == "" {
		util.Success(ctx, c.Catalog.Courses())
		return
	}
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	util.Success(ctx, c.Catalog.ByCategory(category, limit))
}

// GetCourse godoc
// @Summary 课程详情
// @Description 返回课程及同类推荐课程
// @Tags 课程
// @Produce  json
// @Param   id path string true "course id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CatalogController) GetCourse(ctx *gin.Context) {
	course, err := c.Catalog.Course(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"course":  course,
		"related": c.Catalog.Related(course.ID, catalog.RelatedLimit),
	})
}

// GetPlans godoc
// @Summary 课程方案
// @Tags 课程
// @Produce  json
// @Param   id path string true "course id"
// @Success 200 {object} util.Response{data=[]model.Plan}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/plans [get]
func (c *CatalogController) GetPlans(ctx *gin.Context) {
	course, err := c.Catalog.Course(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}
	util.Success(ctx, catalog.Plans(course))
}

// ListCategories godoc
// @Summary 分类列表
// @Tags 课程
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.Categories())
}
