package app

import (
	"nextlevel_lms/internal/middleware"
	"nextlevel_lms/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要登录的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(a.services.auth))
	{
		a.registerStudentRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
		public.POST("/logout", c.auth.Logout)
		public.GET("/session", c.auth.Session)

		public.GET("/courses", c.catalog.ListCourses)
		public.GET("/courses/:id", c.catalog.GetCourse)
		public.GET("/courses/:id/plans", c.catalog.GetPlans)
		public.GET("/categories", c.catalog.ListCategories)

		public.GET("/courses/:id/reviews", c.review.ListReviews)
		public.GET("/courses/:id/rating", c.review.Rating)
		public.POST("/reviews/:id/helpful", c.review.MarkHelpful)
		public.GET("/courses/:id/comments", c.review.ListComments)

		// 购物车不需要登录，结算需要
		public.GET("/cart", c.cart.GetCart)
		public.POST("/cart", c.cart.AddItem)
		public.DELETE("/cart", c.cart.RemoveItem)

		public.GET("/stats", c.stats.Global)
	}
}

func (a *App) registerStudentRoutes(r *gin.RouterGroup, c *controllers) {
	r.POST("/checkout", c.cart.Checkout)

	r.GET("/invoices", c.invoice.List)
	r.GET("/invoices/:id", c.invoice.Get)
	r.GET("/invoice-numbers/:number", c.invoice.GetByNumber)
	r.DELETE("/invoices/:id", c.invoice.Delete)

	r.GET("/enrollments", c.enrollment.List)
	r.POST("/enrollments", c.enrollment.Enroll)
	r.PUT("/enrollments/:id/progress", c.enrollment.UpdateProgress)
	r.POST("/courses/:id/quiz", c.enrollment.SubmitQuiz)

	r.POST("/courses/:id/reviews", c.review.CreateReview)
	r.PUT("/reviews/:id", c.review.UpdateReview)
	r.DELETE("/reviews/:id", c.review.DeleteReview)
	r.POST("/courses/:id/comments", c.review.CreateComment)

	r.GET("/payments", c.payment.List)
	r.GET("/payments/stats", c.payment.Statistics)
	r.DELETE("/payments", c.payment.Clear)

	r.GET("/stats/me", c.stats.Mine)
}
