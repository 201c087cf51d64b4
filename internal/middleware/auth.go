package middleware

import (
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/service"
	"nextlevel_lms/internal/util"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// AuthMiddleware rejects requests while no user is logged in and puts the session
// user in the context for handlers.
func AuthMiddleware(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser()
		if user == nil {
			util.HandleError(c, util.ErrNotAuthenticated)
			c.Abort()
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the user AuthMiddleware stored, or nil.
func CurrentUser(c *gin.Context) *model.PublicUser {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*model.PublicUser)
	return user
}
