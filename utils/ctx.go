package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/Nagesh2809/cafe-management/entity"
)

const userKey = "currentUser"

func SetCurrentUser(c *gin.Context, u *entity.User) {
	c.Set(userKey, u)
}

// CurrentUser returns the authenticated user stashed by the auth
// middleware, or nil on unprotected routes.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
