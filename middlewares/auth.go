package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Nagesh2809/cafe-management/configs"
	"github.com/Nagesh2809/cafe-management/entity"
	"github.com/Nagesh2809/cafe-management/pkg/resp"
	"github.com/Nagesh2809/cafe-management/utils"
)

// AuthMiddleware resolves the bearer token to a User row and, when
// roles are given, enforces the role gate. The token only carries the
// subject email; the role always comes from the database.
func AuthMiddleware(db *gorm.DB, cfg *configs.Config, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		email, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil {
			resp.Unauthorized(c, "could not validate credentials")
			c.Abort()
			return
		}

		var user entity.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			resp.Unauthorized(c, "could not validate credentials")
			c.Abort()
			return
		}

		utils.SetCurrentUser(c, &user)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "not authorized")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
