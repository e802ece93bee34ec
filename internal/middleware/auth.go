package middleware

import (
	"strings"

	"maths_point_backend/internal/config"
	"maths_point_backend/internal/model"
	"maths_point_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// tokenFromRequest accepts the Authorization header first, then the auth
// cookie the browser client sends.
func tokenFromRequest(c *gin.Context, jwtCfg config.JWTConfig) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := c.Cookie(jwtCfg.CookieName); err == nil {
		return cookie
	}

	return ""
}

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		jwtCfg := cfg.JWTSettings()

		tokenString := tokenFromRequest(c, jwtCfg)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, jwtCfg.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			// Admins hold every permission.
			if user.Role == model.Admin || user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
