package middleware

import (
	"fmt"
	"strings"

	"cavebeat-backend/internal/domain"
	"cavebeat-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the role claim required by the admin routes.
const RoleAdmin = "admin"

// AdminAuth accepts HS256 bearer tokens signed with secret whose role claim is admin.
// With an empty secret every request is rejected. Rejections are rendered by ErrorHandler.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Error(apperror.Unauthorized("Admin access is not configured"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			c.Error(apperror.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.Error(apperror.Unauthorized("Invalid token"))
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Error(apperror.Unauthorized("Invalid claims"))
			c.Abort()
			return
		}

		role, _ := claims["role"].(string)
		if role != RoleAdmin {
			c.Error(apperror.Forbidden("Admin role required"))
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserRole), role)

		c.Next()
	}
}
