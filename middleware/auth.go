package middleware

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"property-review-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware establishes the caller identity for the request. The
// user-management layer in front of this API authenticates the caller and
// forwards identity either as trusted X-User-Id/X-Role headers or as a
// signed gateway token. Requests without a usable identity never reach a
// handler.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			userID, role, ok := identityFromToken(authHeader)
			if !ok {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				c.Abort()
				return
			}
			c.Set("userID", userID)
			c.Set("role", role)
			c.Next()
			return
		}

		rawID := c.GetHeader("X-User-Id")
		if rawID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing X-User-Id header"})
			c.Abort()
			return
		}
		userID, err := strconv.Atoi(rawID)
		if err != nil || userID <= 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid X-User-Id header"})
			c.Abort()
			return
		}

		role, ok := models.ParseRole(c.GetHeader("X-Role"))
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid X-Role header"})
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Set("role", role)

		c.Next()
	}
}

func identityFromToken(authHeader string) (int, models.Role, bool) {
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return 0, "", false
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, "", false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, "", false
	}

	role, ok := models.ParseRole(claims.Role)
	if !ok || claims.UserID <= 0 {
		return 0, "", false
	}
	return claims.UserID, role, true
}

// RequireRole checks if the caller has one of the given roles.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found"})
			c.Abort()
			return
		}

		callerRole := roleValue.(models.Role)
		allowed := false
		for _, role := range roles {
			if callerRole == role {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CallerIdentity pulls the identity set by AuthMiddleware out of the
// request context.
func CallerIdentity(c *gin.Context) (int, models.Role) {
	userID := c.GetInt("userID")
	role, _ := c.Get("role")
	r, _ := role.(models.Role)
	return userID, r
}
