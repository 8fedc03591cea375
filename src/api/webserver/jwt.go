package webserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// JWTMiddleware authenticates Bearer tokens issued by Verify and exposes the
// caller's address as the "addr" context key. Tokens without a usable addr
// claim are rejected rather than passed through with an empty identity.
func JWTMiddleware(secret []byte) gin.HandlerFunc {
	keyFunc := func(t *jwt.Token) (interface{}, error) { return secret, nil }

	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		tok, err := jwt.Parse(h[7:], keyFunc, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !tok.Valid {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		addr, ok := claims["addr"].(string)
		if !ok || addr == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Set("addr", addr)
		c.Next()
	}
}
