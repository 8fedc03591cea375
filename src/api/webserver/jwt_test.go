package webserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newJWTRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", JWTMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"addr": c.GetString("addr")})
	})
	return r
}

func getWithToken(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTMiddleware(t *testing.T) {
	secret := []byte("test-secret")
	r := newJWTRouter(secret)

	token, err := issueJWT("0xabc", secret)
	assert.NoError(t, err)

	w := getWithToken(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "0xabc")

	w = getWithToken(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = getWithToken(r, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Signed with a different secret.
	other, err := issueJWT("0xabc", []byte("other-secret"))
	assert.NoError(t, err)
	w = getWithToken(r, other)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTMiddlewareRequiresAddrClaim(t *testing.T) {
	secret := []byte("test-secret")
	r := newJWTRouter(secret)

	// Valid token, but no usable identity in it.
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString(secret)
	assert.NoError(t, err)

	w := getWithToken(r, signed)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
