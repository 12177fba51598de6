package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(auth *Auth) *gin.Engine {
	r := gin.New()
	r.GET("/admin", auth.RequireAuthWithRole("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint("user_id")})
	})
	return r
}

func doGet(r http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_TokenRoundTrip(t *testing.T) {
	auth := NewAuth("secret", time.Hour)

	token, err := auth.GenerateToken(7, "admin")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuth_RejectsForeignSignature(t *testing.T) {
	token, err := NewAuth("other", time.Hour).GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = NewAuth("secret", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestAuth_RejectsExpiredToken(t *testing.T) {
	auth := NewAuth("secret", -time.Minute)
	token, err := auth.GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.Error(t, err)
}

func TestRequireAuthWithRole(t *testing.T) {
	auth := NewAuth("secret", time.Hour)
	r := protectedRouter(auth)

	adminToken, _ := auth.GenerateToken(3, "admin")
	guestToken, _ := auth.GenerateToken(4, "guest")

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "garbage").Code)
	assert.Equal(t, http.StatusForbidden, doGet(r, guestToken).Code)

	w := doGet(r, adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":3}`, w.Body.String())
}
