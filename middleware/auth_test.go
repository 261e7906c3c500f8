package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"property-review-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func newAuthRouter(extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		userID, role := CallerIdentity(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": string(role)})
	})
	router.GET("/whoami", handlers...)
	return router
}

func doRequest(router *gin.Engine, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestAuthMiddlewareRejectsMissingIdentity(t *testing.T) {
	router := newAuthRouter()

	cases := []struct {
		name    string
		headers map[string]string
	}{
		{"no headers", nil},
		{"missing role", map[string]string{"X-User-Id": "5"}},
		{"unknown role", map[string]string{"X-User-Id": "5", "X-Role": "manager"}},
		{"non-numeric id", map[string]string{"X-User-Id": "abc", "X-Role": "tenant"}},
		{"zero id", map[string]string{"X-User-Id": "0", "X-Role": "tenant"}},
	}

	for _, tc := range cases {
		if got := doRequest(router, tc.headers).Code; got != http.StatusUnauthorized {
			t.Errorf("%s: status = %d, want 401", tc.name, got)
		}
	}
}

func TestAuthMiddlewareAcceptsTrustedHeaders(t *testing.T) {
	router := newAuthRouter()

	recorder := doRequest(router, map[string]string{"X-User-Id": "5", "X-Role": "tenant"})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}
	body := recorder.Body.String()
	if body != `{"role":"tenant","user_id":5}` {
		t.Fatalf("unexpected identity payload: %s", body)
	}
}

func TestAuthMiddlewareAcceptsGatewayToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router := newAuthRouter()

	claims := &Claims{
		UserID: 7,
		Role:   string(models.RoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	recorder := doRequest(router, map[string]string{"Authorization": "Bearer " + token})
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body.String())
	}

	badSig, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	if got := doRequest(router, map[string]string{"Authorization": "Bearer " + badSig}).Code; got != http.StatusUnauthorized {
		t.Fatalf("forged token status = %d, want 401", got)
	}
}

func TestRequireRole(t *testing.T) {
	router := newAuthRouter(RequireRole(models.RoleAdmin))

	if got := doRequest(router, map[string]string{"X-User-Id": "5", "X-Role": "tenant"}).Code; got != http.StatusForbidden {
		t.Fatalf("tenant on admin route: status = %d, want 403", got)
	}
	if got := doRequest(router, map[string]string{"X-User-Id": "1", "X-Role": "admin"}).Code; got != http.StatusOK {
		t.Fatalf("admin on admin route: status = %d, want 200", got)
	}
}
