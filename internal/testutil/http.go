package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"soapworks/config"
	authapi "soapworks/internal/api/auth"
	routes "soapworks/internal/app/http"
	"soapworks/internal/domain/users"
)

// Router builds the full route table against a fresh in-memory database.
func Router(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	if config.JWT_SECRET == "" {
		config.JWT_SECRET = "test-secret"
	}

	db := OpenDB(t)
	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r, db
}

// Token issues an app JWT for a seeded user.
func Token(t *testing.T, u users.User) string {
	t.Helper()
	tok, err := authapi.IssueToken(u)
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

// DoJSON performs a request with an optional JSON body and bearer token.
func DoJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a recorded JSON response into out.
func Decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
