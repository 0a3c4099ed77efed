package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codewith-lab/ssrblog/config"
	"github.com/codewith-lab/ssrblog/controllers"
	"github.com/codewith-lab/ssrblog/models"
	"github.com/codewith-lab/ssrblog/router"
	"github.com/codewith-lab/ssrblog/seed"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenDB(config.DatabaseConfig{Driver: "sqlite", Location: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { config.CloseDB(db) })
	require.NoError(t, config.EnsureSchema(db, false))

	h := controllers.NewHandler(db, nil, testSecret)
	return router.InitRouter(h), db
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func loginAsAdmin(t *testing.T, r *gin.Engine, db *gorm.DB) string {
	t.Helper()
	_, err := seed.EnsureAdmin(db, "admin", "admin123")
	require.NoError(t, err)

	w := doRequest(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "admin123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeJSON(t, w)["token"].(string)
	require.True(t, ok)
	return token
}

func createArticle(t *testing.T, db *gorm.DB, article models.Article) models.Article {
	t.Helper()
	require.NoError(t, db.Create(&article).Error)
	return article
}
