package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"photostudio_backend/internal/app"
	"photostudio_backend/internal/auth"
	"photostudio_backend/internal/config"
	"photostudio_backend/internal/database"
	"photostudio_backend/internal/middleware"
	"photostudio_backend/pkg/contextkeys"
)

// TestServer runs the full router against a real database. Construction
// expects DATABASE_URL to be set; callers skip their test when it is not.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)

	config.LoadConfig()
	cfg := config.GetConfig()

	uploadsDir, err := os.MkdirTemp("", "uploads")
	require.NoError(t, err)
	cfg.Storage.BasePath = uploadsDir

	db, err := database.Connect(cfg.Database.Driver, cfg.Database.DSN)
	require.NoError(t, err, "test database unavailable at %s", cfg.Database.DSN)
	require.NoError(t, database.Migrate(db))

	return &TestServer{
		Router: app.SetupRouter(cfg, db),
		DB:     db,
	}
}

// BeginTransaction opens the transaction a single test runs inside.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	t.Helper()

	tx := ts.DB.Begin()
	require.NoError(t, tx.Error)
	return tx
}

// RollbackTransaction undoes everything the test wrote.
func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	t.Helper()

	tx.Rollback()
}

// SendRequest drives the router directly. When tx is non-nil it rides the
// request context, so DBMiddleware routes handlers into the test
// transaction instead of the connection pool.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}, tx *gorm.DB) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	w := httptest.NewRecorder()
	ts.Router.ServeHTTP(w, req)
	return w, w.Body.String()
}

// AdminToken signs a short-lived token carrying the admin role.
func (ts *TestServer) AdminToken(t *testing.T) string {
	t.Helper()

	token, err := auth.SignToken("it-admin", middleware.RoleAdmin, config.GetConfig().JWT.Secret, time.Hour)
	require.NoError(t, err)
	return token
}
