package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/infrastructure/permission"
	"helpdesk/internal/infrastructure/persistence/seeds"
	"helpdesk/internal/infrastructure/repository"
	sharedConfig "helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	log := logger.NewNopLogger()
	require.NoError(t, db.AutoMigrate(migration.Models()...))

	enforcer, err := permission.NewEnforcer(db, log)
	require.NoError(t, err)
	require.NoError(t, enforcer.EnsurePolicies(permission.DefaultPolicies()))

	cfg := &config.Config{
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{Scheme: sharedConfig.PasswordSchemeSHA256},
			JWT:      sharedConfig.JWTConfig{Secret: "test-secret", AccessExpMinutes: 60},
		},
	}

	hasher := auth.NewPasswordHasher(cfg.Auth.Password)
	require.NoError(t, seeds.NewSeeder(db, hasher, repository.NewArticleRepository(db), log).Run(context.Background()))

	container, err := NewContainer(db, cfg, log)
	require.NoError(t, err)
	t.Cleanup(container.Close)
	container.SetupRoutes()
	return container.GetEngine()
}

func doRequest(engine *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func login(t *testing.T, engine *gin.Engine, username, password string) string {
	t.Helper()
	w, env := doRequest(engine, http.MethodPost, "/auth/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var data struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.AccessToken)
	assert.Equal(t, "Bearer", data.TokenType)
	return data.AccessToken
}

func TestRouter_Health(t *testing.T) {
	engine := newTestServer(t)

	w, _ := doRequest(engine, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_LoginFailures(t *testing.T) {
	engine := newTestServer(t)

	w, env := doRequest(engine, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	w, _ = doRequest(engine, http.MethodPost, "/auth/login", "", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRouter_RequiresAuth(t *testing.T) {
	engine := newTestServer(t)

	for _, path := range []string{"/tickets", "/profile", "/dashboard", "/catalog/statuses", "/time-entries/mine"} {
		w, _ := doRequest(engine, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRouter_TicketLifecycle(t *testing.T) {
	engine := newTestServer(t)
	userToken := login(t, engine, "user", "user123")
	staffToken := login(t, engine, "itstaff", "itstaff123")

	w, env := doRequest(engine, http.MethodPost, "/tickets", userToken, map[string]interface{}{
		"title":       "Printer jammed",
		"description": "Third floor printer shows paper jam",
		"category_id": 1,
		"priority_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID     uint   `json:"id"`
		Number string `json:"ticket_number"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.NotEmpty(t, created.Number)

	ticketPath := fmt.Sprintf("/tickets/%d", created.ID)

	w, _ = doRequest(engine, http.MethodGet, ticketPath, userToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(engine, http.MethodPost, ticketPath+"/comments", userToken, map[string]interface{}{
		"content": "Still jammed",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = doRequest(engine, http.MethodPost, ticketPath+"/time-entries", userToken, map[string]interface{}{
		"minutes_spent": 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(engine, http.MethodPost, ticketPath+"/time-entries", staffToken, map[string]interface{}{
		"minutes_spent": 15,
		"description":   "Cleared tray",
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, _ = doRequest(engine, http.MethodGet, "/time-entries/mine", staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(engine, http.MethodGet, "/dashboard", staffToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// requesters cannot delete
	w, _ = doRequest(engine, http.MethodDelete, ticketPath, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminToken := login(t, engine, "admin", "admin123")
	w, _ = doRequest(engine, http.MethodDelete, ticketPath, adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = doRequest(engine, http.MethodGet, ticketPath, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UserManagementIsAdminOnly(t *testing.T) {
	engine := newTestServer(t)

	w, _ := doRequest(engine, http.MethodGet, "/users", login(t, engine, "itstaff", "itstaff123"), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = doRequest(engine, http.MethodGet, "/users", login(t, engine, "admin", "admin123"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
