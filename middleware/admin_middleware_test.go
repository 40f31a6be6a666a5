package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/novamart-commerce/novamart-backoffice/config"
	"github.com/novamart-commerce/novamart-backoffice/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func adminAuthTestSetup(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, string) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	oldDB := config.DB
	config.DB = gdb
	t.Cleanup(func() { config.DB = oldDB })

	require.NoError(t, services.InitJWTService("admin-middleware-test-secret"))
	token, err := services.GenerateAdminJWT(uuid.Must(uuid.NewV7()).String(), "admin@example.com")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/cms", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, mock, token
}

// A syntactically valid JWT is worthless once its session row is gone:
// logout and expiry both have to translate into a 401, not a silent pass.
func TestAdminAuthMiddlewareRevokedSession(t *testing.T) {
	router, mock, token := adminAuthTestSetup(t)

	// No active, unexpired session row matches the token hash
	mock.ExpectExec(`UPDATE "admin_sessions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cms", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "session expired")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminAuthMiddlewareActiveSession(t *testing.T) {
	router, mock, token := adminAuthTestSetup(t)

	mock.ExpectExec(`UPDATE "admin_sessions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "role","status" FROM "admins"`).
		WillReturnRows(sqlmock.NewRows([]string{"role", "status"}).AddRow("admin", "active"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cms", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAdminAuthMiddlewareSuspendedAdmin(t *testing.T) {
	router, mock, token := adminAuthTestSetup(t)

	mock.ExpectExec(`UPDATE "admin_sessions" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT "role","status" FROM "admins"`).
		WillReturnRows(sqlmock.NewRows([]string{"role", "status"}).AddRow("admin", "suspended"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cms", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
