package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpulse/leadpulse/config"
	"github.com/leadpulse/leadpulse/pkg/logger"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		Database: config.DatabaseConfig{
			User:     "postgres_test",
			Password: "postgres_test",
			Host:     "localhost",
			Port:     5432,
			DBName:   "leadpulse_test",
		},
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
	}
}

func TestNewApp(t *testing.T) {
	cfg := createTestConfig()

	a := NewApp(cfg)
	assert.NotNil(t, a)
	assert.Equal(t, cfg, a.GetConfig())
	assert.NotNil(t, a.GetLogger())
	assert.NotNil(t, a.GetMux())

	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	testLogger := logger.NewMockLogger(t)
	a = NewApp(cfg, WithMockDB(mockDB), WithLogger(testLogger))
	assert.Equal(t, mockDB, a.GetDB())
	assert.Equal(t, testLogger, a.GetLogger())
}

func TestApp_InitRepositoriesRequiresDB(t *testing.T) {
	a := NewApp(createTestConfig(), WithLogger(logger.NewMockLogger(t)))

	err := a.InitRepositories()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database must be initialized")
}

func TestApp_InitRepositoriesAndServices(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	a := NewApp(createTestConfig(), WithMockDB(mockDB), WithLogger(logger.NewMockLogger(t)))

	require.NoError(t, a.InitRepositories())
	assert.NotNil(t, a.GetLeadRepository())
	assert.NotNil(t, a.GetDimensionRepository())
	assert.NotNil(t, a.GetAnalyticsRepository())

	require.NoError(t, a.InitServices())
	require.NoError(t, a.InitHandlers())
}

func TestApp_HandlersRouteRequests(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer mockDB.Close()

	a := NewApp(createTestConfig(), WithMockDB(mockDB), WithLogger(logger.NewMockLogger(t)))
	require.NoError(t, a.InitRepositories())
	require.NoError(t, a.InitServices())
	require.NoError(t, a.InitHandlers())

	// Unknown routes should 404 through the mux
	rec := httptest.NewRecorder()
	a.GetMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A known route should reach its handler; the query error surfaces as 500
	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)
	rec = httptest.NewRecorder()
	a.GetMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/leads/1", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestApp_ShutdownWithoutServer(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	a := NewApp(createTestConfig(), WithMockDB(mockDB), WithLogger(logger.NewMockLogger(t)))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	require.NoError(t, a.Shutdown(ctx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_ShutdownContextState(t *testing.T) {
	a := NewApp(createTestConfig(), WithLogger(logger.NewMockLogger(t)))

	shutdownCtx := a.GetShutdownContext()
	select {
	case <-shutdownCtx.Done():
		t.Fatal("shutdown context should not be done before Shutdown")
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, a.Shutdown(ctx))

	select {
	case <-shutdownCtx.Done():
	default:
		t.Fatal("shutdown context should be done after Shutdown")
	}
}

func TestApp_GracefulShutdownMiddleware(t *testing.T) {
	cfg := createTestConfig()
	a := NewApp(cfg, WithLogger(logger.NewMockLogger(t))).(*App)

	handler := a.gracefulShutdownMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(0), a.GetActiveRequestCount())

	// After shutdown starts, new requests are rejected
	a.shutdownCancel()
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestApp_SetShutdownTimeout(t *testing.T) {
	a := NewApp(createTestConfig(), WithLogger(logger.NewMockLogger(t))).(*App)

	a.SetShutdownTimeout(5 * time.Second)
	assert.Equal(t, 5*time.Second, a.shutdownTimeout)
}

func TestApp_IsServerCreated(t *testing.T) {
	a := NewApp(createTestConfig(), WithLogger(logger.NewMockLogger(t)))
	assert.False(t, a.IsServerCreated())
}
