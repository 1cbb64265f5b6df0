package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"healfinity-backend/config"
	"healfinity-backend/internal/delivery/http/handler"
	"healfinity-backend/internal/delivery/http/middleware"
	"healfinity-backend/internal/infrastructure/cache"
	"healfinity-backend/internal/infrastructure/database"
	"healfinity-backend/internal/repository"
	"healfinity-backend/internal/service"
	"healfinity-backend/internal/usecase"
	"healfinity-backend/pkg/jwt"
	"healfinity-backend/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// newTestRouter assembles the whole delivery stack over a throwaway sqlite
// database, mirroring what bootstrap does in production.
func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	db, err := database.NewSQLiteConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
	tokenStore := cache.NewMemoryTokenStore()
	customValidator := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	snapshotRepo := repository.NewHealthSnapshotRepository()
	favoriteRepo := repository.NewFavoriteRepository()
	consultationRepo := repository.NewConsultationRepository()
	yogaSessionRepo := repository.NewYogaSessionRepository()
	symptomRepo := repository.NewSymptomRepository()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())

	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, snapshotRepo, consultationRepo, yogaSessionRepo, jwtService, tokenStore, auditService)
	healthUsecase := usecase.NewHealthUsecase(db, log, snapshotRepo, auditService)
	favoriteUsecase := usecase.NewFavoriteUsecase(db, log, favoriteRepo, auditService)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, consultationRepo, auditService)
	yogaSessionUsecase := usecase.NewYogaSessionUsecase(db, log, yogaSessionRepo, auditService)
	symptomUsecase := usecase.NewSymptomUsecase(db, log, symptomRepo, auditService)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, repository.NewDoctorRepository(), repository.NewInstructorRepository())

	router := NewRouter(
		handler.NewAuthHandler(authUsecase, customValidator, jwtService),
		handler.NewHealthHandler(healthUsecase, customValidator),
		handler.NewFavoriteHandler(favoriteUsecase, customValidator),
		handler.NewConsultationHandler(consultationUsecase, customValidator),
		handler.NewYogaSessionHandler(yogaSessionUsecase, customValidator),
		handler.NewSymptomHandler(symptomUsecase, customValidator),
		handler.NewCatalogHandler(catalogUsecase),
		middleware.NewAuthMiddleware(jwtService, tokenStore),
		middleware.NewCORSMiddleware(),
	)

	return router.Setup()
}

func doJSON(t *testing.T, router *mux.Router, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Success bool                   `json:"success"`
		Data    map[string]interface{} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func TestAPIFlow(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Jane Roe",
		"email":    "jane@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	data := decodeData(t, rec)
	tokens := data["tokens"].(map[string]interface{})
	accessToken := tokens["access_token"].(string)
	assert.NotEmpty(t, accessToken)

	user := data["user"].(map[string]interface{})
	assert.Equal(t, "JR", user["avatar"])

	t.Run("health data round trip", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/health-data", accessToken, map[string]interface{}{
			"steps":       5000,
			"heart_rate":  72,
			"sleep_hours": 7.5,
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/health-data/today", accessToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, float64(5000), data["steps"])
	})

	t.Run("favorites round trip", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/favorites", accessToken, map[string]interface{}{
			"item_type": "remedy",
			"item_id":   "ginger-tea",
			"item_data": map[string]interface{}{"name": "Ginger Tea"},
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		// Duplicate add conflicts.
		rec = doJSON(t, router, http.MethodPost, "/api/v1/favorites", accessToken, map[string]interface{}{
			"item_type": "remedy",
			"item_id":   "ginger-tea",
			"item_data": map[string]interface{}{"name": "Ginger Tea"},
		})
		assert.Equal(t, http.StatusConflict, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, "/api/v1/favorites/remedy/ginger-tea", accessToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/favorites", accessToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, float64(0), data["total"])
	})

	t.Run("booking validation", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/consultations", accessToken, map[string]interface{}{
			"doctor_name": "Dr. Sarah Johnson",
			"date":        "15/09/2026",
			"time":        "10:00 AM",
			"type":        "video",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/consultations", accessToken, map[string]interface{}{
			"doctor_name": "Dr. Sarah Johnson",
			"date":        "2026-09-15",
			"time":        "10:00 AM",
			"type":        "video",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)
		data := decodeData(t, rec)
		assert.Equal(t, "confirmed", data["status"])
	})

	t.Run("protected routes reject anonymous calls", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/health-data/today", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("catalog is public", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/catalog/doctors", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicate registration conflicts", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
			"name":     "Someone Else",
			"email":    "jane@example.com",
			"password": "password456",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("logout revokes the session", func(t *testing.T) {
		// A fresh login so the other subtests keep their token.
		rec := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
			"email":    "jane@example.com",
			"password": "password123",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeData(t, rec)
		token := data["tokens"].(map[string]interface{})["access_token"].(string)

		rec = doJSON(t, router, http.MethodPost, "/api/v1/auth/logout", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("healthz", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/v1/healthz", "", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
