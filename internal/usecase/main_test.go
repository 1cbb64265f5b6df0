package usecase

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"healfinity-backend/config"
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/delivery/http/middleware"
	"healfinity-backend/internal/infrastructure/cache"
	"healfinity-backend/internal/infrastructure/database"
	"healfinity-backend/internal/repository"
	"healfinity-backend/internal/service"
	"healfinity-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// testEnv wires the full usecase stack against a throwaway sqlite file, the
// same record store variant the local deployment runs.
type testEnv struct {
	db         *gorm.DB
	tokenStore cache.TokenStore
	jwtService *jwt.JWTService

	auth          AuthUsecase
	health        HealthUsecase
	favorites     FavoriteUsecase
	consultations ConsultationUsecase
	yogaSessions  YogaSessionUsecase
	symptoms      SymptomUsecase
	catalog       CatalogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
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

	userRepo := repository.NewUserRepository()
	snapshotRepo := repository.NewHealthSnapshotRepository()
	favoriteRepo := repository.NewFavoriteRepository()
	consultationRepo := repository.NewConsultationRepository()
	yogaSessionRepo := repository.NewYogaSessionRepository()
	symptomRepo := repository.NewSymptomRepository()
	doctorRepo := repository.NewDoctorRepository()
	instructorRepo := repository.NewInstructorRepository()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())

	return &testEnv{
		db:            db,
		tokenStore:    tokenStore,
		jwtService:    jwtService,
		auth:          NewAuthUsecase(db, log, userRepo, snapshotRepo, consultationRepo, yogaSessionRepo, jwtService, tokenStore, auditService),
		health:        NewHealthUsecase(db, log, snapshotRepo, auditService),
		favorites:     NewFavoriteUsecase(db, log, favoriteRepo, auditService),
		consultations: NewConsultationUsecase(db, log, consultationRepo, auditService),
		yogaSessions:  NewYogaSessionUsecase(db, log, yogaSessionRepo, auditService),
		symptoms:      NewSymptomUsecase(db, log, symptomRepo, auditService),
		catalog:       NewCatalogUsecase(db, log, doctorRepo, instructorRepo),
	}
}

// register creates an account and returns the fresh session.
func (e *testEnv) register(t *testing.T, name, email string) *dto.AuthResponse {
	t.Helper()

	result, err := e.auth.Register(context.Background(), &dto.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("failed to register %s: %v", email, err)
	}
	return result
}

// sessionCtx builds the context the auth middleware would produce.
func sessionCtx(userID uuid.UUID) context.Context {
	return context.WithValue(context.Background(), middleware.UserIDKey, userID)
}
