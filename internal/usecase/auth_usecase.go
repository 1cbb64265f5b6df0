package usecase

import (
	"context"
	"errors"
	"fmt"

	"healfinity-backend/internal/converter"
	"healfinity-backend/internal/delivery/dto"
	"healfinity-backend/internal/domain/entity"
	"healfinity-backend/internal/domain/repository"
	"healfinity-backend/internal/infrastructure/cache"
	"healfinity-backend/internal/service"
	"healfinity-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrNoActiveSession    = errors.New("no active session")
)

// AuthUsecase is the session manager: it owns who is logged in and hydrates
// the per-user aggregate the client renders from.
type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type authUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	snapshotRepo     repository.HealthSnapshotRepository
	consultationRepo repository.ConsultationRepository
	yogaSessionRepo  repository.YogaSessionRepository
	jwtService       *jwt.JWTService
	tokenStore       cache.TokenStore
	audit            service.AuditService
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	snapshotRepo repository.HealthSnapshotRepository,
	consultationRepo repository.ConsultationRepository,
	yogaSessionRepo repository.YogaSessionRepository,
	jwtService *jwt.JWTService,
	tokenStore cache.TokenStore,
	audit service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		snapshotRepo:     snapshotRepo,
		consultationRepo: consultationRepo,
		yogaSessionRepo:  yogaSessionRepo,
		jwtService:       jwtService,
		tokenStore:       tokenStore,
		audit:            audit,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	avatar := req.Avatar
	if avatar == "" {
		avatar = entity.DeriveAvatar(req.Name)
	}

	user := &entity.User{
		Email:       req.Email,
		Password:    string(hashedPassword),
		Name:        req.Name,
		Phone:       req.Phone,
		Age:         req.Age,
		Avatar:      avatar,
		Preferences: entity.DefaultPreferences(),
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	// A fresh account starts from an all-zero snapshot for today.
	if err := u.snapshotRepo.Upsert(tx, entity.ZeroSnapshot(user.ID, entity.Today())); err != nil {
		u.log.Warnf("Failed to create initial health snapshot: %+v", err)
		return nil, err
	}

	u.audit.Record(tx, &user.ID, entity.AuditActionUserRegister, entity.JSON{"email": user.Email})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return u.startSession(ctx, user)
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	u.audit.Record(u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, nil)

	return u.startSession(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	if err := u.tokenStore.RevokeMatching(ctx, fmt.Sprintf("access_token:*:%s", accessTokenID)); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if refreshTokenID != "" {
		if err := u.tokenStore.RevokeMatching(ctx, fmt.Sprintf("refresh_token:*:%s", refreshTokenID)); err != nil {
			u.log.Warnf("Failed to revoke refresh token: %+v", err)
			return err
		}
	}

	if userID, ok := userIDFromContext(ctx); ok {
		u.audit.Record(u.db.WithContext(ctx), &userID, entity.AuditActionUserLogout, nil)
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.tokenStore.Exists(ctx, refreshKey)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	// Rotate: the old refresh token is single-use.
	if err := u.tokenStore.Revoke(ctx, refreshKey); err != nil {
		u.log.Warnf("Failed to revoke old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}

	return u.loadProfile(ctx, user)
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Age != nil {
		user.Age = *req.Age
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Preferences != nil {
		user.Preferences = converter.PayloadToPreferences(*req.Preferences)
	}

	if err := u.userRepo.Update(u.db.WithContext(ctx), user); err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}

	u.audit.Record(u.db.WithContext(ctx), &user.ID, entity.AuditActionProfileUpdate, nil)

	return u.loadProfile(ctx, user)
}

// startSession issues a token pair and hydrates the aggregate: this is the
// moment a user becomes "the active session".
func (u *authUsecase) startSession(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	tokens, err := u.issueTokens(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	profile, err := u.loadProfile(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:   profile,
		Tokens: *tokens,
	}, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uuid.UUID, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.tokenStore.Store(ctx, accessKey, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, refreshKey, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// loadProfile re-reads the whole aggregate: today's snapshot (all zeros when
// absent) plus the ordered booking lists. Both store variants produce the
// same shape because the reads go through the same repositories.
func (u *authUsecase) loadProfile(ctx context.Context, user *entity.User) (*dto.ProfileResponse, error) {
	db := u.db.WithContext(ctx)

	snapshot, _, err := u.snapshotRepo.FindByUserAndDate(db, user.ID, entity.Today())
	if err != nil {
		u.log.Warnf("Failed to load health snapshot: %+v", err)
		return nil, err
	}

	consultations, err := u.consultationRepo.ListByUser(db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to load consultations: %+v", err)
		return nil, err
	}

	yogaSessions, err := u.yogaSessionRepo.ListByUser(db, user.ID)
	if err != nil {
		u.log.Warnf("Failed to load yoga sessions: %+v", err)
		return nil, err
	}

	return converter.UserToProfileResponse(user, snapshot, consultations, yogaSessions), nil
}

// isDuplicateKeyError recognizes unique violations from both store variants:
// gorm's translated error covers sqlite, the pgconn code covers postgres
// drivers configured without translation.
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505"
	}
	return false
}
