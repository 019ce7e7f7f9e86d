package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"github.com/movemate/movemate-backend/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	sessions    repository.SessionStore
	jwtSecret   string
	sessionTTL  time.Duration
	log         *zap.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	sessions repository.SessionStore,
	jwtSecret string,
	sessionTTL time.Duration,
	log *zap.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		sessions:    sessions,
		jwtSecret:   jwtSecret,
		sessionTTL:  sessionTTL,
		log:         log,
	}
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
	IsNewUser bool         `json:"is_new_user"`
}

// SignUp registers a new account and auto-creates its profile row.
func (uc *AuthUseCase) SignUp(ctx context.Context, email, password, username string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	_, err := uc.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, domain.ErrEmailTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	profile := &domain.UserProfile{
		ID:       user.ID,
		Username: username,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		// Don't fail sign-up if the profile row could not be created;
		// the profile center can recreate it later.
		uc.log.Warn("failed to create profile", zap.String("user_id", user.ID.String()), zap.Error(err))
	}

	token, expiresAt, err := uc.createSession(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{Token: token, ExpiresAt: expiresAt, User: user, IsNewUser: true}, nil
}

// SignIn authenticates by email and password.
func (uc *AuthUseCase) SignIn(ctx context.Context, email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := uc.createSession(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{Token: token, ExpiresAt: expiresAt, User: user, IsNewUser: false}, nil
}

// SignOut revokes the session behind the token.
func (uc *AuthUseCase) SignOut(ctx context.Context, tokenString string) error {
	return uc.sessions.Delete(ctx, hashToken(tokenString))
}

// CurrentUser resolves the account behind a verified token.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// createSession issues a JWT and records its hash in the session store.
func (uc *AuthUseCase) createSession(ctx context.Context, userID uuid.UUID) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.sessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	if err := uc.sessions.Save(ctx, hashToken(tokenString), userID, uc.sessionTTL); err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// VerifyToken verifies the JWT signature and that the session is still
// live, returning the user ID.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}
	rawID, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, domain.ErrInvalidToken
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	sessionUserID, err := uc.sessions.Get(ctx, hashToken(tokenString))
	if err != nil {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	if sessionUserID != userID {
		return uuid.Nil, domain.ErrInvalidToken
	}

	return userID, nil
}

// hashToken creates SHA256 hash of token for storage
func hashToken(token string) string {
	h := sha256.New()
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}
