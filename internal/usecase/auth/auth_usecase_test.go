package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/movemate/movemate-backend/internal/domain"
	"go.uber.org/zap"
)

type stubUserRepo struct {
	byEmail map[string]*domain.User
	byID    map[uuid.UUID]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*domain.User),
		byID:    make(map[uuid.UUID]*domain.User),
	}
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.New()
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

type stubProfileRepo struct {
	profiles  map[uuid.UUID]*domain.UserProfile
	createErr error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[uuid.UUID]*domain.UserProfile)}
}

func (s *stubProfileRepo) Create(_ context.Context, profile *domain.UserProfile) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.profiles[profile.ID] = profile
	return nil
}

func (s *stubProfileRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.UserProfile, error) {
	profile, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (s *stubProfileRepo) Update(context.Context, *domain.UserProfile) error { return nil }

type memorySessionStore struct {
	sessions map[string]uuid.UUID
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]uuid.UUID)}
}

func (s *memorySessionStore) Save(_ context.Context, tokenHash string, userID uuid.UUID, _ time.Duration) error {
	s.sessions[tokenHash] = userID
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, tokenHash string) (uuid.UUID, error) {
	userID, ok := s.sessions[tokenHash]
	if !ok {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	return userID, nil
}

func (s *memorySessionStore) Delete(_ context.Context, tokenHash string) error {
	delete(s.sessions, tokenHash)
	return nil
}

const testSecret = "test-secret-key-at-least-32-characters"

type fixture struct {
	uc       *AuthUseCase
	users    *stubUserRepo
	profiles *stubProfileRepo
	sessions *memorySessionStore
}

func newFixture() *fixture {
	f := &fixture{
		users:    newStubUserRepo(),
		profiles: newStubProfileRepo(),
		sessions: newMemorySessionStore(),
	}
	f.uc = NewAuthUseCase(f.users, f.profiles, f.sessions, testSecret, time.Hour, zap.NewNop())
	return f
}

func TestSignUpCreatesAccountAndProfile(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.SignUp(context.Background(), "  User@Example.COM ", "secret123", "小明")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if resp.User.Email != "user@example.com" {
		t.Errorf("email should be normalized, got %q", resp.User.Email)
	}
	if !resp.IsNewUser {
		t.Error("sign-up response should flag a new user")
	}
	if resp.Token == "" {
		t.Error("sign-up should issue a token")
	}
	if resp.User.PasswordHash == "secret123" {
		t.Error("password must not be stored in the clear")
	}
	profile, ok := f.profiles.profiles[resp.User.ID]
	if !ok || profile.Username != "小明" {
		t.Errorf("profile row missing or wrong: %+v", profile)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	f := newFixture()

	if _, err := f.uc.SignUp(context.Background(), "user@example.com", "secret123", "a"); err != nil {
		t.Fatalf("first SignUp() error = %v", err)
	}
	if _, err := f.uc.SignUp(context.Background(), "USER@example.com", "other456", "b"); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("second SignUp() error = %v, want ErrEmailTaken", err)
	}
}

func TestSignUpSurvivesProfileFailure(t *testing.T) {
	f := newFixture()
	f.profiles.createErr = errors.New("db down")

	resp, err := f.uc.SignUp(context.Background(), "user@example.com", "secret123", "小明")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if resp.Token == "" {
		t.Error("account creation should succeed despite the profile failure")
	}
}

func TestSignInRoundTrip(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	signUp, err := f.uc.SignUp(ctx, "user@example.com", "secret123", "小明")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	signIn, err := f.uc.SignIn(ctx, "user@example.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if signIn.IsNewUser {
		t.Error("sign-in must not flag a new user")
	}
	if signIn.User.ID != signUp.User.ID {
		t.Error("sign-in should resolve the same account")
	}

	userID, err := f.uc.VerifyToken(ctx, signIn.Token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if userID != signUp.User.ID {
		t.Errorf("verified user = %v, want %v", userID, signUp.User.ID)
	}
}

func TestSignInWrongPassword(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.uc.SignUp(ctx, "user@example.com", "secret123", "小明"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if _, err := f.uc.SignIn(ctx, "user@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := f.uc.SignIn(ctx, "ghost@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: error = %v, want ErrInvalidCredentials", err)
	}
}

func TestSignOutRevokesSession(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.uc.SignUp(ctx, "user@example.com", "secret123", "小明")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if err := f.uc.SignOut(ctx, resp.Token); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if _, err := f.uc.VerifyToken(ctx, resp.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("VerifyToken after sign-out: error = %v, want ErrSessionNotFound", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	f := newFixture()

	for _, token := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := f.uc.VerifyToken(context.Background(), token); !errors.Is(err, domain.ErrInvalidToken) {
			t.Errorf("VerifyToken(%q) error = %v, want ErrInvalidToken", token, err)
		}
	}
}

func TestVerifyTokenRejectsForeignSignature(t *testing.T) {
	f := newFixture()
	other := newFixture()
	other.uc.jwtSecret = "completely-different-signing-secret-42"

	resp, err := other.uc.SignUp(context.Background(), "user@example.com", "secret123", "小明")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if _, err := f.uc.VerifyToken(context.Background(), resp.Token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Errorf("VerifyToken with foreign signature: error = %v, want ErrInvalidToken", err)
	}
}

func TestCurrentUser(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	resp, err := f.uc.SignUp(ctx, "user@example.com", "secret123", "小明")
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	user, err := f.uc.CurrentUser(ctx, resp.User.ID)
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if user.Email != "user@example.com" {
		t.Errorf("email = %q", user.Email)
	}

	if _, err := f.uc.CurrentUser(ctx, uuid.New()); !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("unknown user: error = %v, want ErrUserNotFound", err)
	}
}
