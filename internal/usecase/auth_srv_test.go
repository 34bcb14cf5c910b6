package usecase

import (
	"context"
	"testing"
	"time"

	"travel-backoffice/internal/data/entity"
	"travel-backoffice/internal/data/repository"
	"travel-backoffice/internal/dto/request"
	"travel-backoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeSessionRepo struct {
	sessions []*entity.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions = append(f.sessions, session)
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil && s.ExpiresAt.After(time.Now()) {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	for _, s := range f.sessions {
		if s.Token.String() == token && s.RevokedAt == nil {
			now := time.Now()
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	for _, s := range f.sessions {
		if s.UserID == userID && s.RevokedAt == nil {
			now := time.Now()
			s.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(_ context.Context) error { return nil }

func newAuthService(userRepo *fakeUserRepo, sessionRepo *fakeSessionRepo) AuthService {
	repo := &repository.Repository{
		User:    userRepo,
		Session: sessionRepo,
	}
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 72}}
	return NewAuthService(repo, config, zap.NewNop())
}

func TestRegister(t *testing.T) {
	userRepo := &fakeUserRepo{}
	sessionRepo := &fakeSessionRepo{}
	svc := newAuthService(userRepo, sessionRepo)

	auth, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "wayan",
		Email:    "wayan@example.com",
		Password: "rahasia-banget",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if auth.User.Role != entity.RoleClient || auth.User.IsStaff {
		t.Errorf("new user role = %q staff %v, want plain client", auth.User.Role, auth.User.IsStaff)
	}
	if auth.Token == "" {
		t.Error("register should auto-issue a session token")
	}

	if len(userRepo.users) != 1 {
		t.Fatalf("stored %d users, want 1", len(userRepo.users))
	}
	stored := userRepo.users[0]
	if stored.PasswordHash == "rahasia-banget" {
		t.Error("password stored in plain text")
	}
	if !utils.CheckPassword(stored.PasswordHash, "rahasia-banget") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(&fakeUserRepo{users: []*entity.User{testUser(entity.RoleClient)}}, &fakeSessionRepo{})

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "made",
		Email:    "wayan@example.com",
		Password: "rahasia-banget",
	}); err == nil {
		t.Fatal("expected an error for a duplicate email")
	}
}

func TestLoginAndLogout(t *testing.T) {
	userRepo := &fakeUserRepo{}
	sessionRepo := &fakeSessionRepo{}
	svc := newAuthService(userRepo, sessionRepo)

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "wayan",
		Email:    "wayan@example.com",
		Password: "rahasia-banget",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	auth, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "wayan@example.com",
		Password: "rahasia-banget",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	session, err := sessionRepo.FindValidSession(context.Background(), auth.Token)
	if err != nil || session == nil {
		t.Fatalf("issued token not resolvable, session = %v err = %v", session, err)
	}

	if err := svc.Logout(context.Background(), auth.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	session, err = sessionRepo.FindValidSession(context.Background(), auth.Token)
	if err != nil || session != nil {
		t.Errorf("session still valid after logout, session = %v err = %v", session, err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	userRepo := &fakeUserRepo{}
	svc := newAuthService(userRepo, &fakeSessionRepo{})

	if _, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "wayan",
		Email:    "wayan@example.com",
		Password: "rahasia-banget",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if _, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "wayan@example.com",
		Password: "salah-total",
	}); err == nil {
		t.Fatal("expected an error for a wrong password")
	}
}
