package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/hrm-backend-go/internal/domain/auth"
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/pkg/jwt"
)

const (
	testSecret     = "test-secret-key-for-jwt"
	testAccessExp  = "1h"
	testRefreshExp = "24h"
)

type stubEmployeeRepo struct {
	byEmail map[string]employee.Employee
	byID    map[int64]employee.Employee
}

func (s *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := s.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	emp, ok := s.byEmail[email]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (s *stubEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id int64) error {
	return nil
}

type stubTokenRepo struct {
	tokens map[string]auth.RefreshToken
}

func newStubTokenRepo() *stubTokenRepo {
	return &stubTokenRepo{tokens: make(map[string]auth.RefreshToken)}
}

func (s *stubTokenRepo) Store(ctx context.Context, token auth.RefreshToken) error {
	token.CreatedAt = time.Now()
	s.tokens[token.TokenHash] = token
	return nil
}

func (s *stubTokenRepo) GetByHash(ctx context.Context, tokenHash string) (auth.RefreshToken, error) {
	token, ok := s.tokens[tokenHash]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	return token, nil
}

func (s *stubTokenRepo) Revoke(ctx context.Context, tokenHash string) error {
	token, ok := s.tokens[tokenHash]
	if !ok || token.RevokedAt != nil {
		return auth.ErrInvalidToken
	}
	now := time.Now()
	token.RevokedAt = &now
	s.tokens[tokenHash] = token
	return nil
}

func (s *stubTokenRepo) RevokeAllForEmployee(ctx context.Context, employeeID int64) error {
	now := time.Now()
	for hash, token := range s.tokens {
		if token.EmployeeID == employeeID && token.RevokedAt == nil {
			token.RevokedAt = &now
			s.tokens[hash] = token
		}
	}
	return nil
}

func (s *stubTokenRepo) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func newTestService(t *testing.T) (auth.AuthService, *stubTokenRepo) {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	passwordHash := string(hashed)

	emp := employee.Employee{
		ID:           7,
		EmployeeCode: "EMP-0A1B2C3D",
		FirstName:    "Ada",
		LastName:     "Wong",
		Email:        "ada@example.com",
		IsAdmin:      true,
		Role:         employee.RoleHR,
		Status:       employee.StatusActive,
		PasswordHash: &passwordHash,
	}

	employeeRepo := &stubEmployeeRepo{
		byEmail: map[string]employee.Employee{emp.Email: emp},
		byID:    map[int64]employee.Employee{emp.ID: emp},
	}
	tokenRepo := newStubTokenRepo()
	jwtService := jwt.NewJWTService(testSecret, testAccessExp, testRefreshExp)

	return NewAuthService(employeeRepo, tokenRepo, jwtService), tokenRepo
}

func TestLogin(t *testing.T) {
	svc, tokenRepo := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Access)
	assert.NotEmpty(t, resp.Refresh)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Len(t, tokenRepo.tokens, 1)
}

func TestLoginInvalidPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newTestService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		Refresh: login.Refresh,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Access)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, _ := newTestService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	// An access token is not accepted in the refresh slot.
	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{
		Refresh: login.Access,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _ := newTestService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	err = svc.Logout(context.Background(), auth.RefreshTokenRequest{Refresh: login.Refresh})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{Refresh: login.Refresh})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}
