package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/hrm-backend-go/internal/domain/auth"
	"github.com/staffhub/hrm-backend-go/internal/domain/employee"
	"github.com/staffhub/hrm-backend-go/internal/pkg/jwt"
)

type authService struct {
	employeeRepo employee.EmployeeRepository
	tokenRepo    auth.RefreshTokenRepository
	jwtService   jwt.Service
}

func NewAuthService(
	employeeRepo employee.EmployeeRepository,
	tokenRepo auth.RefreshTokenRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		tokenRepo:    tokenRepo,
		jwtService:   jwtService,
	}
}

// hashToken stores a digest rather than the raw refresh token, so a
// leaked table does not hand out usable tokens.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Login implements auth.AuthService.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if emp.PasswordHash == nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	access, _, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, refreshExp, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	err = s.tokenRepo.Store(ctx, auth.RefreshToken{
		EmployeeID: emp.ID,
		TokenHash:  hashToken(refresh),
		ExpiresAt:  time.Unix(refreshExp, 0),
	})
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	return auth.LoginResponse{
		Access:           access,
		Refresh:          refresh,
		User:             emp.ToResponse(),
		RefreshExpiresAt: refreshExp,
	}, nil
}

// RefreshToken implements auth.AuthService.
func (s *authService) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	employeeID, err := s.verifyRefreshToken(req.Refresh)
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}

	stored, err := s.tokenRepo.GetByHash(ctx, hashToken(req.Refresh))
	if err != nil {
		return auth.AccessTokenResponse{}, err
	}
	if stored.RevokedAt != nil {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.AccessTokenResponse{}, auth.ErrTokenExpired
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrEmployeeNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	access, _, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.IsAdmin)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{Access: access}, nil
}

// Logout implements auth.AuthService.
func (s *authService) Logout(ctx context.Context, req auth.RefreshTokenRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.verifyRefreshToken(req.Refresh); err != nil {
		return err
	}

	return s.tokenRepo.Revoke(ctx, hashToken(req.Refresh))
}

// Me implements auth.AuthService.
func (s *authService) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	principal, err := auth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, auth.ErrInvalidToken
	}

	emp, err := s.employeeRepo.GetByID(ctx, principal.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.EmployeeResponse{}, auth.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	return emp.ToResponse(), nil
}

// verifyRefreshToken checks the token signature and claims and returns
// the employee id it was issued to.
func (s *authService) verifyRefreshToken(token string) (int64, error) {
	decoded, err := s.jwtService.JWTAuth().Decode(token)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	claims, err := decoded.AsMap(context.Background())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return 0, auth.ErrInvalidToken
	}

	rawID, _ := claims["employee_id"].(string)
	employeeID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	return employeeID, nil
}
