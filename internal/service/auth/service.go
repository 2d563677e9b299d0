package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/auth"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/employee"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, refreshTokenRepo auth.RefreshTokenRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo:     employeeRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
	}
}

func employeeIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, nil
}

// hashToken produces the storage digest of a raw refresh token
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			// Same failure for unknown email and wrong password
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if emp.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*emp.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(emp.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := auth.RefreshToken{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		TokenHash:  hashToken(refreshToken),
		UserAgent:  nilIfEmpty(sessionTrackReq.UserAgent),
		IPAddress:  nilIfEmpty(sessionTrackReq.IPAddress),
		ExpiresAt:  time.Unix(refreshExpiresAt, 0).UTC(),
	}
	if err := s.refreshTokenRepo.Store(ctx, session); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh session: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresIn: refreshExpiresAt,
	}, nil
}

// RefreshToken implements auth.AuthService.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	// Decode verifies the signature and expiry before the store is consulted.
	token, err := s.jwtService.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, _ := token.Get("type")
	if tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	employeeID, ok := token.Get("employee_id")
	employeeIDStr, isStr := employeeID.(string)
	if !ok || !isStr || employeeIDStr == "" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	session, err := s.refreshTokenRepo.GetByTokenHash(ctx, hashToken(req.RefreshToken))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to look up refresh session: %w", err)
	}

	if session.IsRevoked() {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}
	if session.IsExpired(time.Now().UTC()) {
		return auth.AccessTokenResponse{}, auth.ErrTokenExpired
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeIDStr)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrEmployeeNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: accessExpiresAt,
	}, nil
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return auth.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.Revoke(ctx, hashToken(refreshToken)); err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			// Logging out an unknown session is not an error worth surfacing
			return nil
		}
		return fmt.Errorf("failed to revoke refresh session: %w", err)
	}

	return nil
}

// LogoutAll implements auth.AuthService.
func (s *AuthServiceImpl) LogoutAll(ctx context.Context) error {
	employeeID, err := employeeIDFromContext(ctx)
	if err != nil {
		return err
	}

	if err := s.refreshTokenRepo.RevokeAllForEmployee(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to revoke employee refresh sessions: %w", err)
	}

	return nil
}
