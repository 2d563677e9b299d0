package auth

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	jwxjwt "github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/auth"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/employee"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/jwt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

type fakeRefreshTokenRepo struct {
	sessions map[string]auth.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{sessions: make(map[string]auth.RefreshToken)}
}

func (f *fakeRefreshTokenRepo) Store(ctx context.Context, token auth.RefreshToken) error {
	f.sessions[token.TokenHash] = token
	return nil
}

func (f *fakeRefreshTokenRepo) GetByTokenHash(ctx context.Context, tokenHash string) (auth.RefreshToken, error) {
	session, ok := f.sessions[tokenHash]
	if !ok {
		return auth.RefreshToken{}, auth.ErrInvalidToken
	}
	return session, nil
}

func (f *fakeRefreshTokenRepo) Revoke(ctx context.Context, tokenHash string) error {
	session, ok := f.sessions[tokenHash]
	if !ok {
		return auth.ErrInvalidToken
	}
	now := time.Now().UTC()
	session.RevokedAt = &now
	f.sessions[tokenHash] = session
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllForEmployee(ctx context.Context, employeeID string) error {
	now := time.Now().UTC()
	for hash, session := range f.sessions {
		if session.EmployeeID == employeeID && session.RevokedAt == nil {
			session.RevokedAt = &now
			f.sessions[hash] = session
		}
	}
	return nil
}

func setupAuthService(t *testing.T) (auth.AuthService, *fakeEmployeeRepo, *fakeRefreshTokenRepo) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	hashStr := string(hash)

	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:           "emp-1",
			FullName:     "Ana Silva",
			Email:        "ana@example.com",
			PasswordHash: &hashStr,
		},
	}}
	refreshTokenRepo := newFakeRefreshTokenRepo()
	jwtService := jwt.NewJWTService("test-secret-key", "15m", "168h")

	return NewAuthService(employeeRepo, refreshTokenRepo, jwtService), employeeRepo, refreshTokenRepo
}

func TestLoginSuccess(t *testing.T) {
	svc, _, refreshTokenRepo := setupAuthService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, auth.SessionTrackingRequest{UserAgent: "go-test", IPAddress: "127.0.0.1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Greater(t, resp.AccessTokenExpiresIn, time.Now().Unix())
	assert.Len(t, refreshTokenRepo.sessions, 1)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-pass",
	}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefreshTokenSuccess(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshTokenAfterLogout(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	login, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret-pass",
	}, auth.SessionTrackingRequest{})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), login.RefreshToken))

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestRefreshTokenGarbage(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogoutUnknownTokenIsIdempotent(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	token, _, err := jwt.NewJWTService("test-secret-key", "15m", "168h").GenerateRefreshToken("emp-1")
	require.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), token))
}

func authedContext(t *testing.T, employeeID string) context.Context {
	t.Helper()

	token, err := jwxjwt.NewBuilder().
		Claim("employee_id", employeeID).
		Claim("type", "access").
		Build()
	require.NoError(t, err)

	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	svc, _, refreshTokenRepo := setupAuthService(t)

	var logins []auth.TokenResponse
	for i := 0; i < 2; i++ {
		login, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ana@example.com",
			Password: "s3cret-pass",
		}, auth.SessionTrackingRequest{})
		require.NoError(t, err)
		logins = append(logins, login)
	}
	require.Len(t, refreshTokenRepo.sessions, 2)

	require.NoError(t, svc.LogoutAll(authedContext(t, "emp-1")))

	for _, login := range logins {
		_, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: login.RefreshToken})
		assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
	}
}

func TestLogoutAllWithoutClaims(t *testing.T) {
	svc, _, _ := setupAuthService(t)

	assert.Error(t, svc.LogoutAll(context.Background()))
}
