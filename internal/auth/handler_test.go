package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskhive/taskhive/internal/auth"
	"github.com/taskhive/taskhive/internal/shared"
	_ "github.com/taskhive/taskhive/testing"
)

type stubRepo struct {
	user    *auth.User
	created *auth.User
}

func (s *stubRepo) CreateUser(ctx context.Context, name, email, passwordHash string) (*auth.User, error) {
	if s.user != nil && s.user.Email == email {
		return nil, shared.ErrEmailTaken
	}
	s.created = &auth.User{
		ID:           "user-1",
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	return s.created, nil
}

func (s *stubRepo) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, shared.ErrNotFound
	}
	return s.user, nil
}

func newAuthRouter(t *testing.T, repo auth.Repository) http.Handler {
	t.Helper()
	service := auth.NewService(repo, []byte("handler-test-secret"), time.Hour)
	handler := auth.NewHandler(noopLogger(), service, nil)
	r := chi.NewRouter()
	r.Route("/api/auth", func(r chi.Router) {
		handler.MountRoutes(r)
	})
	return r
}

func noopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegisterCreatesUser(t *testing.T) {
	repo := &stubRepo{}
	router := newAuthRouter(t, repo)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"A","email":"a@x.com","password":"secret"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)

	var body struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	// The password hash must never appear in the response.
	require.NotContains(t, string(body.User), "password")
	require.NotContains(t, res.Body.String(), repo.created.PasswordHash)
}

func TestRegisterDuplicate(t *testing.T) {
	router := newAuthRouter(t, &stubRepo{user: &auth.User{ID: "user-1", Email: "a@x.com"}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"B","email":"a@x.com","password":"secret"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestRegisterValidation(t *testing.T) {
	router := newAuthRouter(t, &stubRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"A","email":"not-an-email","password":"secret"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	router := newAuthRouter(t, &stubRepo{user: &auth.User{
		ID:           "user-1",
		Email:        "user@test.local",
		PasswordHash: string(hashed),
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"user@test.local","password":"correctpass"}`))
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))

	userID, err := auth.VerifyToken(body.Token, []byte("handler-test-secret"))
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correctpass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	router := newAuthRouter(t, &stubRepo{user: &auth.User{
		ID:           "user-1",
		Email:        "user@test.local",
		PasswordHash: string(hashed),
	}})

	for _, payload := range []string{
		`{"email":"user@test.local","password":"wrongpass"}`,
		`{"email":"nobody@test.local","password":"correctpass"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(payload))
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		require.Equal(t, http.StatusBadRequest, res.Code)
		require.Contains(t, res.Body.String(), "invalid credentials")
	}
}
