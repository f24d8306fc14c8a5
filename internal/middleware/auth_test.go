package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regsite/internal/models"
	"regsite/internal/rbac"
	"regsite/internal/token"
)

// stubUserFinder serves a fixed set of users keyed by ID.
type stubUserFinder struct {
	users map[uuid.UUID]*models.User
	err   error
}

func (s *stubUserFinder) FindByID(id uuid.UUID) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.users[id], nil
}

func testTokens() *token.Service {
	return token.NewService("test-access", "test-refresh", time.Hour, 24*time.Hour)
}

func activeUser(role rbac.Role) *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "user@example.gov",
		Role:     role,
		IsActive: true,
	}
}

func gateWith(users ...*models.User) (*Gate, *token.Service) {
	tokens := testTokens()
	finder := &stubUserFinder{users: map[uuid.UUID]*models.User{}}
	for _, u := range users {
		finder.users[u.ID] = u
	}
	return NewGate(tokens, finder), tokens
}

// okHandler records whether it ran and what identity it saw.
func okHandler(sawIdentity **Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sawIdentity != nil {
			*sawIdentity = IdentityFromCtx(r.Context())
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingToken(t *testing.T) {
	gate, _ := gateWith()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rr := httptest.NewRecorder()
	gate.Authenticate(okHandler(nil)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success":false,"message":"Authentication required"}`, rr.Body.String())
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	gate, _ := gateWith()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rr := httptest.NewRecorder()
	gate.Authenticate(okHandler(nil)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_ValidToken(t *testing.T) {
	user := activeUser(rbac.RoleEditor)
	gate, tokens := gateWith(user)

	raw, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	var seen *Identity
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rr := httptest.NewRecorder()
	gate.Authenticate(okHandler(&seen)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.UserID)
	assert.Equal(t, rbac.RoleEditor, seen.Role)
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	user := activeUser(rbac.RoleAdmin)
	user.IsActive = false
	gate, tokens := gateWith(user)

	raw, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rr := httptest.NewRecorder()
	gate.Authenticate(okHandler(nil)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	user := activeUser(rbac.RoleAdmin)
	gate, tokens := gateWith() // user not in the store

	raw, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rr := httptest.NewRecorder()
	gate.Authenticate(okHandler(nil)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthenticate_StoreError(t *testing.T) {
	user := activeUser(rbac.RoleAdmin)
	tokens := testTokens()
	gate := NewGate(tokens, &stubUserFinder{err: errors.New("db down")})

	raw, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rr := httptest.NewRecorder()
	gate.Authenticate(okHandler(nil)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthorize_RoleOutsideSet(t *testing.T) {
	user := activeUser(rbac.RoleContentManager)
	gate, tokens := gateWith(user)

	raw, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	chain := gate.Authenticate(gate.Authorize(rbac.OpNewsWrite)(okHandler(nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/news", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestAuthorize_RoleInSet(t *testing.T) {
	user := activeUser(rbac.RoleEditor)
	gate, tokens := gateWith(user)

	raw, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	chain := gate.Authenticate(gate.Authorize(rbac.OpNewsWrite)(okHandler(nil)))

	req := httptest.NewRequest(http.MethodPost, "/api/news", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rr := httptest.NewRecorder()
	chain.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthorize_WithoutAuthenticate(t *testing.T) {
	gate, _ := gateWith()

	// Authorize applied without a prior Authenticate: treated as
	// unauthenticated, not forbidden.
	handler := gate.Authorize(rbac.OpNewsWrite)(okHandler(nil))

	req := httptest.NewRequest(http.MethodPost, "/api/news", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestOptionalAuth_AnonymousProceeds(t *testing.T) {
	gate, _ := gateWith()

	var seen *Identity
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	rr := httptest.NewRecorder()
	gate.OptionalAuth(okHandler(&seen)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, seen)
}

func TestOptionalAuth_BadTokenSwallowed(t *testing.T) {
	gate, _ := gateWith()

	var seen *Identity
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	gate.OptionalAuth(okHandler(&seen)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, seen)
}

func TestOptionalAuth_ValidTokenAttachesIdentity(t *testing.T) {
	user := activeUser(rbac.RoleAdmin)
	gate, tokens := gateWith(user)

	raw, err := tokens.IssueAccessToken(user)
	require.NoError(t, err)

	var seen *Identity
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	rr := httptest.NewRecorder()
	gate.OptionalAuth(okHandler(&seen)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	assert.Equal(t, user.ID, seen.UserID)
}
