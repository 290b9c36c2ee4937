package auth

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accounterrors "tripwise/internal/accounts/errors"
	"tripwise/pkg/logger"
	"tripwise/pkg/model"
)

type mockResolver struct {
	findByIDFunc func(ctx context.Context, id string) (*model.Account, error)
}

func (m *mockResolver) FindByID(ctx context.Context, id string) (*model.Account, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, accounterrors.ErrNotFound
}

func newTestMiddleware(resolver AccountResolver) (*Middleware, *TokenManager) {
	log := logger.New(logger.Config{
		Level:   logger.ERROR,
		Format:  logger.JSON,
		Output:  io.Discard,
		Service: "test",
	})
	tokens := NewTokenManager(testSecret, time.Hour)
	return NewMiddleware(tokens, resolver, log), tokens
}

func resolverFor(account *model.Account) *mockResolver {
	return &mockResolver{
		findByIDFunc: func(ctx context.Context, id string) (*model.Account, error) {
			if id == account.ID {
				return account, nil
			}
			return nil, accounterrors.ErrNotFound
		},
	}
}

func TestRequired_ValidBearerToken(t *testing.T) {
	account := &model.Account{ID: "507f1f77bcf86cd799439011", Email: "ada@example.com", Role: model.RoleUser, PasswordHash: "hash"}
	mw, tokens := newTestMiddleware(resolverFor(account))

	token, err := tokens.Issue(account)
	require.NoError(t, err)

	var resolved *model.Account
	handle := mw.Required(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		resolved = AccountFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handle(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resolved)
	assert.Equal(t, account.ID, resolved.ID)
	assert.Empty(t, resolved.PasswordHash, "context account must be sanitized")
}

func TestRequired_CookieFallback(t *testing.T) {
	account := &model.Account{ID: "507f1f77bcf86cd799439011", Role: model.RoleUser}
	mw, tokens := newTestMiddleware(resolverFor(account))

	token, err := tokens.Issue(account)
	require.NoError(t, err)

	handle := mw.Required(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	handle(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequired_Rejections(t *testing.T) {
	account := &model.Account{ID: "507f1f77bcf86cd799439011", Role: model.RoleUser}
	mw, tokens := newTestMiddleware(resolverFor(account))

	vanished, err := tokens.Issue(&model.Account{ID: "507f1f77bcf86cd799439099", Role: model.RoleUser})
	require.NoError(t, err)

	tests := []struct {
		name  string
		setup func(r *http.Request)
	}{
		{"missing token", func(r *http.Request) {}},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "Token abc") }},
		{"invalid token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer garbage") }},
		{"account vanished", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+vanished) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handle := mw.Required(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
				t.Error("handler must not be reached")
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()
			handle(rec, req, nil)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestOptional_ProceedsAnonymously(t *testing.T) {
	mw, _ := newTestMiddleware(&mockResolver{})

	var resolved *model.Account
	var called bool
	handle := mw.Optional(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		resolved = AccountFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	rec := httptest.NewRecorder()
	handle(rec, req, nil)

	assert.True(t, called)
	assert.Nil(t, resolved)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOptional_AttachesKnownCaller(t *testing.T) {
	account := &model.Account{ID: "507f1f77bcf86cd799439011", Role: model.RoleUser}
	mw, tokens := newTestMiddleware(resolverFor(account))

	token, err := tokens.Issue(account)
	require.NoError(t, err)

	var resolved *model.Account
	handle := mw.Optional(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		resolved = AccountFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handle(rec, req, nil)

	require.NotNil(t, resolved)
	assert.Equal(t, account.ID, resolved.ID)
}

func TestRequireRole(t *testing.T) {
	mw, _ := newTestMiddleware(&mockResolver{})
	adminOnly := mw.RequireRole(model.RoleAdmin)

	handle := adminOnly(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		ctx := WithAccount(req.Context(), &model.Account{ID: "a1", Role: model.RoleAdmin})
		rec := httptest.NewRecorder()
		handle(rec, req.WithContext(ctx), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("user forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		ctx := WithAccount(req.Context(), &model.Account{ID: "u1", Role: model.RoleUser})
		rec := httptest.NewRecorder()
		handle(rec, req.WithContext(ctx), nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("anonymous unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rec := httptest.NewRecorder()
		handle(rec, req, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
