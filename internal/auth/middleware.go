package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	apperrors "tripwise/pkg/errors"
	httputil "tripwise/pkg/http"
	"tripwise/pkg/logger"
	"tripwise/pkg/model"
)

// TokenCookieName is the cookie fallback for browser clients that cannot
// set an Authorization header.
const TokenCookieName = "access_token"

// AccountResolver maps a verified token back to a live account.
type AccountResolver interface {
	FindByID(ctx context.Context, id string) (*model.Account, error)
}

type Middleware struct {
	tokens   *TokenManager
	accounts AccountResolver
	log      *logger.Logger
}

func NewMiddleware(tokens *TokenManager, accounts AccountResolver, log *logger.Logger) *Middleware {
	return &Middleware{
		tokens:   tokens,
		accounts: accounts,
		log:      log,
	}
}

// Required rejects the request unless a valid bearer token resolves to an
// existing account. The sanitized account goes into the request context.
func (m *Middleware) Required(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		account, err := m.resolve(r)
		if err != nil {
			if writeErr := httputil.WriteError(w, err); writeErr != nil {
				m.log.Error("failed to write error response", "middleware", "Required", "error", writeErr)
			}
			return
		}

		next(w, r.WithContext(WithAccount(r.Context(), account)), ps)
	}
}

// Optional resolves the account when a valid token is present and proceeds
// anonymously otherwise. Used by endpoints that personalize results for
// known callers but work for anonymous ones too.
func (m *Middleware) Optional(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		account, err := m.resolve(r)
		if err != nil {
			next(w, r, ps)
			return
		}

		next(w, r.WithContext(WithAccount(r.Context(), account)), ps)
	}
}

// RequireRole gates an already-authenticated request on role membership.
// Apply after Required.
func (m *Middleware) RequireRole(roles ...string) func(httprouter.Handle) httprouter.Handle {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			account := AccountFrom(r.Context())
			if account == nil {
				if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Authentication required")); writeErr != nil {
					m.log.Error("failed to write error response", "middleware", "RequireRole", "error", writeErr)
				}
				return
			}

			if _, ok := allowed[account.Role]; !ok {
				if writeErr := httputil.WriteError(w, apperrors.Forbidden("Insufficient permissions")); writeErr != nil {
					m.log.Error("failed to write error response", "middleware", "RequireRole", "error", writeErr)
				}
				return
			}

			next(w, r, ps)
		}
	}
}

func (m *Middleware) resolve(r *http.Request) (*model.Account, error) {
	tokenString := extractToken(r)
	if tokenString == "" {
		return nil, apperrors.Unauthorized("Authentication required")
	}

	claims, err := m.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	// A valid signature is not enough: the referenced account must still
	// exist.
	account, err := m.accounts.FindByID(r.Context(), claims.AccountID)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	return account.Sanitized(), nil
}

func extractToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
		return ""
	}

	if cookie, err := r.Cookie(TokenCookieName); err == nil {
		return cookie.Value
	}

	return ""
}
