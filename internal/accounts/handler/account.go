package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"tripwise/internal/accounts/service"
	"tripwise/internal/auth"
	apperrors "tripwise/pkg/errors"
	httputil "tripwise/pkg/http"
	"tripwise/pkg/logger"
	"tripwise/pkg/model"
)

// AccountHandler serves the authenticated account surface: profile,
// preferences, passport, dashboard and account closure. Every route runs
// behind the auth middleware; the admin listing additionally requires the
// admin role.
type AccountHandler struct {
	service service.AccountService
	authmw  *auth.Middleware
	log     *logger.Logger
}

func NewAccountHandler(service service.AccountService, authmw *auth.Middleware, log *logger.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		authmw:  authmw,
		log:     log,
	}
}

func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	var update model.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateProfile", "error", writeErr)
		}
		return
	}

	updated, err := h.service.UpdateProfile(r.Context(), account.ID, &update)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateProfile", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, updated); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateProfile", "error", err)
	}
}

func (h *AccountHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	var update model.PreferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdatePreferences", "error", writeErr)
		}
		return
	}

	updated, err := h.service.UpdatePreferences(r.Context(), account.ID, &update)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdatePreferences", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, updated); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdatePreferences", "error", err)
	}
}

func (h *AccountHandler) UpdatePassport(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	var in model.PassportInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdatePassport", "error", writeErr)
		}
		return
	}

	updated, err := h.service.UpdatePassport(r.Context(), account.ID, &in)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdatePassport", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, updated); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdatePassport", "error", err)
	}
}

func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	var in model.DeleteAccountInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "DeleteAccount", "error", writeErr)
		}
		return
	}

	if err := h.service.Delete(r.Context(), account.ID, in.Password); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "DeleteAccount", "error", writeErr)
		}
		return
	}

	// The session cookie is useless once the account is gone; clear it
	// anyway so browsers stop sending it.
	http.SetCookie(w, &http.Cookie{
		Name:     auth.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if err := httputil.WriteSuccessMessage(w, "Account deleted", nil); err != nil {
		h.log.Error("failed to write success response", "handler", "DeleteAccount", "error", err)
	}
}

func (h *AccountHandler) Dashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	dashboard, err := h.service.Dashboard(r.Context(), account.ID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Dashboard", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, dashboard); err != nil {
		h.log.Error("failed to write success response", "handler", "Dashboard", "error", err)
	}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPage(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	accounts, total, err := h.service.GetAll(r.Context(), limit, httputil.Offset(page, limit))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, accounts, httputil.NewPagination(page, limit, total)); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "error", err)
	}
}

func (h *AccountHandler) RegisterRoutes(router *httprouter.Router) {
	adminOnly := h.authmw.RequireRole(model.RoleAdmin)

	router.PUT("/api/v1/users/profile", h.authmw.Required(h.UpdateProfile))
	router.PUT("/api/v1/users/preferences", h.authmw.Required(h.UpdatePreferences))
	router.PUT("/api/v1/users/passport", h.authmw.Required(h.UpdatePassport))
	router.DELETE("/api/v1/users/account", h.authmw.Required(h.DeleteAccount))
	router.GET("/api/v1/users/dashboard", h.authmw.Required(h.Dashboard))
	router.GET("/api/v1/users", h.authmw.Required(adminOnly(h.List)))
}
