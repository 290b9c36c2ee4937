package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tripwise/internal/auth"
	"tripwise/internal/bookings/repository"
	"tripwise/internal/bookings/service"
	apperrors "tripwise/pkg/errors"
	httputil "tripwise/pkg/http"
	"tripwise/pkg/logger"
	"tripwise/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	authmw  *auth.Middleware
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, authmw *auth.Middleware, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		authmw:  authmw,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	var in model.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	booking, err := h.service.Create(r.Context(), account.ID, &in)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, booking); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	page, limit, err := httputil.ExtractPage(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	query := r.URL.Query()
	filter := repository.Filter{
		Type:   strings.TrimSpace(query.Get("type")),
		Status: strings.TrimSpace(query.Get("status")),
	}

	bookings, total, err := h.service.List(r.Context(), account.ID, filter, limit, httputil.Offset(page, limit))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePaginated(w, bookings, httputil.NewPagination(page, limit, total)); err != nil {
		h.log.Error("failed to write paginated response", "handler", "List", "error", err)
	}
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	booking, err := h.service.GetByID(r.Context(), account, ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	booking, err := h.service.GetByReference(r.Context(), account, ps.ByName("reference"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByReference", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, booking); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByReference", "error", err)
	}
}

// Cancel is exposed as DELETE but performs the cancellation transition,
// never a hard delete.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	booking, err := h.service.Cancel(r.Context(), account, ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccessMessage(w, "Booking cancelled", booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Cancel", "error", err)
	}
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.Confirm(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Confirm", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccessMessage(w, "Booking confirmed", booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Confirm", "error", err)
	}
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	booking, err := h.service.Complete(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Complete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccessMessage(w, "Booking completed", booking); err != nil {
		h.log.Error("failed to write success response", "handler", "Complete", "error", err)
	}
}

func (h *BookingHandler) Stats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	account := auth.AccountFrom(r.Context())

	stats, err := h.service.Stats(r.Context(), account.ID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Stats", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, stats); err != nil {
		h.log.Error("failed to write success response", "handler", "Stats", "error", err)
	}
}

// RegisterRoutes keeps literal segments ahead of the id wildcard; the
// router cannot mix a wildcard with static siblings at the same level.
func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	adminOnly := h.authmw.RequireRole(model.RoleAdmin)

	router.POST("/api/v1/bookings", h.authmw.Required(h.Create))
	router.GET("/api/v1/bookings", h.authmw.Required(h.List))
	router.GET("/api/v1/bookings/stats/summary", h.authmw.Required(h.Stats))
	router.GET("/api/v1/bookings/reference/:reference", h.authmw.Required(h.GetByReference))
	router.GET("/api/v1/bookings/id/:id", h.authmw.Required(h.GetByID))
	router.DELETE("/api/v1/bookings/id/:id", h.authmw.Required(h.Cancel))
	router.POST("/api/v1/bookings/id/:id/confirm", h.authmw.Required(adminOnly(h.Confirm)))
	router.POST("/api/v1/bookings/id/:id/complete", h.authmw.Required(adminOnly(h.Complete)))
}
