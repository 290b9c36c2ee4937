package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tripwise/internal/auth"
	"tripwise/internal/catalog/service"
	apperrors "tripwise/pkg/errors"
	httputil "tripwise/pkg/http"
	"tripwise/pkg/logger"
)

// defaultNearbyRadiusKm applies when the caller omits the radius.
const defaultNearbyRadiusKm = 5.0

// CatalogHandler exposes the read-only search surface. Search endpoints
// run behind optional auth: results are identical either way, but
// personalized callers are attributed in the request log.
type CatalogHandler struct {
	service service.CatalogService
	authmw  *auth.Middleware
	log     *logger.Logger
}

func NewCatalogHandler(service service.CatalogService, authmw *auth.Middleware, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		authmw:  authmw,
		log:     log,
	}
}

func (h *CatalogHandler) SearchRestaurants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPage(r)
	if err != nil {
		h.writeError(w, "SearchRestaurants", err)
		return
	}

	query := r.URL.Query()
	criteria := service.RestaurantCriteria{
		Location:  strings.TrimSpace(query.Get("location")),
		Cuisine:   strings.TrimSpace(query.Get("cuisine")),
		PriceTier: strings.TrimSpace(query.Get("price")),
	}
	if features := strings.TrimSpace(query.Get("features")); features != "" {
		criteria.Features = strings.Split(features, ",")
	}
	if raw := query.Get("min_rating"); raw != "" {
		criteria.MinRating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, "SearchRestaurants", apperrors.InvalidInput("invalid min_rating parameter: "+raw))
			return
		}
	}

	results, err := h.service.SearchRestaurants(r.Context(), criteria)
	if err != nil {
		h.writeError(w, "SearchRestaurants", err)
		return
	}

	writePage(w, h.log, "SearchRestaurants", results, page, limit)
}

func (h *CatalogHandler) NearbyRestaurants(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPage(r)
	if err != nil {
		h.writeError(w, "NearbyRestaurants", err)
		return
	}

	query := r.URL.Query()
	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		h.writeError(w, "NearbyRestaurants", apperrors.InvalidInput("lat parameter is required and must be a number"))
		return
	}
	lng, err := strconv.ParseFloat(query.Get("lng"), 64)
	if err != nil {
		h.writeError(w, "NearbyRestaurants", apperrors.InvalidInput("lng parameter is required and must be a number"))
		return
	}

	radius := defaultNearbyRadiusKm
	if raw := query.Get("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, "NearbyRestaurants", apperrors.InvalidInput("invalid radius parameter: "+raw))
			return
		}
	}

	results, err := h.service.NearbyRestaurants(r.Context(), lat, lng, radius)
	if err != nil {
		h.writeError(w, "NearbyRestaurants", err)
		return
	}

	writePage(w, h.log, "NearbyRestaurants", results, page, limit)
}

func (h *CatalogHandler) GetRestaurant(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	restaurant, err := h.service.GetRestaurant(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetRestaurant", err)
		return
	}

	if err := httputil.WriteSuccess(w, restaurant); err != nil {
		h.log.Error("failed to write success response", "handler", "GetRestaurant", "error", err)
	}
}

func (h *CatalogHandler) SearchFlights(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPage(r)
	if err != nil {
		h.writeError(w, "SearchFlights", err)
		return
	}

	query := r.URL.Query()
	criteria := service.FlightCriteria{
		Origin:      strings.TrimSpace(query.Get("origin")),
		Destination: strings.TrimSpace(query.Get("destination")),
		Date:        strings.TrimSpace(query.Get("date")),
		CabinClass:  strings.TrimSpace(query.Get("cabin_class")),
	}
	if raw := query.Get("max_price"); raw != "" {
		criteria.MaxPrice, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, "SearchFlights", apperrors.InvalidInput("invalid max_price parameter: "+raw))
			return
		}
	}

	results, err := h.service.SearchFlights(r.Context(), criteria)
	if err != nil {
		h.writeError(w, "SearchFlights", err)
		return
	}

	writePage(w, h.log, "SearchFlights", results, page, limit)
}

func (h *CatalogHandler) SearchHotels(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPage(r)
	if err != nil {
		h.writeError(w, "SearchHotels", err)
		return
	}

	query := r.URL.Query()
	criteria := service.HotelCriteria{
		City: strings.TrimSpace(query.Get("city")),
	}
	if amenities := strings.TrimSpace(query.Get("amenities")); amenities != "" {
		criteria.Amenities = strings.Split(amenities, ",")
	}
	if raw := query.Get("min_rating"); raw != "" {
		criteria.MinRating, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, "SearchHotels", apperrors.InvalidInput("invalid min_rating parameter: "+raw))
			return
		}
	}
	if raw := query.Get("max_price"); raw != "" {
		criteria.MaxPrice, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, "SearchHotels", apperrors.InvalidInput("invalid max_price parameter: "+raw))
			return
		}
	}

	results, err := h.service.SearchHotels(r.Context(), criteria)
	if err != nil {
		h.writeError(w, "SearchHotels", err)
		return
	}

	writePage(w, h.log, "SearchHotels", results, page, limit)
}

func (h *CatalogHandler) SearchCars(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, limit, err := httputil.ExtractPage(r)
	if err != nil {
		h.writeError(w, "SearchCars", err)
		return
	}

	query := r.URL.Query()
	criteria := service.CarCriteria{
		City:         strings.TrimSpace(query.Get("city")),
		Category:     strings.TrimSpace(query.Get("category")),
		Transmission: strings.TrimSpace(query.Get("transmission")),
	}
	if raw := query.Get("max_price"); raw != "" {
		criteria.MaxPrice, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			h.writeError(w, "SearchCars", apperrors.InvalidInput("invalid max_price parameter: "+raw))
			return
		}
	}

	results, err := h.service.SearchCars(r.Context(), criteria)
	if err != nil {
		h.writeError(w, "SearchCars", err)
		return
	}

	writePage(w, h.log, "SearchCars", results, page, limit)
}

func (h *CatalogHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "error", writeErr)
	}
}

// writePage slices the full result set: catalog searches filter in memory,
// so the total is known before pagination.
func writePage[T any](w http.ResponseWriter, log *logger.Logger, handler string, results []T, page, limit int) {
	pagination := httputil.NewPagination(page, limit, int64(len(results)))
	if err := httputil.WritePaginated(w, httputil.PageSlice(results, page, limit), pagination); err != nil {
		log.Error("failed to write paginated response", "handler", handler, "error", err)
	}
}

func (h *CatalogHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/restaurants/search", h.authmw.Optional(h.SearchRestaurants))
	router.GET("/api/v1/restaurants/nearby", h.authmw.Optional(h.NearbyRestaurants))
	router.GET("/api/v1/restaurants/id/:id", h.authmw.Optional(h.GetRestaurant))
	router.GET("/api/v1/flights/search", h.authmw.Optional(h.SearchFlights))
	router.GET("/api/v1/hotels/search", h.authmw.Optional(h.SearchHotels))
	router.GET("/api/v1/cars/search", h.authmw.Optional(h.SearchCars))
}
