package http

import (
	"encoding/json"
	"net/http"

	apperrors "tripwise/pkg/errors"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Response is the envelope every endpoint returns.
type Response struct {
	Status     string         `json:"status"`
	Message    string         `json:"message,omitempty"`
	Data       any            `json:"data,omitempty"`
	Errors     map[string]any `json:"errors,omitempty"`
	Pagination *Pagination    `json:"pagination,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

// NewPagination computes total pages by ceiling division.
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, Response{Status: StatusSuccess, Data: data})
}

func WriteSuccessMessage(w http.ResponseWriter, message string, data any) error {
	return WriteJSON(w, http.StatusOK, Response{Status: StatusSuccess, Message: message, Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, Response{Status: StatusSuccess, Data: data})
}

func WritePaginated(w http.ResponseWriter, data any, p *Pagination) error {
	return WriteJSON(w, http.StatusOK, Response{
		Status:     StatusSuccess,
		Data:       data,
		Pagination: p,
	})
}

// WriteError maps any error to the envelope. Errors outside the AppError
// taxonomy collapse to a generic 500 so driver internals never leak.
func WriteError(w http.ResponseWriter, err error) error {
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		return WriteJSON(w, http.StatusInternalServerError, Response{
			Status:  StatusError,
			Message: "Internal server error",
		})
	}

	return WriteJSON(w, appErr.StatusCode(), Response{
		Status:  StatusError,
		Message: appErr.Message,
		Errors:  appErr.Details,
	})
}
