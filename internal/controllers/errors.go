package controllers

import (
	"errors"
	"net/http"

	"github.com/loan-tracker/backend/internal/models"
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrStoreUnavailable) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errLoanRequiredFields = errors.New("friend_name, description, category_id and status_id are required")
