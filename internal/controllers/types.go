package controllers

import (
	lt_uuid "github.com/loan-tracker/backend/internal/uuid"
)

type URIID struct {
	ID lt_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}
