// Package uuid wraps google/uuid so that IDs can be bound from request paths.
package uuid

import (
	"errors"

	google_uuid "github.com/google/uuid"
)

// ErrInvalid is returned when a parameter is not a valid UUID.
var ErrInvalid = errors.New("the specified resource ID is not a valid UUID")

type UUID struct {
	google_uuid.UUID
}

var Nil UUID

func New() UUID {
	return UUID{google_uuid.New()}
}

func NewString() string {
	return google_uuid.NewString()
}

// UnmarshalParam implements gin's binding.BindUnmarshaler so that
// path parameters can be bound directly to a UUID.
func (u *UUID) UnmarshalParam(p string) error {
	if p == "" {
		*u = Nil
		return nil
	}

	parsed, err := google_uuid.Parse(p)
	if err != nil {
		return ErrInvalid
	}

	*u = UUID{parsed}
	return nil
}
