package client

import (
	"time"

	"github.com/google/uuid"
	"github.com/loan-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Names of the statuses that the dashboard aggregates by.
const (
	StatusPending  = "pendente"
	StatusReturned = "devolvido"
)

type Category struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Status struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LoanInput is the body sent to create or update a loan.
//
// An update overwrites every field, nil references included.
type LoanInput struct {
	FriendName  string              `json:"friend_name"`
	Description string              `json:"description"`
	Amount      decimal.NullDecimal `json:"amount"`
	DueDate     *types.Date         `json:"due_date"`
	CategoryID  *uint               `json:"category_id"`
	StatusID    *uint               `json:"status_id"`
}

type Loan struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	LoanInput
}

// ID returns a reference to a category or status ID.
func ID(id uint) *uint {
	return &id
}
