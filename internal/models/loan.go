package models

import "github.com/loan-tracker/backend/internal/types"

// Loan is money or an item lent to a friend.
type Loan struct {
	DefaultModel
	FriendName  string `gorm:"not null"`
	Description string `gorm:"not null"`
	Amount      Amount
	DueDate     *types.Date
	CategoryID  *uint
	Category    Category
	StatusID    *uint
	Status      Status
}

func (Loan) TableName() string {
	return "loans"
}

// LoanColumns is the projection of the loans table returned by the API.
var LoanColumns = []string{"id", "friend_name", "description", "amount", "due_date", "created_at", "category_id", "status_id"}

// LoanEditableColumns are the columns that an update of a loan overwrites.
var LoanEditableColumns = []string{"friend_name", "description", "amount", "due_date", "category_id", "status_id"}
