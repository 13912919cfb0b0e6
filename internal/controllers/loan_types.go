package controllers

import (
	"github.com/loan-tracker/backend/internal/models"
	"github.com/loan-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

// LoanEditable represents all user configurable parameters
type LoanEditable struct {
	FriendName  string              `json:"friend_name" example:"Maria"`                                      // Name of the friend the loan was given to
	Description string              `json:"description" example:"O Hobbit, capa dura"`                        // What was lent
	Amount      decimal.NullDecimal `json:"amount" swaggertype:"number" example:"50.00"`                      // Amount of money lent, if any
	DueDate     *types.Date         `json:"due_date" swaggertype:"string" format:"date" example:"2025-03-01"` // Date the loan should be returned, if any
	CategoryID  *uint               `json:"category_id" example:"1"`                                          // ID of the category of the loan
	StatusID    *uint               `json:"status_id" example:"1"`                                            // ID of the status of the loan
}

// LoanCreate is the body for creating a loan.
//
// It has the same fields as LoanEditable, but rejects empty values for
// the fields every loan needs.
type LoanCreate struct {
	FriendName  string              `json:"friend_name" binding:"required" example:"Maria"`
	Description string              `json:"description" binding:"required" example:"O Hobbit, capa dura"`
	Amount      decimal.NullDecimal `json:"amount" swaggertype:"number" example:"50.00"`
	DueDate     *types.Date         `json:"due_date" swaggertype:"string" format:"date" example:"2025-03-01"`
	CategoryID  uint                `json:"category_id" binding:"required" example:"1"`
	StatusID    uint                `json:"status_id" binding:"required" example:"1"`
}

func (create LoanCreate) editable() LoanEditable {
	return LoanEditable{
		FriendName:  create.FriendName,
		Description: create.Description,
		Amount:      create.Amount,
		DueDate:     create.DueDate,
		CategoryID:  &create.CategoryID,
		StatusID:    &create.StatusID,
	}
}

func (editable LoanEditable) model() models.Loan {
	dueDate := editable.DueDate
	if dueDate != nil && dueDate.IsZero() {
		dueDate = nil
	}

	return models.Loan{
		FriendName:  editable.FriendName,
		Description: editable.Description,
		Amount:      models.Amount{NullDecimal: editable.Amount},
		DueDate:     dueDate,
		CategoryID:  editable.CategoryID,
		StatusID:    editable.StatusID,
	}
}

type Loan struct {
	models.DefaultModel
	LoanEditable
}

func newLoan(model models.Loan) Loan {
	return Loan{
		DefaultModel: model.DefaultModel,
		LoanEditable: LoanEditable{
			FriendName:  model.FriendName,
			Description: model.Description,
			Amount:      model.Amount.NullDecimal,
			DueDate:     model.DueDate,
			CategoryID:  model.CategoryID,
			StatusID:    model.StatusID,
		},
	}
}
