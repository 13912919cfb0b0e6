package controllers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/loan-tracker/backend/internal/controllers"
	"github.com/loan-tracker/backend/internal/models"
	"github.com/loan-tracker/backend/internal/types"
	"github.com/loan-tracker/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) countLoans() int64 {
	var count int64
	suite.Require().Nil(models.DB.Model(&models.Loan{}).Count(&count).Error)
	return count
}

func (suite *TestSuiteStandard) TestLoansCreate() {
	dueDate := types.NewDate(2025, 3, 1)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/loans", map[string]any{
		"friend_name": "João",
		"description": "Dinheiro para o almoço",
		"amount":      50,
		"due_date":    "2025-03-01",
		"category_id": 1,
		"status_id":   1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var loan controllers.Loan
	test.DecodeResponse(suite.T(), &r, &loan)

	suite.Assert().NotEqual(uuid.Nil, loan.ID)
	suite.Assert().False(loan.CreatedAt.IsZero())
	suite.Assert().Equal("João", loan.FriendName)
	suite.Assert().Equal("Dinheiro para o almoço", loan.Description)
	suite.Assert().True(loan.Amount.Valid)
	suite.Assert().True(loan.Amount.Decimal.Equal(decimal.NewFromInt(50)))
	suite.Require().NotNil(loan.DueDate)
	suite.Assert().True(dueDate.Equal(*loan.DueDate))
	suite.Assert().Equal(ptrTo(1), loan.CategoryID)
	suite.Assert().Equal(ptrTo(1), loan.StatusID)
	suite.Assert().Equal(int64(1), suite.countLoans())
}

func (suite *TestSuiteStandard) TestLoansCreateIgnoresClientID() {
	id := uuid.New()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/loans", map[string]any{
		"id":          id.String(),
		"created_at":  "2001-01-01T00:00:00Z",
		"friend_name": "Ana",
		"description": "Furadeira",
		"category_id": 2,
		"status_id":   1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var loan controllers.Loan
	test.DecodeResponse(suite.T(), &r, &loan)

	suite.Assert().NotEqual(id, loan.ID)
	suite.Assert().NotEqual(2001, loan.CreatedAt.Year())
	suite.Assert().False(loan.Amount.Valid)
	suite.Assert().Nil(loan.DueDate)
}

func (suite *TestSuiteStandard) TestLoansCreateMissingFields() {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"No friend_name", map[string]any{"description": "Livro", "category_id": 1, "status_id": 1}},
		{"Empty friend_name", map[string]any{"friend_name": "", "description": "Livro", "category_id": 1, "status_id": 1}},
		{"Null description", map[string]any{"friend_name": "Maria", "description": nil, "category_id": 1, "status_id": 1}},
		{"No category_id", map[string]any{"friend_name": "Maria", "description": "Livro", "status_id": 1}},
		{"Zero category_id", map[string]any{"friend_name": "Maria", "description": "Livro", "category_id": 0, "status_id": 1}},
		{"No status_id", map[string]any{"friend_name": "Maria", "description": "Livro", "category_id": 1}},
		{"Empty object", map[string]any{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/loans", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), "friend_name, description, category_id and status_id are required")
		})
	}

	suite.Assert().Equal(int64(0), suite.countLoans(), "Loans have been created for invalid requests")
}

func (suite *TestSuiteStandard) TestLoansCreateBrokenBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/loans", `{ "friend_name": 2 }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/loans", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "the request body must not be empty")
}

func (suite *TestSuiteStandard) TestLoansCreateNonExistingCategory() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/loans", controllers.LoanEditable{
		FriendName:  "Maria",
		Description: "Livro",
		CategoryID:  ptrTo(999),
		StatusID:    ptrTo(1),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal(int64(0), suite.countLoans())
}

func (suite *TestSuiteStandard) TestLoansCreateDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/loans", controllers.LoanEditable{
		FriendName:  "Maria",
		Description: "Livro",
		CategoryID:  ptrTo(1),
		StatusID:    ptrTo(1),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLoansGet() {
	loan := suite.createTestLoan(controllers.LoanEditable{
		FriendName: "Pedro",
		Amount:     decimal.NewNullDecimal(decimal.RequireFromString("12.5")),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var got controllers.Loan
	test.DecodeResponse(suite.T(), &r, &got)

	suite.Assert().Equal(loan.ID, got.ID)
	suite.Assert().Equal("Pedro", got.FriendName)
	suite.Assert().True(got.Amount.Decimal.Equal(decimal.RequireFromString("12.5")))
	suite.Assert().True(loan.CreatedAt.Equal(got.CreatedAt), "created %s, read %s", loan.CreatedAt, got.CreatedAt)
}

func (suite *TestSuiteStandard) TestLoansGetResponseFields() {
	loan := suite.createTestLoan(controllers.LoanEditable{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fields map[string]any
	test.DecodeResponse(suite.T(), &r, &fields)

	suite.Assert().ElementsMatch(
		[]string{"id", "friend_name", "description", "amount", "due_date", "created_at", "category_id", "status_id"},
		keys(fields),
	)
	suite.Assert().Nil(fields["amount"])
	suite.Assert().Nil(fields["due_date"])
}

func (suite *TestSuiteStandard) TestLoansAmountIsNumber() {
	loan := suite.createTestLoan(controllers.LoanEditable{
		Amount: decimal.NewNullDecimal(decimal.RequireFromString("12.5")),
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Body.String(), `"amount":12.5`)

	// Quoted amounts are still accepted
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/loans", map[string]any{
		"friend_name": "Maria",
		"description": "Almoço",
		"amount":      "7.25",
		"category_id": 1,
		"status_id":   1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
	suite.Assert().Contains(r.Body.String(), `"amount":7.25`)
}

func (suite *TestSuiteStandard) TestLoansGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/loans/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
	suite.Assert().Contains(r.Body.String(), "there is no loan matching your query")
}

func (suite *TestSuiteStandard) TestLoansGetInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/loans/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	suite.Assert().Contains(r.Body.String(), "not a valid UUID")
}

func (suite *TestSuiteStandard) TestLoansGetDatabaseError() {
	loan := suite.createTestLoan(controllers.LoanEditable{})
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLoansListNewestFirst() {
	now := time.Now().UTC()

	// Inserted in an order that differs from the creation times
	for _, l := range []struct {
		name      string
		createdAt time.Time
	}{
		{"Middle", now.Add(-1 * time.Hour)},
		{"Newest", now},
		{"Oldest", now.Add(-48 * time.Hour)},
	} {
		loan := models.Loan{
			DefaultModel: models.DefaultModel{CreatedAt: l.createdAt},
			FriendName:   l.name,
			Description:  "Livro",
			CategoryID:   ptrTo(1),
			StatusID:     ptrTo(1),
		}
		suite.Require().Nil(models.DB.Create(&loan).Error)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/loans", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var loans []controllers.Loan
	test.DecodeResponse(suite.T(), &r, &loans)

	suite.Require().Len(loans, 3)
	suite.Assert().Equal("Newest", loans[0].FriendName)
	suite.Assert().Equal("Middle", loans[1].FriendName)
	suite.Assert().Equal("Oldest", loans[2].FriendName)
}

func (suite *TestSuiteStandard) TestLoansListEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/loans", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().JSONEq("[]", r.Body.String())
}

func (suite *TestSuiteStandard) TestLoansListDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/loans", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLoansUpdate() {
	loan := suite.createTestLoan(controllers.LoanEditable{})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", loan.ID), map[string]any{
		"friend_name": "Carla",
		"description": "Bicicleta",
		"amount":      "199.90",
		"due_date":    "2025-12-24",
		"category_id": 2,
		"status_id":   2,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.Loan
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Equal(loan.ID, updated.ID)
	suite.Assert().Equal("Carla", updated.FriendName)
	suite.Assert().Equal("Bicicleta", updated.Description)
	suite.Assert().True(updated.Amount.Decimal.Equal(decimal.RequireFromString("199.90")))
	suite.Require().NotNil(updated.DueDate)
	suite.Assert().Equal("2025-12-24", updated.DueDate.String())
	suite.Assert().Equal(ptrTo(2), updated.CategoryID)
	suite.Assert().Equal(ptrTo(2), updated.StatusID)
	suite.Assert().True(loan.CreatedAt.Equal(updated.CreatedAt))
}

func (suite *TestSuiteStandard) TestLoansUpdateOverwritesOmittedFields() {
	dueDate := types.NewDate(2025, 1, 1)
	loan := suite.createTestLoan(controllers.LoanEditable{
		Amount:  decimal.NewNullDecimal(decimal.NewFromInt(30)),
		DueDate: &dueDate,
	})

	// Neither amount nor due_date are sent
	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", loan.ID), map[string]any{
		"friend_name": "Maria",
		"description": "O Hobbit",
		"category_id": 1,
		"status_id":   2,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.Loan
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().False(updated.Amount.Valid)
	suite.Assert().Nil(updated.DueDate)
	suite.Assert().Equal(ptrTo(2), updated.StatusID)
}

func (suite *TestSuiteStandard) TestLoansUpdatePartial() {
	loan := suite.createTestLoan(controllers.LoanEditable{
		Amount: decimal.NewNullDecimal(decimal.NewFromInt(30)),
	})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", loan.ID), map[string]any{
		"status_id": 2,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var fields map[string]any
	test.DecodeResponse(suite.T(), &r, &fields)

	suite.Assert().Nil(fields["category_id"])
	suite.Assert().Nil(fields["amount"])
	suite.Assert().Nil(fields["due_date"])
	suite.Assert().Equal(float64(2), fields["status_id"])

	var stored models.Loan
	suite.Require().Nil(models.DB.Where("id = ?", loan.ID).First(&stored).Error)
	suite.Assert().Nil(stored.CategoryID)
	suite.Assert().Equal(ptrTo(2), stored.StatusID)
}

func (suite *TestSuiteStandard) TestLoansUpdateNullReferences() {
	loan := suite.createTestLoan(controllers.LoanEditable{})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", loan.ID), `{
		"friend_name": "Maria",
		"description": "O Hobbit",
		"category_id": null,
		"status_id": null
	}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated controllers.Loan
	test.DecodeResponse(suite.T(), &r, &updated)

	suite.Assert().Nil(updated.CategoryID)
	suite.Assert().Nil(updated.StatusID)
	suite.Assert().Equal("Maria", updated.FriendName)
}

func (suite *TestSuiteStandard) TestLoansUpdateNonExistingCategory() {
	loan := suite.createTestLoan(controllers.LoanEditable{})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", loan.ID), map[string]any{
		"category_id": 999,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLoansUpdateNotFound() {
	loan := suite.createTestLoan(controllers.LoanEditable{FriendName: "Unchanged"})

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", uuid.New()), map[string]any{
		"friend_name": "Changed",
		"description": "Livro",
		"category_id": 1,
		"status_id":   1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var stored models.Loan
	suite.Require().Nil(models.DB.Where("id = ?", loan.ID).First(&stored).Error)
	suite.Assert().Equal("Unchanged", stored.FriendName)
	suite.Assert().Equal(int64(1), suite.countLoans())
}

func (suite *TestSuiteStandard) TestLoansUpdateInvalidRequests() {
	loan := suite.createTestLoan(controllers.LoanEditable{})

	r := test.Request(suite.T(), http.MethodPut, "http://example.com/loans/not-a-uuid", map[string]any{"friend_name": "Maria"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", loan.ID), `{ "amount": [] }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLoansUpdateDatabaseError() {
	loan := suite.createTestLoan(controllers.LoanEditable{})
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/loans/%s", loan.ID), map[string]any{
		"friend_name": "Maria",
		"description": "Livro",
		"category_id": 1,
		"status_id":   1,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLoansDelete() {
	loan := suite.createTestLoan(controllers.LoanEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Empty(r.Body.String())

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestLoansDeleteNonExisting() {
	suite.createTestLoan(controllers.LoanEditable{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/loans/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal(int64(1), suite.countLoans())
}

func (suite *TestSuiteStandard) TestLoansDeleteInvalidID() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/loans/1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestLoansDeleteDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/loans/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestLoansOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/loans", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, POST", r.Header().Get("allow"))

	loan := suite.createTestLoan(controllers.LoanEditable{})
	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/loans/%s", loan.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("http://example.com/loans/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/loans/nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func keys(m map[string]any) []string {
	k := make([]string, 0, len(m))
	for key := range m {
		k = append(k, key)
	}
	return k
}
