package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/loan-tracker/backend/internal/models"
	"github.com/loan-tracker/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestLoanCreateAssignsIDAndTimestamp() {
	before := time.Now().Add(-time.Second)
	loan := suite.createTestLoan(models.Loan{})

	suite.Assert().NotEqual(uuid.Nil, loan.ID)
	suite.Assert().True(loan.CreatedAt.After(before), "CreatedAt %s is not after %s", loan.CreatedAt, before)
}

func (suite *TestSuiteStandard) TestLoanOptionalFieldsRoundTrip() {
	dueDate := types.NewDate(2025, 3, 14)
	loan := suite.createTestLoan(models.Loan{
		Amount:  models.NewAmount(decimal.RequireFromString("123.45")),
		DueDate: &dueDate,
	})

	var stored models.Loan
	suite.Require().Nil(models.DB.First(&stored, "id = ?", loan.ID).Error)

	suite.Assert().True(stored.Amount.Valid)
	suite.Assert().True(decimal.RequireFromString("123.45").Equal(stored.Amount.Decimal), stored.Amount.Decimal.String())
	suite.Require().NotNil(stored.DueDate)
	suite.Assert().Equal("2025-03-14", stored.DueDate.String())
	suite.Assert().Equal(time.UTC, stored.CreatedAt.Location())
}

func (suite *TestSuiteStandard) TestLoanWithoutOptionalFields() {
	loan := suite.createTestLoan(models.Loan{})

	var stored models.Loan
	suite.Require().Nil(models.DB.First(&stored, "id = ?", loan.ID).Error)

	suite.Assert().False(stored.Amount.Valid)
	suite.Assert().Nil(stored.DueDate)
}

func (suite *TestSuiteStandard) TestLoanUnknownCategoryRejectedByStore() {
	err := models.DB.Create(&models.Loan{
		FriendName:  "João",
		Description: "Guarda-chuva",
		CategoryID:  ptrTo(999),
		StatusID:    ptrTo(1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrStoreUnavailable)
}

func (suite *TestSuiteStandard) TestLoanAmountKeepsAllDigits() {
	amount := decimal.RequireFromString("123456789012.12345678")
	loan := suite.createTestLoan(models.Loan{Amount: models.NewAmount(amount)})

	var stored models.Loan
	suite.Require().Nil(models.DB.Select(models.LoanColumns).First(&stored, "id = ?", loan.ID).Error)

	suite.Require().True(stored.Amount.Valid)
	suite.Assert().True(amount.Equal(stored.Amount.Decimal), "stored %s", stored.Amount.Decimal)
}

func (suite *TestSuiteStandard) TestLoanWithoutReferences() {
	loan := models.Loan{FriendName: "Maria", Description: "Livro"}
	suite.Require().Nil(models.DB.Create(&loan).Error)

	var stored models.Loan
	suite.Require().Nil(models.DB.First(&stored, "id = ?", loan.ID).Error)
	suite.Assert().Nil(stored.CategoryID)
	suite.Assert().Nil(stored.StatusID)
}
