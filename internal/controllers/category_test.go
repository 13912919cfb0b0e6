package controllers_test

import (
	"net/http"

	"github.com/loan-tracker/backend/internal/models"
	"github.com/loan-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestCategoriesGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories []models.Category
	test.DecodeResponse(suite.T(), &r, &categories)

	suite.Require().Len(categories, 3)
	suite.Assert().Equal("Dinheiro", categories[0].Name)
	suite.Assert().Equal("Objeto", categories[1].Name)
	suite.Assert().Equal("Outros", categories[2].Name)
	suite.Assert().NotZero(categories[0].ID)
	suite.Assert().NotEmpty(categories[0].Description)
}

func (suite *TestSuiteStandard) TestCategoriesGetOrderedByName() {
	err := models.DB.Create(&models.Category{Name: "Carro", Description: "Carona e empréstimo do carro"}).Error
	suite.Require().Nil(err)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var categories []models.Category
	test.DecodeResponse(suite.T(), &r, &categories)

	suite.Require().Len(categories, 4)
	suite.Assert().Equal("Carro", categories[0].Name)
}

func (suite *TestSuiteStandard) TestCategoriesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCategoriesDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Contains(r.Body.String(), models.ErrStoreUnavailable.Error())
}
