package controllers_test

import (
	"net/http"

	"github.com/loan-tracker/backend/internal/models"
	"github.com/loan-tracker/backend/test"
)

func (suite *TestSuiteStandard) TestStatusesGet() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/statuses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var statuses []models.Status
	test.DecodeResponse(suite.T(), &r, &statuses)

	suite.Require().Len(statuses, 2)
	suite.Assert().Equal(models.StatusReturned, statuses[0].Name)
	suite.Assert().Equal(models.StatusPending, statuses[1].Name)
}

func (suite *TestSuiteStandard) TestStatusesOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/statuses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestStatusesDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/statuses", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
