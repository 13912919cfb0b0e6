package root_test

import (
	"net/http"
	"testing"

	"github.com/loan-tracker/backend/internal/controllers/root"
	"github.com/loan-tracker/backend/test"
	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	t.Setenv("API_URL", "https://example.com/api")

	r := test.Request(t, http.MethodGet, "https://example.com/", "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response root.Response
	test.DecodeResponse(t, &r, &response)

	assert.Equal(t, root.Links{
		Docs:       "https://example.com/api/docs/index.html",
		Healthz:    "https://example.com/api/healthz",
		Version:    "https://example.com/api/version",
		Metrics:    "https://example.com/api/metrics",
		Categories: "https://example.com/api/categories",
		Statuses:   "https://example.com/api/statuses",
		Loans:      "https://example.com/api/loans",
	}, response.Links)
}

func TestOptions(t *testing.T) {
	r := test.Request(t, http.MethodOptions, "http://example.com/", "")
	test.AssertHTTPStatus(t, &r, http.StatusNoContent)
	assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
}
