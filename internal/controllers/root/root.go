package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loan-tracker/backend/internal/httputil"
	"github.com/loan-tracker/backend/internal/models"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs       string `json:"docs" example:"https://example.com/api/docs/index.html"`  // Swagger API documentation
	Healthz    string `json:"healthz" example:"https://example.com/api/healthz"`       // Healthz endpoint
	Version    string `json:"version" example:"https://example.com/api/version"`       // Endpoint returning the version of the backend
	Metrics    string `json:"metrics" example:"https://example.com/api/metrics"`       // Endpoint returning Prometheus metrics
	Categories string `json:"categories" example:"https://example.com/api/categories"` // List endpoint for categories
	Statuses   string `json:"statuses" example:"https://example.com/api/statuses"`     // List endpoint for statuses
	Loans      string `json:"loans" example:"https://example.com/api/loans"`           // List endpoint for loans
}

func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Docs:       url + "/docs/index.html",
			Healthz:    url + "/healthz",
			Version:    url + "/version",
			Metrics:    url + "/metrics",
			Categories: url + "/categories",
			Statuses:   url + "/statuses",
			Loans:      url + "/loans",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
