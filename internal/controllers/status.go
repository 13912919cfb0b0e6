package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loan-tracker/backend/internal/httputil"
	"github.com/loan-tracker/backend/internal/models"
)

// RegisterStatusRoutes registers the routes for statuses with
// the RouterGroup that is passed.
func RegisterStatusRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsStatusList)
	r.GET("", GetStatuses)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statuses
// @Success		204
// @Router			/statuses [options]
func OptionsStatusList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statuses
// @Description	Returns all statuses, ordered by name
// @Tags			Statuses
// @Produce		json
// @Success		200	{array}		models.Status
// @Failure		500	{object}	httputil.HTTPError
// @Router			/statuses [get]
func GetStatuses(c *gin.Context) {
	statuses := make([]models.Status, 0)

	err := models.DB.Order("name ASC").Find(&statuses).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, statuses)
}
