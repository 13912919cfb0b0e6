package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loan-tracker/backend/internal/httputil"
	"github.com/loan-tracker/backend/internal/models"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategoryList)
	r.GET("", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns all categories, ordered by name
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		500	{object}	httputil.HTTPError
// @Router			/categories [get]
func GetCategories(c *gin.Context) {
	categories := make([]models.Category, 0)

	err := models.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, categories)
}
