package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/loan-tracker/backend/internal/httputil"
	"github.com/loan-tracker/backend/internal/models"
	"github.com/rs/zerolog/log"
)

func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		log.Error().Err(err).Msg("Healthz")
		httputil.NewError(c, http.StatusInternalServerError, models.ErrStoreUnavailable)
		return
	}

	err = sqlDB.PingContext(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Healthz")
		httputil.NewError(c, http.StatusInternalServerError, models.ErrStoreUnavailable)
		return
	}

	c.Status(http.StatusNoContent)
}
