// Package version serves the build information of the running backend.
package version

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/loan-tracker/backend/internal/httputil"
)

type Response struct {
	Data Object `json:"data"` // Build information of the backend
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`                                             // Release of the loan tracker backend
	Commit    string `json:"commit,omitempty" example:"4c0a8e1f9d2b7a6e3c5f8b1d0e9a2c4f6b8d0e1a"` // VCS revision the binary was built from
	GoVersion string `json:"go_version" example:"go1.24.1"`                                       // Go release the binary was built with
}

// NewObject describes the build of the running binary as release.
func NewObject(release string) Object {
	o := Object{Version: release}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return o
	}

	o.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			o.Commit = s.Value
		}
	}

	return o
}

// RegisterRoutes serves the build information for release on r.
func RegisterRoutes(r *gin.RouterGroup, release string) {
	response := Response{Data: NewObject(release)}

	r.GET("", Get(response))
	r.OPTIONS("", Options)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the release, VCS revision and Go version of the running backend
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(response Response) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response)
	}
}
