package httputil

import (
	"errors"
	"io"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidBody      = errors.New("the request body is not a valid JSON object for this resource")
	ErrRequestBodyEmpty = errors.New("the request body must not be empty")
)

// BindData binds the JSON body of the request to data.
//
// Validation failures of binding tags are returned as ValidationError,
// all other failures as ErrRequestBodyEmpty or ErrInvalidBody.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return newValidationError(validationErrors)
	}

	log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}
