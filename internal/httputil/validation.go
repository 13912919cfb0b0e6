package httputil

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"golang.org/x/exp/slices"
)

// ValidationError lists the fields of a request body that failed validation.
type ValidationError struct {
	Fields   []string
	messages []string
}

func (e ValidationError) Error() string {
	return strings.Join(e.messages, ", ")
}

// Failed reports if field is one of the fields that failed validation.
func (e ValidationError) Failed(field string) bool {
	return slices.Contains(e.Fields, field)
}

func newValidationError(errs validator.ValidationErrors) ValidationError {
	var v ValidationError
	for _, e := range errs {
		v.Fields = append(v.Fields, e.Field())
		v.messages = append(v.messages, validationErrorToText(e))
	}

	return v
}

func validationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be longer than %s", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// UseJSONFieldNames makes the validator used by gin report fields
// by their JSON name instead of the Go struct field name.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
