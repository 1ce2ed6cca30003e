package middleware

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/yigit/unicommunity/internal/pkg/apperrors"
)

// BindJSON binds the request body into obj. On failure it writes the error
// response and returns false; a failed `required` rule counts as incomplete data.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		HandleAPIError(c, bindingError(err))
		return false
	}
	return true
}

// ParseIDParam reads a positive integer path parameter. On failure it writes
// the error response and returns false.
func ParseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		HandleAPIError(c, apperrors.NewValidationError("Invalid "+name+", expected a positive integer"))
		return 0, false
	}
	return id, true
}

func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewValidationError("Invalid request format")
	}

	fields := make(map[string]interface{}, len(verrs))
	incomplete := false
	for _, fe := range verrs {
		fields[fe.Field()] = formatValidationError(fe)
		if fe.Tag() == "required" {
			incomplete = true
		}
	}

	if incomplete {
		return apperrors.NewCustomError(apperrors.ErrIncompleteData, "Incomplete data provided").WithDetails(fields)
	}
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Validation failed").WithDetails(fields)
}

var registerOnce sync.Once

// RegisterJSONFieldNames makes binding errors report the json key of a field
// instead of its Go name.
func RegisterJSONFieldNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return field + " must be at least " + e.Param()
	case "max":
		return field + " must be at most " + e.Param()
	case "gt":
		return field + " must be greater than " + e.Param()
	case "email":
		return field + " must be a valid email address"
	case "oneof":
		return field + " must be one of: " + e.Param()
	default:
		return field + " validation failed: " + e.Tag()
	}
}
