// Package validate runs declarative field rules against decoded request
// payloads, independent of the HTTP framework. Every violation is collected;
// a partially valid payload is never applied.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"tolujohn-backend-go/internal/services"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Dates arrive as strings so a bad format is reported alongside the
	// other violations instead of failing the JSON decode.
	if err := val.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}
	return val
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate accepts full RFC 3339 timestamps and bare calendar dates.
func ParseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// Struct evaluates every declared rule on payload and returns the aggregated
// violation list, or nil when the payload is valid.
func Struct(payload any) []services.FieldError {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []services.FieldError{{Field: "payload", Message: "invalid payload"}}
	}
	out := make([]services.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, services.FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "isodate":
		return fmt.Sprintf("%s must be a valid ISO 8601 date", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
