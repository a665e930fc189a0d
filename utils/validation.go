package utils

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"maison-decor/models"
)

var Validate = validator.New()

var (
	personNamePattern = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	intlPhonePattern  = regexp.MustCompile(`^\+?[\d\s()-]+$`)
)

func init() {
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	Validate.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNamePattern.MatchString(fl.Field().String())
	})

	Validate.RegisterValidation("intl_phone", func(fl validator.FieldLevel) bool {
		return intlPhonePattern.MatchString(fl.Field().String())
	})
}

// ValidateStruct runs the full schema over the payload and returns one entry
// per failing field. A nil result means the payload passed. The report is
// complete, not fail-fast, so the UI can annotate every offending input in
// one round trip.
func ValidateStruct(payload interface{}) []models.FieldError {
	err := Validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []models.FieldError{{Field: "payload", Message: "invalid request payload"}}
	}

	details := make([]models.FieldError, 0, len(verrs))
	for _, e := range verrs {
		details = append(details, models.FieldError{
			Field:   fieldPath(e),
			Message: messageFor(e),
		})
	}
	return details
}

// fieldPath keeps the nested path ("items[0].price") but drops the struct
// name prefix the validator puts in front.
func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s item(s)", e.Param())
		}
		return fmt.Sprintf("must be at most %s characters", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", e.Param())
	case "person_name":
		return "may only contain letters, spaces, hyphens and apostrophes"
	case "intl_phone":
		return "must be a valid phone number"
	case "datetime":
		return "must be a valid date-time string"
	default:
		return "is invalid"
	}
}
