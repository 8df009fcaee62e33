package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/partytracker/party-service/internal/domain"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	// report json names so meta keys match the request body
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return val
}

func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

// Struct runs the validate tags on s. Failures become a validation AppError
// whose meta maps each json field to a message; a field that is only missing
// maps to "required".
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return domain.ErrValidation(err.Error())
	}

	meta := make(map[string]string, len(ves))
	onlyRequired := true
	for _, fe := range ves {
		meta[fe.Field()] = formatFieldError(fe)
		if fe.Tag() != "required" {
			onlyRequired = false
		}
	}
	if onlyRequired {
		return domain.ErrValidationMeta("missing required fields", meta)
	}
	return domain.ErrValidationMeta("invalid fields", meta)
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return fmt.Sprintf("must be <= %s chars", fe.Param())
	case "gte":
		return fmt.Sprintf("must be >= %s", fe.Param())
	case "url", "http_url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

// IsRecordID accepts seeded ids like "event1" and server-assigned UUIDs.
func IsRecordID(id string) bool {
	return v.Var(id, "required,max=64,alphanum|uuid") == nil
}
