package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"staysync/shared/constant"
	"staysync/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// calendarDate accepts an empty string or a YYYY-MM-DD date.
func calendarDate(field val.FieldLevel) bool {
	value := field.Field().String()
	if value == constant.Empty {
		return true
	}

	_, err := time.Parse(constant.CalendarDate, value)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// Report json names so messages match what the client sent.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return constant.Empty
		}

		return name
	})

	if err := validate.RegisterValidation("calendardate", calendarDate); err != nil {
		panic(err)
	}
}

// Validate decodes JSON from r into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
