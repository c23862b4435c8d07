package validator

import (
	"airbnc/shared/constant"
	"airbnc/shared/failure"
	"airbnc/shared/timezone"
	"encoding/json"
	"errors"
	"io"
	"math"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var validate *val.Validate

func registerDateValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := timezone.ParseDate(str)

	return err == nil
}

const (
	minRating = 1
	maxRating = 5
)

// registerRatingValidation accepts whole numbers from 1 to 5, including
// floats without a fractional part.
func registerRatingValidation(field val.FieldLevel) bool {
	value := field.Field()

	switch value.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Int() >= minRating && value.Int() <= maxRating
	case reflect.Float32, reflect.Float64:
		f := value.Float()

		return f == math.Trunc(f) && f >= minRating && f <= maxRating
	default:
		return false
	}
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	if err := validate.RegisterValidation("date", registerDateValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("rating", registerRatingValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads a JSON body into data. An empty body leaves data untouched.
func Decode[T any](r io.Reader, data *T) error {
	if r == nil {
		return nil
	}

	err := json.NewDecoder(r).Decode(data)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Debug().Err(err).Msg("Rejected request body")

		return failure.BadRequestFromString(constant.MessageInvalidRequestBody) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
