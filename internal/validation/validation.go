// Package validation checks operator input against the rules declared in the
// models' struct tags and turns failures into the messages shown at the prompt.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their label tag so messages read naturally.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	// length=N: non-empty and at most N characters.
	if err := v.RegisterValidation("length", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		n := utf8.RuneCountInString(fl.Field().String())
		return n >= 1 && n <= limit
	}); err != nil {
		panic(err)
	}
	return v
}

// Field validates a single field of model. model must be a pointer to a struct.
func Field(model any, field string) error {
	err := validate.StructPartial(model, field)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return message(verrs[0])
}

func message(fe validator.FieldError) error {
	switch fe.Tag() {
	case "length":
		return fmt.Errorf("%s can not be null (empty) or exceed %s characters.", fe.Field(), fe.Param())
	case "gt":
		return fmt.Errorf("%s must be greater than %s.", fe.Field(), zeroWord(fe.Param()))
	default:
		return fmt.Errorf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}

func zeroWord(param string) string {
	if param == "0" {
		return "zero"
	}
	return param
}
