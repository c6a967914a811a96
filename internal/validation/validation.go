package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/macropower/sdkconf/pkg/abi"
	"github.com/macropower/sdkconf/pkg/sdkerrors"
)

// New returns a validator that names fields by their flag tag and knows the
// following custom tags:
//
//   - abi: the string is an ABI descriptor.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(flagName)

	err := v.RegisterValidation("abi", func(fl validator.FieldLevel) bool {
		return abi.IsDescriptor(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	return v
}

// Struct validates s with v. Field errors are collected into a single
// [sdkerrors.ErrRequestShape] error.
func Struct(v *validator.Validate, s any) error {
	return convert(v.Struct(s))
}

// Var validates a single value with v against tag.
func Var(v *validator.Validate, name string, value any, tag string) error {
	err := v.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s: %q does not satisfy %q", sdkerrors.ErrRequestShape, name, value, tag)
	}

	return err
}

func convert(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}

	return fmt.Errorf("%w: %s", sdkerrors.ErrRequestShape, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := fe.Field()

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "excluded_with", "excluded_unless":
		return fmt.Sprintf("%s cannot be combined with %s", name, fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: %v fails %s=%s", name, fe.Value(), fe.Tag(), fe.Param())
		}

		return fmt.Sprintf("%s: %v fails %s", name, fe.Value(), fe.Tag())
	}
}

func flagName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("flag"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}

	return "--" + name
}
