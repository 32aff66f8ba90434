// Package validate runs struct-tag validation on wire payloads and reports
// failures as errs validation errors named after the JSON fields.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"fleet/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a configured validator.Validate. It is safe for concurrent use.
type Validator struct {
	v *validator.Validate
}

// New creates a Validator that reports fields by their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s. Every failed field becomes one errs.ValueIsRequiredError
// (for "required") or errs.ValueIsInvalidError, joined together.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := fieldPath(fe)
		if fe.Tag() == "required" {
			out = append(out, errs.NewValueIsRequiredError(name))
			continue
		}
		out = append(out, errs.NewValueIsInvalidErrorWithCause(name, describe(fe)))
	}
	return errors.Join(out...)
}

// Validate implements echo.Validator.
func (val *Validator) Validate(i any) error {
	return val.Struct(i)
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func describe(fe validator.FieldError) error {
	if fe.Param() != "" {
		return fmt.Errorf("failed %s=%s", fe.Tag(), fe.Param())
	}
	return fmt.Errorf("failed %s", fe.Tag())
}
