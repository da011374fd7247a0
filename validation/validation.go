// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package validation checks incoming requests against the option catalog.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/tippspiel/catalog"
)

// FieldErrors maps a JSON field name to a human readable problem.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+fe[k])
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}

// Validator wraps go-playground validator with the catalog-bound "option" rule.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator whose option=<category> tag accepts only the
// declared options of that category.
func New(cat *catalog.Catalog) *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	err := v.RegisterValidation("option", func(fl validator.FieldLevel) bool {
		return cat.Contains(catalog.Category(fl.Param()), fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("register option validation: %v", err))
	}

	return &Validator{validate: v}
}

// Validate returns FieldErrors when s violates its tags, nil otherwise.
func (v *Validator) Validate(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "option":
		return "is not a valid option"
	}
	return "is invalid"
}
