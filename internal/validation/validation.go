// Package validation registers request field rules and maps failures to catalog messages.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"restaurant/internal/messages"
)

var (
	nameRegex        = regexp.MustCompile(`^[A-Za-z\s]{2,}$`)
	phoneRegex       = regexp.MustCompile(`^\d{10}$`)
	descriptionRegex = regexp.MustCompile(`^.{10,200}$`)
	priceRegex       = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// New returns a validator with the custom tags personname, phone10, password, description and money.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return nameRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return IsStrongPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("description", func(fl validator.FieldLevel) bool {
		return descriptionRegex.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("money", func(fl validator.FieldLevel) bool {
		return priceRegex.MatchString(fl.Field().String())
	})
	return v
}

// IsStrongPassword reports whether pw has at least six characters, only letters and digits,
// and at least one of each.
func IsStrongPassword(pw string) bool {
	if len(pw) < 6 {
		return false
	}
	var letter, digit bool
	for _, r := range pw {
		switch {
		case r < unicode.MaxASCII && unicode.IsLetter(r):
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			return false
		}
	}
	return letter && digit
}

var tagMessages = map[string]string{
	"required":    messages.RequiredFields,
	"personname":  messages.ValidationName,
	"email":       messages.ValidationEmail,
	"phone10":     messages.ValidationPhone,
	"password":    messages.ValidationPassword,
	"description": messages.ValidationDesc,
	"money":       messages.ValidationPrice,
}

var fieldMessages = map[string]string{
	"Rating":   messages.ValidationRating,
	"Quantity": messages.InvalidQuantity,
	"Role":     messages.InvalidRole,
}

// Message returns the catalog message for the first failing field of err.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return messages.BadRequest
	}
	fe := verrs[0]
	if fe.Tag() != "required" {
		if msg, ok := fieldMessages[fe.Field()]; ok {
			return msg
		}
	}
	if msg, ok := tagMessages[fe.Tag()]; ok {
		return msg
	}
	return messages.BadRequest
}
