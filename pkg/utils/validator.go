package utils

import (
	"encoding/json"
	"errors"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/escbarros/EngSoftware-HausParkApi/internal/models"
)

var phoneRegex = regexp.MustCompile(`^\d{11}$`)

// messages maps field name -> failing rule -> the message the API returns.
// A field reports only its first failing rule, but violations are collected
// across all fields in declaration order.
var messages = map[string]map[string]string{
	"name":           {"required": "Name is required", "min": "Name should have at least 10 chars"},
	"cpf":            {"required": "CPF is required", "len": "Invalid CPF"},
	"phone":          {"required": "Phone number is required", "phone": "Invalid phone number"},
	"email":          {"required": "Email is required", "email": "Invalid email"},
	"password":       {"required": "Password is required", "password": "Invalid password"},
	"address":        {"required": "Address is required", "min": "Address should have at least 10 chars"},
	"width":          {"required": "Width is required", "min": "Width should be at least 1"},
	"height":         {"required": "Height is required", "min": "Height should be at least 1"},
	"length":         {"required": "Length is required", "min": "Length should be at least 1"},
	"price":          {"required": "Price is required", "min": "Price should be at least 1"},
	"number_of_cars": {"min": "Number of cars must be greater than 0"},
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Report violations under the wire field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Custom validations
	v.RegisterValidation("phone", validatePhone)
	v.RegisterValidation("password", validatePassword)

	return &Validator{
		validate: v,
	}
}

// defaulter is implemented by payloads that carry defaulted optional fields.
// Defaults are applied before validation so the rules run uniformly over the
// defaulted value instead of special-casing absence.
type defaulter interface {
	ApplyDefaults()
}

// Parse decodes a raw JSON payload into out, applies defaults, and validates.
// Any failure comes back as a models.ValidationError with per-field entries.
// An empty body reads as an empty object, so it reports every required field
// instead of a decode failure.
func (v *Validator) Parse(body []byte, out any) error {
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, out); err != nil {
		return decodeError(err)
	}
	if d, ok := out.(defaulter); ok {
		d.ApplyDefaults()
	}
	return v.Struct(out)
}

// Struct validates an already-decoded payload, translating validator errors
// into the normalized violation list.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// *validator.InvalidValidationError: a non-struct was passed in.
		return err
	}

	violations := make([]models.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}
	return models.ValidationError{Violations: violations}
}

func messageFor(fe validator.FieldError) string {
	if byTag, ok := messages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	return "Invalid " + strings.ReplaceAll(fe.Field(), "_", " ")
}

// decodeError turns a JSON decode failure into a validation error. A type
// mismatch on a known field is reported against that field ("Description
// should be a string"); anything else (malformed JSON) gets a generic entry.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return models.ValidationError{Violations: []models.FieldError{{
			Field:   typeErr.Field,
			Message: fieldLabel(typeErr.Field) + " should be a " + jsonTypeName(typeErr.Type),
		}}}
	}
	return models.ValidationError{Violations: []models.FieldError{{
		Field:   "",
		Message: "Invalid request body",
	}}}
}

// fieldLabel turns a wire field name into its human form:
// "number_of_cars" -> "Number of cars".
func fieldLabel(field string) string {
	label := []rune(strings.ReplaceAll(field, "_", " "))
	label[0] = unicode.ToUpper(label[0])
	return string(label)
}

func jsonTypeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	default:
		return "number"
	}
}

func validatePhone(fl validator.FieldLevel) bool {
	return phoneRegex.MatchString(fl.Field().String())
}

// validatePassword enforces the password policy: at least 8 characters with
// one lowercase, one uppercase, one digit and one of @$!%*?&, drawn only
// from that charset.
func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var lower, upper, digit, special bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", c):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
