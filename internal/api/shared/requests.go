package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/todo-api/internal/domain"
)

// MaxRequestBodyBytes bounds the size of decoded request bodies.
const MaxRequestBodyBytes = 1 << 20

// ErrMalformedRequest is returned by Bind when the body is not a JSON object.
var ErrMalformedRequest = errors.New("malformed request body")

// Global validator instance for reuse
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names so messages match the request payload.
	v.RegisterTagNameFunc(jsonFieldName)

	// confirmed requires a sibling field named <Field>Confirmation holding the same value.
	_ = v.RegisterValidation("confirmed", func(fl validator.FieldLevel) bool {
		parent := fl.Parent()
		if parent.Kind() == reflect.Ptr {
			parent = parent.Elem()
		}
		other := parent.FieldByName(fl.StructFieldName() + "Confirmation")
		if !other.IsValid() || other.Kind() != reflect.String {
			return false
		}
		return other.String() == fl.Field().String()
	})

	// maxbytes bounds the byte length of a string; bcrypt ignores input past 72 bytes.
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return v
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// Normalizer is implemented by request types that clean up decoded input,
// e.g. trimming whitespace, before validation.
type Normalizer interface {
	Normalize()
}

// Bind decodes the JSON body of r into v, normalizes it when v implements
// Normalizer, and validates it.
//
// It returns an error wrapping ErrMalformedRequest when the body is not a JSON
// object, and a *domain.ValidationError when fields are missing, invalid or of
// the wrong JSON type. An empty body is validated as an empty object.
func Bind(r *http.Request, v any) error {
	typeErrs, err := DecodeJSON(r, v)
	if err != nil {
		return err
	}

	if n, ok := v.(Normalizer); ok {
		n.Normalize()
	}

	verr := ValidateRequest(v)
	if typeErrs == nil {
		if verr.HasErrors() {
			return verr
		}
		return nil
	}

	// Type mismatches take precedence over rule failures on the same field.
	for _, field := range verr.FieldNames() {
		if _, reported := typeErrs.Fields()[field]; reported {
			continue
		}
		for _, msg := range verr.Fields()[field] {
			typeErrs.Add(field, msg)
		}
	}
	return typeErrs
}

// DecodeJSON decodes the request body into the given struct. JSON values of
// the wrong type for a field are collected into the returned ValidationError
// instead of failing the whole request; decoding carries on past them.
func DecodeJSON(r *http.Request, v any) (*domain.ValidationError, error) {
	if r.Body == nil {
		return nil, nil
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, MaxRequestBodyBytes))
	err := dec.Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil, nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domain.NewFieldError(typeErr.Field, typeMessage(typeErr.Field, typeErr.Type)), nil
	}

	return nil, fmt.Errorf("%w: %w", ErrMalformedRequest, err)
}

// ValidateRequest validates v with the struct validator and translates the
// failures into Laravel-style messages keyed by JSON field name.
func ValidateRequest(v any) *domain.ValidationError {
	result := domain.NewValidationError()

	err := validate.Struct(v)
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.Add("request", err.Error())
		return result
	}

	for _, fe := range fieldErrs {
		result.Add(fe.Field(), fieldMessage(fe))
	}
	return result
}

// Attribute returns the human-readable name of a JSON field, e.g. "user id".
func Attribute(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func fieldMessage(fe validator.FieldError) string {
	attr := Attribute(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", attr)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", attr)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", attr, fe.Param())
	case "maxbytes":
		return fmt.Sprintf("The %s field must not be greater than %s bytes.", attr, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", attr, fe.Param())
	case "confirmed":
		return fmt.Sprintf("The %s field confirmation does not match.", attr)
	case "oneof", "gt", "gte":
		return fmt.Sprintf("The selected %s is invalid.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}

func typeMessage(field string, target reflect.Type) string {
	attr := Attribute(field)
	for target.Kind() == reflect.Ptr {
		target = target.Elem()
	}

	switch target.Kind() {
	case reflect.String:
		return fmt.Sprintf("The %s field must be a string.", attr)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return fmt.Sprintf("The %s field must be an integer.", attr)
	default:
		return fmt.Sprintf("The %s field is invalid.", attr)
	}
}
