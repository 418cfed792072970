// Package validate runs the client-side field checks that must pass before
// any write reaches the network: required fields plus the Indian tax and
// address identifier formats (PAN, GSTIN, Aadhaar, pincode, mobile).
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("validation failed")

var (
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	gstinRe   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	aadhaarRe = regexp.MustCompile(`^[0-9]{12}$`)
	pincodeRe = regexp.MustCompile(`^[0-9]{6}$`)
	mobileRe  = regexp.MustCompile(`^[0-9]{10}$`)
)

// FieldErrors maps a struct field to its human-readable failure message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, fe[field]))
	}
	return strings.Join(parts, "; ")
}

func (fe FieldErrors) Unwrap() error {
	return ErrValidation
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	must := func(tag string, re *regexp.Regexp, upper bool) {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if upper {
				value = strings.ToUpper(value)
			}
			return re.MatchString(value)
		})
		if err != nil {
			panic(fmt.Sprintf("register %s validator: %v", tag, err))
		}
	}

	must("pan", panRe, true)
	must("gstin", gstinRe, true)
	must("aadhaar", aadhaarRe, false)
	must("pincode", pincodeRe, false)
	must("mobile", mobileRe, false)

	return v
}

// Struct checks v's validate tags and returns FieldErrors (wrapping
// ErrValidation) listing every failed field.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	fields := FieldErrors{}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = messageFor(fe)
		}
	}
	return fields
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "pan":
		return "must be a valid PAN number (e.g. ABCDE1234F)"
	case "gstin":
		return "must be a valid 15-character GST number"
	case "aadhaar":
		return "must be a valid 12-digit Aadhaar number"
	case "pincode":
		return "must be a valid 6-digit pincode"
	case "mobile":
		return "must be a valid 10-digit mobile number"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "numeric":
		return "must be numeric"
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
