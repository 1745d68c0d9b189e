package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld with no whitespace or extra @ anywhere
	emailShapeRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// E.164: leading +, first digit 1-9, 2-15 digits in total
	intlPhoneRegex = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
)

// PhoneExample is shown to callers whose phone number is rejected.
const PhoneExample = "+918448802078"

// New returns a validator that reports JSON field names and knows the custom tags.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_shape", EmailShape)
	_ = v.RegisterValidation("intl_phone", IntlPhone)
}

// EmailShape checks the basic local@domain.tld shape. Deliverability is not checked.
func EmailShape(fl validator.FieldLevel) bool {
	return emailShapeRegex.MatchString(fl.Field().String())
}

// IntlPhone validates an international phone number such as +918448802078
func IntlPhone(fl validator.FieldLevel) bool {
	return intlPhoneRegex.MatchString(fl.Field().String())
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}
